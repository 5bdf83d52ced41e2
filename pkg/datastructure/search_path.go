package datastructure

// SearchPath is the result of one route query: the traversed flights in
// forward (origin -> destination) order plus the sum of their distances.
type SearchPath struct {
	Legs          []Flight `json:"legs"`
	TotalDistance int      `json:"total_distance"`
}

func NewSearchPath(legs []Flight) SearchPath {
	total := 0
	for i := range legs {
		total += legs[i].Distance
	}
	return SearchPath{
		Legs:          legs,
		TotalDistance: total,
	}
}

func (sp SearchPath) Origin() string {
	if len(sp.Legs) == 0 {
		return ""
	}
	return sp.Legs[0].From
}

func (sp SearchPath) Destination() string {
	if len(sp.Legs) == 0 {
		return ""
	}
	return sp.Legs[len(sp.Legs)-1].To
}

// Waypoints returns the visited location names in order, the origin
// first and the destination last.
func (sp SearchPath) Waypoints() []string {
	if len(sp.Legs) == 0 {
		return nil
	}
	points := make([]string, 0, len(sp.Legs)+1)
	points = append(points, sp.Legs[0].From)
	for i := range sp.Legs {
		points = append(points, sp.Legs[i].To)
	}
	return points
}
