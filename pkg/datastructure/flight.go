package datastructure

// Flight is one directed connection between two named locations.
// From, To and Distance are fixed at insertion and never change; the
// per-search visitation marker lives in a side table owned by the query
// (see FlightGraph.NextUnvisitedDeparture), not on the record itself,
// so one graph can serve many searches without cross-query leakage.
type Flight struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int    `json:"distance"`
}

func NewFlight(from, to string, distance int) Flight {
	return Flight{
		From:     from,
		To:       to,
		Distance: distance,
	}
}

func (f Flight) GetFrom() string {
	return f.From
}

func (f Flight) GetTo() string {
	return f.To
}

func (f Flight) GetDistance() int {
	return f.Distance
}
