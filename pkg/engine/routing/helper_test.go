package routing

import (
	"testing"

	da "github.com/davin-b-s/aeronavix/pkg/datastructure"
)

// the sample flight network of the original flight database
var sampleFlights = []da.Flight{
	{From: "New York", To: "Chicago", Distance: 1000},
	{From: "Chicago", To: "Denver", Distance: 1000},
	{From: "New York", To: "Toronto", Distance: 800},
	{From: "New York", To: "Denver", Distance: 1900},
	{From: "Toronto", To: "Calgary", Distance: 1500},
	{From: "Toronto", To: "Los Angeles", Distance: 1800},
	{From: "Toronto", To: "Chicago", Distance: 500},
	{From: "Denver", To: "Urbana", Distance: 1000},
	{From: "Denver", To: "Houston", Distance: 1500},
	{From: "Houston", To: "Los Angeles", Distance: 1500},
	{From: "Denver", To: "Los Angeles", Distance: 1000},
}

func buildSampleGraph(t *testing.T) *da.FlightGraph {
	t.Helper()
	return buildGraph(t, sampleFlights)
}

func buildGraph(t *testing.T, flights []da.Flight) *da.FlightGraph {
	t.Helper()
	g := da.NewFlightGraph(100)
	for _, f := range flights {
		if err := g.Insert(f.From, f.To, f.Distance); err != nil {
			t.Fatalf("err: %v", err)
		}
	}
	return g
}

func assertPathShape(t *testing.T, path da.SearchPath, from, to string) {
	t.Helper()
	if len(path.Legs) == 0 {
		t.Fatalf("expected a non-empty path from %s to %s", from, to)
	}
	if got := path.Legs[0].From; got != from {
		t.Fatalf("first leg departs from %s, want %s", got, from)
	}
	if got := path.Legs[len(path.Legs)-1].To; got != to {
		t.Fatalf("last leg arrives at %s, want %s", got, to)
	}
	for i := 0; i+1 < len(path.Legs); i++ {
		if path.Legs[i].To != path.Legs[i+1].From {
			t.Fatalf("legs %d and %d do not connect: %v", i, i+1, path.Legs)
		}
	}
	sum := 0
	for _, leg := range path.Legs {
		sum += leg.Distance
	}
	if sum != path.TotalDistance {
		t.Fatalf("total distance %d != sum of legs %d", path.TotalDistance, sum)
	}
}
