package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davin-b-s/aeronavix/pkg"
	"github.com/davin-b-s/aeronavix/pkg/datastructure"
	"github.com/davin-b-s/aeronavix/pkg/engine"
	"github.com/davin-b-s/aeronavix/pkg/logger"
)

var (
	from        = flag.String("from", "New York", "origin location")
	to          = flag.String("to", "Los Angeles", "destination location")
	method      = flag.String("method", "depth_first", "search method: depth_first or lookahead")
	flightsPath = flag.String("flights", "", "flights csv file; the built-in sample network is used when empty")
)

// the sample flight network of the original flight database
var sampleFlights = []datastructure.Flight{
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

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	graph := datastructure.NewFlightGraph(pkg.DEFAULT_GRAPH_CAPACITY)
	if *flightsPath != "" {
		if err := datastructure.ReadFlights(*flightsPath, graph); err != nil {
			fmt.Fprintf(os.Stderr, "reading flights: %v\n", err)
			os.Exit(1)
		}
	} else {
		for _, f := range sampleFlights {
			if err := graph.Insert(f.From, f.To, f.Distance); err != nil {
				panic(err)
			}
		}
	}

	searchMethod := pkg.GetSearchMethod(*method)
	if searchMethod == pkg.UNKNOWN_METHOD {
		fmt.Fprintf(os.Stderr, "unknown search method %q\n", *method)
		os.Exit(1)
	}

	routingEngine := engine.NewEngine(graph, log)
	path, err := routingEngine.Route(*from, *to, searchMethod)
	if err != nil {
		fmt.Printf("No route from %s to %s\n", *from, *to)
		os.Exit(1)
	}

	fmt.Println(strings.Join(path.Waypoints(), " to "))
	fmt.Printf("Distance is %d\n", path.TotalDistance)
}
