package engine

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/davin-b-s/aeronavix/pkg"
	"github.com/davin-b-s/aeronavix/pkg/datastructure"
	"github.com/davin-b-s/aeronavix/pkg/engine/routing"
	"github.com/davin-b-s/aeronavix/pkg/util"
	"go.uber.org/zap"
)

func buildSampleEngine(t *testing.T) *Engine {
	t.Helper()
	g := datastructure.NewFlightGraph(pkg.DEFAULT_GRAPH_CAPACITY)
	flights := []datastructure.Flight{
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
	for _, f := range flights {
		if err := g.Insert(f.From, f.To, f.Distance); err != nil {
			t.Fatalf("err: %v", err)
		}
	}
	return NewEngine(g, zap.NewNop())
}

func TestRouteDispatch(t *testing.T) {
	e := buildSampleEngine(t)

	dfsPath, err := e.Route("New York", "Los Angeles", pkg.DEPTH_FIRST)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if dfsPath.TotalDistance != 3000 {
		t.Fatalf("depth-first total distance %d, want 3000", dfsPath.TotalDistance)
	}

	laPath, err := e.Route("New York", "Los Angeles", pkg.LOOKAHEAD)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if laPath.TotalDistance != 2600 {
		t.Fatalf("lookahead total distance %d, want 2600", laPath.TotalDistance)
	}
}

func TestRouteUnknownMethod(t *testing.T) {
	e := buildSampleEngine(t)

	_, err := e.Route("New York", "Los Angeles", pkg.UNKNOWN_METHOD)
	if !errors.Is(err, ErrUnknownSearchMethod) {
		t.Fatalf("expected ErrUnknownSearchMethod, got %v", err)
	}

	var serviceErr *util.Error
	if !errors.As(err, &serviceErr) || serviceErr.Code() != util.ErrBadParamInput {
		t.Fatalf("expected a bad-param wrapped error, got %v", err)
	}
}

func TestRouteNoRoute(t *testing.T) {
	e := buildSampleEngine(t)

	_, err := e.Route("Urbana", "New York", pkg.DEPTH_FIRST)
	if !errors.Is(err, routing.ErrNoRouteFound) {
		t.Fatalf("expected ErrNoRouteFound, got %v", err)
	}
}

func TestConcurrentRoutesShareOneGraph(t *testing.T) {
	e := buildSampleEngine(t)

	// every Route call owns its visitation side table, so parallel
	// queries over the same graph must all see the same answer
	want, err := e.Route("New York", "Los Angeles", pkg.DEPTH_FIRST)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]datastructure.SearchPath, 16)
	errs := make([]error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = e.Route("New York", "Los Angeles", pkg.DEPTH_FIRST)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 16; i++ {
		if errs[i] != nil {
			t.Fatalf("err: %v", errs[i])
		}
		if !reflect.DeepEqual(results[i], want) {
			t.Fatalf("concurrent query %d diverged: %v vs %v", i, results[i], want)
		}
	}
}
