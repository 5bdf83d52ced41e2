package main

import (
	"context"
	"flag"

	"github.com/davin-b-s/aeronavix/pkg"
	"github.com/davin-b-s/aeronavix/pkg/datastructure"
	"github.com/davin-b-s/aeronavix/pkg/engine"
	"github.com/davin-b-s/aeronavix/pkg/geo"
	"github.com/davin-b-s/aeronavix/pkg/http"
	"github.com/davin-b-s/aeronavix/pkg/http/usecases"
	"github.com/davin-b-s/aeronavix/pkg/logger"
	"github.com/davin-b-s/aeronavix/pkg/spatialindex"
	"github.com/davin-b-s/aeronavix/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	flightsPath   = flag.String("flights", "./data/flights.csv", "flights csv file (from,to,distance)")
	locationsPath = flag.String("locations", "./data/locations.csv", "location coordinates csv file (name,lat,lon)")
	batchWorkers  = flag.Int("batch_workers", 8, "worker pool size for batch route queries")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Warn("config file not found, using defaults", zap.Error(err))
	}
	viper.SetDefault("GRAPH_CAPACITY", pkg.DEFAULT_GRAPH_CAPACITY)

	routingEngine, err := engine.NewEngineFromFile(*flightsPath, viper.GetInt("GRAPH_CAPACITY"), logger)
	if err != nil {
		panic(err)
	}

	coords, err := datastructure.ReadLocationCoordinates(*locationsPath)
	if err != nil {
		logger.Warn("no location coordinates, route geometry disabled", zap.Error(err))
		coords = map[string]geo.Coordinate{}
	}
	rtree := spatialindex.NewRtree()
	rtree.Build(coords, logger)

	api := http.NewServer(logger)

	routingService := usecases.NewRoutingService(logger, routingEngine, rtree, *batchWorkers)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, false, routingService)

	signal := http.GracefulShutdown()

	logger.Info("Aeronavix Route Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
