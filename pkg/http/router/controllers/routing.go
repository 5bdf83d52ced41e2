package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"github.com/davin-b-s/aeronavix/pkg"
	helper "github.com/davin-b-s/aeronavix/pkg/http/router/routerhelper"
	"github.com/davin-b-s/aeronavix/pkg/http/usecases"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/route", api.route)
	group.POST("/route/batch", api.batchRoute)
	group.POST("/flights", api.addFlight)
	group.GET("/locations", api.locations)
	group.GET("/nearestLocation", api.nearestLocation)
}

func (api *routingAPI) validateRequest(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return false
	}
	return true
}

func (api *routingAPI) route(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request routeRequest

	query := r.URL.Query()
	request.Origin = query.Get("origin")
	request.Destination = query.Get("destination")
	request.Method = query.Get("method")

	if !api.validateRequest(w, r, request) {
		return
	}

	path, pathPolyline, greatCircleKm, err := api.routingService.Route(request.Origin,
		request.Destination, pkg.GetSearchMethod(request.Method))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewRouteResponse(path, pathPolyline, greatCircleKm)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) batchRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request batchRouteRequest

	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if !api.validateRequest(w, r, request) {
		return
	}

	queries := make([]usecases.RouteQuery, 0, len(request.Queries))
	for i, q := range request.Queries {
		queries = append(queries, usecases.RouteQuery{
			Index:  i,
			Origin: q.Origin,
			Dest:   q.Destination,
		})
	}

	results := api.routingService.BatchRoute(queries, pkg.GetSearchMethod(request.Method))

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewBatchRouteResponse(request.Queries, results)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) addFlight(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request addFlightRequest

	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if !api.validateRequest(w, r, request) {
		return
	}

	if err := api.routingService.AddFlight(request.From, request.To, request.Distance); err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusCreated,
		envelope{"data": addFlightResponse(request)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) locations(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": locationsResponse{Locations: api.routingService.Locations()}}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) nearestLocation(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearestLocationRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}

	if !api.validateRequest(w, r, request) {
		return
	}

	name, coord, distKm, err := api.routingService.NearestLocation(request.Lat, request.Lon)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewNearestLocationResponse(name, coord, distKm)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
