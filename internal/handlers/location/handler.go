package location

import (
	"net/http"

	"cowork/infras/otel"
	"cowork/internal/domains/location/model"
	"cowork/internal/domains/location/model/dto"
	"cowork/internal/domains/location/service"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/validator"
	"cowork/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Location
	otel    otel.Otel
}

func New(service service.Location, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/locations", handler.GetActiveLocations)

	router.Route("/admin/locations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetLocations)
		routerGroup.Post("/", handler.CreateLocation)
		routerGroup.Get("/{id}", handler.GetLocationByID)
		routerGroup.Put("/{id}", handler.UpdateLocation)
		routerGroup.Patch("/{id}/status", handler.UpdateLocationStatus)
		routerGroup.Delete("/{id}", handler.DeleteLocation)
	})
}

// GetActiveLocations lists locations shown on the site.
// @Summary List active locations
// @Tags Location
// @Produce json
// @Param city query string false "Filter by city"
// @Success 200 {object} response.Data[dto.GetLocationsResponse]
// @Router /v1/locations [get]
func (handler *Handler) GetActiveLocations(w http.ResponseWriter, r *http.Request) {
	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	filterGroup := cityFilter(r)
	filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
		Field:    model.FieldIsActive,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    model.TableName,
	})

	handler.list(w, r, queryParams, filterGroup)
}

// GetLocations lists every location.
// @Summary List locations (admin)
// @Tags Location
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param city query string false "Filter by city"
// @Param is_active query boolean false "Filter by status"
// @Success 200 {object} response.Data[dto.GetLocationsResponse]
// @Router /v1/admin/locations [get]
// @Security BearerAuth
func (handler *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := cityFilter(r)

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	handler.list(w, r, queryParams, filterGroup)
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request, queryParams gDto.QueryParams, filterGroup gDto.FilterGroup) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocations")
	defer scope.End()

	locations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get locations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, locations)
}

// GetLocationByID returns a location.
// @Summary Get a location
// @Tags Location
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} response.Data[dto.LocationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/locations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetLocationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocationByID")
	defer scope.End()

	location, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, location)
}

// CreateLocation creates a location.
// @Summary Create a location
// @Tags Location
// @Accept json
// @Produce json
// @Param request body dto.SaveLocationRequest true "Location"
// @Success 201 {object} response.Data[dto.LocationResponse]
// @Failure 400 {object} response.Error
// @Router /v1/admin/locations [post]
// @Security BearerAuth
func (handler *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLocation")
	defer scope.End()

	var req dto.SaveLocationRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	location, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create location")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, location)
}

// UpdateLocation saves a location.
// @Summary Save a location
// @Tags Location
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body dto.SaveLocationRequest true "Location"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/locations/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateLocation")
	defer scope.End()

	var req dto.SaveLocationRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update location")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Location updated successfully")
}

// UpdateLocationStatus toggles a location.
// @Summary Activate or deactivate a location
// @Tags Location
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body dto.UpdateStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/locations/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateLocationStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateLocationStatus")
	defer scope.End()

	var req dto.UpdateStatusRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, chi.URLParam(r, constant.RequestParamID), *req.IsActive); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Location status updated successfully")
}

// DeleteLocation deletes a location.
// @Summary Delete a location
// @Tags Location
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/locations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteLocation")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete location")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Location deleted successfully")
}

func cityFilter(r *http.Request) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldCity,
		Operator: gDto.FilterOperatorLike,
		Value:    r.URL.Query().Get(model.FieldCity),
		Table:    model.TableName,
	})

	return filterGroup
}
