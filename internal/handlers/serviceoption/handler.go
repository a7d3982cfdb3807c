package serviceoption

import (
	"net/http"

	"cowork/infras/otel"
	"cowork/internal/domains/serviceoption/model"
	"cowork/internal/domains/serviceoption/model/dto"
	"cowork/internal/domains/serviceoption/service"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/validator"
	"cowork/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ServiceOption
	otel    otel.Otel
}

func New(service service.ServiceOption, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/service-options", handler.GetActiveServiceOptions)

	router.Route("/admin/service-options", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetServiceOptions)
		routerGroup.Post("/", handler.CreateServiceOption)
		routerGroup.Get("/{id}", handler.GetServiceOptionByID)
		routerGroup.Put("/{id}", handler.UpdateServiceOption)
		routerGroup.Patch("/{id}/status", handler.UpdateServiceOptionStatus)
		routerGroup.Delete("/{id}", handler.DeleteServiceOption)
	})
}

// GetActiveServiceOptions lists the active add-ons of a workspace, in display order.
// @Summary List active service options
// @Tags ServiceOption
// @Produce json
// @Param workspace_id query string false "Filter by workspace"
// @Success 200 {object} response.Data[dto.GetServiceOptionsResponse]
// @Router /v1/service-options [get]
func (handler *Handler) GetActiveServiceOptions(w http.ResponseWriter, r *http.Request) {
	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	filterGroup := workspaceFilter(r)
	filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
		Field:    model.FieldIsActive,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    model.TableName,
	})

	handler.list(w, r, queryParams, filterGroup)
}

// GetServiceOptions lists every service option.
// @Summary List service options (admin)
// @Tags ServiceOption
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param workspace_id query string false "Filter by workspace"
// @Param is_active query boolean false "Filter by status"
// @Success 200 {object} response.Data[dto.GetServiceOptionsResponse]
// @Router /v1/admin/service-options [get]
// @Security BearerAuth
func (handler *Handler) GetServiceOptions(w http.ResponseWriter, r *http.Request) {
	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := workspaceFilter(r)

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
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceOptions")
	defer scope.End()

	options, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service options")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, options)
}

// GetServiceOptionByID returns a service option.
// @Summary Get a service option
// @Tags ServiceOption
// @Produce json
// @Param id path string true "Service option ID"
// @Success 200 {object} response.Data[dto.ServiceOptionResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/service-options/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetServiceOptionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceOptionByID")
	defer scope.End()

	option, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, option)
}

// CreateServiceOption creates a service option.
// @Summary Create a service option
// @Tags ServiceOption
// @Accept json
// @Produce json
// @Param request body dto.SaveServiceOptionRequest true "Service option"
// @Success 201 {object} response.Data[dto.ServiceOptionResponse]
// @Failure 400 {object} response.Error
// @Router /v1/admin/service-options [post]
// @Security BearerAuth
func (handler *Handler) CreateServiceOption(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateServiceOption")
	defer scope.End()

	var req dto.SaveServiceOptionRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	option, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service option")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, option)
}

// UpdateServiceOption saves a service option.
// @Summary Save a service option
// @Tags ServiceOption
// @Accept json
// @Produce json
// @Param id path string true "Service option ID"
// @Param request body dto.SaveServiceOptionRequest true "Service option"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/service-options/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateServiceOption(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateServiceOption")
	defer scope.End()

	var req dto.SaveServiceOptionRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service option")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Service option updated successfully")
}

// UpdateServiceOptionStatus toggles a service option.
// @Summary Activate or deactivate a service option
// @Tags ServiceOption
// @Accept json
// @Produce json
// @Param id path string true "Service option ID"
// @Param request body dto.UpdateStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/service-options/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateServiceOptionStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateServiceOptionStatus")
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

	response.WithMessage(w, http.StatusOK, "Service option status updated successfully")
}

// DeleteServiceOption deletes a service option.
// @Summary Delete a service option
// @Tags ServiceOption
// @Produce json
// @Param id path string true "Service option ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/service-options/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteServiceOption(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteServiceOption")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service option")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Service option deleted successfully")
}

func workspaceFilter(r *http.Request) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldWorkspaceID,
		Operator: gDto.FilterOperatorEq,
		Value:    r.URL.Query().Get(constant.RequestParamWorkspaceID),
		Table:    model.TableName,
	})

	return filterGroup
}
