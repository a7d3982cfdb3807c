package requirement

import (
	"bytes"
	"fmt"
	"net/http"

	"cowork/infras/otel"
	"cowork/internal/domains/requirement/model"
	"cowork/internal/domains/requirement/model/dto"
	"cowork/internal/domains/requirement/service"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/timezone"
	"cowork/shared/validator"
	"cowork/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Requirement
	otel    otel.Otel
}

func New(service service.Requirement, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/requirements", handler.CreateRequirement)
	router.Post("/functions/admin-requirements", handler.AdminRequirements)

	router.Route("/admin/requirements", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRequirements)
		routerGroup.Get("/export", handler.ExportRequirements)
		routerGroup.Get("/{id}", handler.GetRequirementByID)
		routerGroup.Put("/{id}", handler.UpdateRequirement)
		routerGroup.Patch("/{id}/status", handler.UpdateRequirementStatus)
		routerGroup.Delete("/{id}", handler.DeleteRequirement)
	})
}

// CreateRequirement stores a public requirement.
// @Summary Submit a requirement
// @Description Name, email and phone are required. Blank optional fields are stored as null.
// @Tags Requirement
// @Accept json
// @Produce json
// @Param request body dto.SaveRequirementRequest true "Requirement"
// @Success 201 {object} response.Data[dto.RequirementResponse]
// @Failure 400 {object} response.Error
// @Router /v1/requirements [post]
func (handler *Handler) CreateRequirement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequirement")
	defer scope.End()

	var req dto.SaveRequirementRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	requirement, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create requirement")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, requirement)
}

// AdminRequirements dispatches an admin remote procedure call.
// @Summary Admin requirements function
// @Description action "update" takes {id, ...fields}, "delete" takes {id}, anything else lists with {page, limit, status}.
// @Tags Requirement
// @Accept json
// @Produce json
// @Param request body gDto.FunctionRequest true "Action and payload"
// @Success 200 {object} response.Data[dto.GetRequirementsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/functions/admin-requirements [post]
// @Security BearerAuth
func (handler *Handler) AdminRequirements(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminRequirements")
	defer scope.End()

	var req gDto.FunctionRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	switch req.Action {
	case gDto.FunctionActionUpdate:
		var payload dto.UpdatePayload

		if err := validator.Validate(bytes.NewReader(req.Body()), &payload); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		if err := handler.service.Update(ctx, payload.SaveRequirementRequest, payload.ID); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		response.WithMessage(w, http.StatusOK, "Requirement updated successfully")
	case gDto.FunctionActionDelete:
		var payload gDto.DeletePayload

		if err := validator.Validate(bytes.NewReader(req.Body()), &payload); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		if err := handler.service.Delete(ctx, payload.ID); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		response.WithMessage(w, http.StatusOK, "Requirement deleted successfully")
	default:
		var payload gDto.ListPayload

		if err := validator.Validate(bytes.NewReader(req.Body()), &payload); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		queryParams := gDto.QueryParams{
			Page:  max(payload.Page, constant.DefaultValuePage),
			Limit: payload.Limit,
		}
		if queryParams.Limit == 0 {
			queryParams.Limit = constant.DefaultValueLimit
		}

		filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
		filterGroup.AppendIfPresent(statusFilter(payload.Status))

		handler.list(w, r.WithContext(ctx), queryParams, filterGroup)
	}
}

// GetRequirements lists requirements.
// @Summary List requirements (admin)
// @Tags Requirement
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param city query string false "Filter by city"
// @Param company query string false "Filter by company"
// @Param email query string false "Filter by email"
// @Success 200 {object} response.Data[dto.GetRequirementsResponse]
// @Router /v1/admin/requirements [get]
// @Security BearerAuth
func (handler *Handler) GetRequirements(w http.ResponseWriter, r *http.Request) {
	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	handler.list(w, r, queryParams, adminFilter(r))
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request, queryParams gDto.QueryParams, filterGroup gDto.FilterGroup) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequirements")
	defer scope.End()

	requirements, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get requirements")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, requirements)
}

// ExportRequirements downloads the filtered requirements as a spreadsheet.
// @Summary Export requirements (admin)
// @Tags Requirement
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Filter by status"
// @Param city query string false "Filter by city"
// @Param company query string false "Filter by company"
// @Param email query string false "Filter by email"
// @Success 200 {file} file
// @Router /v1/admin/requirements/export [get]
// @Security BearerAuth
func (handler *Handler) ExportRequirements(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportRequirements")
	defer scope.End()

	data, err := handler.service.Export(ctx, adminFilter(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export requirements")

		response.WithError(w, err)

		return
	}

	filename := fmt.Sprintf("requirements-%s.xlsx", timezone.Now().Format(constant.DayFormat))
	response.WithAttachment(w, constant.ContentTypeXLSX, filename, data)
}

// GetRequirementByID returns a requirement.
// @Summary Get a requirement (admin)
// @Tags Requirement
// @Produce json
// @Param id path string true "Requirement ID"
// @Success 200 {object} response.Data[dto.RequirementResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/requirements/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRequirementByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequirementByID")
	defer scope.End()

	requirement, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, requirement)
}

// UpdateRequirement saves a requirement.
// @Summary Save a requirement (admin)
// @Tags Requirement
// @Accept json
// @Produce json
// @Param id path string true "Requirement ID"
// @Param request body dto.SaveRequirementRequest true "Requirement"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/requirements/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRequirement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRequirement")
	defer scope.End()

	var req dto.SaveRequirementRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update requirement")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Requirement updated successfully")
}

// UpdateRequirementStatus moves a requirement through its workflow.
// @Summary Update requirement status (admin)
// @Tags Requirement
// @Accept json
// @Produce json
// @Param id path string true "Requirement ID"
// @Param request body dto.UpdateStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/requirements/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRequirementStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRequirementStatus")
	defer scope.End()

	var req dto.UpdateStatusRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, chi.URLParam(r, constant.RequestParamID), req.Status); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Requirement status updated successfully")
}

// DeleteRequirement removes a requirement.
// @Summary Delete a requirement (admin)
// @Tags Requirement
// @Produce json
// @Param id path string true "Requirement ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/requirements/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRequirement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRequirement")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete requirement")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Requirement deleted successfully")
}

func statusFilter(status string) gDto.Filter {
	return gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: status, Table: model.TableName}
}

func adminFilter(r *http.Request) gDto.FilterGroup {
	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.AppendIfPresent(
		statusFilter(query.Get(model.FieldStatus)),
		gDto.Filter{Field: model.FieldCity, Operator: gDto.FilterOperatorLike, Value: query.Get(model.FieldCity), Table: model.TableName},
		gDto.Filter{Field: model.FieldCompany, Operator: gDto.FilterOperatorLike, Value: query.Get(model.FieldCompany), Table: model.TableName},
		gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorLike, Value: query.Get(model.FieldEmail), Table: model.TableName},
	)

	return filterGroup
}
