package enquiry

import (
	"bytes"
	"fmt"
	"net/http"

	"cowork/infras/otel"
	"cowork/internal/domains/enquiry/model"
	"cowork/internal/domains/enquiry/model/dto"
	"cowork/internal/domains/enquiry/service"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/timezone"
	"cowork/shared/validator"
	"cowork/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Enquiry
	otel    otel.Otel
}

func New(service service.Enquiry, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/enquiries", handler.CreateEnquiry)
	router.Post("/functions/admin-enquiries", handler.AdminEnquiries)

	router.Route("/admin/enquiries", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetEnquiries)
		routerGroup.Get("/export", handler.ExportEnquiries)
		routerGroup.Get("/{id}", handler.GetEnquiryByID)
		routerGroup.Put("/{id}", handler.UpdateEnquiry)
		routerGroup.Patch("/{id}/status", handler.UpdateEnquiryStatus)
		routerGroup.Delete("/{id}", handler.DeleteEnquiry)
	})
}

// CreateEnquiry stores a public enquiry.
// @Summary Submit an enquiry
// @Description Name, email, phone and city are required. Blank optional fields are stored as null.
// @Tags Enquiry
// @Accept json
// @Produce json
// @Param request body dto.SaveEnquiryRequest true "Enquiry"
// @Success 201 {object} response.Data[dto.EnquiryResponse]
// @Failure 400 {object} response.Error
// @Router /v1/enquiries [post]
func (handler *Handler) CreateEnquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEnquiry")
	defer scope.End()

	var req dto.SaveEnquiryRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	enquiry, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create enquiry")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, enquiry)
}

// AdminEnquiries dispatches an admin remote procedure call.
// @Summary Admin enquiries function
// @Description action "update" takes {id, ...fields}, "delete" takes {id}, anything else lists with {page, limit, status}.
// @Tags Enquiry
// @Accept json
// @Produce json
// @Param request body gDto.FunctionRequest true "Action and payload"
// @Success 200 {object} response.Data[dto.GetEnquiriesResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/functions/admin-enquiries [post]
// @Security BearerAuth
func (handler *Handler) AdminEnquiries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminEnquiries")
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

		if err := handler.service.Update(ctx, payload.SaveEnquiryRequest, payload.ID); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		response.WithMessage(w, http.StatusOK, "Enquiry updated successfully")
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

		response.WithMessage(w, http.StatusOK, "Enquiry deleted successfully")
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

// GetEnquiries lists enquiries.
// @Summary List enquiries (admin)
// @Tags Enquiry
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param city query string false "Filter by city"
// @Param email query string false "Filter by email"
// @Success 200 {object} response.Data[dto.GetEnquiriesResponse]
// @Router /v1/admin/enquiries [get]
// @Security BearerAuth
func (handler *Handler) GetEnquiries(w http.ResponseWriter, r *http.Request) {
	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	handler.list(w, r, queryParams, adminFilter(r))
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request, queryParams gDto.QueryParams, filterGroup gDto.FilterGroup) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEnquiries")
	defer scope.End()

	enquiries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get enquiries")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, enquiries)
}

// ExportEnquiries downloads the filtered enquiries as a spreadsheet.
// @Summary Export enquiries (admin)
// @Tags Enquiry
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Filter by status"
// @Param city query string false "Filter by city"
// @Param email query string false "Filter by email"
// @Success 200 {file} file
// @Router /v1/admin/enquiries/export [get]
// @Security BearerAuth
func (handler *Handler) ExportEnquiries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportEnquiries")
	defer scope.End()

	data, err := handler.service.Export(ctx, adminFilter(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export enquiries")

		response.WithError(w, err)

		return
	}

	filename := fmt.Sprintf("enquiries-%s.xlsx", timezone.Now().Format(constant.DayFormat))
	response.WithAttachment(w, constant.ContentTypeXLSX, filename, data)
}

// GetEnquiryByID returns an enquiry.
// @Summary Get an enquiry (admin)
// @Tags Enquiry
// @Produce json
// @Param id path string true "Enquiry ID"
// @Success 200 {object} response.Data[dto.EnquiryResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/enquiries/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEnquiryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEnquiryByID")
	defer scope.End()

	enquiry, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, enquiry)
}

// UpdateEnquiry saves an enquiry.
// @Summary Save an enquiry (admin)
// @Tags Enquiry
// @Accept json
// @Produce json
// @Param id path string true "Enquiry ID"
// @Param request body dto.SaveEnquiryRequest true "Enquiry"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/enquiries/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateEnquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEnquiry")
	defer scope.End()

	var req dto.SaveEnquiryRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update enquiry")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Enquiry updated successfully")
}

// UpdateEnquiryStatus moves an enquiry through its workflow.
// @Summary Update enquiry status (admin)
// @Tags Enquiry
// @Accept json
// @Produce json
// @Param id path string true "Enquiry ID"
// @Param request body dto.UpdateStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/enquiries/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEnquiryStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEnquiryStatus")
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

	response.WithMessage(w, http.StatusOK, "Enquiry status updated successfully")
}

// DeleteEnquiry removes an enquiry.
// @Summary Delete an enquiry (admin)
// @Tags Enquiry
// @Produce json
// @Param id path string true "Enquiry ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/enquiries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEnquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEnquiry")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete enquiry")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Enquiry deleted successfully")
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
		gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorLike, Value: query.Get(model.FieldEmail), Table: model.TableName},
	)

	return filterGroup
}
