package coupon

import (
	"net/http"

	"cowork/infras/otel"
	"cowork/internal/domains/coupon/model"
	"cowork/internal/domains/coupon/model/dto"
	"cowork/internal/domains/coupon/service"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/validator"
	"cowork/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Coupon
	otel    otel.Otel
}

func New(service service.Coupon, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/coupons/apply", handler.ApplyCoupon)

	router.Route("/admin/coupons", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCoupons)
		routerGroup.Post("/", handler.CreateCoupon)
		routerGroup.Get("/{id}", handler.GetCouponByID)
		routerGroup.Put("/{id}", handler.UpdateCoupon)
		routerGroup.Patch("/{id}/status", handler.UpdateCouponStatus)
		routerGroup.Delete("/{id}", handler.DeleteCoupon)
	})
}

// ApplyCoupon prices a coupon code against a subtotal.
// @Summary Apply a coupon
// @Description Validates the code and returns the discount. A new code replaces any earlier one on the client.
// @Tags Coupon
// @Accept json
// @Produce json
// @Param request body dto.ApplyCouponRequest true "Code and subtotal"
// @Success 200 {object} response.Data[dto.Resolution]
// @Failure 400 {object} response.Error "Invalid coupon, expired coupon or minimum order not met"
// @Router /v1/coupons/apply [post]
func (handler *Handler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApplyCoupon")
	defer scope.End()

	var req dto.ApplyCouponRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	resolution, err := handler.service.Resolve(ctx, req.Code, req.Subtotal)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("code", req.Code).Msg("coupon rejected")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, resolution)
}

// GetCoupons lists every coupon.
// @Summary List coupons (admin)
// @Tags Coupon
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param code query string false "Filter by code"
// @Param is_active query boolean false "Filter by status"
// @Success 200 {object} response.Data[dto.GetCouponsResponse]
// @Router /v1/admin/coupons [get]
// @Security BearerAuth
func (handler *Handler) GetCoupons(w http.ResponseWriter, r *http.Request) {
	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := codeFilter(r)

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
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCoupons")
	defer scope.End()

	coupons, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get coupons")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, coupons)
}

// GetCouponByID returns a coupon.
// @Summary Get a coupon
// @Tags Coupon
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} response.Data[dto.CouponResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/coupons/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCouponByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCouponByID")
	defer scope.End()

	coupon, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, coupon)
}

// CreateCoupon creates a coupon.
// @Summary Create a coupon
// @Tags Coupon
// @Accept json
// @Produce json
// @Param request body dto.SaveCouponRequest true "Coupon"
// @Success 201 {object} response.Data[dto.CouponResponse]
// @Failure 400 {object} response.Error
// @Router /v1/admin/coupons [post]
// @Security BearerAuth
func (handler *Handler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCoupon")
	defer scope.End()

	var req dto.SaveCouponRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	coupon, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create coupon")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, coupon)
}

// UpdateCoupon saves a coupon.
// @Summary Save a coupon
// @Tags Coupon
// @Accept json
// @Produce json
// @Param id path string true "Coupon ID"
// @Param request body dto.SaveCouponRequest true "Coupon"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/coupons/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCoupon")
	defer scope.End()

	var req dto.SaveCouponRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update coupon")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Coupon updated successfully")
}

// UpdateCouponStatus toggles a coupon.
// @Summary Activate or deactivate a coupon
// @Tags Coupon
// @Accept json
// @Produce json
// @Param id path string true "Coupon ID"
// @Param request body dto.UpdateStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/coupons/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCouponStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCouponStatus")
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

	response.WithMessage(w, http.StatusOK, "Coupon status updated successfully")
}

// DeleteCoupon deletes a coupon.
// @Summary Delete a coupon
// @Tags Coupon
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/coupons/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCoupon")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete coupon")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Coupon deleted successfully")
}

func codeFilter(r *http.Request) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldCode,
		Operator: gDto.FilterOperatorLike,
		Value:    r.URL.Query().Get(model.FieldCode),
		Table:    model.TableName,
	})

	return filterGroup
}
