package profile

import (
	"net/http"

	"cowork/infras/otel"
	"cowork/internal/domains/profile/model/dto"
	"cowork/internal/domains/profile/service"
	"cowork/shared/constant"
	"cowork/shared/validator"
	"cowork/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Profile
	otel    otel.Otel
}

func New(service service.Profile, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/profile", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetProfile)
		routerGroup.Put("/", handler.SaveProfile)
	})
}

// GetProfile returns the caller's profile.
// @Summary Get my profile
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Data[dto.ProfileResponse]
// @Failure 401 {object} response.Error
// @Router /v1/profile [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	profile, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, profile)
}

// SaveProfile creates or replaces the caller's profile.
// @Summary Save my profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.SaveProfileRequest true "Profile"
// @Success 200 {object} response.Data[dto.ProfileResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/profile [put]
// @Security BearerAuth
func (handler *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveProfile")
	defer scope.End()

	var req dto.SaveProfileRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	profile, err := handler.service.Save(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, profile)
}
