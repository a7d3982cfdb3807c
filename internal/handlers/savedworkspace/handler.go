package savedworkspace

import (
	"net/http"

	"cowork/infras/otel"
	"cowork/internal/domains/savedworkspace/model/dto"
	"cowork/internal/domains/savedworkspace/service"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/validator"
	"cowork/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.SavedWorkspace
	otel    otel.Otel
}

func New(service service.SavedWorkspace, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/saved-workspaces", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSavedWorkspaces)
		routerGroup.Post("/", handler.SaveWorkspace)
		routerGroup.Delete("/{workspace_id}", handler.RemoveSavedWorkspace)
	})
}

// GetSavedWorkspaces lists the caller's saved workspaces.
// @Summary List my saved workspaces
// @Tags SavedWorkspace
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetSavedWorkspacesResponse]
// @Failure 401 {object} response.Error
// @Router /v1/saved-workspaces [get]
// @Security BearerAuth
func (handler *Handler) GetSavedWorkspaces(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSavedWorkspaces")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	saved, err := handler.service.GetMine(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get saved workspaces")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, saved)
}

// SaveWorkspace adds a workspace to the caller's list. Saving twice is not an error.
// @Summary Save a workspace
// @Tags SavedWorkspace
// @Accept json
// @Produce json
// @Param request body dto.SaveWorkspaceRequest true "Workspace"
// @Success 200 {object} response.Data[dto.SavedWorkspaceResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/saved-workspaces [post]
// @Security BearerAuth
func (handler *Handler) SaveWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveWorkspace")
	defer scope.End()

	var req dto.SaveWorkspaceRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	saved, err := handler.service.Save(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save workspace")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, saved)
}

// RemoveSavedWorkspace removes a workspace from the caller's list.
// @Summary Remove a saved workspace
// @Tags SavedWorkspace
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Router /v1/saved-workspaces/{workspace_id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveSavedWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveSavedWorkspace")
	defer scope.End()

	if err := handler.service.Remove(ctx, chi.URLParam(r, constant.RequestParamWorkspaceID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove saved workspace")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Workspace removed from saved list")
}
