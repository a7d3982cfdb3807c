package workspace

import (
	"net/http"

	"cowork/infras/otel"
	"cowork/infras/s3"
	"cowork/internal/domains/workspace/model"
	"cowork/internal/domains/workspace/model/dto"
	"cowork/internal/domains/workspace/service"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	"cowork/shared/validator"
	"cowork/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Workspace
	otel    otel.Otel
}

func New(service service.Workspace, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/workspaces", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetWorkspaces)
		routerGroup.Get("/types", handler.GetWorkspaceTypes)
		routerGroup.Get("/{id}", handler.GetWorkspaceByID)
	})

	router.Route("/admin/workspaces", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAllWorkspaces)
		routerGroup.Post("/", handler.CreateWorkspace)
		routerGroup.Get("/{id}", handler.GetWorkspaceForAdmin)
		routerGroup.Put("/{id}", handler.UpdateWorkspace)
		routerGroup.Patch("/{id}/status", handler.UpdateWorkspaceStatus)
		routerGroup.Delete("/{id}", handler.DeleteWorkspace)
		routerGroup.Post("/{id}/gallery", handler.UploadGalleryImage)
		routerGroup.Delete("/{id}/gallery", handler.DeleteGalleryImage)
	})
}

// GetWorkspaces lists active workspaces.
// @Summary List workspaces
// @Description Active workspaces filtered by type, city, location and name.
// @Tags Workspace
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param workspace_type query string false "Filter by workspace type"
// @Param city query string false "Filter by city"
// @Param location_id query string false "Filter by location"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetWorkspacesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/workspaces [get]
func (handler *Handler) GetWorkspaces(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkspaces")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := searchFilter(r)
	filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
		Field:    model.FieldIsActive,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    model.TableName,
	})

	workspaces, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get workspaces")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, workspaces)
}

// GetWorkspaceTypes returns the workspace type catalog with the durations each type offers.
// @Summary Workspace types
// @Tags Workspace
// @Produce json
// @Success 200 {object} response.Data[[]dto.WorkspaceTypeResponse]
// @Router /v1/workspaces/types [get]
func (handler *Handler) GetWorkspaceTypes(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, dto.WorkspaceTypes())
}

// GetWorkspaceByID returns an active workspace.
// @Summary Get a workspace
// @Tags Workspace
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} response.Data[dto.WorkspaceResponse]
// @Failure 404 {object} response.Error
// @Router /v1/workspaces/{id} [get]
func (handler *Handler) GetWorkspaceByID(w http.ResponseWriter, r *http.Request) {
	handler.getWorkspace(w, r, false)
}

// GetAllWorkspaces lists every workspace for the admin manager.
// @Summary List workspaces (admin)
// @Tags Workspace
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param is_active query boolean false "Filter by status"
// @Success 200 {object} response.Data[dto.GetWorkspacesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/workspaces [get]
// @Security BearerAuth
func (handler *Handler) GetAllWorkspaces(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllWorkspaces")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := searchFilter(r)

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	workspaces, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get workspaces")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, workspaces)
}

// GetWorkspaceForAdmin returns a workspace whatever its status.
// @Summary Get a workspace (admin)
// @Tags Workspace
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} response.Data[dto.WorkspaceResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/workspaces/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetWorkspaceForAdmin(w http.ResponseWriter, r *http.Request) {
	handler.getWorkspace(w, r, true)
}

func (handler *Handler) getWorkspace(w http.ResponseWriter, r *http.Request, includeInactive bool) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkspace")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	workspace, err := handler.service.Get(ctx, id, includeInactive)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get workspace")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, workspace)
}

// CreateWorkspace creates a workspace.
// @Summary Create a workspace
// @Tags Workspace
// @Accept json
// @Produce json
// @Param request body dto.SaveWorkspaceRequest true "Workspace"
// @Success 201 {object} response.Data[dto.WorkspaceResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/workspaces [post]
// @Security BearerAuth
func (handler *Handler) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateWorkspace")
	defer scope.End()

	var req dto.SaveWorkspaceRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	workspace, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create workspace")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Workspace created " + workspace.ID)

	response.WithJSON(w, http.StatusCreated, workspace)
}

// UpdateWorkspace overwrites a workspace with the submitted record.
// @Summary Save a workspace
// @Tags Workspace
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param request body dto.SaveWorkspaceRequest true "Workspace"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/workspaces/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateWorkspace")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.SaveWorkspaceRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update workspace")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Workspace updated successfully")
}

// UpdateWorkspaceStatus toggles whether a workspace is listed.
// @Summary Activate or deactivate a workspace
// @Tags Workspace
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param request body dto.UpdateStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/workspaces/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateWorkspaceStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateWorkspaceStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateStatusRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, *req.IsActive); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update workspace status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Workspace status updated successfully")
}

// DeleteWorkspace deletes a workspace.
// @Summary Delete a workspace
// @Tags Workspace
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/workspaces/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteWorkspace")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete workspace")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Workspace deleted successfully")
}

// UploadGalleryImage stores an image and appends it to the gallery.
// @Summary Upload a gallery image
// @Tags Workspace
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Workspace ID"
// @Param file formData file true "Image"
// @Success 201 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/workspaces/{id}/gallery [post]
// @Security BearerAuth
func (handler *Handler) UploadGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadGalleryImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("file is required"))

		return
	}
	defer file.Close()

	req := gDto.UploadImageRequest{File: fileHeader}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	url, err := handler.service.AddGalleryImage(ctx, id, s3.Object{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(constant.RequestHeaderContentType),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload gallery image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, url)
}

// DeleteGalleryImage removes an image from the gallery and from storage.
// @Summary Delete a gallery image
// @Tags Workspace
// @Produce json
// @Param id path string true "Workspace ID"
// @Param url query string true "Image URL"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/workspaces/{id}/gallery [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGalleryImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	url := r.URL.Query().Get("url")
	if url == constant.Empty {
		response.WithError(w, failure.BadRequestFromString("url is required"))

		return
	}

	if err := handler.service.RemoveGalleryImage(ctx, id, url); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete gallery image")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Image deleted successfully")
}

func searchFilter(r *http.Request) gDto.FilterGroup {
	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.AppendIfPresent(
		gDto.Filter{
			Field:    model.FieldWorkspaceType,
			Operator: gDto.FilterOperatorEq,
			Value:    query.Get(model.FieldWorkspaceType),
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldCity,
			Operator: gDto.FilterOperatorLike,
			Value:    query.Get(model.FieldCity),
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldLocationID,
			Operator: gDto.FilterOperatorEq,
			Value:    query.Get(model.FieldLocationID),
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    query.Get(model.FieldName),
			Table:    model.TableName,
		},
	)

	return filterGroup
}
