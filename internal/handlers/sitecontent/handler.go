package sitecontent

import (
	"net/http"

	"cowork/infras/otel"
	"cowork/infras/s3"
	"cowork/internal/domains/sitecontent/model"
	"cowork/internal/domains/sitecontent/model/dto"
	"cowork/internal/domains/sitecontent/service"
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
	service service.SiteContent
	otel    otel.Otel
}

func New(service service.SiteContent, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/site-content", handler.GetPublicSiteContent)

	router.Route("/admin/site-content", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSiteContents)
		routerGroup.Post("/", handler.CreateSiteContent)
		routerGroup.Post("/upload", handler.UploadImage)
		routerGroup.Delete("/images", handler.DeleteImages)
		routerGroup.Get("/{id}", handler.GetSiteContentByID)
		routerGroup.Put("/{id}", handler.UpdateSiteContent)
		routerGroup.Patch("/{id}/status", handler.UpdateSiteContentStatus)
		routerGroup.Delete("/{id}", handler.DeleteSiteContent)
	})
}

// GetPublicSiteContent lists the active content blocks, optionally for one section.
// @Summary List site content
// @Tags SiteContent
// @Produce json
// @Param section query string false "Section name"
// @Success 200 {object} response.Data[dto.GetSiteContentsResponse]
// @Router /v1/site-content [get]
func (handler *Handler) GetPublicSiteContent(w http.ResponseWriter, r *http.Request) {
	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	filterGroup := sectionFilter(r)
	filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
		Field:    model.FieldIsActive,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    model.TableName,
	})

	handler.list(w, r, queryParams, filterGroup)
}

// GetSiteContents lists every content block.
// @Summary List site content (admin)
// @Tags SiteContent
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param section query string false "Section name"
// @Param is_active query boolean false "Filter by status"
// @Success 200 {object} response.Data[dto.GetSiteContentsResponse]
// @Router /v1/admin/site-content [get]
// @Security BearerAuth
func (handler *Handler) GetSiteContents(w http.ResponseWriter, r *http.Request) {
	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := sectionFilter(r)

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
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSiteContents")
	defer scope.End()

	contents, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get site content")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, contents)
}

// GetSiteContentByID returns a content block.
// @Summary Get site content (admin)
// @Tags SiteContent
// @Produce json
// @Param id path string true "Site content ID"
// @Success 200 {object} response.Data[dto.SiteContentResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/site-content/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetSiteContentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSiteContentByID")
	defer scope.End()

	content, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, content)
}

// CreateSiteContent creates a content block.
// @Summary Create site content (admin)
// @Tags SiteContent
// @Accept json
// @Produce json
// @Param request body dto.SaveSiteContentRequest true "Site content"
// @Success 201 {object} response.Data[dto.SiteContentResponse]
// @Failure 400 {object} response.Error
// @Router /v1/admin/site-content [post]
// @Security BearerAuth
func (handler *Handler) CreateSiteContent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSiteContent")
	defer scope.End()

	var req dto.SaveSiteContentRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	content, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create site content")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, content)
}

// UpdateSiteContent saves a content block.
// @Summary Save site content (admin)
// @Tags SiteContent
// @Accept json
// @Produce json
// @Param id path string true "Site content ID"
// @Param request body dto.SaveSiteContentRequest true "Site content"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/site-content/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateSiteContent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSiteContent")
	defer scope.End()

	var req dto.SaveSiteContentRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update site content")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Site content updated successfully")
}

// UpdateSiteContentStatus shows or hides a content block.
// @Summary Activate or deactivate site content (admin)
// @Tags SiteContent
// @Accept json
// @Produce json
// @Param id path string true "Site content ID"
// @Param request body dto.UpdateStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/site-content/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSiteContentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSiteContentStatus")
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

	response.WithMessage(w, http.StatusOK, "Site content status updated successfully")
}

// DeleteSiteContent deletes a content block and its images.
// @Summary Delete site content (admin)
// @Tags SiteContent
// @Produce json
// @Param id path string true "Site content ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/site-content/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSiteContent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSiteContent")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete site content")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Site content deleted successfully")
}

// UploadImage stores an image and returns its public URL.
// @Summary Upload a site image (admin)
// @Tags SiteContent
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 201 {object} response.Data[dto.UploadImageResponse]
// @Failure 400 {object} response.Error
// @Router /v1/admin/site-content/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

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

	res, err := handler.service.UploadImage(ctx, s3.Object{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(constant.RequestHeaderContentType),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload site image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// DeleteImages removes uploaded images from storage.
// @Summary Delete site images (admin)
// @Tags SiteContent
// @Accept json
// @Produce json
// @Param request body dto.DeleteImagesRequest true "Image URLs"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/admin/site-content/images [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImages")
	defer scope.End()

	var req dto.DeleteImagesRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.DeleteImages(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete site images")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Images deleted successfully")
}

func sectionFilter(r *http.Request) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldSection,
		Operator: gDto.FilterOperatorEq,
		Value:    r.URL.Query().Get(model.FieldSection),
		Table:    model.TableName,
	})

	return filterGroup
}
