package dto

import "mime/multipart"

// UploadImageRequest validates an image posted as multipart form data. Size is in megabytes.
type UploadImageRequest struct {
	File *multipart.FileHeader `swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
}
