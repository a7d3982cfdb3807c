package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"cowork/shared/failure"
	"cowork/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enquiryForm struct {
	Name      string `json:"name"       validate:"notblank"`
	Email     string `json:"email"      validate:"required,email"`
	Seats     int    `json:"seats"      validate:"gte=1,lte=500"`
	Type      string `json:"type"       validate:"oneof=desk office meeting"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

func validForm() enquiryForm {
	return enquiryForm{
		Name:      "Asha",
		Email:     "asha@example.com",
		Seats:     4,
		Type:      "desk",
		StartDate: "2025-01-10",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*enquiryForm)
		wantErr string
	}{
		{
			name:   "valid form",
			mutate: func(*enquiryForm) {},
		},
		{
			name:    "whitespace name is blank",
			mutate:  func(f *enquiryForm) { f.Name = "   " },
			wantErr: "name is required",
		},
		{
			name:    "invalid email",
			mutate:  func(f *enquiryForm) { f.Email = "asha" },
			wantErr: "email must be a valid email address",
		},
		{
			name:    "seats out of range",
			mutate:  func(f *enquiryForm) { f.Seats = 0 },
			wantErr: "seats must be greater than or equal to 1",
		},
		{
			name:    "unknown type",
			mutate:  func(f *enquiryForm) { f.Type = "locker" },
			wantErr: "type must be one of desk office meeting",
		},
		{
			name:    "malformed date",
			mutate:  func(f *enquiryForm) { f.StartDate = "10/01/2025" },
			wantErr: "start_date must be a date formatted as 2006-01-02",
		},
		{
			name: "first failing field wins",
			mutate: func(f *enquiryForm) {
				f.Name = ""
				f.Email = "nope"
			},
			wantErr: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := validator.ValidateStruct(&form)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid body",
			body: `{"name":"Asha","email":"asha@example.com","seats":2,"type":"office","start_date":"2025-02-01"}`,
		},
		{
			name:    "empty body",
			body:    "",
			wantErr: "request body is required",
		},
		{
			name:    "malformed body",
			body:    `{"name":`,
			wantErr: "failed to decode request body",
		},
		{
			name:    "empty object fails validation",
			body:    `{}`,
			wantErr: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var form enquiryForm

			err := validator.Validate(strings.NewReader(tt.body), &form)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "office", form.Type)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("123456", "numeric,len=6"))
	assert.Error(t, validator.ValidateVar("12a456", "numeric,len=6"))
	assert.Error(t, validator.ValidateVar("12345", "numeric,len=6"))
	assert.NoError(t, validator.ValidateVar("  x ", "notblank"))
	assert.Error(t, validator.ValidateVar(" \t", "notblank"))
}

type imagePayload struct {
	Image string `json:"image" validate:"mimetypes=image/png image/jpeg,maxfilesize=0.0001"`
}

func TestDataURIValidation(t *testing.T) {
	tests := []struct {
		name    string
		image   string
		wantErr string
	}{
		{
			name:  "small png",
			image: "data:image/png;base64,iVBORw0KGgo=",
		},
		{
			name:    "unsupported type",
			image:   "data:image/gif;base64,R0lGODlh",
			wantErr: "image must be one of image/png image/jpeg",
		},
		{
			name:    "not a data uri",
			image:   "iVBORw0KGgo=",
			wantErr: "image must be one of image/png image/jpeg",
		},
		{
			name:    "too large",
			image:   "data:image/jpeg;base64," + strings.Repeat("A", 200),
			wantErr: "image must not exceed 0.0001 MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&imagePayload{Image: tt.image})

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

type uploadPayload struct {
	File *multipart.FileHeader `validate:"required,mimetypes=image/png image/webp,maxfilesize=1"`
}

func TestMultipartValidation(t *testing.T) {
	header := func(contentType string, size int64) *multipart.FileHeader {
		return &multipart.FileHeader{
			Filename: "photo",
			Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
			Size:     size,
		}
	}

	assert.NoError(t, validator.ValidateStruct(&uploadPayload{File: header("image/webp", 512)}))
	assert.Error(t, validator.ValidateStruct(&uploadPayload{File: header("application/pdf", 512)}))
	assert.Error(t, validator.ValidateStruct(&uploadPayload{File: header("image/png", 2<<20)}))
	assert.Error(t, validator.ValidateStruct(&uploadPayload{}))
}
