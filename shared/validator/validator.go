package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"cowork/shared/constant"
	"cowork/shared/failure"

	val "github.com/go-playground/validator/v10"
)

const (
	dataURIPrefix = "data:"
	dataURIMarker = ";base64,"
	bytesPerMB    = 1024 * 1024
)

var validate *val.Validate

// contentType returns the declared type of an uploaded file or a base64 data URI.
func contentType(value any) string {
	switch file := value.(type) {
	case multipart.FileHeader:
		return file.Header.Get(constant.RequestHeaderContentType)
	case *multipart.FileHeader:
		if file == nil {
			return constant.Empty
		}

		return file.Header.Get(constant.RequestHeaderContentType)
	case string:
		end := strings.Index(file, dataURIMarker)
		if !strings.HasPrefix(file, dataURIPrefix) || end < len(dataURIPrefix) {
			return constant.Empty
		}

		return file[len(dataURIPrefix):end]
	}

	return constant.Empty
}

func validateMimetypes(field val.FieldLevel) bool {
	declared := contentType(field.Field().Interface())
	if declared == constant.Empty {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), declared)
}

func validateFileSize(field val.FieldLevel) bool {
	var size int64

	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		size = file.Size
	case *multipart.FileHeader:
		if file != nil {
			size = file.Size
		}
	case string:
		size = int64(len(file))
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return float64(size) <= maxSizeMB*bytesPerMB
}

func validateNotBlank(field val.FieldLevel) bool {
	switch value := field.Field().Interface().(type) {
	case string:
		return strings.TrimSpace(value) != constant.Empty
	case *string:
		return value != nil && strings.TrimSpace(*value) != constant.Empty
	}

	return !field.Field().IsZero()
}

// jsonName reports fields by their wire name so messages match the request body.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return constant.Empty
	case constant.Empty:
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	rules := map[string]val.Func{
		"notblank":    validateNotBlank,
		"mimetypes":   validateMimetypes,
		"maxfilesize": validateFileSize,
	}

	for tag, rule := range rules {
		if err := validate.RegisterValidation(tag, rule); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body from r into data and validates the result.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	err := json.NewDecoder(r).Decode(data)
	if errors.Is(err, io.EOF) {
		return failure.BadRequestFromString("request body is required") //nolint:wrapcheck
	}

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
