package dto

import "encoding/json"

const (
	FunctionActionList   = "list"
	FunctionActionUpdate = "update"
	FunctionActionDelete = "delete"
)

// FunctionRequest is the body of an admin remote procedure call. An empty action lists records.
type FunctionRequest struct {
	Action  string          `json:"action"  validate:"omitempty,oneof=list update delete"`
	Payload json.RawMessage `json:"payload" swaggertype:"object"`
}

// ListPayload pages through records, optionally narrowed to one status.
type ListPayload struct {
	Page   int    `json:"page"   validate:"omitempty,min=1"`
	Limit  int    `json:"limit"  validate:"omitempty,min=1,max=500"`
	Status string `json:"status" validate:"omitempty,max=20"`
}

type DeletePayload struct {
	ID string `json:"id" validate:"required,uuid"`
}

// Body returns the payload, treating a missing one as an empty object.
func (r *FunctionRequest) Body() []byte {
	if len(r.Payload) == 0 || string(r.Payload) == "null" {
		return []byte("{}")
	}

	return r.Payload
}
