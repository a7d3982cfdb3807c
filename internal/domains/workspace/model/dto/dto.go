package dto

import (
	"encoding/json"
	"fmt"

	"cowork/internal/domains/pricing"
	"cowork/internal/domains/workspace/model"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	gModel "cowork/shared/model"
	"cowork/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
)

// DayTiming is the opening window of one weekday, times formatted HH:MM.
type DayTiming struct {
	Open   string `json:"open,omitempty"  validate:"omitempty,datetime=15:04"`
	Close  string `json:"close,omitempty" validate:"omitempty,datetime=15:04"`
	Closed bool   `json:"closed"`
}

// NearbyPlace is a point of interest close to the workspace.
type NearbyPlace struct {
	Name     string `json:"name"               validate:"required,max=150"`
	Distance string `json:"distance,omitempty" validate:"omitempty,max=50"`
}

// SaveWorkspaceRequest is the full record assembled by the admin form.
type SaveWorkspaceRequest struct {
	Name           string                   `json:"name"             validate:"notblank,max=150"`
	WorkspaceType  string                   `json:"workspace_type"   validate:"required,oneof=coworking serviced_office private_office meeting_room training_room virtual_office day_office"`
	Description    string                   `json:"description"      validate:"omitempty,max=5000"`
	AmountPerMonth float64                  `json:"amount_per_month" validate:"gte=0"`
	Capacity       *int                     `json:"capacity"         validate:"omitempty,gte=0"`
	LocationID     string                   `json:"location_id"      validate:"omitempty,uuid"`
	Address        string                   `json:"address"          validate:"notblank,max=500"`
	City           string                   `json:"city"             validate:"notblank,max=100"`
	State          string                   `json:"state"            validate:"omitempty,max=100"`
	Latitude       *float64                 `json:"latitude"         validate:"omitempty,latitude"`
	Longitude      *float64                 `json:"longitude"        validate:"omitempty,longitude"`
	Timings        map[string]DayTiming     `json:"timings"          validate:"omitempty,dive,keys,oneof=monday tuesday wednesday thursday friday saturday sunday,endkeys"`
	NearbyPlaces   map[string][]NearbyPlace `json:"nearby_places"    validate:"omitempty,dive,dive"`
	Facilities     []string                 `json:"facilities"       validate:"omitempty,dive,notblank"`
	Amenities      []string                 `json:"amenities"        validate:"omitempty,dive,notblank"`
	Gallery        []string                 `json:"gallery"          validate:"omitempty,dive,url"`
	IsFeatured     bool                     `json:"is_featured"`
	IsActive       *bool                    `json:"is_active"`
}

func (r *SaveWorkspaceRequest) encodeJSON() (types.JSONText, types.JSONText, error) {
	timings, err := json.Marshal(orEmptyMap(r.Timings))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode timings: %w", err)
	}

	nearby, err := json.Marshal(orEmptyMap(r.NearbyPlaces))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode nearby places: %w", err)
	}

	return types.JSONText(timings), types.JSONText(nearby), nil
}

func (r *SaveWorkspaceRequest) ToModel(user string) (model.Workspace, error) {
	timings, nearby, err := r.encodeJSON()
	if err != nil {
		return model.Workspace{}, err
	}

	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	now := timezone.Now()

	return model.Workspace{
		ID:             uuid.NewString(),
		Name:           r.Name,
		WorkspaceType:  r.WorkspaceType,
		Description:    shared.NullIfEmpty(r.Description),
		AmountPerMonth: r.AmountPerMonth,
		Capacity:       r.Capacity,
		LocationID:     shared.NullIfEmpty(r.LocationID),
		Address:        r.Address,
		City:           r.City,
		State:          shared.NullIfEmpty(r.State),
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Timings:        timings,
		NearbyPlaces:   nearby,
		Facilities:     pq.StringArray(orEmpty(r.Facilities)),
		Amenities:      pq.StringArray(orEmpty(r.Amenities)),
		Gallery:        pq.StringArray(orEmpty(r.Gallery)),
		IsFeatured:     r.IsFeatured,
		IsActive:       active,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// ToUpdate maps every editable column, so a save overwrites the stored record.
func (r *SaveWorkspaceRequest) ToUpdate(user string) (map[string]any, error) {
	mod, err := r.ToModel(user)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		model.FieldName:           mod.Name,
		model.FieldWorkspaceType:  mod.WorkspaceType,
		"description":             mod.Description,
		model.FieldAmountPerMonth: mod.AmountPerMonth,
		model.FieldCapacity:       mod.Capacity,
		model.FieldLocationID:     mod.LocationID,
		model.FieldAddress:        mod.Address,
		model.FieldCity:           mod.City,
		"state":                   mod.State,
		"latitude":                mod.Latitude,
		"longitude":               mod.Longitude,
		"timings":                 mod.Timings,
		"nearby_places":           mod.NearbyPlaces,
		"facilities":              mod.Facilities,
		"amenities":               mod.Amenities,
		model.FieldGallery:        mod.Gallery,
		model.FieldIsFeatured:     mod.IsFeatured,
		model.FieldIsActive:       mod.IsActive,
		constant.FieldModifiedAt:  mod.ModifiedAt,
		constant.FieldModifiedBy:  user,
	}, nil
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type WorkspaceResponse struct {
	ID               string                   `json:"id"`
	Name             string                   `json:"name"`
	WorkspaceType    string                   `json:"workspace_type"`
	Description      string                   `json:"description,omitempty"`
	AmountPerMonth   float64                  `json:"amount_per_month"`
	Capacity         *int                     `json:"capacity,omitempty"`
	LocationID       string                   `json:"location_id,omitempty"`
	Address          string                   `json:"address"`
	City             string                   `json:"city"`
	State            string                   `json:"state,omitempty"`
	Latitude         *float64                 `json:"latitude,omitempty"`
	Longitude        *float64                 `json:"longitude,omitempty"`
	Timings          map[string]DayTiming     `json:"timings"`
	NearbyPlaces     map[string][]NearbyPlace `json:"nearby_places"`
	Facilities       []string                 `json:"facilities"`
	Amenities        []string                 `json:"amenities"`
	Gallery          []string                 `json:"gallery"`
	AllowedDurations []pricing.DurationType   `json:"allowed_durations"`
	IsFeatured       bool                     `json:"is_featured"`
	IsActive         bool                     `json:"is_active"`
	gDto.Metadata
}

func (r *WorkspaceResponse) FromModel(model model.Workspace) {
	r.ID = model.ID
	r.Name = model.Name
	r.WorkspaceType = model.WorkspaceType
	r.Description = shared.ValueOrEmpty(model.Description)
	r.AmountPerMonth = model.AmountPerMonth
	r.Capacity = model.Capacity
	r.LocationID = shared.ValueOrEmpty(model.LocationID)
	r.Address = model.Address
	r.City = model.City
	r.State = shared.ValueOrEmpty(model.State)
	r.Latitude = model.Latitude
	r.Longitude = model.Longitude
	r.Timings = map[string]DayTiming{}
	r.NearbyPlaces = map[string][]NearbyPlace{}
	_ = model.Timings.Unmarshal(&r.Timings)
	_ = model.NearbyPlaces.Unmarshal(&r.NearbyPlaces)
	r.Facilities = orEmpty(model.Facilities)
	r.Amenities = orEmpty(model.Amenities)
	r.Gallery = orEmpty(model.Gallery)
	r.AllowedDurations = pricing.AllowedDurations(pricing.WorkspaceType(model.WorkspaceType))
	r.IsFeatured = model.IsFeatured
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetWorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetWorkspacesResponse) FromModels(models []model.Workspace, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Workspaces = make([]WorkspaceResponse, len(models))
	for i, mod := range models {
		r.Workspaces[i].FromModel(mod)
	}
}

type WorkspaceTypeResponse struct {
	Type             pricing.WorkspaceType  `json:"type"`
	AllowedDurations []pricing.DurationType `json:"allowed_durations"`
}

func WorkspaceTypes() []WorkspaceTypeResponse {
	res := make([]WorkspaceTypeResponse, len(pricing.WorkspaceTypes))
	for i, workspaceType := range pricing.WorkspaceTypes {
		res[i] = WorkspaceTypeResponse{
			Type:             workspaceType,
			AllowedDurations: pricing.AllowedDurations(workspaceType),
		}
	}

	return res
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

func orEmptyMap[V any](values map[string]V) map[string]V {
	if values == nil {
		return map[string]V{}
	}

	return values
}
