package dto_test

import (
	"testing"

	"cowork/internal/domains/sitecontent/model"
	"cowork/internal/domains/sitecontent/model/dto"
	gModel "cowork/shared/model"
	"cowork/shared/timezone"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestSaveSiteContentRequest_ToModel(t *testing.T) {
	req := dto.SaveSiteContentRequest{
		Section: "hero",
		Title:   "Work from anywhere",
		Images:  []string{"https://cdn.example.com/site/a.jpg", "https://cdn.example.com/site/b.jpg"},
	}

	userID := "admin-1"
	content := req.ToModel(userID)

	assert.NotEmpty(t, content.ID, "expected ID to be generated")
	assert.Equal(t, req.Section, content.Section)
	assert.Equal(t, req.Title, content.Title)
	assert.Nil(t, content.Description)
	assert.Equal(t, pq.StringArray(req.Images), content.Images)
	assert.True(t, content.IsActive)
	assert.Equal(t, userID, content.CreatedBy)
	assert.Equal(t, userID, content.ModifiedBy)
	assert.False(t, content.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestSaveSiteContentRequest_ToUpdate(t *testing.T) {
	inactive := false
	req := dto.SaveSiteContentRequest{Section: "about", Title: "About us", IsActive: &inactive}

	fields := req.ToUpdate("admin-1")

	assert.Equal(t, "about", fields[model.FieldSection])
	assert.Equal(t, false, fields[model.FieldIsActive])
	assert.Equal(t, pq.StringArray{}, fields[model.FieldImages])
	assert.Nil(t, fields[model.FieldDescription])
}

func TestSiteContentResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	description := "Our story"
	content := model.SiteContent{
		ID:          "c-1",
		Section:     "about",
		Title:       "About us",
		Description: &description,
		IsActive:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "admin-1",
			ModifiedBy: "admin-1",
		},
	}

	var response dto.SiteContentResponse
	response.FromModel(content)

	assert.Equal(t, "c-1", response.ID)
	assert.Equal(t, "Our story", response.Description)
	assert.Equal(t, []string{}, response.Images)
	assert.Equal(t, "admin-1", response.CreatedBy)
}
