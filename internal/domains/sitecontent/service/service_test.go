package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cowork/config"
	"cowork/infras/otel/mocks"
	"cowork/infras/s3"
	s3Mocks "cowork/infras/s3/mocks"
	siteMocks "cowork/internal/domains/sitecontent/mocks"
	"cowork/internal/domains/sitecontent/model"
	"cowork/internal/domains/sitecontent/model/dto"
	"cowork/internal/domains/sitecontent/service"
	cacheMocks "cowork/shared/cache/mocks"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
)

type fixture struct {
	repo    *siteMocks.MockSiteContent
	cache   *cacheMocks.MockRedisCache
	storage *s3Mocks.MockStorage
	service service.SiteContent
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:    siteMocks.NewMockSiteContent(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		storage: s3Mocks.NewMockStorage(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.service = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.storage)

	return f
}

func TestSiteContentService_Create(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "successful creation"},
		{name: "repository error", err: errors.New("database error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(tt.err)

			res, err := f.service.Create(context.Background(), dto.SaveSiteContentRequest{
				Section: "hero",
				Title:   "Find your desk",
				Images:  []string{"https://cdn.example.com/site/hero.jpg"},
			})

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "hero", res.Section)
			assert.True(t, res.IsActive)
		})
	}
}

func TestSiteContentService_GetAll(t *testing.T) {
	t.Run("cache miss sorts by display order", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.SiteContent, error) {
				assert.Equal(t, model.FieldDisplayOrder, params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return []model.SiteContent{{ID: "c-1", Section: "hero"}, {ID: "c-2", Section: "hero"}}, nil
			})

		res, err := f.service.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Len(t, res.Contents, 2)
		assert.Equal(t, 2, res.TotalData)
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.service.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		require.NoError(t, err)
	})
}

func TestSiteContentService_GetMissing(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SiteContent{}, nil)

	_, err := f.service.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestSiteContentService_UpdateStatus(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, false, fields[model.FieldIsActive])

			return nil
		})

	err := f.service.UpdateStatus(context.Background(), "c-1", false)
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
}

func TestSiteContentService_DeleteRemovesImages(t *testing.T) {
	f := newFixture(t)
	url := "https://cdn.example.com/site/a.jpg"

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SiteContent{ID: "c-1", Images: pq.StringArray{url}}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	f.storage.EXPECT().ObjectKey(url).Return("site/a.jpg")
	f.storage.EXPECT().Remove(gomock.Any(), url).Return(nil)

	err := f.service.Delete(context.Background(), "c-1")
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
}

func TestSiteContentService_UploadImage(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().Put(gomock.Any(), "site", gomock.Any()).Return("https://cdn.example.com/site/x.png", nil)

	res, err := f.service.UploadImage(context.Background(), s3.Object{
		Filename:    "banner.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/site/x.png", res.URL)
	assert.Equal(t, "banner.png", res.FileName)
}

func TestSiteContentService_DeleteImages(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().ObjectKey("https://cdn.example.com/site/a.jpg").Return("site/a.jpg")
	f.storage.EXPECT().ObjectKey("https://elsewhere.example.com/b.jpg").Return("")
	f.storage.EXPECT().Remove(gomock.Any(), "https://cdn.example.com/site/a.jpg").Return(errors.New("denied"))

	err := f.service.DeleteImages(context.Background(), dto.DeleteImagesRequest{
		ImageURLs: []string{"https://cdn.example.com/site/a.jpg", "https://elsewhere.example.com/b.jpg"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrDeleteImages)
}
