package http_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	handler "github.com/medcharfeddine/nutricoach/internal/handler/http"
	dto "github.com/medcharfeddine/nutricoach/internal/handler/http/dto"
	mocks "github.com/medcharfeddine/nutricoach/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContentRouter(h *handler.ContentHandler, actor *entity.Actor) *gin.Engine {
	r := gin.Default()
	r.GET("/content", h.ListPublished)
	r.GET("/content/:slug", h.GetBySlug)
	r.GET("/categories", h.ListCategories)

	admin := r.Group("/admin", withActor(actor))
	admin.GET("/content", h.ListAll)
	admin.POST("/content", h.Create)
	admin.PUT("/content/:id", h.Update)
	admin.DELETE("/content/:id", h.Delete)
	admin.POST("/categories", h.CreateCategory)
	admin.PUT("/categories/:id", h.UpdateCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)
	return r
}

func TestListContent_PublicOnlyPublished(t *testing.T) {
	contentUsecase := mocks.NewMockContentUsecase()
	actor := testAdmin
	r := setupContentRouter(handler.NewContentHandler(contentUsecase, mocks.NewMockCategoryUsecase()), &actor)

	w := performJSON(r, "GET", "/content?type=post&category=recipes&tag=vegan&page=2&limit=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, contentUsecase.LastFilter.PublishedOnly)
	require.NotNil(t, contentUsecase.LastFilter.Type)
	assert.Equal(t, entity.ContentTypePost, *contentUsecase.LastFilter.Type)
	assert.Equal(t, int64(2), contentUsecase.LastFilter.Page)
	assert.Equal(t, "vegan", contentUsecase.LastFilter.Tag)

	w = performJSON(r, "GET", "/admin/content", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, contentUsecase.LastFilter.PublishedOnly)

	w = performJSON(r, "GET", "/content?type=podcast", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetContentBySlug(t *testing.T) {
	contentUsecase := mocks.NewMockContentUsecase()
	r := setupContentRouter(handler.NewContentHandler(contentUsecase, mocks.NewMockCategoryUsecase()), nil)

	w := performJSON(r, "GET", "/content/eat-more-greens", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"eat-more-greens"`)

	contentUsecase.ShouldFailGet = true
	w = performJSON(r, "GET", "/content/draft-post", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateContent(t *testing.T) {
	contentUsecase := mocks.NewMockContentUsecase()
	actor := testAdmin
	r := setupContentRouter(handler.NewContentHandler(contentUsecase, mocks.NewMockCategoryUsecase()), &actor)

	w := performJSON(r, "POST", "/admin/content", dto.ContentRequest{
		Title:    "Eat more greens",
		Type:     "post",
		Category: "nutrition",
		Body:     "<p>Greens are good</p>",
		Tags:     []string{"Vegan"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, entity.ContentCategoryNutrition, contentUsecase.LastInput.Category)

	w = performJSON(r, "POST", "/admin/content", dto.ContentRequest{Title: "x", Type: "post", Category: "nutrition", MediaURL: "not a url"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	contentUsecase.ShouldFailCreate = true
	w = performJSON(r, "POST", "/admin/content", dto.ContentRequest{Title: "x", Type: "post", Category: "nutrition"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateAndDeleteContent_NotFound(t *testing.T) {
	contentUsecase := mocks.NewMockContentUsecase()
	contentUsecase.ShouldFailUpdate = true
	contentUsecase.ShouldFailDelete = true
	actor := testAdmin
	r := setupContentRouter(handler.NewContentHandler(contentUsecase, mocks.NewMockCategoryUsecase()), &actor)

	w := performJSON(r, "PUT", "/admin/content/missing", dto.ContentRequest{Title: "x", Type: "post", Category: "fitness"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(r, "DELETE", "/admin/content/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategories(t *testing.T) {
	categoryUsecase := mocks.NewMockCategoryUsecase()
	actor := testAdmin
	r := setupContentRouter(handler.NewContentHandler(mocks.NewMockContentUsecase(), categoryUsecase), &actor)

	w := performJSON(r, "GET", "/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nameAr"`)

	w = performJSON(r, "POST", "/admin/categories", dto.CategoryRequest{Name: "Recipes", Description: "Healthy meals"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "[ar] Recipes")

	w = performJSON(r, "POST", "/admin/categories", dto.CategoryRequest{Name: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	categoryUsecase.ShouldFailDelete = true
	w = performJSON(r, "DELETE", "/admin/categories/cat-9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBranding(t *testing.T) {
	brandingUsecase := mocks.NewMockBrandingUsecase()
	h := handler.NewBrandingHandler(brandingUsecase)
	actor := testAdmin
	r := gin.Default()
	r.GET("/branding", h.Get)
	r.PUT("/admin/branding", withActor(&actor), h.Update)

	w := performJSON(r, "GET", "/branding", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"siteName":"NutriCoach"`)

	w = performJSON(r, "PUT", "/admin/branding", map[string]string{"primaryColor": "#123ABC"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "#123ABC")
	require.NotNil(t, brandingUsecase.LastInput.PrimaryColor)
	assert.Nil(t, brandingUsecase.LastInput.SiteName)

	w = performJSON(r, "PUT", "/admin/branding", map[string]string{"primaryColor": "green"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "hexcolor")
}

func multipartUpload(t *testing.T, field, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile(field, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestUploadMedia_SniffsType(t *testing.T) {
	mediaUsecase := mocks.NewMockMediaUsecase()
	h := handler.NewMediaHandler(mediaUsecase)
	actor := testAdmin
	r := gin.Default()
	r.POST("/admin/media", withActor(&actor), h.Upload)

	png := append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
	body, contentType := multipartUpload(t, "file", "logo.png", png)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/media", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"publicId":"public-1"`)
	assert.Equal(t, "image/png", mediaUsecase.LastMimeType)
	assert.Equal(t, "logo.png", mediaUsecase.LastFileName)
	assert.Equal(t, int64(len(png)), mediaUsecase.LastSize)
	assert.Equal(t, png, mediaUsecase.LastBody)
}

func TestUploadMedia_MissingFile(t *testing.T) {
	h := handler.NewMediaHandler(mocks.NewMockMediaUsecase())
	actor := testAdmin
	r := gin.Default()
	r.POST("/admin/media", withActor(&actor), h.Upload)

	body, contentType := multipartUpload(t, "attachment", "logo.png", []byte("x"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/media", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServeMedia(t *testing.T) {
	mediaUsecase := mocks.NewMockMediaUsecase()
	h := handler.NewMediaHandler(mediaUsecase)
	r := gin.Default()
	r.GET("/media/:publicId", h.Serve)

	w := performJSON(r, "GET", "/media/public-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "plan.pdf")
	assert.Equal(t, "%PDF-1.4 mock", w.Body.String())

	mediaUsecase.ShouldFailOpen = true
	w = performJSON(r, "GET", "/media/gone", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
