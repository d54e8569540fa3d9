package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/handler/http/dto"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

// ContentHandler serves the content library and its categories.
type ContentHandler struct {
	contentUsecase  usecasecontract.IContentUseCase
	categoryUsecase usecasecontract.ICategoryUseCase
}

func NewContentHandler(contentUsecase usecasecontract.IContentUseCase, categoryUsecase usecasecontract.ICategoryUseCase) *ContentHandler {
	return &ContentHandler{
		contentUsecase:  contentUsecase,
		categoryUsecase: categoryUsecase,
	}
}

// ListPublished is the public listing; drafts are never included.
func (h *ContentHandler) ListPublished(c *gin.Context) {
	h.list(c, true)
}

// ListAll is the admin listing including drafts.
func (h *ContentHandler) ListAll(c *gin.Context) {
	h.list(c, false)
}

func (h *ContentHandler) list(c *gin.Context, publishedOnly bool) {
	var q dto.ContentListQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}

	page, err := h.contentUsecase.List(c.Request.Context(), q.ToFilter(publishedOnly))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, page)
}

func (h *ContentHandler) GetBySlug(c *gin.Context) {
	content, err := h.contentUsecase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, content)
}

func (h *ContentHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.ContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	content, err := h.contentUsecase.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, content)
}

func (h *ContentHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.ContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	content, err := h.contentUsecase.Update(c.Request.Context(), actor, c.Param("id"), req.ToInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, content)
}

func (h *ContentHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.contentUsecase.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Content deleted")
}

func (h *ContentHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryUsecase.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, categories)
}

func (h *ContentHandler) CreateCategory(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	category, err := h.categoryUsecase.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, category)
}

func (h *ContentHandler) UpdateCategory(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	category, err := h.categoryUsecase.Update(c.Request.Context(), actor, c.Param("id"), req.ToInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, category)
}

func (h *ContentHandler) DeleteCategory(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.categoryUsecase.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Category deleted")
}
