package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/handler/http/dto"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

type BrandingHandler struct {
	brandingUsecase usecasecontract.IBrandingUseCase
}

func NewBrandingHandler(uc usecasecontract.IBrandingUseCase) *BrandingHandler {
	return &BrandingHandler{brandingUsecase: uc}
}

func (h *BrandingHandler) Get(c *gin.Context) {
	branding, err := h.brandingUsecase.Get(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, branding)
}

func (h *BrandingHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.BrandingRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	branding, err := h.brandingUsecase.Update(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, branding)
}
