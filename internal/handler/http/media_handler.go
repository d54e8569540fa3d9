package http

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

const mediaFormField = "file"

type MediaHandler struct {
	mediaUsecase usecasecontract.IMediaUseCase
}

func NewMediaHandler(uc usecasecontract.IMediaUseCase) *MediaHandler {
	return &MediaHandler{mediaUsecase: uc}
}

// Upload accepts a multipart file under the "file" field. The stored type is
// sniffed from the bytes, not taken from the client.
func (h *MediaHandler) Upload(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	// room for multipart framing around the largest accepted file
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, entity.MaxMediaSize+1<<20)

	header, err := c.FormFile(mediaFormField)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "a file is required in the \"file\" form field")
		return
	}
	if header.Size > entity.MaxMediaSize {
		ErrorHandler(c, http.StatusBadRequest, fmt.Sprintf("file exceeds the %d MiB limit", entity.MaxMediaSize>>20))
		return
	}

	file, err := header.Open()
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		_ = c.Error(err)
		ErrorHandler(c, http.StatusInternalServerError, "failed to read uploaded file")
		return
	}
	mimeType, _, _ := strings.Cut(detected.String(), ";")

	media, err := h.mediaUsecase.Upload(c.Request.Context(), actor, header.Filename, mimeType, header.Size, file)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, entity.UploadedMedia{URL: media.URL, PublicID: media.PublicID})
}

// Serve streams a stored file by public id.
func (h *MediaHandler) Serve(c *gin.Context) {
	media, body, err := h.mediaUsecase.Open(c.Request.Context(), c.Param("publicId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, media.FileSize, media.MimeType, body, map[string]string{
		"Cache-Control":       "public, max-age=86400",
		"Content-Disposition": fmt.Sprintf("inline; filename=%q", media.FileName),
	})
}

func (h *MediaHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.mediaUsecase.Delete(c.Request.Context(), actor, c.Param("publicId")); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Media deleted")
}
