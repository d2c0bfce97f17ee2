package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"blogapi/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FileHandler struct {
	Store   storage.ObjectStore
	BaseURL string
}

type fileUploadResponse struct {
	Message string `json:"message"`
	FileURL string `json:"file_url"`
	FileKey string `json:"file_key"`
}

// Upload handles POST /api/files/upload. The multipart field must be named
// "file"; the stored key is uploads/<uuid>.<ext> so uploads never collide and
// client-supplied names never reach the filesystem.
func (h FileHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		Respond(c, http.StatusBadRequest, "multipart field 'file' is required", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = ".bin"
	}
	key := "uploads/" + uuid.NewString() + ext

	src, err := header.Open()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	defer src.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := h.Store.Put(c.Request.Context(), key, src, contentType); err != nil {
		RespondDomainError(c, err)
		return
	}

	Respond(c, http.StatusOK, "file uploaded successfully", fileUploadResponse{
		Message: "file uploaded successfully",
		FileURL: h.BaseURL + "/" + key,
		FileKey: key,
	})
}
