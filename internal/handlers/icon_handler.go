package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financebook/internal/errors"
	"financebook/internal/services"
)

// IconHandler handles category icon upload and download
type IconHandler struct {
	iconService services.IconServicer
}

// NewIconHandler creates a new IconHandler
func NewIconHandler(iconService services.IconServicer) *IconHandler {
	return &IconHandler{iconService: iconService}
}

// UploadIcon handles an icon upload
// @Summary     Upload an icon
// @Description Store an uploaded icon file and return its filename
// @Tags        files
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Icon file"
// @Success     200 {object} FilenameResponse "Stored filename"
// @Failure     400 {object} ErrorResponse "Missing file or invalid filename"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /uploadicon/ [post]
func (h *IconHandler) UploadIcon(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "file is required"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer src.Close()

	filename, err := h.iconService.SaveIcon(fileHeader.Filename, src)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"filename": filename})
}

// DownloadIcon handles an icon download
// @Summary     Download an icon
// @Description Serve a previously uploaded icon file
// @Tags        files
// @Produce     octet-stream
// @Param       filename path string true "Stored filename"
// @Success     200 {file} file "Icon file"
// @Failure     400 {object} ErrorResponse "Invalid filename"
// @Failure     404 {object} ErrorResponse "File not found"
// @Router      /download_static/{filename} [get]
func (h *IconHandler) DownloadIcon(c *gin.Context) {
	path, err := h.iconService.IconPath(c.Param("filename"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.File(path)
}
