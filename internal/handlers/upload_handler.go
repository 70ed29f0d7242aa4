package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxUploadSize caps a single image upload.
const MaxUploadSize = 10 << 20

// multipartOverhead is the room left for boundaries and part headers when
// the whole request body is capped.
const multipartOverhead = 1 << 20

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".svg": true,
}

// UploadFile handles POST /api/admin/uploads
// It saves the image under UploadDir and returns its public URL.
func (h *Handlers) UploadFile(c *gin.Context) {
	// 1. Get the file from the request, reading no more than the cap
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize+multipartOverhead)
	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File is too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if file.Size > MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File is too large"})
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are allowed"})
		return
	}

	// 2. Create the upload directory if it doesn't exist
	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		h.serverError(c, err, "Failed to save file")
		return
	}

	// 3. Generate a safe unique filename (uuid + extension)
	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.UploadDir, name)); err != nil {
		h.serverError(c, err, "Failed to save file")
		return
	}

	// 4. Return the public URL
	c.JSON(http.StatusCreated, gin.H{"url": fmt.Sprintf("%s/uploads/%s", strings.TrimRight(h.PublicURL, "/"), name)})
}
