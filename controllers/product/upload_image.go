package productController

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/bilalhossainshah/ecommerce-api/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageSize = 5 * 1024 * 1024 // 5MB

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// POST /products/upload-image/
func UploadProductImage(uploader services.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
			return
		}

		if file.Size > maxImageSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("File size exceeds %dMB limit", maxImageSize/1024/1024),
			})
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		defer src.Close()

		filename := fmt.Sprintf("%s_%s%s",
			time.Now().Format("20060102_150405"),
			uuid.NewString()[:8],
			ext,
		)

		contentType := file.Header.Get("Content-Type")
		url, err := uploader.Save(c.Request.Context(), filename, src, file.Size, contentType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"image_url": url})
	}
}
