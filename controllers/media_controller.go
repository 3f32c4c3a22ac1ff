package controllers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/config"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/models"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/utils"
)

const maxMediaSize = 10 << 20 // 10MB

// GET /api/media?category=gallery&featured=true
func ListMedia(c *gin.Context) {
	query := config.DB.Model(&models.MediaItem{}).Where("is_active = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	var items []models.MediaItem
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load media"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"media": items})
}

// POST /api/admin/media accepts a multipart upload into the storage bucket.
func UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file received"})
		return
	}
	if fileHeader.Size > maxMediaSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 10MB limit"})
		return
	}

	contentType, err := sniffContentType(fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not read uploaded file"})
		return
	}
	mediaType := models.MediaImage
	switch {
	case strings.HasPrefix(contentType, "image/"):
		mediaType = models.MediaImage
	case strings.HasPrefix(contentType, "video/"):
		mediaType = models.MediaVideo
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image and video uploads are supported"})
		return
	}

	category := c.DefaultPostForm("category", "gallery")
	objectID := uuid.NewString()

	url, err := utils.UploadToSupabase(fileHeader, objectID, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Upload failed: %v", err)})
		return
	}

	item := models.MediaItem{
		URL:      url,
		Type:     mediaType,
		Category: category,
		IsActive: true,
	}
	if title := c.PostForm("title"); title != "" {
		item.Title = &title
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save media record"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// sniffContentType detects the media type from the file's own bytes. The
// Content-Type part header is client-supplied and never trusted.
func sniffContentType(fileHeader *multipart.FileHeader) (string, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

type updateMediaReq struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	Featured *bool   `json:"featured"`
	IsActive *bool   `json:"is_active"`
}

// PATCH /api/admin/media/:id
func UpdateMedia(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media ID"})
		return
	}

	var item models.MediaItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}

	var req updateMediaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

// DELETE /api/admin/media/:id
func DeleteMedia(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media ID"})
		return
	}

	if err := config.DB.Delete(&models.MediaItem{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
