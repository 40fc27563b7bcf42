package category

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"menumaster/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Create category (multipart: name, restaurant_id, order?, image?)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	name := c.PostForm("name")
	restaurantID := c.PostForm("restaurant_id")
	order, _ := strconv.Atoi(c.PostForm("order"))

	image, filename, err := optionalFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if image != nil {
		defer image.Close()
	}

	cat, err := h.service.Create(
		c.Request.Context(),
		name,
		restaurantID,
		order,
		image,
		filename,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cat)
}

// --------------------------------------------------
// Update category
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	name := c.PostForm("name")
	order, _ := strconv.Atoi(c.PostForm("order"))

	image, filename, err := optionalFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if image != nil {
		defer image.Close()
	}

	cat, err := h.service.Update(
		c.Request.Context(),
		c.Param("id"),
		name,
		order,
		image,
		filename,
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cat)
}

func (h *Handler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

// optionalFile returns the uploaded file when the field is present. A file
// that is not a recognized image type is an error; an absent field is not.
func optionalFile(c *gin.Context, field string) (multipart.File, string, error) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		return nil, "", nil
	}
	if err := storage.ValidateImageExtension(header.Filename); err != nil {
		file.Close()
		return nil, "", err
	}
	return file, header.Filename, nil
}
