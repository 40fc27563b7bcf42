package product

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
// Create product (multipart form)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a number"})
		return
	}

	// missing flag defaults to available, matching the dashboard form
	available := true
	if v := c.PostForm("available"); v != "" {
		available, _ = strconv.ParseBool(v)
	}

	image, filename, err := optionalFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if image != nil {
		defer image.Close()
	}

	p, err := h.service.Create(
		c.Request.Context(),
		c.PostForm("name"),
		c.PostForm("description"),
		price,
		c.PostForm("category_id"),
		c.PostForm("restaurant_id"),
		available,
		image,
		filename,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// --------------------------------------------------
// Update product
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var price *float64
	if v := c.PostForm("price"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a number"})
			return
		}
		price = &parsed
	}

	var available *bool
	if v := c.PostForm("available"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "available must be a boolean"})
			return
		}
		available = &parsed
	}

	image, filename, err := optionalFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if image != nil {
		defer image.Close()
	}

	p, err := h.service.Update(
		c.Request.Context(),
		c.Param("id"),
		c.PostForm("name"),
		c.PostForm("description"),
		price,
		c.PostForm("category_id"),
		available,
		image,
		filename,
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
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
