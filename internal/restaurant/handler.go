package restaurant

import (
	"errors"
	"net/http"

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
// Public: restaurant profile
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	restaurant, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurant"})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// --------------------------------------------------
// ADMIN: create restaurant
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Contact string `json:"contact"`
		Theme   string `json:"theme"`
		AdminID string `json:"admin_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	restaurant, err := h.service.Create(
		c.Request.Context(),
		req.Name,
		req.Address,
		req.Contact,
		req.Theme,
		req.AdminID,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

// --------------------------------------------------
// Restaurant admin: own restaurant
// --------------------------------------------------
func (h *Handler) GetMine(c *gin.Context) {
	adminID := c.GetString("userID")

	restaurant, err := h.service.GetMine(c.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no restaurant for this account"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurant"})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func (h *Handler) List(c *gin.Context) {
	restaurants, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurants"})
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// --------------------------------------------------
// Update profile
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Contact string `json:"contact"`
		Theme   string `json:"theme"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	restaurant, err := h.service.Update(
		c.Request.Context(),
		c.Param("id"),
		req.Name,
		req.Address,
		req.Contact,
		req.Theme,
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// --------------------------------------------------
// Upload logo (multipart)
// --------------------------------------------------
func (h *Handler) UploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "logo file is required"})
		return
	}
	defer file.Close()

	if err := storage.ValidateImageExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.service.UploadLogo(
		c.Request.Context(),
		c.Param("id"),
		file,
		header.Filename,
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "restaurant deleted"})
}
