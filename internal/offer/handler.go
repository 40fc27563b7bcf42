package offer

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Create offer
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		Discount     float64   `json:"discount"`
		Tags         []string  `json:"tags"`
		RestaurantID string    `json:"restaurant_id"`
		ValidUntil   time.Time `json:"valid_until"`
		Active       bool      `json:"active"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, err := h.service.Create(
		c.Request.Context(),
		req.Title,
		req.Description,
		req.Discount,
		req.Tags,
		req.RestaurantID,
		req.ValidUntil,
		req.Active,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, o)
}

// --------------------------------------------------
// Update offer
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var req struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Discount    *float64   `json:"discount"`
		Tags        []string   `json:"tags"`
		ValidUntil  *time.Time `json:"valid_until"`
		Active      *bool      `json:"active"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, err := h.service.Update(
		c.Request.Context(),
		c.Param("id"),
		req.Title,
		req.Description,
		req.Discount,
		req.Tags,
		req.ValidUntil,
		req.Active,
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, o)
}

func (h *Handler) List(c *gin.Context) {
	offers, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch offers"})
		return
	}

	c.JSON(http.StatusOK, offers)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "offer deleted"})
}
