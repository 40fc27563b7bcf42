package menu

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Public menu view
// --------------------------------------------------
// GET /menu/:restaurantId?q=<query>&open=<id,id,...>
// Omitting "open" keeps the default seeding; "open=" (empty) collapses all.
func (h *Handler) GetMenu(c *gin.Context) {
	var openIDs []string
	if raw, ok := c.GetQuery("open"); ok {
		openIDs = []string{}
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				openIDs = append(openIDs, id)
			}
		}
	}

	view, err := h.service.BuildView(
		c.Request.Context(),
		c.Param("restaurantId"),
		c.Query("q"),
		openIDs,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}

	if view.State == StateNotFound {
		c.JSON(http.StatusNotFound, view)
		return
	}

	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// Theme registry
// --------------------------------------------------
func (h *Handler) ListThemes(c *gin.Context) {
	c.JSON(http.StatusOK, Themes())
}
