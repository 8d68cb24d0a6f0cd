package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fyyur/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.NoRoute(h.NotFound)
}

// Home handles GET /
func (h *Handler) Home(c *gin.Context) {
	response.Success(c, http.StatusOK, "home.html", nil, "")
}

func (h *Handler) NotFound(c *gin.Context) {
	response.NotFound(c, "Page not found")
}
