package artist

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"fyyur/internal/domain"
	"fyyur/internal/pkg/response"
)

const notFoundMessage = "Artist not found"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	artists := r.Group("/artists")
	{
		artists.GET("", h.List)
		artists.POST("/search", h.Search)
		artists.GET("/create", h.CreateForm)
		artists.POST("/create", h.Create)
		artists.GET("/:id", h.Get)
		artists.DELETE("/:id", h.Delete)
		artists.GET("/:id/edit", h.EditForm)
		artists.POST("/:id/edit", h.Update)
	}
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.Directory(c.Request.Context())
	if err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusOK, "artists.html", list, "")
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		response.FromError(c, domain.NewValidationError("search_term", "malformed request"), notFoundMessage)
		return
	}

	res, err := h.service.Search(c.Request.Context(), req.SearchTerm)
	if err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusOK, "search_artists.html", res, "")
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	d, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusOK, "artist.html", d, "")
}

func (h *Handler) CreateForm(c *gin.Context) {
	response.Success(c, http.StatusOK, "artist_form.html", &domain.Artist{}, "")
}

func (h *Handler) Create(c *gin.Context) {
	req, ok := bindArtist(c)
	if !ok {
		return
	}

	d, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusCreated, "artist.html", d,
		fmt.Sprintf("Artist %s was successfully listed!", d.Name))
}

func (h *Handler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusOK, "artist_form.html", a, "")
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindArtist(c)
	if !ok {
		return
	}

	d, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusOK, "artist.html", d,
		fmt.Sprintf("Artist %s was successfully updated!", d.Name))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusOK, "home.html", gin.H{"id": id}, "Artist was successfully deleted.")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.NotFound(c, notFoundMessage)
		return 0, false
	}
	return id, true
}

func bindArtist(c *gin.Context) (ArtistRequest, bool) {
	var req ArtistRequest
	if err := c.ShouldBind(&req); err != nil {
		response.FromError(c, domain.NewValidationError("body", "malformed request"), notFoundMessage)
		return req, false
	}
	if c.ContentType() != binding.MIMEJSON {
		req.SeekingVenue = c.PostForm("seeking_venue") != ""
		// the form template sends genres as one comma-separated field
		if vals := c.PostFormArray("genres"); len(vals) == 1 {
			req.Genres = domain.SplitGenres(vals[0])
		}
	}
	return req, true
}
