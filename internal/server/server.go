package server

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"fyyur/internal/middleware"
	"fyyur/internal/modules/artist"
	"fyyur/internal/modules/pages"
	"fyyur/internal/modules/show"
	"fyyur/internal/modules/venue"
	"fyyur/internal/repository"
	"fyyur/internal/web"
)

type Options struct {
	CORSOrigins string
}

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(db *gorm.DB, log zerolog.Logger, opts Options) *gin.Engine {
	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)

	venueHandler := venue.NewHandler(venue.NewService(venueRepo))
	artistHandler := artist.NewHandler(artist.NewService(artistRepo))
	showHandler := show.NewHandler(show.NewService(showRepo))
	pagesHandler := pages.NewHandler()

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	r.Use(
		middleware.RequestLogger(log),
		middleware.Recovery(),
		middleware.CORS(opts.CORSOrigins),
	)

	pagesHandler.RegisterRoutes(r)
	venueHandler.RegisterRoutes(r)
	artistHandler.RegisterRoutes(r)
	showHandler.RegisterRoutes(r)

	return r
}
