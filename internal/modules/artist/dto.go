package artist

import (
	"strings"
	"time"

	"fyyur/internal/domain"
)

// ArtistRequest is the create/edit input. SeekingVenue comes from a checkbox
// on forms and is set by the handler.
type ArtistRequest struct {
	Name               string   `form:"name" json:"name" validate:"required,max=120"`
	City               string   `form:"city" json:"city" validate:"required,max=120"`
	State              string   `form:"state" json:"state" validate:"required,len=2,alpha"`
	Phone              string   `form:"phone" json:"phone" validate:"max=120"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"omitempty,url,max=500"`
	Website            string   `form:"website" json:"website" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" json:"genres" validate:"max=20,dive,max=50"`
	SeekingVenue       bool     `form:"-" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" validate:"max=500"`
}

func (r *ArtistRequest) normalize() {
	for _, f := range []*string{&r.Name, &r.City, &r.Phone, &r.ImageLink, &r.FacebookLink, &r.Website, &r.SeekingDescription} {
		*f = strings.TrimSpace(*f)
	}
	r.State = strings.ToUpper(strings.TrimSpace(r.State))
	r.Genres = domain.NormalizeGenres(r.Genres)
}

func (r *ArtistRequest) apply(a *domain.Artist) {
	a.Name = r.Name
	a.City = r.City
	a.State = r.State
	a.Phone = r.Phone
	a.ImageLink = r.ImageLink
	a.FacebookLink = r.FacebookLink
	a.Website = r.Website
	a.Genres = r.Genres
	a.SeekingVenue = r.SeekingVenue
	a.SeekingDescription = r.SeekingDescription
}

type SearchRequest struct {
	SearchTerm string `form:"search_term" json:"search_term"`
}

type ShowVenue struct {
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

type Detail struct {
	ID                 int64       `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingVenue       bool        `json:"seeking_venue"`
	SeekingDescription string      `json:"seeking_description"`
	ImageLink          string      `json:"image_link"`
	PastShows          []ShowVenue `json:"past_shows"`
	UpcomingShows      []ShowVenue `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

func newDetail(a *domain.Artist, now time.Time) *Detail {
	past, upcoming := domain.PartitionShows(a.Shows, now)
	genres := a.Genres
	if genres == nil {
		genres = []string{}
	}
	return &Detail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          withVenues(past),
		UpcomingShows:      withVenues(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func withVenues(shows []domain.Show) []ShowVenue {
	out := make([]ShowVenue, 0, len(shows))
	for _, s := range shows {
		row := ShowVenue{VenueID: s.VenueID, StartTime: s.StartTime}
		if s.Venue != nil {
			row.VenueName = s.Venue.Name
			row.VenueImageLink = s.Venue.ImageLink
		}
		out = append(out, row)
	}
	return out
}
