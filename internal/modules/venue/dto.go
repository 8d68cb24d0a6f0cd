package venue

import (
	"strings"
	"time"

	"fyyur/internal/domain"
)

// VenueRequest is the create/edit input. SeekingTalent is not bound from
// forms: an HTML checkbox is true when present and false when absent, which
// the handler sets explicitly.
type VenueRequest struct {
	Name               string   `form:"name" json:"name" validate:"required,max=120"`
	City               string   `form:"city" json:"city" validate:"required,max=120"`
	State              string   `form:"state" json:"state" validate:"required,len=2,alpha"`
	Address            string   `form:"address" json:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" json:"phone" validate:"max=120"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"omitempty,url,max=500"`
	Website            string   `form:"website" json:"website" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" json:"genres" validate:"max=20,dive,max=50"`
	SeekingTalent      bool     `form:"-" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" validate:"max=500"`
}

func (r *VenueRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.City = strings.TrimSpace(r.City)
	r.State = strings.ToUpper(strings.TrimSpace(r.State))
	r.Address = strings.TrimSpace(r.Address)
	r.Phone = strings.TrimSpace(r.Phone)
	r.ImageLink = strings.TrimSpace(r.ImageLink)
	r.FacebookLink = strings.TrimSpace(r.FacebookLink)
	r.Website = strings.TrimSpace(r.Website)
	r.SeekingDescription = strings.TrimSpace(r.SeekingDescription)
	r.Genres = domain.NormalizeGenres(r.Genres)
}

func (r *VenueRequest) apply(v *domain.Venue) {
	v.Name = r.Name
	v.City = r.City
	v.State = r.State
	v.Address = r.Address
	v.Phone = r.Phone
	v.ImageLink = r.ImageLink
	v.FacebookLink = r.FacebookLink
	v.Website = r.Website
	v.Genres = r.Genres
	v.SeekingTalent = r.SeekingTalent
	v.SeekingDescription = r.SeekingDescription
}

type SearchRequest struct {
	SearchTerm string `form:"search_term" json:"search_term"`
}

// Area groups the venues of one city and state.
type Area struct {
	City   string           `json:"city"`
	State  string           `json:"state"`
	Venues []domain.Summary `json:"venues"`
}

type ShowArtist struct {
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

type Detail struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	Address            string       `json:"address"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              string       `json:"phone"`
	Website            string       `json:"website"`
	FacebookLink       string       `json:"facebook_link"`
	SeekingTalent      bool         `json:"seeking_talent"`
	SeekingDescription string       `json:"seeking_description"`
	ImageLink          string       `json:"image_link"`
	PastShows          []ShowArtist `json:"past_shows"`
	UpcomingShows      []ShowArtist `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

func newDetail(v *domain.Venue, now time.Time) *Detail {
	past, upcoming := domain.PartitionShows(v.Shows, now)
	d := &Detail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             v.Genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          withArtists(past),
		UpcomingShows:      withArtists(upcoming),
	}
	if d.Genres == nil {
		d.Genres = []string{}
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d
}

func withArtists(shows []domain.Show) []ShowArtist {
	out := make([]ShowArtist, 0, len(shows))
	for _, s := range shows {
		row := ShowArtist{ArtistID: s.ArtistID, StartTime: s.StartTime}
		if s.Artist != nil {
			row.ArtistName = s.Artist.Name
			row.ArtistImageLink = s.Artist.ImageLink
		}
		out = append(out, row)
	}
	return out
}
