package show

import (
	"strings"
	"time"

	"fyyur/internal/domain"
)

type ShowRequest struct {
	ArtistID  int64  `form:"artist_id" json:"artist_id" validate:"required,gt=0"`
	VenueID   int64  `form:"venue_id" json:"venue_id" validate:"required,gt=0"`
	StartTime string `form:"start_time" json:"start_time" validate:"required"`
}

// Listing is one row of the show listing.
type Listing struct {
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

func newListing(s domain.Show) Listing {
	l := Listing{VenueID: s.VenueID, ArtistID: s.ArtistID, StartTime: s.StartTime}
	if s.Venue != nil {
		l.VenueName = s.Venue.Name
	}
	if s.Artist != nil {
		l.ArtistName = s.Artist.Name
		l.ArtistImageLink = s.Artist.ImageLink
	}
	return l
}

// startLayouts are tried in order. Values without a zone are read as UTC.
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func parseStartTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
