package domain

import (
	"time"

	"gorm.io/gorm"
)

// Show joins exactly one artist and one venue at one instant.
type Show struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ArtistID  int64     `json:"artist_id" gorm:"not null;index"`
	VenueID   int64     `json:"venue_id" gorm:"not null;index"`
	StartTime time.Time `json:"start_time" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`

	Artist *Artist `json:"artist,omitempty" gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Venue  *Venue  `json:"venue,omitempty" gorm:"foreignKey:VenueID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// BeforeSave stores start times in UTC so that ordering by the column is
// chronological on every driver.
func (s *Show) BeforeSave(_ *gorm.DB) error {
	s.StartTime = s.StartTime.UTC()
	return nil
}
