package domain

import (
	"time"

	"gorm.io/gorm"
)

type Artist struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"size:120;not null;index"`
	City               string    `json:"city" gorm:"size:120;not null"`
	State              string    `json:"state" gorm:"size:120;not null"`
	Phone              string    `json:"phone" gorm:"size:120"`
	ImageLink          string    `json:"image_link" gorm:"size:500"`
	FacebookLink       string    `json:"facebook_link" gorm:"size:500"`
	Website            string    `json:"website" gorm:"size:500"`
	SeekingVenue       bool      `json:"seeking_venue" gorm:"not null;default:false"`
	SeekingDescription string    `json:"seeking_description" gorm:"size:500"`
	Genres             []string  `json:"genres" gorm:"type:text;serializer:json"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Shows []Show `json:"shows,omitempty" gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// ArtistSummary is the id+name projection used by the artist directory.
type ArtistSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (a *Artist) BeforeSave(_ *gorm.DB) error {
	if a.Genres == nil {
		a.Genres = []string{}
	}
	return nil
}
