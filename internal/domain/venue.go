package domain

import (
	"time"

	"gorm.io/gorm"
)

type Venue struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"size:120;not null;index"`
	City               string    `json:"city" gorm:"size:120;not null;index:idx_venues_area,priority:2"`
	State              string    `json:"state" gorm:"size:120;not null;index:idx_venues_area,priority:1"`
	Address            string    `json:"address" gorm:"size:120;not null"`
	Phone              string    `json:"phone" gorm:"size:120"`
	ImageLink          string    `json:"image_link" gorm:"size:500"`
	FacebookLink       string    `json:"facebook_link" gorm:"size:500"`
	Website            string    `json:"website" gorm:"size:500"`
	SeekingTalent      bool      `json:"seeking_talent" gorm:"not null;default:false"`
	SeekingDescription string    `json:"seeking_description" gorm:"size:500"`
	Genres             []string  `json:"genres" gorm:"type:text;serializer:json"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Shows []Show `json:"shows,omitempty" gorm:"foreignKey:VenueID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (v *Venue) BeforeSave(_ *gorm.DB) error {
	if v.Genres == nil {
		v.Genres = []string{}
	}
	return nil
}
