package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fyyur/internal/domain"
)

type ShowRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

// ListAll returns every show with its venue and artist, by start time then id.
func (r *ShowRepository) ListAll(ctx context.Context) ([]domain.Show, error) {
	var shows []domain.Show
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Artist").
		Scopes(showsChronological).
		Find(&shows).Error
	return shows, translate("list shows", err)
}

// Create inserts the show after checking, in the same transaction, that both
// the artist and the venue exist. A missing reference is a validation error
// on the offending field.
func (r *ShowRepository) Create(ctx context.Context, s *domain.Show) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		missing := map[string]string{}

		var n int64
		if err := tx.Model(&domain.Artist{}).Where("id = ?", s.ArtistID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			missing["artist_id"] = "unknown artist"
		}

		if err := tx.Model(&domain.Venue{}).Where("id = ?", s.VenueID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			missing["venue_id"] = "unknown venue"
		}

		if len(missing) > 0 {
			return &domain.ValidationError{Fields: missing}
		}
		return tx.Omit(clause.Associations).Create(s).Error
	})
	return translate("create show", err)
}
