package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fyyur/internal/domain"
)

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func showTimes(db *gorm.DB) *gorm.DB {
	return db.Select("id", "artist_id", "venue_id", "start_time")
}

func showsChronological(db *gorm.DB) *gorm.DB {
	return db.Order("start_time ASC").Order("id ASC")
}

// ListAll returns every venue ordered by state, city, id, with show times
// preloaded for upcoming counts.
func (r *VenueRepository) ListAll(ctx context.Context) ([]domain.Venue, error) {
	var venues []domain.Venue
	err := r.db.WithContext(ctx).
		Preload("Shows", showTimes).
		Order("state ASC").Order("city ASC").Order("id ASC").
		Find(&venues).Error
	return venues, translate("list venues", err)
}

func (r *VenueRepository) SearchByName(ctx context.Context, term string) ([]domain.Venue, error) {
	var venues []domain.Venue
	err := r.db.WithContext(ctx).
		Where(nameContains(r.db), containsPattern(term)).
		Preload("Shows", showTimes).
		Order("id ASC").
		Find(&venues).Error
	return venues, translate("search venues", err)
}

// GetByID loads the venue with its shows and each show's artist.
func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	var v domain.Venue
	err := r.db.WithContext(ctx).
		Preload("Shows", showsChronological).
		Preload("Shows.Artist").
		First(&v, id).Error
	if err != nil {
		return nil, translate("get venue", err)
	}
	return &v, nil
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error
	return translate("create venue", err)
}

// Update loads the venue, applies fn and saves every column in one
// transaction. Concurrent updates are last-writer-wins.
func (r *VenueRepository) Update(ctx context.Context, id int64, fn func(*domain.Venue) error) (*domain.Venue, error) {
	var v domain.Venue
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&v, id).Error; err != nil {
			return err
		}
		if err := fn(&v); err != nil {
			return err
		}
		v.ID = id
		return tx.Omit(clause.Associations).Save(&v).Error
	})
	if err != nil {
		return nil, translate("update venue", err)
	}
	return &v, nil
}

// Delete removes the venue and every show that references it.
func (r *VenueRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&domain.Show{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Venue{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate("delete venue", err)
}
