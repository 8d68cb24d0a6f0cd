package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fyyur/internal/domain"
)

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// ListSummaries projects only id and name, ordered by id.
func (r *ArtistRepository) ListSummaries(ctx context.Context) ([]domain.ArtistSummary, error) {
	var out []domain.ArtistSummary
	err := r.db.WithContext(ctx).
		Model(&domain.Artist{}).
		Select("id", "name").
		Order("id ASC").
		Find(&out).Error
	return out, translate("list artists", err)
}

func (r *ArtistRepository) SearchByName(ctx context.Context, term string) ([]domain.Artist, error) {
	var artists []domain.Artist
	err := r.db.WithContext(ctx).
		Where(nameContains(r.db), containsPattern(term)).
		Preload("Shows", showTimes).
		Order("id ASC").
		Find(&artists).Error
	return artists, translate("search artists", err)
}

func (r *ArtistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	var a domain.Artist
	err := r.db.WithContext(ctx).
		Preload("Shows", showsChronological).
		Preload("Shows.Venue").
		First(&a, id).Error
	if err != nil {
		return nil, translate("get artist", err)
	}
	return &a, nil
}

func (r *ArtistRepository) Create(ctx context.Context, a *domain.Artist) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
	return translate("create artist", err)
}

func (r *ArtistRepository) Update(ctx context.Context, id int64, fn func(*domain.Artist) error) (*domain.Artist, error) {
	var a domain.Artist
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, id).Error; err != nil {
			return err
		}
		if err := fn(&a); err != nil {
			return err
		}
		a.ID = id
		return tx.Omit(clause.Associations).Save(&a).Error
	})
	if err != nil {
		return nil, translate("update artist", err)
	}
	return &a, nil
}

func (r *ArtistRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artist_id = ?", id).Delete(&domain.Show{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Artist{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate("delete artist", err)
}
