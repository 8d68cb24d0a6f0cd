package artist

import (
	"context"
	"time"

	"fyyur/internal/domain"
	"fyyur/internal/pkg/validator"
)

type Store interface {
	ListSummaries(ctx context.Context) ([]domain.ArtistSummary, error)
	SearchByName(ctx context.Context, term string) ([]domain.Artist, error)
	GetByID(ctx context.Context, id int64) (*domain.Artist, error)
	Create(ctx context.Context, a *domain.Artist) error
	Update(ctx context.Context, id int64, fn func(*domain.Artist) error) (*domain.Artist, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	artists Store
	now     func() time.Time
}

func NewService(artists Store) *Service {
	return &Service{artists: artists, now: time.Now}
}

func (s *Service) Directory(ctx context.Context) ([]domain.ArtistSummary, error) {
	list, err := s.artists.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.ArtistSummary{}
	}
	return list, nil
}

func (s *Service) Search(ctx context.Context, term string) (*domain.SearchResult, error) {
	artists, err := s.artists.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	now := s.now()
	data := make([]domain.Summary, 0, len(artists))
	for _, a := range artists {
		data = append(data, domain.Summary{
			ID:            a.ID,
			Name:          a.Name,
			UpcomingCount: domain.CountUpcoming(a.Shows, now),
		})
	}
	return &domain.SearchResult{SearchTerm: term, Count: len(data), Data: data}, nil
}

func (s *Service) Detail(ctx context.Context, id int64) (*Detail, error) {
	a, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newDetail(a, s.now()), nil
}

// Get returns the stored artist for the edit form.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Artist, error) {
	a, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Shows = nil
	return a, nil
}

func (s *Service) Create(ctx context.Context, req ArtistRequest) (*Detail, error) {
	if err := check(&req); err != nil {
		return nil, err
	}

	a := &domain.Artist{}
	req.apply(a)
	if err := s.artists.Create(ctx, a); err != nil {
		return nil, err
	}
	return newDetail(a, s.now()), nil
}

func (s *Service) Update(ctx context.Context, id int64, req ArtistRequest) (*Detail, error) {
	if err := check(&req); err != nil {
		return nil, err
	}

	_, err := s.artists.Update(ctx, id, func(a *domain.Artist) error {
		req.apply(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Detail(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.artists.Delete(ctx, id)
}

func check(req *ArtistRequest) error {
	req.normalize()
	if fields := validator.Validate(req); fields != nil {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
