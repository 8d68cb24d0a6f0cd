package venue

import (
	"context"
	"time"

	"fyyur/internal/domain"
	"fyyur/internal/pkg/validator"
)

type Store interface {
	ListAll(ctx context.Context) ([]domain.Venue, error)
	SearchByName(ctx context.Context, term string) ([]domain.Venue, error)
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	Create(ctx context.Context, v *domain.Venue) error
	Update(ctx context.Context, id int64, fn func(*domain.Venue) error) (*domain.Venue, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	venues Store
	now    func() time.Time
}

func NewService(venues Store) *Service {
	return &Service{venues: venues, now: time.Now}
}

// Directory groups every venue by (city, state). Areas and their venues keep
// the store order: state, city, then id.
func (s *Service) Directory(ctx context.Context) ([]Area, error) {
	venues, err := s.venues.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	areas := make([]Area, 0)
	index := make(map[[2]string]int)
	for _, v := range venues {
		key := [2]string{v.City, v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, domain.Summary{
			ID:            v.ID,
			Name:          v.Name,
			UpcomingCount: domain.CountUpcoming(v.Shows, now),
		})
	}
	return areas, nil
}

func (s *Service) Search(ctx context.Context, term string) (*domain.SearchResult, error) {
	venues, err := s.venues.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	now := s.now()
	res := &domain.SearchResult{SearchTerm: term, Data: make([]domain.Summary, 0, len(venues))}
	for _, v := range venues {
		res.Data = append(res.Data, domain.Summary{
			ID:            v.ID,
			Name:          v.Name,
			UpcomingCount: domain.CountUpcoming(v.Shows, now),
		})
	}
	res.Count = len(res.Data)
	return res, nil
}

func (s *Service) Detail(ctx context.Context, id int64) (*Detail, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newDetail(v, s.now()), nil
}

// Get returns the stored venue for the edit form.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Venue, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Shows = nil
	return v, nil
}

func (s *Service) Create(ctx context.Context, req VenueRequest) (*Detail, error) {
	if err := check(&req); err != nil {
		return nil, err
	}

	v := &domain.Venue{}
	req.apply(v)
	if err := s.venues.Create(ctx, v); err != nil {
		return nil, err
	}
	return newDetail(v, s.now()), nil
}

func (s *Service) Update(ctx context.Context, id int64, req VenueRequest) (*Detail, error) {
	if err := check(&req); err != nil {
		return nil, err
	}

	if _, err := s.venues.Update(ctx, id, func(v *domain.Venue) error {
		req.apply(v)
		return nil
	}); err != nil {
		return nil, err
	}
	return s.Detail(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.venues.Delete(ctx, id)
}

func check(req *VenueRequest) error {
	req.normalize()
	if fields := validator.Validate(req); fields != nil {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
