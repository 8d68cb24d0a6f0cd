package show

import (
	"context"

	"fyyur/internal/domain"
	"fyyur/internal/pkg/validator"
)

type Store interface {
	ListAll(ctx context.Context) ([]domain.Show, error)
	Create(ctx context.Context, s *domain.Show) error
}

type Service struct {
	shows Store
}

func NewService(shows Store) *Service {
	return &Service{shows: shows}
}

// List returns every show, past and upcoming, by start time.
func (s *Service) List(ctx context.Context) ([]Listing, error) {
	shows, err := s.shows.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Listing, 0, len(shows))
	for _, sh := range shows {
		out = append(out, newListing(sh))
	}
	return out, nil
}

// Create records a show. Unknown artist or venue ids come back from the store
// as validation errors on artist_id and venue_id.
func (s *Service) Create(ctx context.Context, req ShowRequest) (*domain.Show, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}
	start, ok := parseStartTime(req.StartTime)
	if !ok {
		return nil, domain.NewValidationError("start_time", "unrecognized date and time")
	}

	sh := &domain.Show{ArtistID: req.ArtistID, VenueID: req.VenueID, StartTime: start}
	if err := s.shows.Create(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}
