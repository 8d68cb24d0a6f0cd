package show

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fyyur/internal/domain"
)

type MockShowStore struct {
	mock.Mock
}

func (m *MockShowStore) ListAll(ctx context.Context) ([]domain.Show, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Show), args.Error(1)
}

func (m *MockShowStore) Create(ctx context.Context, s *domain.Show) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func TestParseStartTime(t *testing.T) {
	want := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2026-06-15T20:00:00Z", want, true},
		{"2026-06-15T22:00:00+02:00", want, true},
		{"2026-06-15T20:00:00", want, true},
		{"2026-06-15T20:00", want, true},
		{"2026-06-15 20:00:00", want, true},
		{" 2026-06-15 20:00 ", want, true},
		{"15/06/2026 20:00", time.Time{}, false},
		{"tomorrow", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseStartTime(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestService_List(t *testing.T) {
	store := new(MockShowStore)
	start := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)
	store.On("ListAll", mock.Anything).Return([]domain.Show{
		{ID: 1, ArtistID: 4, VenueID: 1, StartTime: start,
			Artist: &domain.Artist{ID: 4, Name: "Guns N Petals", ImageLink: "https://img"},
			Venue:  &domain.Venue{ID: 1, Name: "The Musical Hop"}},
	}, nil)

	list, err := NewService(store).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, Listing{
		VenueID:         1,
		VenueName:       "The Musical Hop",
		ArtistID:        4,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://img",
		StartTime:       start,
	}, list[0])
}

func TestService_List_Empty(t *testing.T) {
	store := new(MockShowStore)
	store.On("ListAll", mock.Anything).Return(nil, nil)

	list, err := NewService(store).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestService_Create(t *testing.T) {
	store := new(MockShowStore)
	store.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Show) bool {
		return s.ArtistID == 4 && s.VenueID == 1 &&
			s.StartTime.Equal(time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC))
	})).Return(nil)

	sh, err := NewService(store).Create(context.Background(), ShowRequest{ArtistID: 4, VenueID: 1, StartTime: "2026-06-15T20:00"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), sh.ArtistID)
	store.AssertExpectations(t)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   ShowRequest
		field string
	}{
		{"missing artist", ShowRequest{VenueID: 1, StartTime: "2026-06-15T20:00"}, "artist_id"},
		{"negative venue", ShowRequest{ArtistID: 1, VenueID: -3, StartTime: "2026-06-15T20:00"}, "venue_id"},
		{"missing start", ShowRequest{ArtistID: 1, VenueID: 1}, "start_time"},
		{"malformed start", ShowRequest{ArtistID: 1, VenueID: 1, StartTime: "next friday"}, "start_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockShowStore)
			_, err := NewService(store).Create(context.Background(), tt.req)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tt.field)
			store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Create_StoreError(t *testing.T) {
	store := new(MockShowStore)
	fault := errors.New("connection reset")
	store.On("Create", mock.Anything, mock.Anything).Return(fault)

	_, err := NewService(store).Create(context.Background(), ShowRequest{ArtistID: 1, VenueID: 1, StartTime: "2026-06-15 20:00"})
	assert.ErrorIs(t, err, fault)
}
