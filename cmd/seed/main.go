package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"fyyur/internal/config"
	"fyyur/internal/database"
	"fyyur/internal/domain"
	"fyyur/internal/logger"
	"fyyur/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("prod", "error")
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.Env, cfg.Log.Level)

	db, err := database.Connect(cfg.Database.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection failed")
	}
	defer database.Close(db)

	log.Info().Msg("running migrations")
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	// shows go first so the cleanup never trips a foreign key
	log.Info().Msg("cleaning old data")
	for _, table := range []string{"shows", "artists", "venues"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("cleanup failed")
		}
	}

	ctx := context.Background()
	venues := seedVenues(ctx, log, repository.NewVenueRepository(db))
	artists := seedArtists(ctx, log, repository.NewArtistRepository(db))
	seedShows(ctx, log, repository.NewShowRepository(db), venues, artists)

	log.Info().
		Int("venues", len(venues)).
		Int("artists", len(artists)).
		Msg("seed complete")
}

func seedVenues(ctx context.Context, log zerolog.Logger, repo *repository.VenueRepository) []domain.Venue {
	venues := []domain.Venue{
		{
			Name:               "The Musical Hop",
			Genres:             []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
			Address:            "1015 Folsom Street",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "123-123-1234",
			Website:            "https://www.themusicalhop.com",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
		},
		{
			Name:         "The Dueling Pianos Bar",
			Genres:       []string{"Classical", "R&B", "Hip-Hop"},
			Address:      "335 Delancey Street",
			City:         "New York",
			State:        "NY",
			Phone:        "914-003-1132",
			Website:      "https://www.theduelingpianos.com",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=750",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
			Address:      "34 Whiskey Moore Ave",
			City:         "San Francisco",
			State:        "CA",
			Phone:        "415-000-1234",
			Website:      "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
		},
	}

	for i := range venues {
		if err := repo.Create(ctx, &venues[i]); err != nil {
			log.Fatal().Err(err).Str("venue", venues[i].Name).Msg("create venue failed")
		}
	}
	log.Info().Int("count", len(venues)).Msg("venues created")
	return venues
}

func seedArtists(ctx context.Context, log zerolog.Logger, repo *repository.ArtistRepository) []domain.Artist {
	artists := []domain.Artist{
		{
			Name:               "Guns N Petals",
			Genres:             []string{"Rock n Roll"},
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Website:            "https://www.gunsnpetalsband.com",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
		},
		{
			Name:         "Matt Quevedo",
			Genres:       []string{"Jazz"},
			City:         "New York",
			State:        "NY",
			Phone:        "300-400-5000",
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
		},
		{
			Name:      "The Wild Sax Band",
			Genres:    []string{"Jazz", "Classical"},
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
		},
	}

	for i := range artists {
		if err := repo.Create(ctx, &artists[i]); err != nil {
			log.Fatal().Err(err).Str("artist", artists[i].Name).Msg("create artist failed")
		}
	}
	log.Info().Int("count", len(artists)).Msg("artists created")
	return artists
}

// seedShows spreads shows on both sides of now so every detail page has past
// and upcoming rows.
func seedShows(ctx context.Context, log zerolog.Logger, repo *repository.ShowRepository, venues []domain.Venue, artists []domain.Artist) {
	now := time.Now().UTC().Truncate(time.Hour)
	plan := []struct {
		venue, artist int
		offset        time.Duration
	}{
		{0, 0, -30 * 24 * time.Hour},
		{2, 1, -7 * 24 * time.Hour},
		{2, 2, 3 * 24 * time.Hour},
		{2, 2, 10 * 24 * time.Hour},
		{1, 2, 17 * 24 * time.Hour},
	}

	for _, p := range plan {
		s := &domain.Show{
			VenueID:   venues[p.venue].ID,
			ArtistID:  artists[p.artist].ID,
			StartTime: now.Add(p.offset),
		}
		if err := repo.Create(ctx, s); err != nil {
			log.Fatal().Err(err).Msg("create show failed")
		}
	}
	log.Info().Int("count", len(plan)).Msg("shows created")
}
