package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/domain"
)

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "fyyur.db?_pragma=foreign_keys(1)", withForeignKeys("fyyur.db"))
	assert.Equal(t,
		"file:x?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		withForeignKeys("file:x?mode=memory&cache=shared"),
	)
	assert.Equal(t, "x.db?_pragma=foreign_keys(0)", withForeignKeys("x.db?_pragma=foreign_keys(0)"))
}

func TestIsPostgres(t *testing.T) {
	assert.True(t, IsPostgres("postgres://u:p@localhost/fyyur"))
	assert.True(t, IsPostgres("postgresql://u:p@localhost/fyyur"))
	assert.False(t, IsPostgres("fyyur.db"))
}

func TestCascadeDeleteThroughForeignKeys(t *testing.T) {
	db, err := Connect("file:database_cascade_test?mode=memory&cache=shared", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db))

	venue := domain.Venue{Name: "Hall", City: "Metropolis", State: "MT", Address: "1 Main St"}
	artist := domain.Artist{Name: "Band", City: "Metropolis", State: "MT"}
	require.NoError(t, db.Create(&venue).Error)
	require.NoError(t, db.Create(&artist).Error)
	require.NoError(t, db.Create(&domain.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: time.Now()}).Error)

	require.NoError(t, db.Delete(&domain.Venue{}, venue.ID).Error)

	var n int64
	require.NoError(t, db.Model(&domain.Show{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestForeignKeysRejectDanglingShow(t *testing.T) {
	db, err := Connect("file:database_fk_test?mode=memory&cache=shared", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db))

	err = db.Create(&domain.Show{ArtistID: 404, VenueID: 404, StartTime: time.Now()}).Error
	assert.Error(t, err)
}

func TestFoldFunction(t *testing.T) {
	db, err := Connect("file:database_fold_test?mode=memory&cache=shared", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	var got string
	require.NoError(t, db.Raw("SELECT "+FoldFunc+"(?)", "ÉLAN Straße").Row().Scan(&got))
	assert.Equal(t, "élan strasse", got)

	var null sql.NullString
	require.NoError(t, db.Raw("SELECT "+FoldFunc+"(NULL)").Row().Scan(&null))
	assert.False(t, null.Valid)
}
