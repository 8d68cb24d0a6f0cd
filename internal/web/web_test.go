package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/domain"
)

func render(t *testing.T, name string, data map[string]any) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestTemplates_AllPagesParse(t *testing.T) {
	tmpl := Templates()
	for _, name := range []string{
		"home.html", "venues.html", "venue.html", "venue_form.html",
		"artists.html", "artist.html", "artist_form.html",
		"shows.html", "show_form.html", "search_venues.html", "search_artists.html", "error.html",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestTemplates_Notice(t *testing.T) {
	out := render(t, "home.html", map[string]any{"Notice": "Venue <b> was successfully listed!"})
	assert.Contains(t, out, `<p class="notice">Venue &lt;b&gt; was successfully listed!</p>`)

	out = render(t, "home.html", map[string]any{"Notice": ""})
	assert.NotContains(t, out, "notice")
}

func TestTemplates_Search(t *testing.T) {
	out := render(t, "search_venues.html", map[string]any{"Data": &domain.SearchResult{
		SearchTerm: "hop",
		Count:      1,
		Data:       []domain.Summary{{ID: 3, Name: "The Musical Hop", UpcomingCount: 2}},
	}})
	assert.Contains(t, out, `Number of search results for &#34;hop&#34;: 1`)
	assert.Contains(t, out, `<a href="/venues/3">The Musical Hop</a> (2 upcoming)`)
}

func TestTemplates_Forms(t *testing.T) {
	out := render(t, "venue_form.html", map[string]any{"Data": &domain.Venue{}})
	assert.Contains(t, out, `action="/venues/create"`)

	out = render(t, "venue_form.html", map[string]any{"Data": &domain.Venue{
		ID: 7, Name: "Park Square", Genres: []string{"Rock", "Jazz"}, SeekingTalent: true,
	}})
	assert.Contains(t, out, `action="/venues/7/edit"`)
	assert.Contains(t, out, `value="Rock,Jazz"`)
	assert.Contains(t, out, `value="y" checked`)

	out = render(t, "artist_form.html", map[string]any{"Data": &domain.Artist{ID: 2}})
	assert.Contains(t, out, `action="/artists/2/edit"`)
	assert.NotContains(t, out, "checked")
}

func TestTemplates_Error(t *testing.T) {
	out := render(t, "error.html", map[string]any{
		"Status":  404,
		"Code":    "NOT_FOUND",
		"Message": "Venue not found",
		"Details": nil,
	})
	assert.Contains(t, out, "<h1>404</h1>")
	assert.Contains(t, out, "Venue not found")

	out = render(t, "error.html", map[string]any{
		"Status":  400,
		"Code":    "VALIDATION_ERROR",
		"Message": "Please correct the highlighted fields.",
		"Details": map[string]string{"state": "len=2"},
	})
	assert.Contains(t, out, "<li>state: len=2</li>")
}

func TestFuncs_Datetime(t *testing.T) {
	fn := funcs["datetime"].(func(time.Time) string)
	assert.Equal(t, "Mon Jun 15, 2026 8:00PM UTC", fn(time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)))
}
