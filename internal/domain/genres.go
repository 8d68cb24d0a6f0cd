package domain

import "strings"

// NormalizeGenres trims entries and drops empty ones. Order and every other
// entry are kept as given.
func NormalizeGenres(in []string) []string {
	out := make([]string, 0, len(in))
	for _, g := range in {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

// SplitGenres reads the single comma-separated genres field of the HTML forms.
func SplitGenres(s string) []string {
	return NormalizeGenres(strings.Split(s, ","))
}
