package domain

import (
	"sort"
	"time"
)

// IsUpcoming reports whether a show starting at start belongs to the upcoming
// partition at now. The boundary instant counts as upcoming, so a show is
// always in exactly one of the two partitions.
func IsUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}

// PartitionShows splits shows into past and upcoming relative to now. Both
// halves are ordered by start time, then id. The input slice is not modified.
func PartitionShows(shows []Show, now time.Time) (past, upcoming []Show) {
	sorted := make([]Show, len(shows))
	copy(sorted, shows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].StartTime.Equal(sorted[j].StartTime) {
			return sorted[i].StartTime.Before(sorted[j].StartTime)
		}
		return sorted[i].ID < sorted[j].ID
	})

	past = make([]Show, 0, len(sorted))
	upcoming = make([]Show, 0, len(sorted))
	for _, s := range sorted {
		if IsUpcoming(s.StartTime, now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}

func CountUpcoming(shows []Show, now time.Time) int {
	n := 0
	for _, s := range shows {
		if IsUpcoming(s.StartTime, now) {
			n++
		}
	}
	return n
}
