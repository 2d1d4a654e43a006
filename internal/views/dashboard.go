// Package views computes the read-side projections shown on dashboards
// and list screens. Every function is pure over in-memory slices; the UI
// layer loads the data and renders the results.
package views

import (
	"fmt"

	"contactflow/internal/model"
)

// Stats summarizes a set of requests for the dashboard header cards.
type Stats struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int

	// AvgRating is the mean feedback rating formatted to one decimal,
	// "0.0" when no feedback exists.
	AvgRating string
}

// ComputeStats tallies the given requests.
func ComputeStats(requests []model.Request) Stats {
	stats := Stats{Total: len(requests)}
	for _, r := range requests {
		switch r.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusInProgress:
			stats.InProgress++
		case model.StatusCompleted:
			stats.Completed++
		}
	}
	stats.AvgRating = AverageRating(requests)
	return stats
}

// OwnedBy returns the requests submitted by the given client, in input
// order.
func OwnedBy(requests []model.Request, clientID string) []model.Request {
	owned := make([]model.Request, 0, len(requests))
	for _, r := range requests {
		if r.ClientID == clientID {
			owned = append(owned, r)
		}
	}
	return owned
}

// AverageRating formats the mean feedback rating across the given requests
// to one decimal place. Requests without feedback are excluded; with no
// rated request at all the result is "0.0".
func AverageRating(requests []model.Request) string {
	var sum, count int
	for _, r := range requests {
		if r.Feedback != nil {
			sum += r.Feedback.Rating
			count++
		}
	}
	if count == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(count))
}

// SatisfactionBuckets counts feedback submissions per rating. Index 0
// holds one-star counts, index 4 five-star. Ratings outside 1..5 are
// ignored.
func SatisfactionBuckets(requests []model.Request) [5]int {
	var buckets [5]int
	for _, r := range requests {
		if r.Feedback == nil {
			continue
		}
		if rating := r.Feedback.Rating; rating >= 1 && rating <= 5 {
			buckets[rating-1]++
		}
	}
	return buckets
}
