package entity

import "time"

// SearchEntry is one city lookup kept in the search history.
type SearchEntry struct {
	City      string    `json:"city"`
	Timestamp time.Time `json:"timestamp"`
	Success   bool      `json:"success"`
}
