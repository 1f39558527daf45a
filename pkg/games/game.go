// Package games provides the in-memory game catalog and its query operations.
// A Catalog is built once from a comma-delimited line stream and is immutable
// afterwards; every query is a pure read over the loaded record sequence.
//
// Example usage:
//
//	f, err := os.Open("all_games.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	catalog, err := games.New(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	top, err := catalog.TopRated(10)
package games

import (
	"time"
)

// Game represents one catalog entry. It is a plain value: two games parsed
// from identical fields compare equal, which is what the per-platform set
// semantics of Catalog.ByPlatform rely on.
type Game struct {
	Name        string    `json:"name" yaml:"name"`                 // Display name (never empty for loaded games)
	Platform    string    `json:"platform" yaml:"platform"`         // Release platform, the grouping key
	ReleaseDate time.Time `json:"release_date" yaml:"release_date"` // Calendar date at UTC midnight, no time component
	Summary     string    `json:"summary" yaml:"summary"`           // Free text searched by SimilarTo
	MetaScore   int       `json:"meta_score" yaml:"meta_score"`     // Critic score, typically 0-100 but not clamped
	UserReview  float64   `json:"user_review" yaml:"user_review"`   // Audience score, not clamped
}

// ReleaseYear returns the calendar year of the game's release date.
func (g Game) ReleaseYear() int {
	return g.ReleaseDate.Year()
}

// ReleasedAfter reports whether the game was released strictly after date.
func (g Game) ReleasedAfter(date time.Time) bool {
	return g.ReleaseDate.After(date)
}
