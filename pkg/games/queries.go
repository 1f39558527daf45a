package games

import (
	"sort"
	"strings"
	"time"

	"github.com/gamedex/gamedex/pkg/errors"
)

// ReleasedAfter returns all games released strictly after date, in
// ingestion order. An empty result is a valid result.
func (c *Catalog) ReleasedAfter(date time.Time) []Game {
	var out []Game
	for _, g := range c.games {
		if g.ReleasedAfter(date) {
			out = append(out, g)
		}
	}
	return out
}

// TopRated returns up to n games ordered by user review score descending.
// When n meets or exceeds the catalog size the whole catalog is returned,
// sorted. The sort is stable over ingestion order, so ties keep a
// deterministic order.
//
// Returns errors.ErrInvalidInput when n <= 0.
func (c *Catalog) TopRated(n int) ([]Game, error) {
	if n <= 0 {
		return nil, errors.NewValidationError("n", n, "must be positive")
	}

	sorted := c.All()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UserReview > sorted[j].UserReview
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted, nil
}

// YearsWithScoreAbove returns the distinct release years among games with
// a meta score of at least minimalScore. Years appear once each, in first
// encounter order. Empty when no game qualifies.
func (c *Catalog) YearsWithScoreAbove(minimalScore int) []int {
	seen := make(map[int]bool)
	var years []int
	for _, g := range c.games {
		if g.MetaScore < minimalScore {
			continue
		}
		year := g.ReleaseYear()
		if !seen[year] {
			seen[year] = true
			years = append(years, year)
		}
	}
	return years
}

// NamesReleasedIn returns the names of all games released in year, joined
// with ", ". Returns the empty string when no game matches.
func (c *Catalog) NamesReleasedIn(year int) string {
	var names []string
	for _, g := range c.games {
		if g.ReleaseYear() == year {
			names = append(names, g.Name)
		}
	}
	return strings.Join(names, ", ")
}

// HighestRatedOn returns the game with the maximum user review score on
// the given platform. Ties go to the earliest game in ingestion order, so
// repeated calls over the same catalog return the same winner.
//
// Returns errors.ErrNotFound when platform is empty or has no games.
func (c *Catalog) HighestRatedOn(platform string) (Game, error) {
	if platform == "" {
		return Game{}, errors.NewNotFoundError("platform", platform)
	}

	var best Game
	found := false
	for _, g := range c.games {
		if g.Platform != platform {
			continue
		}
		if !found || g.UserReview > best.UserReview {
			best = g
			found = true
		}
	}
	if !found {
		return Game{}, errors.NewNotFoundError("platform", platform)
	}
	return best, nil
}

// ByPlatform groups the catalog by platform name. Every platform present
// in the catalog appears as a key; per-platform games are deduplicated by
// value equality, preserving ingestion order. The grouping is recomputed
// on each call, never stored.
func (c *Catalog) ByPlatform() map[string][]Game {
	groups := make(map[string][]Game)
	seen := make(map[Game]bool)
	for _, g := range c.games {
		if seen[g] {
			continue
		}
		seen[g] = true
		groups[g.Platform] = append(groups[g.Platform], g)
	}
	return groups
}

// YearsActive returns the number of years the platform has been live: the
// span between the release years of its earliest and latest games, or 1
// when both fall in a single year. A platform alive for any part of one
// year counts as one active year.
//
// Returns 0 for a blank platform or one with no games in the catalog.
func (c *Catalog) YearsActive(platform string) int {
	if strings.TrimSpace(platform) == "" {
		return 0
	}

	startYear, endYear := 0, 0
	found := false
	for _, g := range c.games {
		if g.Platform != platform {
			continue
		}
		year := g.ReleaseYear()
		if !found {
			startYear, endYear = year, year
			found = true
			continue
		}
		if year < startYear {
			startYear = year
		}
		if year > endYear {
			endYear = year
		}
	}
	if !found {
		return 0
	}
	if startYear == endYear {
		return 1
	}
	return endYear - startYear
}

// SimilarTo returns every game whose summary contains all the given
// keywords as case-sensitive substrings. Matching is plain containment,
// not word-boundary matching: "boy" matches inside "boycott". Results
// keep ingestion order; an empty result is valid.
//
// Returns errors.ErrInvalidInput when no keywords are supplied or any
// keyword is blank.
func (c *Catalog) SimilarTo(keywords ...string) ([]Game, error) {
	if len(keywords) == 0 {
		return nil, errors.NewValidationError("keywords", keywords, "at least one keyword required")
	}
	for _, k := range keywords {
		if strings.TrimSpace(k) == "" {
			return nil, errors.NewValidationError("keywords", k, "keyword must not be blank")
		}
	}

	var out []Game
	for _, g := range c.games {
		if containsAll(g.Summary, keywords) {
			out = append(out, g)
		}
	}
	return out, nil
}

// containsAll reports whether s contains every keyword as a substring.
func containsAll(s string, keywords []string) bool {
	for _, k := range keywords {
		if !strings.Contains(s, k) {
			return false
		}
	}
	return true
}
