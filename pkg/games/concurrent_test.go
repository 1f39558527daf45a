package games_test

import (
	"sync"
	"testing"
	"time"
)

// TestConcurrentQueries verifies that a constructed catalog is safe for
// unsynchronized concurrent reads: every query is a pure scan over the
// immutable sequence. Run with -race.
func TestConcurrentQueries(t *testing.T) {
	cat := fixtureCatalog(t)
	cutoff := time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)

	const goroutines = 16
	const iterations = 50

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				if got := cat.All(); len(got) != 10 {
					t.Errorf("All() returned %d games", len(got))
					return
				}
				cat.ReleasedAfter(cutoff)
				if _, err := cat.TopRated(3); err != nil {
					t.Errorf("TopRated failed: %v", err)
					return
				}
				cat.YearsWithScoreAbove(90)
				cat.NamesReleasedIn(2014)
				if _, err := cat.HighestRatedOn("Xbox One"); err != nil {
					t.Errorf("HighestRatedOn failed: %v", err)
					return
				}
				cat.ByPlatform()
				cat.YearsActive("Wii")
				if _, err := cat.SimilarTo("cosmos"); err != nil {
					t.Errorf("SimilarTo failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
