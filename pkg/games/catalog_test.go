package games_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	pkgerrors "github.com/gamedex/gamedex/pkg/errors"
	"github.com/gamedex/gamedex/pkg/games"
)

// fixtureCSV mirrors a 10-row Metacritic-style dataset: 7 platforms,
// PlayStation with a single game, Xbox One spanning 2014-2018.
const fixtureCSV = `name,platform,release_date,summary,meta_score,user_review
The Legend of Zelda: Ocarina of Time,Nintendo 64,23-Nov-1998,As a young boy Link is tricked by Ganondorf the king of the Gerudo thieves who seeks the Triforce,99,9.1
Tony Hawk's Pro Skater 2,PlayStation,20-Sep-2000,Skate as legendary pro Tony Hawk and grind your way through career mode,98,7.4
SoulCalibur,Dreamcast,08-Sep-1999,A tale of souls and swords eternally retold in this weapons-based fighter,98,8.6
Grand Theft Auto IV,Xbox 360,29-Apr-2008,Niko Bellic arrives in Liberty City chasing the American dream,98,7.9
Super Mario Galaxy,Wii,12-Nov-2007,Mario blasts off on a grand tour of the cosmos leaping from planet to planet,97,9.0
Grand Theft Auto V,PlayStation 3,17-Sep-2013,Three very different criminals plot their own chances of survival in Los Santos,97,8.3
Grand Theft Auto V,Xbox One,18-Nov-2014,Three very different criminals plot their own chances of survival in Los Santos,97,7.8
Forza Horizon 2,Xbox One,30-Sep-2014,Race through a wide-open world of southern Europe in the ultimate celebration of speed,86,7.9
Super Mario Galaxy 2,Wii,23-May-2010,Mario returns to the cosmos with Yoshi for gravity-bending platforming,97,8.4
Red Dead Redemption 2,Xbox One,26-Oct-2018,Arthur Morgan and the Van der Linde gang rob and fight their way across America,97,8.0`

// fixtureCatalog builds a catalog from fixtureCSV, failing the test on error.
func fixtureCatalog(t *testing.T) *games.Catalog {
	t.Helper()
	cat, err := games.New(strings.NewReader(fixtureCSV))
	if err != nil {
		t.Fatalf("Failed to build fixture catalog: %v", err)
	}
	return cat
}

func TestNew(t *testing.T) {
	t.Run("FullDataset", func(t *testing.T) {
		cat := fixtureCatalog(t)
		if cat.Len() != 10 {
			t.Fatalf("Expected 10 games, got %d", cat.Len())
		}

		all := cat.All()
		if all[0].Name != "The Legend of Zelda: Ocarina of Time" {
			t.Errorf("Expected first game to keep ingestion order, got %q", all[0].Name)
		}
		if all[9].Name != "Red Dead Redemption 2" {
			t.Errorf("Expected last game to keep ingestion order, got %q", all[9].Name)
		}
		if got := all[0].ReleaseYear(); got != 1998 {
			t.Errorf("Expected release year 1998, got %d", got)
		}
	})

	t.Run("EmptySource", func(t *testing.T) {
		cat, err := games.New(strings.NewReader(""))
		if err != nil {
			t.Fatalf("Empty source should build an empty catalog: %v", err)
		}
		if cat.Len() != 0 {
			t.Errorf("Expected empty catalog, got %d games", cat.Len())
		}
		if len(cat.All()) != 0 {
			t.Errorf("All() on empty catalog should be empty")
		}
	})

	t.Run("HeaderOnly", func(t *testing.T) {
		cat, err := games.New(strings.NewReader("name,platform,release_date,summary,meta_score,user_review"))
		if err != nil {
			t.Fatalf("Header-only source should build an empty catalog: %v", err)
		}
		if cat.Len() != 0 {
			t.Errorf("Expected empty catalog, got %d games", cat.Len())
		}
	})

	t.Run("HeaderDiscardedUnconditionally", func(t *testing.T) {
		// Even a header that parses as a valid row must be dropped.
		src := "Doom,PC,10-Dec-1993,Rip and tear,85,8.9\nQuake,PC,22-Jun-1996,Lovecraftian shooter,94,8.7"
		cat, err := games.New(strings.NewReader(src))
		if err != nil {
			t.Fatalf("Unexpected construction error: %v", err)
		}
		if cat.Len() != 1 {
			t.Fatalf("Expected 1 game after header discard, got %d", cat.Len())
		}
		if cat.All()[0].Name != "Quake" {
			t.Errorf("Expected the first line to be discarded as header")
		}
	})

	t.Run("StructuralRejectionSkipsLine", func(t *testing.T) {
		src := "header\n" +
			"Okami,PlayStation 2,19-Sep-2006,A sun goddess in wolf form restores a cursed land,93,9.1\n" +
			"this line has too few fields\n" +
			"Journey,PlayStation 3,13-Mar-2012,A robed figure crosses a vast desert toward a mountain,92,8.8"
		cat, err := games.New(strings.NewReader(src))
		if err != nil {
			t.Fatalf("Structural rejection must not fail construction: %v", err)
		}
		if cat.Len() != 2 {
			t.Errorf("Expected 2 games, got %d", cat.Len())
		}
		skipped := cat.SkippedLines()
		if len(skipped) != 1 || skipped[0] != 3 {
			t.Errorf("Expected skipped line [3], got %v", skipped)
		}
	})

	t.Run("ContentInvalidAbortsConstruction", func(t *testing.T) {
		src := "header\n" +
			"Okami,PlayStation 2,19-Sep-2006,A sun goddess in wolf form restores a cursed land,93,9.1\n" +
			"Journey,PlayStation 3,32-Foo-2012,A robed figure crosses a vast desert toward a mountain,92,8.8"
		cat, err := games.New(strings.NewReader(src))
		if err == nil {
			t.Fatal("Expected construction to fail on unparseable date")
		}
		if cat != nil {
			t.Error("No partial catalog may be exposed on content-invalid input")
		}
		var parseErr *pkgerrors.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("Expected *errors.ParseError, got %T", err)
		}
		if parseErr.Line != 3 {
			t.Errorf("Expected failure at line 3, got %d", parseErr.Line)
		}
		if parseErr.Field != "release_date" {
			t.Errorf("Expected release_date field, got %q", parseErr.Field)
		}
	})

	t.Run("BadScoreAbortsConstruction", func(t *testing.T) {
		src := "header\nOkami,PlayStation 2,19-Sep-2006,A sun goddess restores a cursed land,ninety-three,9.1"
		if _, err := games.New(strings.NewReader(src)); err == nil {
			t.Fatal("Expected construction to fail on unparseable meta score")
		}
	})

	t.Run("ReadFailureKeepsPartialCatalog", func(t *testing.T) {
		full := "header\n" +
			"Okami,PlayStation 2,19-Sep-2006,A sun goddess in wolf form restores a cursed land,93,9.1\n" +
			"Journey,PlayStation 3,13-Mar-2012,A robed figure crosses a vast desert"
		cat, err := games.New(&failingReader{r: strings.NewReader(full)})
		if err == nil {
			t.Fatal("Read failure must be observable by the caller")
		}
		if !pkgerrors.IsIO(err) {
			t.Fatalf("Expected an IO error, got %T: %v", err, err)
		}
		if cat == nil {
			t.Fatal("Partial catalog must still be returned on read failure")
		}
		if cat.Len() != 1 {
			t.Errorf("Expected 1 game parsed before the failure, got %d", cat.Len())
		}
	})

	t.Run("CustomLoader", func(t *testing.T) {
		upper := games.LoaderFunc(func(line string) (games.Game, error) {
			g, err := games.ParseGame(line)
			if err != nil {
				return games.Game{}, err
			}
			g.Platform = strings.ToUpper(g.Platform)
			return g, nil
		})
		cat, err := games.New(strings.NewReader(fixtureCSV), games.WithLoader(upper))
		if err != nil {
			t.Fatalf("Unexpected construction error: %v", err)
		}
		if cat.All()[0].Platform != "NINTENDO 64" {
			t.Errorf("Custom loader was not applied, got %q", cat.All()[0].Platform)
		}
	})
}

func TestAllReturnsCopy(t *testing.T) {
	cat := fixtureCatalog(t)
	all := cat.All()
	all[0].Name = "mutated"
	if cat.All()[0].Name == "mutated" {
		t.Error("All() must not expose the catalog's internal sequence")
	}
}

// failingReader yields everything from r, then an error instead of EOF.
type failingReader struct {
	r io.Reader
}

func (f *failingReader) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	if err == io.EOF {
		return n, errors.New("device gone")
	}
	return n, err
}
