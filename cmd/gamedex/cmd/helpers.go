package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gamedex/gamedex/internal/cmd/output"
	"github.com/gamedex/gamedex/internal/config"
	"github.com/gamedex/gamedex/pkg/errors"
	"github.com/gamedex/gamedex/pkg/games"
	"github.com/gamedex/gamedex/pkg/logging"
)

// loadCatalog opens the configured dataset and builds the catalog.
// A truncated read keeps the partial catalog and logs a warning;
// any other construction failure is returned to the caller.
func loadCatalog() (*games.Catalog, error) {
	path := config.DatasetPath()
	if path == "" {
		return nil, errors.New("no dataset configured: use --dataset or set GAMEDEX_DATASET")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", err)
	}
	defer f.Close()

	cat, err := games.New(f)
	if err != nil {
		if errors.IsIO(err) && cat != nil {
			logging.Warn().
				Err(err).
				Int("games", cat.Len()).
				Msg("Dataset read was truncated, continuing with partial catalog")
			return cat, nil
		}
		return nil, err
	}

	if skipped := cat.SkippedLines(); len(skipped) > 0 {
		logging.Warn().
			Ints("lines", skipped).
			Msg("Dropped malformed dataset lines")
	}

	return cat, nil
}

// render writes data to stdout in the configured output format.
func render(data any) error {
	format := output.DetectFormat(config.OutputFormat())
	formatter := output.NewFormatter(format)
	return formatter.Format(os.Stdout, data)
}

// renderGames writes a game list, using tabular layout for table output.
func renderGames(list []games.Game) error {
	format := output.DetectFormat(config.OutputFormat())
	if format != output.FormatTable {
		return output.NewFormatter(format).Format(os.Stdout, list)
	}

	data := output.Data{
		Headers: []string{"name", "platform", "release_date", "meta_score", "user_review"},
	}
	for _, g := range list {
		data.Rows = append(data.Rows, []string{
			g.Name,
			g.Platform,
			g.ReleaseDate.Format(games.DateFormat),
			strconv.Itoa(g.MetaScore),
			fmt.Sprintf("%.1f", g.UserReview),
		})
	}
	return output.NewFormatter(format).Format(os.Stdout, data)
}
