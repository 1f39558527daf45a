package games

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gamedex/gamedex/pkg/errors"
)

// DateFormat is the release-date layout used by the dataset,
// e.g. "10-Nov-2014".
const DateFormat = "02-Jan-2006"

// fieldCount is the exact number of comma-delimited fields per line:
// name, platform, release date, summary, meta score, user review.
const fieldCount = 6

// Loader converts one raw dataset line into a Game.
//
// Implementations signal two distinct failure classes:
//   - errors.ErrSkipLine for a structurally malformed line (wrong field
//     count); the caller drops the line and continues;
//   - *errors.ParseError for content that cannot be interpreted (bad date
//     or score); the caller aborts ingestion.
type Loader interface {
	ParseGame(line string) (Game, error)
}

// LoaderFunc allows plain functions to implement Loader.
type LoaderFunc func(line string) (Game, error)

// ParseGame implements the Loader interface.
func (f LoaderFunc) ParseGame(line string) (Game, error) {
	return f(line)
}

// ParseGame parses one comma-delimited dataset line into a Game.
//
// The split is a literal comma split with no quoting support: summaries
// containing commas will produce the wrong field count and the line will
// be rejected as structural. That is an accepted limitation of the
// dataset format.
func ParseGame(line string) (Game, error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return Game{}, fmt.Errorf("%d fields: %w", len(fields), errors.ErrSkipLine)
	}

	releaseDate, err := time.ParseInLocation(DateFormat, fields[2], time.UTC)
	if err != nil {
		return Game{}, errors.WrapParse("release_date", fields[2], err)
	}

	metaScore, err := strconv.Atoi(fields[4])
	if err != nil {
		return Game{}, errors.WrapParse("meta_score", fields[4], err)
	}

	userReview, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return Game{}, errors.WrapParse("user_review", fields[5], err)
	}

	return Game{
		Name:        fields[0],
		Platform:    fields[1],
		ReleaseDate: releaseDate,
		Summary:     fields[3],
		MetaScore:   metaScore,
		UserReview:  userReview,
	}, nil
}

// DefaultLoader is the Loader used by New. It parses the standard
// six-field comma-delimited format via ParseGame.
var DefaultLoader Loader = LoaderFunc(ParseGame)
