package games_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/gamedex/gamedex/pkg/errors"
	"github.com/gamedex/gamedex/pkg/games"
)

func TestParseGame(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		g, err := games.ParseGame("Bayonetta 2,Wii U,24-Oct-2014,An angel-hunting witch returns with twice the style,91,8.6")
		require.NoError(t, err)
		assert.Equal(t, "Bayonetta 2", g.Name)
		assert.Equal(t, "Wii U", g.Platform)
		assert.Equal(t, time.Date(2014, time.October, 24, 0, 0, 0, 0, time.UTC), g.ReleaseDate)
		assert.Equal(t, "An angel-hunting witch returns with twice the style", g.Summary)
		assert.Equal(t, 91, g.MetaScore)
		assert.InDelta(t, 8.6, g.UserReview, 1e-9)
	})

	t.Run("too few fields", func(t *testing.T) {
		_, err := games.ParseGame("Bayonetta 2,Wii U,24-Oct-2014")
		assert.True(t, pkgerrors.IsSkipLine(err))
	})

	t.Run("comma in summary shifts fields", func(t *testing.T) {
		// The split is a literal comma split, so a comma inside the
		// summary yields seven fields and a structural rejection.
		_, err := games.ParseGame("Bayonetta 2,Wii U,24-Oct-2014,Stylish, angel-hunting action,91,8.6")
		assert.True(t, pkgerrors.IsSkipLine(err))
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := games.ParseGame("Bayonetta 2,Wii U,2014-10-24,An angel-hunting witch returns,91,8.6")
		require.Error(t, err)
		assert.False(t, pkgerrors.IsSkipLine(err))
		var parseErr *pkgerrors.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "release_date", parseErr.Field)
	})

	t.Run("bad meta score", func(t *testing.T) {
		_, err := games.ParseGame("Bayonetta 2,Wii U,24-Oct-2014,An angel-hunting witch returns,best,8.6")
		var parseErr *pkgerrors.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "meta_score", parseErr.Field)
	})

	t.Run("bad user review", func(t *testing.T) {
		_, err := games.ParseGame("Bayonetta 2,Wii U,24-Oct-2014,An angel-hunting witch returns,91,great")
		var parseErr *pkgerrors.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "user_review", parseErr.Field)
	})

	t.Run("date normalized to UTC midnight", func(t *testing.T) {
		g, err := games.ParseGame("SoulCalibur,Dreamcast,08-Sep-1999,A tale of souls and swords,98,8.6")
		require.NoError(t, err)
		assert.Equal(t, time.UTC, g.ReleaseDate.Location())
		h, m, s := g.ReleaseDate.Clock()
		assert.Zero(t, h)
		assert.Zero(t, m)
		assert.Zero(t, s)
	})
}

func TestLoaderFunc(t *testing.T) {
	calls := 0
	loader := games.LoaderFunc(func(line string) (games.Game, error) {
		calls++
		return games.ParseGame(line)
	})
	_, err := loader.ParseGame("SoulCalibur,Dreamcast,08-Sep-1999,A tale of souls and swords,98,8.6")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
