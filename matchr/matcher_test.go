package matchr_test

import (
	"testing"

	"github.com/fwojciec/alpenpass"
	"github.com/fwojciec/alpenpass/matchr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(t *testing.T, key string) alpenpass.CatalogEntry {
	t.Helper()
	e, err := alpenpass.LookupCatalog(key)
	require.NoError(t, err)
	return e
}

func TestMatcher_MatchName(t *testing.T) {
	t.Parallel()

	m := matchr.NewMatcher(matchr.DefaultThreshold)

	tests := []struct {
		key   string
		name  string
		match bool
	}{
		{key: "spluegenpass", name: "Splugenpass", match: true},
		{key: "spluegenpass", name: "Spluegenpass", match: true},
		{key: "flueelapass", name: "Flüela-Pass", match: true},
		{key: "san_bernardino", name: "SanBernardino", match: true},
		{key: "gotthardpass", name: "GOTTHARDPASS", match: true},
		{key: "glaubenbergpass", name: "Glaubenbielenpass", match: false},
		{key: "albulapass", name: "Flüelapass", match: false},
		{key: "furkapass", name: "", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.match, m.MatchName(entry(t, tt.key), tt.name))
		})
	}
}

func TestMatcher_Similarity(t *testing.T) {
	t.Parallel()

	t.Run("identical after normalization", func(t *testing.T) {
		t.Parallel()

		m := matchr.NewMatcher(0)

		assert.InDelta(t, 1.0, m.Similarity("San Bernardino", "san-bernardino"), 1e-9)
	})

	t.Run("zero for empty input", func(t *testing.T) {
		t.Parallel()

		m := matchr.NewMatcher(0)

		assert.Zero(t, m.Similarity("", "Furkapass"))
		assert.Zero(t, m.Similarity("--", "Furkapass"))
	})
}

func TestNewMatcher(t *testing.T) {
	t.Parallel()

	t.Run("falls back to default threshold", func(t *testing.T) {
		t.Parallel()

		strict := matchr.NewMatcher(2)

		assert.False(t, strict.MatchName(entry(t, "glaubenbergpass"), "Glaubenbielenpass"))
		assert.True(t, strict.MatchName(entry(t, "spluegenpass"), "Splugenpass"))
	})

	t.Run("lower threshold accepts looser matches", func(t *testing.T) {
		t.Parallel()

		loose := matchr.NewMatcher(0.9)

		assert.True(t, loose.MatchName(entry(t, "glaubenbergpass"), "Glaubenbielenpass"))
	})
}
