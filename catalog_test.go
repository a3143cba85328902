package alpenpass_test

import (
	"sort"
	"testing"

	"github.com/fwojciec/alpenpass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	t.Run("lists the known passes sorted by key", func(t *testing.T) {
		t.Parallel()

		entries := alpenpass.Catalog()

		require.Len(t, entries, 22)
		assert.True(t, sort.SliceIsSorted(entries, func(i, j int) bool {
			return entries[i].Key < entries[j].Key
		}))
		for _, e := range entries {
			assert.NotEmpty(t, e.Name, e.Key)
			assert.NotEmpty(t, e.URLPath, e.Key)
			assert.Contains(t, e.Route, " - ", e.Key)
			assert.Positive(t, e.Elevation, e.Key)
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()

		entries := alpenpass.Catalog()
		entries[0].Name = "changed"

		assert.Equal(t, "Albulapass", alpenpass.Catalog()[0].Name)
	})
}

func TestCatalogKeys(t *testing.T) {
	t.Parallel()

	keys := alpenpass.CatalogKeys()

	require.Len(t, keys, 22)
	assert.Equal(t, "albulapass", keys[0])
	assert.Equal(t, "umbrailpass", keys[len(keys)-1])
}

func TestLookupCatalog(t *testing.T) {
	t.Parallel()

	t.Run("finds entry by key", func(t *testing.T) {
		t.Parallel()

		e, err := alpenpass.LookupCatalog("grosser_st_bernhard")

		require.NoError(t, err)
		assert.Equal(t, "Grosser St. Bernhard", e.Name)
		assert.Equal(t, "grosser-st-bernhard", e.URLPath)
		assert.Equal(t, "Bourg-Saint-Pierre - Landesgrenze", e.Route)
	})

	t.Run("returns ENOTFOUND for unknown key", func(t *testing.T) {
		t.Parallel()

		_, err := alpenpass.LookupCatalog("stelvio")

		require.Error(t, err)
		assert.Equal(t, alpenpass.ENOTFOUND, alpenpass.ErrorCode(err))
	})
}

func TestCatalogEntry_MatchesName(t *testing.T) {
	t.Parallel()

	e, err := alpenpass.LookupCatalog("gotthardpass")
	require.NoError(t, err)

	assert.True(t, e.MatchesName("Gotthardpass"))
	assert.True(t, e.MatchesName("GOTTHARDPASS (2106 m)"))
	assert.True(t, e.MatchesName("gotthard"))
	assert.False(t, e.MatchesName("Furkapass"))
	assert.False(t, e.MatchesName(""))
}

func TestCatalogEntry_DetailURL(t *testing.T) {
	t.Parallel()

	e, err := alpenpass.LookupCatalog("san_bernardino")
	require.NoError(t, err)

	assert.Equal(t, "https://alpen-paesse.ch/en/alpenpaesse/san-bernardino", e.DetailURL(alpenpass.LanguageEnglish))
}

func TestValidateSelection(t *testing.T) {
	t.Parallel()

	t.Run("accepts known keys", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, alpenpass.ValidateSelection([]string{"furkapass", "simplon"}))
	})

	t.Run("rejects empty selection", func(t *testing.T) {
		t.Parallel()

		err := alpenpass.ValidateSelection(nil)

		require.Error(t, err)
		assert.Equal(t, alpenpass.EINVALID, alpenpass.ErrorCode(err))
	})

	t.Run("rejects unknown key", func(t *testing.T) {
		t.Parallel()

		err := alpenpass.ValidateSelection([]string{"furkapass", "stelvio"})

		require.Error(t, err)
		assert.Equal(t, alpenpass.EINVALID, alpenpass.ErrorCode(err))
		assert.Contains(t, alpenpass.ErrorMessage(err), "stelvio")
	})
}
