package alpenpass_test

import (
	"testing"

	"github.com/fwojciec/alpenpass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestPass_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires a name", func(t *testing.T) {
		t.Parallel()

		p := &alpenpass.Pass{Status: "Open"}

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, alpenpass.EINVALID, alpenpass.ErrorCode(err))
	})

	t.Run("accepts a named pass", func(t *testing.T) {
		t.Parallel()

		p := &alpenpass.Pass{Name: "Furkapass"}

		assert.NoError(t, p.Validate())
	})
}

func TestPass_String(t *testing.T) {
	t.Parallel()

	t.Run("includes temperature", func(t *testing.T) {
		t.Parallel()

		p := &alpenpass.Pass{
			Name:        "Albulapass",
			Route:       "Preda - La Punt Chamues-ch",
			Status:      "Open, no restrictions",
			Temperature: ptr(12.5),
		}

		assert.Equal(t, "Albulapass (Preda - La Punt Chamues-ch): Open, no restrictions - 12.5°C", p.String())
	})

	t.Run("shows N/A without temperature", func(t *testing.T) {
		t.Parallel()

		p := &alpenpass.Pass{Name: "Furkapass", Route: "Realp - Oberwald", Status: alpenpass.UnknownStatus}

		assert.Equal(t, "Furkapass (Realp - Oberwald): Unknown - N/A", p.String())
	})
}

func TestPass_Predicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status         string
		open           bool
		hasRestriction bool
	}{
		{status: "Open, no restrictions", open: true, hasRestriction: false},
		{status: "Offen, keine Einschränkungen", open: true, hasRestriction: false},
		{status: "Open, restrictions for trucks", open: true, hasRestriction: true},
		{status: "Closed - Winter, chains required", open: false, hasRestriction: true},
		{status: "Offen", open: true, hasRestriction: false},
		{status: "Befahrbar", open: true, hasRestriction: false},
		{status: "Wintersperre, gesperrt", open: false, hasRestriction: true},
		{status: "Schneeketten obligatorisch", open: false, hasRestriction: true},
		{status: "Einschränkung: Nachtsperre", open: false, hasRestriction: true},
		{status: alpenpass.UnknownStatus, open: false, hasRestriction: false},
		{status: "", open: false, hasRestriction: false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			t.Parallel()

			p := &alpenpass.Pass{Name: "Test", Status: tt.status}

			assert.Equal(t, tt.open, p.IsOpen(), "IsOpen")
			assert.Equal(t, tt.hasRestriction, p.HasRestrictions(), "HasRestrictions")
		})
	}
}

func TestPass_Predicates_OpenWithoutRestrictionKeywords(t *testing.T) {
	t.Parallel()

	p := &alpenpass.Pass{Name: "Gotthardpass", Status: "Open"}

	assert.True(t, p.IsOpen())
	assert.False(t, p.HasRestrictions())
}

func TestFilterOpen(t *testing.T) {
	t.Parallel()

	passes := []*alpenpass.Pass{
		{Name: "Albulapass", Status: "Open"},
		{Name: "Furkapass", Status: "Closed"},
		{Name: "Julierpass", Status: "Offen"},
	}

	open := alpenpass.FilterOpen(passes)

	require.Len(t, open, 2)
	assert.Equal(t, "Albulapass", open[0].Name)
	assert.Equal(t, "Julierpass", open[1].Name)
}

func TestFilterRestricted(t *testing.T) {
	t.Parallel()

	t.Run("keeps passes with restriction keywords in order", func(t *testing.T) {
		t.Parallel()

		passes := []*alpenpass.Pass{
			{Name: "Albulapass", Status: "Open"},
			{Name: "Furkapass", Status: "Closed"},
			{Name: "Julierpass", Status: "Offen, Schneeketten"},
		}

		restricted := alpenpass.FilterRestricted(passes)

		require.Len(t, restricted, 2)
		assert.Equal(t, "Furkapass", restricted[0].Name)
		assert.Equal(t, "Julierpass", restricted[1].Name)
	})

	t.Run("returns empty slice for no passes", func(t *testing.T) {
		t.Parallel()

		restricted := alpenpass.FilterRestricted(nil)

		assert.NotNil(t, restricted)
		assert.Empty(t, restricted)
	})
}

func TestFindPassByName(t *testing.T) {
	t.Parallel()

	passes := []*alpenpass.Pass{
		{Name: "Albulapass"},
		{Name: "Gotthardpass"},
		{Name: "San Bernardino"},
	}

	t.Run("matches substring ignoring case", func(t *testing.T) {
		t.Parallel()

		p := alpenpass.FindPassByName(passes, "gotthard")

		require.NotNil(t, p)
		assert.Equal(t, "Gotthardpass", p.Name)
	})

	t.Run("matches when stored name is contained in query", func(t *testing.T) {
		t.Parallel()

		p := alpenpass.FindPassByName(passes, "SAN BERNARDINO Pass")

		require.NotNil(t, p)
		assert.Equal(t, "San Bernardino", p.Name)
	})

	t.Run("returns first match", func(t *testing.T) {
		t.Parallel()

		p := alpenpass.FindPassByName(passes, "pass")

		require.NotNil(t, p)
		assert.Equal(t, "Albulapass", p.Name)
	})

	t.Run("returns nil when nothing matches", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, alpenpass.FindPassByName(passes, "Stelvio"))
	})

	t.Run("returns nil for empty name", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, alpenpass.FindPassByName(passes, ""))
	})
}
