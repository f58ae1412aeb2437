package busroutes_test

import (
	"testing"

	"github.com/fwojciec/busroutes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCitiesByInitial(t *testing.T) {
	t.Parallel()

	cities := []busroutes.City{
		{Name: "Arlington", BusNumbers: []string{"220"}},
		{Name: "Bothell", BusNumbers: []string{"105", "106"}},
		{Name: "Edmonds", BusNumbers: []string{}},
	}

	t.Run("returns the single matching city", func(t *testing.T) {
		t.Parallel()

		matches, found := busroutes.CitiesByInitial(cities, "b")

		assert.True(t, found)
		require.Len(t, matches, 1)
		assert.Equal(t, "Bothell", matches[0].Name)
		assert.Equal(t, []string{"105", "106"}, matches[0].BusNumbers)
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		t.Parallel()

		matches, found := busroutes.CitiesByInitial(cities, "E")

		assert.True(t, found)
		require.Len(t, matches, 1)
		assert.Equal(t, "Edmonds", matches[0].Name)
	})

	t.Run("reports not found when no city matches", func(t *testing.T) {
		t.Parallel()

		matches, found := busroutes.CitiesByInitial(cities, "z")

		assert.False(t, found)
		assert.Empty(t, matches)
	})

	t.Run("keeps page order for several matches", func(t *testing.T) {
		t.Parallel()

		in := []busroutes.City{{Name: "Mukilteo"}, {Name: "Arlington"}, {Name: "Mill Creek"}}

		matches, found := busroutes.CitiesByInitial(in, "m")

		assert.True(t, found)
		require.Len(t, matches, 2)
		assert.Equal(t, "Mukilteo", matches[0].Name)
		assert.Equal(t, "Mill Creek", matches[1].Name)
	})

	t.Run("returns nothing for an empty letter", func(t *testing.T) {
		t.Parallel()

		matches, found := busroutes.CitiesByInitial(cities, "")

		assert.False(t, found)
		assert.Empty(t, matches)
	})
}

func TestValidateInitial(t *testing.T) {
	t.Parallel()

	t.Run("accepts a single letter", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, busroutes.ValidateInitial("a"))
		require.NoError(t, busroutes.ValidateInitial("Q"))
	})

	t.Run("rejects non-letters and longer input", func(t *testing.T) {
		t.Parallel()

		for _, in := range []string{"", "1", "ab", "?", " "} {
			err := busroutes.ValidateInitial(in)
			require.Error(t, err, in)
			assert.Equal(t, busroutes.EINVALID, busroutes.ErrorCode(err))
		}
	})
}

func TestCity_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts city without bus numbers", func(t *testing.T) {
		t.Parallel()

		c := &busroutes.City{Name: "Edmonds"}

		require.NoError(t, c.Validate())
	})

	t.Run("requires a name", func(t *testing.T) {
		t.Parallel()

		c := &busroutes.City{Name: "  ", BusNumbers: []string{"105"}}

		err := c.Validate()

		assert.Equal(t, busroutes.EINVALID, busroutes.ErrorCode(err))
	})
}
