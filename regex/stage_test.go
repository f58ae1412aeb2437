package regex_test

import (
	"testing"

	"github.com/fwojciec/busroutes/regex"
	"github.com/stretchr/testify/assert"
)

func TestIsolator_Isolate(t *testing.T) {
	t.Parallel()

	t.Run("stops at the first terminator alternative", func(t *testing.T) {
		t.Parallel()

		iso := regex.NewIsolator(regex.CitySectionPattern, -1)

		sections := iso.Isolate(`<h3>A</h3>x<hr/><h3>B</h3>y<div id="RoutesByRoute"><hr/>`)

		assert.Equal(t, []string{`<h3>A</h3>x<hr`, `<h3>B</h3>y<div id="RoutesByRoute"`}, sections)
	})

	t.Run("drops a trailing heading with no terminator", func(t *testing.T) {
		t.Parallel()

		iso := regex.NewIsolator(regex.CitySectionPattern, -1)

		sections := iso.Isolate(`<h3>A</h3><hr/><h3>B</h3><p>end of page</p>`)

		assert.Equal(t, []string{`<h3>A</h3><hr`}, sections)
	})

	t.Run("respects the section limit", func(t *testing.T) {
		t.Parallel()

		iso := regex.NewIsolator(regex.RouteMapPattern, 1)
		row := `<div class="" data-sf-element="Row">`

		sections := iso.Isolate(`<div id="RouteMap">one` + row + `<div id="RouteMap">two` + row)

		assert.Equal(t, []string{`<div id="RouteMap">one` + row}, sections)
	})

	t.Run("returns nothing when the pattern never matches", func(t *testing.T) {
		t.Parallel()

		iso := regex.NewIsolator(regex.RouteMapPattern, 1)

		assert.Empty(t, iso.Isolate(`<html><body>No map here</body></html>`))
	})
}

func TestField(t *testing.T) {
	t.Parallel()

	t.Run("First returns the first capture trimmed", func(t *testing.T) {
		t.Parallel()

		f := regex.NewField(regex.CityNamePattern)

		value, ok := f.First(`<h3>  Lynnwood </h3><h3>Everett</h3>`)

		assert.True(t, ok)
		assert.Equal(t, "Lynnwood", value)
	})

	t.Run("First reports a missing match", func(t *testing.T) {
		t.Parallel()

		f := regex.NewField(regex.CityNamePattern)

		_, ok := f.First(`<h4>Lynnwood</h4>`)

		assert.False(t, ok)
	})

	t.Run("All keeps document order", func(t *testing.T) {
		t.Parallel()

		f := regex.NewField(regex.BusNumberPattern)

		values := f.All(`<a href="/r/201">201</a><a href="/r/105">105</a><a href="/r/112">112</a>`)

		assert.Equal(t, []string{"201", "105", "112"}, values)
	})

	t.Run("All returns an empty slice without matches", func(t *testing.T) {
		t.Parallel()

		f := regex.NewField(regex.BusNumberPattern)

		values := f.All(`<p>no links</p>`)

		assert.NotNil(t, values)
		assert.Empty(t, values)
	})

	t.Run("applies the decoder to every value", func(t *testing.T) {
		t.Parallel()

		f := regex.NewField(regex.StopNamePattern)
		f.Decode = regex.DecodeAmp

		values := f.All(`<p>Main St &amp; 5th Ave</p><p>&lt;Ash Way&gt;</p>`)

		assert.Equal(t, []string{"Main St & 5th Ave", "&lt;Ash Way&gt;"}, values)
	})
}

func TestBlockSplitter_Split(t *testing.T) {
	t.Parallel()

	s := regex.NewBlockSplitter(regex.DestinationPattern)

	blocks := s.Split(`<h2>Weekday<small> To Everett </small></h2><table><thead>A</thead></table>` +
		`<h2>Weekday<small>To Lynnwood</small></h2><table><thead>B</thead></table>`)

	assert.Equal(t, []regex.Block{
		{Label: "To Everett", Body: "</h2><table><thead>A"},
		{Label: "To Lynnwood", Body: "</h2><table><thead>B"},
	}, blocks)
}

func TestDecodeAmp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Main St & 5th Ave", regex.DecodeAmp("Main St &amp; 5th Ave"))
	assert.Equal(t, "A & B & C", regex.DecodeAmp("A &amp; B &amp; C"))
	assert.Equal(t, "&nbsp;&quot;", regex.DecodeAmp("&nbsp;&quot;"))
}
