package catalog_test

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audiobookify/internal/catalog"
)

var colorPattern = regexp.MustCompile("^#[0-9a-fA-F]{6}$")

func Test_All_ReturnsReferenceBooksInOrder(t *testing.T) {
	bs := catalog.All()

	require.Len(t, bs, 8)
	for ix, b := range bs {
		assert.Equal(t, ix+1, b.Id)
	}
}

func Test_All_IdsAreUnique(t *testing.T) {
	seen := make(map[int]struct{})
	for _, b := range catalog.All() {
		_, dup := seen[b.Id]
		assert.False(t, dup, "duplicate id %d", b.Id)
		seen[b.Id] = struct{}{}
	}
}

func Test_All_RequiredFieldsArePresent(t *testing.T) {
	for _, b := range catalog.All() {
		assert.NotEmpty(t, b.Title, "book %d", b.Id)
		assert.NotEmpty(t, b.Author, "book %d", b.Id)
		assert.NotEmpty(t, b.Color, "book %d", b.Id)
		assert.NotEmpty(t, b.Description, "book %d", b.Id)

		for name, v := range map[string]float64{"duration": b.Duration, "rating": b.Rating} {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "book %d %s is not finite", b.Id, name)
			assert.GreaterOrEqual(t, v, 0.0, "book %d %s", b.Id, name)
		}
		assert.LessOrEqual(t, b.Rating, 5.0, "book %d", b.Id)
	}
}

func Test_All_ColorsAreHex(t *testing.T) {
	for _, b := range catalog.All() {
		assert.Regexp(t, colorPattern, b.Color, "book %d", b.Id)
		if b.HasTextColor() {
			assert.Regexp(t, colorPattern, b.TextColor, "book %d", b.Id)
		}
	}
}

func Test_All_OptionalTextColor(t *testing.T) {
	bs := catalog.All()

	martian := bs[0]
	assert.Equal(t, "THE MARTIAN", martian.Title)
	assert.False(t, martian.HasTextColor())

	habits := bs[3]
	assert.Equal(t, "ATOMIC HABITS", habits.Title)
	assert.True(t, habits.HasTextColor())
	assert.Equal(t, "#2c3e50", habits.TextColor)
}

func Test_All_IsIdempotent(t *testing.T) {
	assert.Equal(t, catalog.All(), catalog.All())
}

func Test_All_ReturnsCopy(t *testing.T) {
	bs := catalog.All()
	bs[1].Title = "CHANGED"

	again := catalog.All()
	require.Len(t, again, 8)
	assert.Equal(t, "DUNE", again[1].Title)
}

func Test_All_KeepsDescriptionBytes(t *testing.T) {
	hailMary := catalog.All()[2]

	assert.Equal(t, "PROJECT HAIL MARY", hailMary.Title)
	assert.Contains(t, hailMary.Description, "missionâ€”and")
}
