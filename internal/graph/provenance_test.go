package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gedgraph/gedgraph/internal/models"
)

func TestIsEventSourced(t *testing.T) {
	g := buildFixture(t)
	john := g.PersonByID("I1")
	require.NotNil(t, john)

	t.Run("prefix match on cited source title", func(t *testing.T) {
		assert.True(t, g.IsEventSourced(john, "1900 United States Federal Census"))
	})

	t.Run("exact full title matches too", func(t *testing.T) {
		assert.True(t, g.IsEventSourced(john, "1900 United States Federal Census (District 4)"))
	})

	t.Run("different census year does not match", func(t *testing.T) {
		assert.False(t, g.IsEventSourced(john, "1910 United States Federal Census"))
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		assert.False(t, g.IsEventSourced(john, "1900 UNITED STATES"))
	})

	t.Run("citation with a dangling source never matches", func(t *testing.T) {
		mary := g.PersonByID("I2")
		require.NotNil(t, mary)
		assert.False(t, g.IsEventSourced(mary, "1900 United States Federal Census"))
	})

	t.Run("person with uncited facts", func(t *testing.T) {
		robert := g.PersonByID("I3")
		require.NotNil(t, robert)
		assert.False(t, g.IsEventSourced(robert, "1900 United States Federal Census"))
	})

	t.Run("person with no facts", func(t *testing.T) {
		assert.False(t, g.IsEventSourced(&models.Person{ID: "X"}, "1900"))
	})

	t.Run("nil person", func(t *testing.T) {
		assert.False(t, g.IsEventSourced(nil, "1900"))
	})

	t.Run("empty prefix matches any cited fact", func(t *testing.T) {
		// strings.HasPrefix with "" is always true, so an empty category
		// asks "is anything sourced at all".
		assert.True(t, g.IsEventSourced(john, ""))
	})
}
