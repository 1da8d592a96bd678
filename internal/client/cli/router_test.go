package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRouter_InitialSectionIsFeed(t *testing.T) {
	r := NewRouter()
	require.Equal(t, SectionFeed, r.Current())
}

func TestRouter_StaleGenerationIsDiscarded(t *testing.T) {
	r := NewRouter()

	feedGen := r.Begin(SectionFeed)
	require.True(t, r.Keep(feedGen))

	// A category switch before the feed response lands supersedes it.
	catGen := r.Begin(CategorySection("furniture"))

	require.False(t, r.Keep(feedGen))
	require.True(t, r.Keep(catGen))
	require.Equal(t, CategorySection("furniture"), r.Current())
}

func TestRouter_GenerationsIncrease(t *testing.T) {
	r := NewRouter()

	g1 := r.Begin(SectionFeed)
	g2 := r.Begin(SectionWatchlist)
	g3 := r.Begin(SectionFeed)

	require.Less(t, g1, g2)
	require.Less(t, g2, g3)
}
