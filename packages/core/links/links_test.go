package links

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	b := NewBuilder("http://testserver/")

	assert.Equal(t, "http://testserver/v1/leagues", b.Leagues())
	assert.Equal(t, "http://testserver/v1/leagues/afl", b.League("afl"))
	assert.Equal(t, "http://testserver/v1/leagues/afl/teams/richmond", b.Team("afl", "richmond"))
	assert.Equal(t, "http://testserver/v1/leagues/afl/teams/richmond/alternative_names/3", b.TeamAlternativeName("afl", "richmond", 3))
	assert.Equal(t, "http://testserver/v1/leagues/afl/seasons/2021", b.Season("afl", "2021"))
	assert.Equal(t, "http://testserver/v1/leagues/afl/seasons/2021/games/5", b.Game("afl", "2021", 5))
	assert.Equal(t, "http://testserver/v1/venues/mcg", b.Venue("mcg"))
	assert.Equal(t, "http://testserver/v1/venues/mcg/alternative_names/1", b.VenueAlternativeName("mcg", 1))
}

func TestBuilder_PathOnly(t *testing.T) {
	b := NewBuilder("")
	assert.Equal(t, "/v1/venues/mcg", b.Venue("mcg"))
}

func TestParseTeam(t *testing.T) {
	tests := []struct {
		name   string
		link   string
		league string
		team   string
	}{
		{"absolute", "http://testserver/v1/leagues/afl/teams/richmond", "afl", "richmond"},
		{"trailing slash", "http://testserver/v1/leagues/afl/teams/richmond/", "afl", "richmond"},
		{"other host", "https://api.example.com/v1/leagues/vfl/teams/carlton", "vfl", "carlton"},
		{"path only", "/v1/leagues/afl/teams/gold_coast", "afl", "gold_coast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			league, team, err := ParseTeam(tt.link)
			require.NoError(t, err)
			assert.Equal(t, tt.league, league)
			assert.Equal(t, tt.team, team)
		})
	}
}

func TestParseTeam_Invalid(t *testing.T) {
	links := []string{
		"",
		"richmond",
		"http://testserver/v1/venues/mcg",
		"http://testserver/v1/leagues/afl",
		"http://testserver/leagues/afl/teams/richmond",
		"http://testserver/v1/leagues/afl/teams/richmond/alternative_names",
		"http://testserver/v1/leagues/afl/teams/rich-mond",
	}

	for _, link := range links {
		_, _, err := ParseTeam(link)
		assert.True(t, errors.Is(err, ErrInvalidLink), "link %q", link)
	}
}

func TestParseVenue(t *testing.T) {
	id, err := ParseVenue("http://testserver/v1/venues/mcg")
	require.NoError(t, err)
	assert.Equal(t, "mcg", id)

	_, err = ParseVenue("http://testserver/v1/leagues/afl/teams/richmond")
	assert.ErrorIs(t, err, ErrInvalidLink)
}
