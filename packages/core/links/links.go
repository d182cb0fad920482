// Package links builds and parses the hyperlinks that identify resources in
// API representations.
package links

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// APIPrefix is the path every resource URL starts with
const APIPrefix = "/v1"

// ErrInvalidLink is returned when a link does not match the expected resource template
var ErrInvalidLink = errors.New("invalid resource link")

var (
	teamPattern  = regexp.MustCompile(`^/leagues/(\w+)/teams/(\w+)/?$`)
	venuePattern = regexp.MustCompile(`^/venues/(\w+)/?$`)
)

// Builder renders absolute resource URLs below Origin + APIPrefix
type Builder struct {
	Origin string
}

// NewBuilder returns a Builder for origin such as "https://api.example.com".
// A trailing slash on origin is ignored.
func NewBuilder(origin string) Builder {
	return Builder{
		Origin: strings.TrimRight(origin, "/"),
	}
}

func (b Builder) join(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return b.Origin + APIPrefix + "/" + strings.Join(escaped, "/")
}

func (b Builder) Leagues() string {
	return b.join("leagues")
}

func (b Builder) League(leagueID string) string {
	return b.join("leagues", leagueID)
}

func (b Builder) Teams(leagueID string) string {
	return b.join("leagues", leagueID, "teams")
}

func (b Builder) Team(leagueID, teamID string) string {
	return b.join("leagues", leagueID, "teams", teamID)
}

func (b Builder) TeamAlternativeNames(leagueID, teamID string) string {
	return b.join("leagues", leagueID, "teams", teamID, "alternative_names")
}

func (b Builder) TeamAlternativeName(leagueID, teamID string, id uint) string {
	return b.join("leagues", leagueID, "teams", teamID, "alternative_names", strconv.FormatUint(uint64(id), 10))
}

func (b Builder) Seasons(leagueID string) string {
	return b.join("leagues", leagueID, "seasons")
}

func (b Builder) Season(leagueID, seasonID string) string {
	return b.join("leagues", leagueID, "seasons", seasonID)
}

func (b Builder) Games(leagueID, seasonID string) string {
	return b.join("leagues", leagueID, "seasons", seasonID, "games")
}

func (b Builder) Game(leagueID, seasonID string, id uint) string {
	return b.join("leagues", leagueID, "seasons", seasonID, "games", strconv.FormatUint(uint64(id), 10))
}

func (b Builder) Venues() string {
	return b.join("venues")
}

func (b Builder) Venue(venueID string) string {
	return b.join("venues", venueID)
}

func (b Builder) VenueAlternativeNames(venueID string) string {
	return b.join("venues", venueID, "alternative_names")
}

func (b Builder) VenueAlternativeName(venueID string, id uint) string {
	return b.join("venues", venueID, "alternative_names", strconv.FormatUint(uint64(id), 10))
}

// ParseTeam extracts the league and team ids from a team link. Links may be
// absolute or path-only; the host is not checked.
func ParseTeam(link string) (leagueID, teamID string, err error) {
	m, err := match(teamPattern, link)
	if err != nil {
		return "", "", err
	}
	return m[1], m[2], nil
}

// ParseVenue extracts the venue id from a venue link
func ParseVenue(link string) (string, error) {
	m, err := match(venuePattern, link)
	if err != nil {
		return "", err
	}
	return m[1], nil
}

func match(pattern *regexp.Regexp, link string) ([]string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}

	path, ok := strings.CutPrefix(u.Path, APIPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not below %s", ErrInvalidLink, link, APIPrefix)
	}

	m := pattern.FindStringSubmatch(path)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLink, link)
	}
	return m, nil
}
