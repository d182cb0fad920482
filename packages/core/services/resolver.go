package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"footy-api/packages/core/models"

	"gorm.io/gorm"
)

// Kind names a resource type that can appear as a URL path segment
type Kind string

const (
	KindLeague               Kind = "league"
	KindTeam                 Kind = "team"
	KindSeason               Kind = "season"
	KindGame                 Kind = "game"
	KindVenue                Kind = "venue"
	KindTeamAlternativeName  Kind = "team_alternative_name"
	KindVenueAlternativeName Kind = "venue_alternative_name"
)

// Segment is one (kind, identifier) pair of a nested resource path
type Segment struct {
	Kind Kind
	ID   string
}

// LeagueSegment names a league by its slug
func LeagueSegment(id string) Segment { return Segment{Kind: KindLeague, ID: id} }

// TeamSegment names a team by its slug within the preceding league
func TeamSegment(id string) Segment { return Segment{Kind: KindTeam, ID: id} }

// SeasonSegment names a season by its slug within the preceding league
func SeasonSegment(id string) Segment { return Segment{Kind: KindSeason, ID: id} }

// GameSegment names a game by its numeric id within the preceding season
func GameSegment(id string) Segment { return Segment{Kind: KindGame, ID: id} }

// VenueSegment names a venue by its slug
func VenueSegment(id string) Segment { return Segment{Kind: KindVenue, ID: id} }

// TeamAlternativeNameSegment names an alternative name by its numeric id within the preceding team
func TeamAlternativeNameSegment(id string) Segment {
	return Segment{Kind: KindTeamAlternativeName, ID: id}
}

// VenueAlternativeNameSegment names an alternative name by its numeric id within the preceding venue
func VenueAlternativeNameSegment(id string) Segment {
	return Segment{Kind: KindVenueAlternativeName, ID: id}
}

// Path is the outcome of a successful resolution: the leaf and every ancestor
type Path struct {
	League               *models.League
	Team                 *models.Team
	Season               *models.Season
	Game                 *models.Game
	Venue                *models.Venue
	TeamAlternativeName  *models.TeamAlternativeName
	VenueAlternativeName *models.VenueAlternativeName
}

func (p *Path) idOf(kind Kind) string {
	switch kind {
	case KindLeague:
		return p.League.ID
	case KindTeam:
		return p.Team.ID
	case KindSeason:
		return p.Season.ID
	case KindVenue:
		return p.Venue.ID
	}
	return ""
}

type resolution struct {
	parent       Kind
	parentColumn string
	numericID    bool
	preload      []string
	load         func(q *gorm.DB, p *Path) error
}

var resolutions = map[Kind]resolution{
	KindLeague: {
		load: func(q *gorm.DB, p *Path) error {
			p.League = &models.League{}
			return q.First(p.League).Error
		},
	},
	KindTeam: {
		parent:       KindLeague,
		parentColumn: "league_id",
		preload:      []string{"AlternativeNames"},
		load: func(q *gorm.DB, p *Path) error {
			p.Team = &models.Team{}
			return q.First(p.Team).Error
		},
	},
	KindSeason: {
		parent:       KindLeague,
		parentColumn: "league_id",
		load: func(q *gorm.DB, p *Path) error {
			p.Season = &models.Season{}
			return q.First(p.Season).Error
		},
	},
	KindGame: {
		parent:       KindSeason,
		parentColumn: "season_id",
		numericID:    true,
		preload:      []string{"Team1", "Team2"},
		load: func(q *gorm.DB, p *Path) error {
			p.Game = &models.Game{}
			return q.First(p.Game).Error
		},
	},
	KindVenue: {
		preload: []string{"AlternativeNames"},
		load: func(q *gorm.DB, p *Path) error {
			p.Venue = &models.Venue{}
			return q.First(p.Venue).Error
		},
	},
	KindTeamAlternativeName: {
		parent:       KindTeam,
		parentColumn: "team_id",
		numericID:    true,
		load: func(q *gorm.DB, p *Path) error {
			p.TeamAlternativeName = &models.TeamAlternativeName{}
			return q.First(p.TeamAlternativeName).Error
		},
	},
	KindVenueAlternativeName: {
		parent:       KindVenue,
		parentColumn: "venue_id",
		numericID:    true,
		load: func(q *gorm.DB, p *Path) error {
			p.VenueAlternativeName = &models.VenueAlternativeName{}
			return q.First(p.VenueAlternativeName).Error
		},
	},
}

// Resolver turns nested URL paths into entities while enforcing ownership
type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{
		db: db,
	}
}

// Resolve looks up each segment left to right. Every segment after the first
// must exist AND reference the entity resolved just before it; otherwise the
// whole path fails with ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, segments ...Segment) (*Path, error) {
	return resolveWith(r.db.WithContext(ctx), segments...)
}

func resolveWith(db *gorm.DB, segments ...Segment) (*Path, error) {
	path := &Path{}
	var parent Kind

	for _, seg := range segments {
		res, ok := resolutions[seg.Kind]
		if !ok {
			return nil, fmt.Errorf("unknown resource kind %q", seg.Kind)
		}
		if res.parent != parent {
			return nil, fmt.Errorf("%s cannot be nested under %q", seg.Kind, parent)
		}

		var id interface{} = seg.ID
		if res.numericID {
			n, err := strconv.ParseUint(seg.ID, 10, 64)
			if err != nil {
				return nil, ErrNotFound
			}
			id = n
		}

		q := db.Where("id = ?", id)
		if res.parent != "" {
			q = q.Where(res.parentColumn+" = ?", path.idOf(res.parent))
		}
		for _, assoc := range res.preload {
			q = q.Preload(assoc, orderByID)
		}

		if err := res.load(q, path); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("resolving %s %q: %w", seg.Kind, seg.ID, err)
		}
		parent = seg.Kind
	}

	return path, nil
}

// orderByID keeps preloaded associations in insertion order
func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
