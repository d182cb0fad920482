package services

import (
	"fmt"
	"net/url"
	"sort"

	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// FilterFunc narrows a query using the raw value of a query parameter
type FilterFunc func(q *gorm.DB, value string) *gorm.DB

// FilterSet maps allowed query parameter names to their filters.
// Parameters not in the set are ignored.
type FilterSet map[string]FilterFunc

// Apply ANDs together every filter whose parameter is present in params
func (fs FilterSet) Apply(q *gorm.DB, params url.Values) *gorm.DB {
	names := make([]string, 0, len(fs))
	for name := range fs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if values, ok := params[name]; ok && len(values) > 0 {
			q = fs[name](q, values[0])
		}
	}
	return q
}

// Exact matches column equal to the value
func Exact(column string) FilterFunc {
	return func(q *gorm.DB, value string) *gorm.DB {
		return q.Where(column+" = ?", value)
	}
}

// Contains matches column containing the value as a case-sensitive substring.
// LIKE folds ASCII case on sqlite, so position functions are used instead.
func Contains(column string) FilterFunc {
	return func(q *gorm.DB, value string) *gorm.DB {
		if q.Dialector.Name() == "sqlite" {
			return q.Where("instr("+column+", ?) > 0", value)
		}
		return q.Where("strpos("+column+", ?) > 0", value)
	}
}

// HasAlternativeName matches owners with at least one alternative name equal to the value
func HasAlternativeName(ownerTable, altTable, ownerColumn string) FilterFunc {
	return func(q *gorm.DB, value string) *gorm.DB {
		return q.Where(
			fmt.Sprintf("EXISTS (SELECT 1 FROM %s WHERE %s.%s = %s.id AND %s.name = ?)",
				altTable, altTable, ownerColumn, ownerTable, altTable),
			value,
		)
	}
}

// PageRequest is a validated page number and size
type PageRequest struct {
	Page     int
	PageSize int
}

// offset is only meaningful for pages within the collection
func (p PageRequest) offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is one slice of an ordered collection
type Page[T any] struct {
	Items      []T
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

func (p *Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

func (p *Page[T]) HasPrevious() bool {
	return p.Page > 1
}

// Query describes a parent-scoped collection: its base scope, the filters
// allowed on it, its ordering and the associations to preload.
type Query struct {
	Filters FilterSet
	Order   []string
	Preload []string
}

// paginate counts the filtered collection and fetches the requested page.
// Pages past the end yield an empty item list.
func paginate[T any](base *gorm.DB, query Query, params url.Values, page PageRequest) (*Page[T], error) {
	filtered := query.Filters.Apply(base, params).Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("counting results: %w", err)
	}

	totalPages := int((total + int64(page.PageSize) - 1) / int64(page.PageSize))

	items := make([]T, 0)
	if page.Page <= totalPages {
		find := filtered
		for _, order := range query.Order {
			find = find.Order(order)
		}
		for _, assoc := range query.Preload {
			find = find.Preload(assoc, orderByID)
		}
		if err := find.Offset(page.offset()).Limit(page.PageSize).Find(&items).Error; err != nil {
			return nil, fmt.Errorf("fetching results: %w", err)
		}
	}

	return &Page[T]{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: totalPages,
	}, nil
}
