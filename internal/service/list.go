package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListParams carries the query string of a list request.
type ListParams struct {
	Search   string
	Ordering string
	Page     int
	PageSize int
	Filters  map[string]string
}

// ListResult is one page of rows plus the total row count.
type ListResult[T any] struct {
	Items    []T
	Count    int64
	Page     int
	PageSize int
}

// HasNext reports whether another page follows this one.
func (r ListResult[T]) HasNext() bool {
	return int64(r.Page*r.PageSize) < r.Count
}

type filterFunc func(q *gorm.DB, value string) (*gorm.DB, error)

// listSpec declares how one resource can be searched, filtered and ordered.
type listSpec struct {
	search       []string
	ordering     map[string]string
	defaultOrder string
	filters      map[string]filterFunc
}

// now is replaced in tests that pin the date range filters.
var now = time.Now

func (p ListParams) normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// apply narrows q by search terms and filters.
func (s listSpec) apply(q *gorm.DB, p ListParams) (*gorm.DB, error) {
	verr := NewValidationError()
	for name, fn := range s.filters {
		value, ok := p.Filters[name]
		if !ok || value == "" {
			continue
		}
		next, err := fn(q, value)
		if err != nil {
			verr.Add(name, err.Error())
			continue
		}
		q = next
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	if len(s.search) > 0 {
		for _, term := range strings.Fields(p.Search) {
			like := "%" + strings.ToLower(term) + "%"
			clauses := make([]string, len(s.search))
			args := make([]interface{}, len(s.search))
			for i, col := range s.search {
				clauses[i] = fmt.Sprintf("LOWER(%s) LIKE ?", col)
				args[i] = like
			}
			q = q.Where("("+strings.Join(clauses, " OR ")+")", args...)
		}
	}

	return q, nil
}

// orderBy translates an ordering parameter into ORDER BY. Unknown fields are
// ignored; the default order applies when nothing usable remains.
func (s listSpec) orderBy(param string) string {
	var parts []string
	for _, field := range strings.Split(param, ",") {
		field = strings.TrimSpace(field)
		desc := strings.HasPrefix(field, "-")
		col, ok := s.ordering[strings.TrimPrefix(field, "-")]
		if !ok {
			continue
		}
		if desc {
			col += " DESC"
		}
		parts = append(parts, col)
	}
	if len(parts) == 0 {
		return s.defaultOrder
	}
	return strings.Join(parts, ", ")
}

// paginate counts the narrowed query and loads the requested page into dest.
// Scopes such as preloads only apply to the page load.
func paginate[T any](q *gorm.DB, p ListParams, order string, dest *[]T, scopes ...func(*gorm.DB) *gorm.DB) (ListResult[T], error) {
	p = p.normalize()
	q = q.Session(&gorm.Session{})

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return ListResult[T]{}, fmt.Errorf("count rows: %w", err)
	}
	offset := (p.Page - 1) * p.PageSize
	if p.Page > 1 && int64(offset) >= count {
		return ListResult[T]{}, ErrInvalidPage
	}
	if err := q.Scopes(scopes...).Order(order).Offset(offset).Limit(p.PageSize).Find(dest).Error; err != nil {
		return ListResult[T]{}, fmt.Errorf("load rows: %w", err)
	}
	return ListResult[T]{Items: *dest, Count: count, Page: p.Page, PageSize: p.PageSize}, nil
}

func idFilter(column string) filterFunc {
	return func(q *gorm.DB, value string) (*gorm.DB, error) {
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, errors.New("Enter a number.")
		}
		return q.Where(column+" = ?", id), nil
	}
}

func choiceFilter(column string, choices ...string) filterFunc {
	return func(q *gorm.DB, value string) (*gorm.DB, error) {
		for _, c := range choices {
			if c == value {
				return q.Where(column+" = ?", value), nil
			}
		}
		return nil, fmt.Errorf("Select a valid choice. %s is not one of the available choices.", value)
	}
}

// dateRangeFilter accepts today, yesterday, week, month and year.
func dateRangeFilter(column string) filterFunc {
	return func(q *gorm.DB, value string) (*gorm.DB, error) {
		start, end, ok := dateRange(value, now())
		if !ok {
			return nil, fmt.Errorf("Select a valid choice. %s is not one of the available choices.", value)
		}
		return q.Where(column+" >= ? AND "+column+" < ?", start, end), nil
	}
}

func dateRange(value string, t time.Time) (time.Time, time.Time, bool) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	tomorrow := day.AddDate(0, 0, 1)
	switch value {
	case "today":
		return day, tomorrow, true
	case "yesterday":
		return day.AddDate(0, 0, -1), day, true
	case "week":
		return day.AddDate(0, 0, -7), tomorrow, true
	case "month":
		first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
		return first, first.AddDate(0, 1, 0), true
	case "year":
		first := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
		return first, first.AddDate(1, 0, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}
