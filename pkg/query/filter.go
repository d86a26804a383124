// Package query computes views and aggregates over a snapshot of
// transactions. All functions are pure and never modify their input.
package query

import (
	"fmt"
	"strings"

	"github.com/budget-zero/backend/internal/types"
	"github.com/budget-zero/backend/pkg/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// Column is a transaction field a view can be sorted by.
type Column string

const (
	ColumnDate        Column = "date"
	ColumnCategory    Column = "category"
	ColumnSubcategory Column = "subcategory"
	ColumnType        Column = "type"
	ColumnMethod      Column = "method"
	ColumnAmount      Column = "amount"
	ColumnDescription Column = "description"
)

// Direction is the sort direction of a view.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

var columns = []Column{ColumnDate, ColumnCategory, ColumnSubcategory, ColumnType, ColumnMethod, ColumnAmount, ColumnDescription}

// ParseColumn parses a sort column. The empty string is no column.
func ParseColumn(s string) (Column, error) {
	c := Column(strings.ToLower(strings.TrimSpace(s)))
	if c == "" || slices.Contains(columns, c) {
		return c, nil
	}
	return "", fmt.Errorf("unknown sort column %q", s)
}

// ParseDirection parses a sort direction. The empty string is no direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if d == "" || d == Ascending || d == Descending {
		return d, nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

// UnmarshalParam parses the column from a query parameter.
func (c *Column) UnmarshalParam(param string) error {
	column, err := ParseColumn(param)
	if err != nil {
		return err
	}
	*c = column
	return nil
}

// UnmarshalParam parses the direction from a query parameter.
func (d *Direction) UnmarshalParam(param string) error {
	direction, err := ParseDirection(param)
	if err != nil {
		return err
	}
	*d = direction
	return nil
}

// Filter selects and orders the transactions of a view. Zero values do not
// filter.
type Filter struct {
	Month    types.Month `form:"month" example:"2024-01"`     // Year and month of the transaction date
	Category string      `form:"category" example:"Logement"` // Exact category name
	Label    string      `form:"label" example:"Vacances"`    // Label the transaction must carry
	Search   string      `form:"search" example:"*loyer*"`    // Glob pattern matched against the description, ignoring case

	SortColumn    Column    `form:"sort" example:"amount"`    // Column to sort by
	SortDirection Direction `form:"direction" example:"desc"` // Sort direction, only used together with a column
}

// Match reports whether the transaction passes all filters.
func (f Filter) Match(t models.Transaction) bool {
	if !f.Month.IsZero() && !f.Month.Contains(t.Date) {
		return false
	}

	if f.Category != "" && t.Category != f.Category {
		return false
	}

	if f.Label != "" && !t.HasLabel(f.Label) {
		return false
	}

	if f.Search != "" && !glob.Glob(strings.ToLower(f.Search), strings.ToLower(t.Description)) {
		return false
	}

	return true
}

// ComputeView filters the transactions and sorts them when both sort column
// and direction are set. Otherwise, the store order is kept. Sorting is
// stable.
func ComputeView(transactions []models.Transaction, f Filter) []models.Transaction {
	view := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if f.Match(t) {
			view = append(view, t.Clone())
		}
	}

	if f.SortColumn == "" || f.SortDirection == "" {
		return view
	}

	compare := comparator(f.SortColumn)
	if compare == nil {
		return view
	}

	slices.SortStableFunc(view, func(a, b models.Transaction) int {
		if f.SortDirection == Descending {
			return compare(b, a)
		}
		return compare(a, b)
	})

	return view
}

func comparator(c Column) func(a, b models.Transaction) int {
	switch c {
	case ColumnDate:
		return func(a, b models.Transaction) int { return a.Date.Compare(b.Date) }
	case ColumnAmount:
		return func(a, b models.Transaction) int { return a.Amount.Cmp(b.Amount) }
	case ColumnCategory:
		return lexical(func(t models.Transaction) string { return t.Category })
	case ColumnSubcategory:
		return lexical(func(t models.Transaction) string { return t.Subcategory })
	case ColumnType:
		return lexical(func(t models.Transaction) string { return string(t.Type) })
	case ColumnMethod:
		return lexical(func(t models.Transaction) string { return t.Method })
	case ColumnDescription:
		return lexical(func(t models.Transaction) string { return t.Description })
	}
	return nil
}

// lexical compares a string field ignoring case.
func lexical(field func(models.Transaction) string) func(a, b models.Transaction) int {
	return func(a, b models.Transaction) int {
		return strings.Compare(models.Key(field(a)), models.Key(field(b)))
	}
}
