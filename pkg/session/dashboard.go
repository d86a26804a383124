package session

import (
	"github.com/budget-zero/backend/pkg/flow"
	"github.com/budget-zero/backend/pkg/models"
	"github.com/budget-zero/backend/pkg/query"
)

// Dashboard contains everything derived from the view of a filter.
type Dashboard struct {
	Filter       query.Filter         `json:"-"`
	Transactions []models.Transaction `json:"transactions"` // The filtered and sorted transactions
	Totals       query.Totals         `json:"totals"`
	Status       query.Status         `json:"status" example:"Positive"`

	TopExpenses          []query.Ranking `json:"topExpenses"`          // Subcategories with the highest expenses
	TopIncome            []query.Ranking `json:"topIncome"`            // Subcategories with the highest income
	TopExpenseCategories []query.Ranking `json:"topExpenseCategories"` // Categories with the highest expenses
	TopIncomeCategories  []query.Ranking `json:"topIncomeCategories"`  // Categories with the highest income

	Flow flow.Graph `json:"flow"`
}

// Dashboard returns the dashboard for the filter.
//
// Dashboards are cached until the next change. The returned value is shared
// with the cache and must not be modified.
func (s *Session) Dashboard(f query.Filter) Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.dashboards[f]; ok {
		return d
	}

	view := query.ComputeView(s.transactions.List(), f)
	totals := query.ComputeTotals(view)

	d := Dashboard{
		Filter:               f,
		Transactions:         view,
		Totals:               totals,
		Status:               query.StatusOf(totals.Balance),
		TopExpenses:          query.TopN(view, models.Expense, query.DefaultTopN),
		TopIncome:            query.TopN(view, models.Income, query.DefaultTopN),
		TopExpenseCategories: query.TopCategories(view, models.Expense, query.DefaultTopN),
		TopIncomeCategories:  query.TopCategories(view, models.Income, query.DefaultTopN),
		Flow:                 flow.Build(view),
	}

	if len(s.dashboards) >= cacheSize {
		clear(s.dashboards)
	}
	s.dashboards[f] = d

	return d
}
