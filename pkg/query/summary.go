package query

import (
	"github.com/budget-zero/backend/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// DefaultTopN is the number of ranking entries when none is requested.
const DefaultTopN = 3

// Status summarizes the sign of a balance.
type Status string

const (
	Positive Status = "Positive"
	Negative Status = "Negative"
	Neutral  Status = "Neutral"
)

// Ranking is an entry of a top-N list.
type Ranking struct {
	Category    string          `json:"category" example:"Logement"`
	Subcategory string          `json:"subcategory,omitempty" example:"Loyer"`
	Total       decimal.Decimal `json:"total" example:"300"`
}

// Totals sums up a set of transactions.
type Totals struct {
	Income  decimal.Decimal `json:"income" example:"1000"`
	Expense decimal.Decimal `json:"expense" example:"300"`
	Balance decimal.Decimal `json:"balance" example:"700"`
	Count   int             `json:"count" example:"2"`
}

// Balance is the sum of the cash effects of the transactions.
func Balance(view []models.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range view {
		balance = balance.Add(t.Signed())
	}
	return balance
}

// StatusOf returns the status of a balance.
func StatusOf(balance decimal.Decimal) Status {
	switch balance.Sign() {
	case 1:
		return Positive
	case -1:
		return Negative
	default:
		return Neutral
	}
}

// ComputeTotals sums income and expense of the transactions separately.
func ComputeTotals(view []models.Transaction) Totals {
	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range view {
		switch t.Type {
		case models.Income:
			totals.Income = totals.Income.Add(t.Amount)
		case models.Expense:
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}

	totals.Balance = totals.Income.Sub(totals.Expense)
	totals.Count = len(view)
	return totals
}

// LabelStats sums up the transactions carrying the label.
func LabelStats(view []models.Transaction, label string) Totals {
	tagged := make([]models.Transaction, 0)
	for _, t := range view {
		if t.HasLabel(label) {
			tagged = append(tagged, t)
		}
	}
	return ComputeTotals(tagged)
}

// TopN ranks the groups of transactions of the type by their summed amount.
// Transactions are grouped by category and subcategory. Transactions without
// subcategory form a group of their category alone.
//
// At most n entries are returned, DefaultTopN if n is not positive. Groups
// with the same total keep the order in which they first appear in the view.
func TopN(view []models.Transaction, typ models.TransactionType, n int) []Ranking {
	return rank(view, typ, n, func(t models.Transaction) Ranking {
		return Ranking{Category: t.Category, Subcategory: t.Subcategory}
	})
}

// TopCategories ranks the categories of the transactions of the type like
// TopN, ignoring subcategories.
func TopCategories(view []models.Transaction, typ models.TransactionType, n int) []Ranking {
	return rank(view, typ, n, func(t models.Transaction) Ranking {
		return Ranking{Category: t.Category}
	})
}

func rank(view []models.Transaction, typ models.TransactionType, n int, group func(models.Transaction) Ranking) []Ranking {
	if n <= 0 {
		n = DefaultTopN
	}

	type key struct{ category, subcategory string }

	index := make(map[key]int)
	groups := []Ranking{}
	for _, t := range view {
		if t.Type != typ {
			continue
		}

		g := group(t)
		k := key{g.Category, g.Subcategory}
		i, ok := index[k]
		if !ok {
			g.Total = decimal.Zero
			groups = append(groups, g)
			i = len(groups) - 1
			index[k] = i
		}
		groups[i].Total = groups[i].Total.Add(t.Amount)
	}

	slices.SortStableFunc(groups, func(a, b Ranking) int {
		return b.Total.Cmp(a.Total)
	})

	if len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// Methods returns the payment methods used in the view together with the
// base methods, without duplicates and ordered by name.
func Methods(view []models.Transaction) []string {
	seen := make(map[string]struct{})
	methods := []string{}

	add := func(m string) {
		if m == "" {
			return
		}
		if _, ok := seen[models.Key(m)]; ok {
			return
		}
		seen[models.Key(m)] = struct{}{}
		methods = append(methods, m)
	}

	for _, m := range models.BaseMethods {
		add(m)
	}
	for _, t := range view {
		add(t.Method)
	}

	slices.SortFunc(methods, models.CompareNames)
	return methods
}
