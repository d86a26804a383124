package store

import (
	"github.com/budget-zero/backend/pkg/models"
)

// State is a deep copy of a transaction store and the taxonomy guarding it.
type State struct {
	Transactions []models.Transaction
	Categories   []models.Category
	Labels       []models.Label

	lastID uint64
}

// Capture copies the current state of both stores.
func Capture(transactions *Transactions, taxonomy *Taxonomy) State {
	return State{
		Transactions: transactions.List(),
		Categories:   taxonomy.Categories(),
		Labels:       taxonomy.Labels(),
		lastID:       transactions.lastID,
	}
}

// Restore replaces the content of both stores with the state. A state that
// was not captured, e.g. one loaded from storage, continues IDs after the
// highest ID it contains.
func Restore(transactions *Transactions, taxonomy *Taxonomy, state State) {
	items := make([]models.Transaction, len(state.Transactions))
	lastID := state.lastID
	for i, t := range state.Transactions {
		items[i] = t.Clone()
		lastID = max(lastID, t.ID)
	}
	transactions.restore(items, lastID)

	categories := make([]models.Category, len(state.Categories))
	for i, c := range state.Categories {
		categories[i] = c.Clone()
	}
	taxonomy.restore(categories, append([]models.Label{}, state.Labels...))
}
