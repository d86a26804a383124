// Package store holds the mutable state of a budget: the transactions and
// the taxonomy of categories, subcategories and labels.
//
// Every operation either succeeds completely or returns an error and leaves
// the store unchanged.
package store

import (
	"fmt"
	"sort"

	"github.com/budget-zero/backend/pkg/models"
	"golang.org/x/exp/slices"
)

// Transactions is the transaction store.
type Transactions struct {
	items []models.Transaction

	// lastID is the highest ID ever handed out. It keeps IDs of deleted
	// transactions from being reused.
	lastID uint64
}

// NewTransactions returns an empty transaction store.
func NewTransactions() *Transactions {
	return &Transactions{}
}

// Add validates the draft and stores it with the next free ID.
func (s *Transactions) Add(draft models.TransactionDraft) (models.Transaction, error) {
	draft, err := draft.Validate()
	if err != nil {
		return models.Transaction{}, err
	}

	id := s.lastID
	for _, t := range s.items {
		id = max(id, t.ID)
	}
	id++

	t := models.Transaction{ID: id, TransactionDraft: draft.Clone()}
	s.items = append(s.items, t)
	s.lastID = id

	return t.Clone(), nil
}

// Update replaces the transaction with the same ID.
func (s *Transactions) Update(t models.Transaction) (models.Transaction, error) {
	idx := s.index(t.ID)
	if idx == -1 {
		return models.Transaction{}, fmt.Errorf("%w transaction with ID %d", models.ErrNotFound, t.ID)
	}

	draft, err := t.TransactionDraft.Validate()
	if err != nil {
		return models.Transaction{}, err
	}

	s.items[idx] = models.Transaction{ID: t.ID, TransactionDraft: draft.Clone()}
	return s.items[idx].Clone(), nil
}

// Delete removes the transaction with the ID. It reports whether a
// transaction was removed; deleting an unknown ID is not an error.
func (s *Transactions) Delete(id uint64) bool {
	idx := s.index(id)
	if idx == -1 {
		return false
	}

	s.items = slices.Delete(s.items, idx, idx+1)
	return true
}

// ReplaceAll replaces all transactions. IDs are assigned sequentially from 1
// in input order. If any draft is invalid, nothing is replaced.
func (s *Transactions) ReplaceAll(drafts []models.TransactionDraft) ([]models.Transaction, error) {
	items := make([]models.Transaction, 0, len(drafts))
	for i, d := range drafts {
		d, err := d.Validate()
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		items = append(items, models.Transaction{ID: uint64(i + 1), TransactionDraft: d.Clone()})
	}

	s.items = items
	s.lastID = uint64(len(items))

	return s.List(), nil
}

// Get returns the transaction with the ID.
func (s *Transactions) Get(id uint64) (models.Transaction, error) {
	idx := s.index(id)
	if idx == -1 {
		return models.Transaction{}, fmt.Errorf("%w transaction with ID %d", models.ErrNotFound, id)
	}
	return s.items[idx].Clone(), nil
}

// List returns a copy of all transactions in store order.
func (s *Transactions) List() []models.Transaction {
	out := make([]models.Transaction, len(s.items))
	for i, t := range s.items {
		out[i] = t.Clone()
	}
	return out
}

// Len returns the number of transactions.
func (s *Transactions) Len() int {
	return len(s.items)
}

// Categories returns the distinct category names used by transactions,
// sorted.
func (s *Transactions) Categories() []string {
	return distinct(s.items, func(t models.Transaction) string { return t.Category })
}

// Methods returns the distinct payment methods used by transactions, sorted.
func (s *Transactions) Methods() []string {
	return distinct(s.items, func(t models.Transaction) string { return t.Method })
}

// restore loads a previously listed state. The items are taken over as is.
func (s *Transactions) restore(items []models.Transaction, lastID uint64) {
	s.items = items
	s.lastID = lastID
}

// rewrite applies fn to every transaction. It must not fail.
func (s *Transactions) rewrite(fn func(t *models.Transaction)) {
	for i := range s.items {
		fn(&s.items[i])
	}
}

// any reports whether any transaction matches.
func (s *Transactions) any(match func(t models.Transaction) bool) bool {
	return slices.ContainsFunc(s.items, match)
}

func (s *Transactions) index(id uint64) int {
	return slices.IndexFunc(s.items, func(t models.Transaction) bool {
		return t.ID == id
	})
}

func distinct(items []models.Transaction, field func(models.Transaction) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, t := range items {
		v := field(t)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
