// Package session owns the state of a budget. It combines the transaction
// store, the taxonomy and a storage backend, and caches everything derived
// from them.
//
// All methods are safe for concurrent use. Every change is applied to both
// stores, persisted, and only then made visible. If any step fails, the
// state before the change is restored.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/budget-zero/backend/pkg/codec"
	"github.com/budget-zero/backend/pkg/models"
	"github.com/budget-zero/backend/pkg/query"
	"github.com/budget-zero/backend/pkg/storage"
	"github.com/budget-zero/backend/pkg/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// cacheSize is the number of dashboards kept for the current version.
const cacheSize = 32

type Session struct {
	mu sync.Mutex

	id           uuid.UUID
	seed         bool
	version      string
	storage      storage.Storage
	transactions *store.Transactions
	taxonomy     *store.Taxonomy

	// revision is incremented with every committed change
	revision   uint64
	dashboards map[query.Filter]Dashboard
}

// Options configure a session.
type Options struct {
	// Seed creates the base categories when the storage is empty
	Seed bool

	// Version of the backend, written into backups
	Version string
}

// New creates an empty session persisting to s. Call Load to read the
// stored state.
func New(s storage.Storage, options Options) *Session {
	transactions := store.NewTransactions()

	return &Session{
		id:           uuid.New(),
		seed:         options.Seed,
		version:      options.Version,
		storage:      s,
		transactions: transactions,
		taxonomy:     store.NewTaxonomy(transactions),
		dashboards:   make(map[query.Filter]Dashboard),
	}
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Revision is the number of changes committed since the session was created.
func (s *Session) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.revision
}

// Ping checks that the storage can be reached.
func (s *Session) Ping(ctx context.Context) error {
	return s.storage.Ping(ctx)
}

// Load replaces the state with the one stored. If seeding is enabled and
// the storage is empty, the base categories are created and saved.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load budget: %w", err)
	}

	store.Restore(s.transactions, s.taxonomy, store.State{
		Transactions: snapshot.Transactions,
		Categories:   snapshot.Categories,
		Labels:       snapshot.Labels,
	})
	s.commit("load")

	log.Info().Str("session", s.id.String()).Int("transactions", len(snapshot.Transactions)).Msg("Loaded budget")

	if !s.seed || !snapshot.Empty() {
		return nil
	}

	return s.change(ctx, "seed", func() error {
		for _, name := range models.BaseCategories {
			if _, err := s.taxonomy.AddCategory(name); err != nil {
				return err
			}
		}
		return nil
	})
}

// change applies fn and persists the result. The lock must be held.
func (s *Session) change(ctx context.Context, operation string, fn func() error) error {
	before := store.Capture(s.transactions, s.taxonomy)

	err := fn()
	if err == nil {
		err = s.storage.Save(ctx, s.snapshot())
		if err != nil {
			log.Error().Str("session", s.id.String()).Str("operation", operation).Err(err).Msg("Could not save budget")
		}
	}

	if err != nil {
		store.Restore(s.transactions, s.taxonomy, before)
		return err
	}

	s.commit(operation)
	return nil
}

// commit makes a change visible by invalidating all derived values.
func (s *Session) commit(operation string) {
	s.revision++
	clear(s.dashboards)

	log.Debug().Str("session", s.id.String()).Str("operation", operation).Uint64("revision", s.revision).Msg("Committed change")
}

func (s *Session) snapshot() storage.Snapshot {
	return storage.Snapshot{
		Transactions: s.transactions.List(),
		Categories:   s.taxonomy.Categories(),
		Labels:       s.taxonomy.Labels(),
	}
}

// register canonicalizes the names of the draft and adds the categories,
// subcategories and labels it uses that do not exist yet.
func (s *Session) register(draft models.TransactionDraft) (models.TransactionDraft, error) {
	draft, err := draft.Validate()
	if err != nil {
		return draft, err
	}

	draft, categories, labels := codec.Canonicalize(s.taxonomy, draft)
	if err := s.taxonomy.Merge(categories, labels); err != nil {
		return draft, err
	}

	return draft, nil
}

// Transaction returns the transaction with the ID.
func (s *Session) Transaction(id uint64) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transactions.Get(id)
}

// Transactions returns the view selected by the filter.
func (s *Session) Transactions(f query.Filter) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return query.ComputeView(s.transactions.List(), f)
}

// AddTransaction creates a transaction. Categories, subcategories and labels
// it references are created if they do not exist.
func (s *Session) AddTransaction(ctx context.Context, draft models.TransactionDraft) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t models.Transaction
	err := s.change(ctx, "add transaction", func() error {
		draft, err := s.register(draft)
		if err != nil {
			return err
		}

		t, err = s.transactions.Add(draft)
		return err
	})

	return t, err
}

// UpdateTransaction replaces all fields of the transaction with the ID.
func (s *Session) UpdateTransaction(ctx context.Context, id uint64, draft models.TransactionDraft) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t models.Transaction
	err := s.change(ctx, "update transaction", func() error {
		if _, err := s.transactions.Get(id); err != nil {
			return err
		}

		draft, err := s.register(draft)
		if err != nil {
			return err
		}

		t, err = s.transactions.Update(models.Transaction{ID: id, TransactionDraft: draft})
		return err
	})

	return t, err
}

// DeleteTransaction deletes the transaction with the ID.
func (s *Session) DeleteTransaction(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.change(ctx, "delete transaction", func() error {
		if !s.transactions.Delete(id) {
			return fmt.Errorf("%w transaction with ID %d", models.ErrNotFound, id)
		}
		return nil
	})
}

// Methods returns the payment methods that can be chosen: the base methods
// and all methods in use.
func (s *Session) Methods() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return query.Methods(s.transactions.List())
}

// LabelStats sums up the transactions of the view carrying the label.
func (s *Session) LabelStats(name string, f query.Filter) (query.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.taxonomy.Label(name)
	if err != nil {
		return query.Totals{}, err
	}

	return query.LabelStats(query.ComputeView(s.transactions.List(), f), l.Name), nil
}

// Export encodes all transactions as a document.
func (s *Session) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return codec.Export(s.transactions.List())
}

// Backup returns the complete state.
func (s *Session) Backup() codec.Backup {
	s.mu.Lock()
	defer s.mu.Unlock()

	return codec.NewBackup(s.version, s.transactions.List(), s.taxonomy.Categories(), s.taxonomy.Labels())
}

// Import replaces all transactions with the ones in the document and adds
// the taxonomy entries they need.
//
// confirm must be the number of transactions that are replaced, otherwise
// models.ErrUnconfirmed is returned. Nothing changes if the import fails.
func (s *Session) Import(ctx context.Context, data []byte, confirm int) (codec.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if confirm != s.transactions.Len() {
		return codec.Document{}, fmt.Errorf("%w: %d transactions would be replaced, but %d were confirmed", models.ErrUnconfirmed, s.transactions.Len(), confirm)
	}

	document, err := codec.Import(data, s.taxonomy)
	if err != nil {
		return codec.Document{}, err
	}

	err = s.change(ctx, "import", func() error {
		if err := s.taxonomy.Merge(document.DerivedCategories, document.DerivedLabels); err != nil {
			return fmt.Errorf("%w: %s", models.ErrInvalidFormat, err)
		}

		_, err := s.transactions.ReplaceAll(document.Drafts())
		return err
	})
	if err != nil {
		return codec.Document{}, err
	}

	return document, nil
}
