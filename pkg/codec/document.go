// Package codec translates between transactions and the JSON document they
// are exchanged in.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/budget-zero/backend/internal/types"
	"github.com/budget-zero/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// Record is a transaction in a document.
type Record struct {
	ID          uint64                 `json:"id" example:"1"`
	Date        types.Date             `json:"date" example:"2024-01-05"`
	Category    string                 `json:"category" example:"Salaire"`
	Subcategory string                 `json:"subcategory,omitempty" example:"Prime"`
	Type        models.TransactionType `json:"type" example:"Income"`
	Method      string                 `json:"method" example:"Virement"`
	Amount      json.Number            `json:"amount" swaggertype:"number" example:"1000"`
	Description string                 `json:"description,omitempty" example:"Salaire de janvier"`
	Labels      []string               `json:"labels,omitempty" example:"Travail"`
}

// Taxonomy is the taxonomy an import is compared with.
type Taxonomy interface {
	Categories() []models.Category
	Labels() []models.Label
}

// Document is the result of an import.
type Document struct {
	// Transactions with IDs assigned from 1 in document order
	Transactions []models.Transaction

	// Categories and subcategories used by the transactions but missing in
	// the taxonomy. A derived category contains only the missing subcategories
	// if the category itself is known.
	DerivedCategories []models.Category

	// Labels used by the transactions but missing in the taxonomy
	DerivedLabels []models.Label
}

// Drafts returns the transactions of the document without their IDs.
func (d Document) Drafts() []models.TransactionDraft {
	drafts := make([]models.TransactionDraft, len(d.Transactions))
	for i, t := range d.Transactions {
		drafts[i] = t.TransactionDraft.Clone()
	}
	return drafts
}

// RecordOf converts a transaction to a record.
func RecordOf(t models.Transaction) Record {
	return Record{
		ID:          t.ID,
		Date:        t.Date,
		Category:    t.Category,
		Subcategory: t.Subcategory,
		Type:        t.Type,
		Method:      t.Method,
		Amount:      json.Number(t.Amount.String()),
		Description: t.Description,
		Labels:      t.Labels,
	}
}

// Draft converts the record back to a validated transaction draft.
func (r Record) Draft() (models.TransactionDraft, error) {
	amount, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return models.TransactionDraft{}, fmt.Errorf("amount %q is not a number", r.Amount)
	}

	return models.TransactionDraft{
		Date:        r.Date,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Type:        r.Type,
		Method:      r.Method,
		Amount:      amount,
		Description: r.Description,
		Labels:      r.Labels,
	}.Validate()
}

// Records converts transactions to records.
func Records(transactions []models.Transaction) []Record {
	records := make([]Record, len(transactions))
	for i, t := range transactions {
		records[i] = RecordOf(t)
	}
	return records
}

// Export encodes the transactions as a JSON array.
func Export(transactions []models.Transaction) ([]byte, error) {
	return json.MarshalIndent(Records(transactions), "", "  ")
}

// FileName is the name for a document exported at the time.
func FileName(t time.Time) string {
	return fmt.Sprintf("budget_%s.json", types.DateOf(t))
}

// Import decodes a JSON array of transactions.
//
// The whole document is rejected with models.ErrInvalidFormat if it is not
// an array or any of its records is malformed. Names of categories,
// subcategories and labels are matched with the taxonomy ignoring case and
// take the spelling of the taxonomy.
func Import(data []byte, taxonomy Taxonomy) (Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return Document{}, fmt.Errorf("%w: the top level value must be an array", models.ErrInvalidFormat)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %s", models.ErrInvalidFormat, err)
	}

	d := newDeriver(taxonomy)
	transactions := make([]models.Transaction, 0, len(raw))
	for i, message := range raw {
		var r Record
		if err := json.Unmarshal(message, &r); err != nil {
			return Document{}, fmt.Errorf("%w: record %d: %s", models.ErrInvalidFormat, i, err)
		}

		draft, err := r.Draft()
		if err != nil {
			return Document{}, fmt.Errorf("%w: record %d: %s", models.ErrInvalidFormat, i, err)
		}

		transactions = append(transactions, models.Transaction{
			ID:               uint64(i + 1),
			TransactionDraft: d.canonicalize(draft),
		})
	}

	return Document{
		Transactions:      transactions,
		DerivedCategories: d.result(),
		DerivedLabels:     d.labels,
	}, nil
}
