package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/budget-zero/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	Income  TransactionType = "Income"
	Expense TransactionType = "Expense"
)

// typeAliases maps folded tokens to transaction types. The French tokens
// are the ones written by the original web application.
var typeAliases = map[string]TransactionType{
	Key("Income"):  Income,
	Key("Revenu"):  Income,
	Key("Expense"): Expense,
	Key("Dépense"): Expense,
	Key("Depense"): Expense,
}

// ParseTransactionType parses a transaction type token.
func ParseTransactionType(s string) (TransactionType, error) {
	t, ok := typeAliases[Key(s)]
	if !ok {
		return "", fmt.Errorf("%w: unknown transaction type %q", ErrInvalidTransaction, s)
	}
	return t, nil
}

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// UnmarshalJSON implements the json.Unmarshaler interface and accepts all
// known aliases.
func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseTransactionType(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// TransactionDraft contains all editable fields of a transaction. It is what
// callers submit to create a transaction, before an ID is assigned.
type TransactionDraft struct {
	// Calendar date of the transaction
	Date types.Date `json:"date" validate:"required" example:"2024-01-05"`

	Category    string `json:"category" validate:"required" example:"Logement"`
	Subcategory string `json:"subcategory,omitempty" example:"Loyer"`

	Type   TransactionType `json:"type" validate:"transaction_type" example:"Expense"`
	Method string          `json:"method" validate:"required" example:"Virement"` // Payment method

	// Amount of the transaction. The sign of the cash effect is derived from Type.
	Amount decimal.Decimal `json:"amount" validate:"gte=0" example:"300"`

	Description string   `json:"description,omitempty" example:"Loyer de janvier"`
	Labels      []string `json:"labels,omitempty" validate:"dive,required" example:"Vacances"` // Names of labels
}

// Transaction is a transaction with its ID.
type Transaction struct {
	ID uint64 `json:"id" example:"1"`
	TransactionDraft
}

// Normalize trims all string fields and removes blank and duplicate labels.
// The first spelling of a label wins.
func (d TransactionDraft) Normalize() TransactionDraft {
	d.Category = strings.TrimSpace(d.Category)
	d.Subcategory = strings.TrimSpace(d.Subcategory)
	d.Method = strings.TrimSpace(d.Method)
	d.Description = strings.TrimSpace(d.Description)
	d.Labels = uniqueNames(d.Labels)
	return d
}

// Validate normalizes the draft and checks it. The error wraps
// ErrInvalidTransaction.
func (d TransactionDraft) Validate() (TransactionDraft, error) {
	d = d.Normalize()
	if err := validate.Struct(d); err != nil {
		return d, fmt.Errorf("%w: %s", ErrInvalidTransaction, validationText(err))
	}
	return d, nil
}

// Signed returns the cash effect of the transaction: the amount for income,
// the negated amount for expenses.
func (d TransactionDraft) Signed() decimal.Decimal {
	if d.Type == Expense {
		return d.Amount.Neg()
	}
	return d.Amount
}

// HasLabel reports whether the transaction carries the label.
func (d TransactionDraft) HasLabel(name string) bool {
	for _, l := range d.Labels {
		if l == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the draft.
func (d TransactionDraft) Clone() TransactionDraft {
	if d.Labels != nil {
		d.Labels = append([]string(nil), d.Labels...)
	}
	return d
}

// Clone returns a deep copy of the transaction.
func (t Transaction) Clone() Transaction {
	t.TransactionDraft = t.TransactionDraft.Clone()
	return t
}

func uniqueNames(in []string) []string {
	if len(in) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, name := range in {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[Key(name)]; ok {
			continue
		}
		seen[Key(name)] = struct{}{}
		out = append(out, name)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
