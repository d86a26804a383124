package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/budget-zero/backend/pkg/models"
)

// Backup contains the complete state of a budget.
type Backup struct {
	Version      string            `json:"version" example:"1.0.0"` // The version of the backend the backup was made with
	CreationTime time.Time         `json:"creationTime"`            // Time the backup was created
	Transactions []Record          `json:"transactions"`            // All transactions
	Categories   []models.Category `json:"categories"`              // All categories with their subcategories
	Labels       []models.Label    `json:"labels"`                  // All labels
}

// NewBackup creates a backup of the state.
func NewBackup(version string, transactions []models.Transaction, categories []models.Category, labels []models.Label) Backup {
	if categories == nil {
		categories = []models.Category{}
	}
	if labels == nil {
		labels = []models.Label{}
	}

	return Backup{
		Version:      version,
		CreationTime: time.Now(),
		Transactions: Records(transactions),
		Categories:   categories,
		Labels:       labels,
	}
}

// ReadBackup decodes a backup. Transactions keep their IDs.
func ReadBackup(data []byte) (Backup, []models.Transaction, error) {
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return Backup{}, nil, fmt.Errorf("%w: %s", models.ErrInvalidFormat, err)
	}

	transactions := make([]models.Transaction, 0, len(b.Transactions))
	seen := make(map[uint64]struct{}, len(b.Transactions))
	for i, r := range b.Transactions {
		if r.ID == 0 {
			return Backup{}, nil, fmt.Errorf("%w: transaction %d has no ID", models.ErrInvalidFormat, i)
		}

		if _, ok := seen[r.ID]; ok {
			return Backup{}, nil, fmt.Errorf("%w: transaction ID %d is used twice", models.ErrInvalidFormat, r.ID)
		}
		seen[r.ID] = struct{}{}

		draft, err := r.Draft()
		if err != nil {
			return Backup{}, nil, fmt.Errorf("%w: transaction %d: %s", models.ErrInvalidFormat, i, err)
		}
		transactions = append(transactions, models.Transaction{ID: r.ID, TransactionDraft: draft})
	}

	return b, transactions, nil
}
