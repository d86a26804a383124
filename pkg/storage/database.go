package storage

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/budget-zero/backend/internal/types"
	"github.com/budget-zero/backend/pkg/models"
	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type transactionRow struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement:false"`
	Date        types.Date
	Category    string `gorm:"index"`
	Subcategory string
	Type        string
	Method      string
	Amount      decimal.Decimal `gorm:"type:TEXT"` // numeric columns are read back as float64 by SQLite
	Description string
	Labels      []string `gorm:"serializer:json"`
}

func (transactionRow) TableName() string {
	return "transactions"
}

type categoryRow struct {
	Name     string `gorm:"primaryKey"`
	Position int
}

func (categoryRow) TableName() string {
	return "categories"
}

type subcategoryRow struct {
	Category string `gorm:"primaryKey"`
	Name     string `gorm:"primaryKey"`
	Position int
}

func (subcategoryRow) TableName() string {
	return "subcategories"
}

type labelRow struct {
	Name     string `gorm:"primaryKey"`
	Color    string
	Icon     string
	Position int
}

func (labelRow) TableName() string {
	return "labels"
}

// DatabaseStorage stores snapshots in a SQL database through gorm.
type DatabaseStorage struct {
	db *gorm.DB
}

// OpenSQLite opens the SQLite database at dsn. Use ":memory:" for a
// database that only lives as long as the storage.
func OpenSQLite(ctx context.Context, dsn string) (*DatabaseStorage, error) {
	return open(ctx, sqlite.Open(dsn), true)
}

// OpenPostgres opens the PostgreSQL database described by dsn.
func OpenPostgres(ctx context.Context, dsn string) (*DatabaseStorage, error) {
	return open(ctx, postgres.Open(dsn), false)
}

func open(ctx context.Context, dialector gorm.Dialector, single bool) (*DatabaseStorage, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// SQLite allows one writer at a time. An in-memory database also only
	// exists on its own connection.
	if single {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	for _, register := range []func() error{
		func() error { return db.Callback().Query().After("*").Register("budget:after_query_general", generalCallback) },
		func() error { return db.Callback().Create().After("*").Register("budget:after_create_general", generalCallback) },
		func() error { return db.Callback().Delete().After("*").Register("budget:after_delete_general", generalCallback) },
	} {
		if err := register(); err != nil {
			return nil, err
		}
	}

	err = db.WithContext(ctx).AutoMigrate(transactionRow{}, categoryRow{}, subcategoryRow{}, labelRow{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	return &DatabaseStorage{db: db}, nil
}

// generalCallback handles errors of the database driver.
//
// These errors do not help users. The error is logged and a general error
// returned instead.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = models.ErrGeneral
	}
}

func (s *DatabaseStorage) Load(ctx context.Context) (Snapshot, error) {
	db := s.db.WithContext(ctx)

	var transactions []transactionRow
	if err := db.Order("id").Find(&transactions).Error; err != nil {
		return Snapshot{}, err
	}

	var categories []categoryRow
	if err := db.Order("position").Find(&categories).Error; err != nil {
		return Snapshot{}, err
	}

	var subcategories []subcategoryRow
	if err := db.Order("position").Find(&subcategories).Error; err != nil {
		return Snapshot{}, err
	}

	var labels []labelRow
	if err := db.Order("position").Find(&labels).Error; err != nil {
		return Snapshot{}, err
	}

	snapshot := Snapshot{}
	for _, t := range transactions {
		snapshot.Transactions = append(snapshot.Transactions, models.Transaction{
			ID: t.ID,
			TransactionDraft: models.TransactionDraft{
				Date:        t.Date,
				Category:    t.Category,
				Subcategory: t.Subcategory,
				Type:        models.TransactionType(t.Type),
				Method:      t.Method,
				Amount:      t.Amount,
				Description: t.Description,
				Labels:      t.Labels,
			},
		})
	}

	index := make(map[string]int, len(categories))
	for i, c := range categories {
		index[c.Name] = i
		snapshot.Categories = append(snapshot.Categories, models.Category{Name: c.Name, Subcategories: []string{}})
	}

	for _, sub := range subcategories {
		i, ok := index[sub.Category]
		if !ok {
			continue
		}
		snapshot.Categories[i].Subcategories = append(snapshot.Categories[i].Subcategories, sub.Name)
	}

	for _, l := range labels {
		snapshot.Labels = append(snapshot.Labels, models.Label{Name: l.Name, Color: l.Color, Icon: l.Icon})
	}

	return snapshot, nil
}

// Save replaces all rows in a single database transaction.
func (s *DatabaseStorage) Save(ctx context.Context, snapshot Snapshot) error {
	transactions := make([]transactionRow, 0, len(snapshot.Transactions))
	for _, t := range snapshot.Transactions {
		transactions = append(transactions, transactionRow{
			ID:          t.ID,
			Date:        t.Date,
			Category:    t.Category,
			Subcategory: t.Subcategory,
			Type:        string(t.Type),
			Method:      t.Method,
			Amount:      t.Amount,
			Description: t.Description,
			Labels:      t.Labels,
		})
	}

	categories := make([]categoryRow, 0, len(snapshot.Categories))
	subcategories := make([]subcategoryRow, 0)
	for i, c := range snapshot.Categories {
		categories = append(categories, categoryRow{Name: c.Name, Position: i})
		for j, sub := range c.Subcategories {
			subcategories = append(subcategories, subcategoryRow{Category: c.Name, Name: sub, Position: j})
		}
	}

	labels := make([]labelRow, 0, len(snapshot.Labels))
	for i, l := range snapshot.Labels {
		labels = append(labels, labelRow{Name: l.Name, Color: l.Color, Icon: l.Icon, Position: i})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&transactionRow{}, &categoryRow{}, &subcategoryRow{}, &labelRow{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}

		for _, rows := range []any{&transactions, &categories, &subcategories, &labels} {
			if reflect.ValueOf(rows).Elem().Len() == 0 {
				continue
			}

			if err := tx.CreateInBatches(rows, 100).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *DatabaseStorage) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection.
func (s *DatabaseStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
