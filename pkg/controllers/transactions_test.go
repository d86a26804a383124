package controllers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/budget-zero/backend/internal/types"
	"github.com/budget-zero/backend/pkg/controllers"
	"github.com/budget-zero/backend/pkg/models"
	"github.com/budget-zero/backend/test"
)

func (suite *TestSuiteStandard) TestCreateTransaction() {
	transaction := suite.createTestTransaction(models.TransactionDraft{
		Category:    "Logement",
		Subcategory: "Loyer",
		Amount:      amount("300.50"),
		Labels:      []string{"Maison"},
	})

	suite.Equal(uint64(1), transaction.Data.ID)
	suite.Equal("http://example.com/v1/transactions/1", transaction.Data.Links.Self)
	suite.True(amount("300.5").Equal(transaction.Data.Amount))

	// The taxonomy entries are created with the transaction
	r := suite.request(http.MethodGet, "http://example.com/v1/categories/Logement", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var category controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &category)
	suite.Equal([]string{"Loyer"}, category.Data.Subcategories)

	r = suite.request(http.MethodGet, "http://example.com/v1/labels/Maison", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCreateTransactionFrenchType() {
	r := suite.request(http.MethodPost, "http://example.com/v1/transactions", `{
		"date": "2024-01-05",
		"category": "Salaire",
		"type": "Revenu",
		"method": "Virement",
		"amount": 1000
	}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var transaction controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &transaction)
	suite.Equal(models.Income, transaction.Data.Type)
}

func (suite *TestSuiteStandard) TestCreateTransactionInvalid() {
	tests := []struct {
		body string
		msg  string
	}{
		{"", "the request body must not be empty"},
		{`{ broken json }`, "the body of your request contains invalid or un-parseable data"},
		{`{"date": "2024-01-05", "category": "Logement", "type": "Loan", "method": "Carte", "amount": 3}`, "Loan"},
		{`{"date": "2024-01-05", "type": "Expense", "method": "Carte", "amount": 3}`, "category is required"},
		{`{"date": "2024-01-05", "category": "Logement", "type": "Expense", "method": "Carte", "amount": -3}`, "amount must not be negative"},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodPost, "http://example.com/v1/transactions", tt.body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		suite.Contains(test.DecodeError(suite.T(), r.Body.Bytes()), tt.msg, tt.body)
	}

	r := suite.request(http.MethodGet, "http://example.com/v1/categories", "")
	var categories controllers.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &categories)
	suite.Empty(categories.Data, "invalid transactions do not create categories")
}

func (suite *TestSuiteStandard) TestGetTransactions() {
	suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Amount: amount("300"), Description: "Loyer de janvier"})
	suite.createTestTransaction(models.TransactionDraft{Category: "Loisirs", Amount: amount("40"), Labels: []string{"Vacances"}})
	suite.createTestTransaction(models.TransactionDraft{Category: "Salaire", Type: models.Income, Amount: amount("1000")})
	suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Amount: amount("310"), Date: types.NewDate(2024, time.February, 10)})

	tests := []struct {
		query string
		ids   []uint64
	}{
		{"", []uint64{1, 2, 3, 4}},
		{"?month=2024-01", []uint64{1, 2, 3}},
		{"?month=2024-02", []uint64{4}},
		{"?category=Logement", []uint64{1, 4}},
		{"?label=Vacances", []uint64{2}},
		{"?search=*JANVIER*", []uint64{1}},
		{"?sort=amount&direction=desc", []uint64{3, 4, 1, 2}},
		{"?sort=amount&direction=asc&month=2024-01", []uint64{2, 1, 3}},
		{"?sort=amount", []uint64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodGet, "http://example.com/v1/transactions"+tt.query, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response controllers.TransactionListResponse
		test.DecodeResponse(suite.T(), &r, &response)

		ids := make([]uint64, 0)
		for _, t := range response.Data {
			ids = append(ids, t.ID)
		}
		suite.Equal(tt.ids, ids, tt.query)
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsEmptyArray() {
	r := suite.request(http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.JSONEq(`{"data": []}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestGetTransactionsInvalidQuery() {
	for _, query := range []string{"month=2024-13", "month=January", "sort=price", "direction=up"} {
		r := suite.request(http.MethodGet, "http://example.com/v1/transactions?"+query, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	created := suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Amount: amount("300")})

	r := suite.request(http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transaction controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &transaction)
	suite.Equal(created.Data.ID, transaction.Data.ID)
	suite.Equal("Logement", transaction.Data.Category)

	r = suite.request(http.MethodGet, "http://example.com/v1/transactions/5", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Equal("there is no transaction with ID 5", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodGet, "http://example.com/v1/transactions/NotAnID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	created := suite.createTestTransaction(models.TransactionDraft{
		Category:    "Logement",
		Amount:      amount("300"),
		Description: "Loyer",
	})

	r := suite.request(http.MethodPatch, created.Data.Links.Self, map[string]any{
		"amount":      42,
		"subcategory": "Charges",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transaction controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &transaction)
	suite.True(amount("42").Equal(transaction.Data.Amount))
	suite.Equal("Charges", transaction.Data.Subcategory)
	suite.Equal("Loyer", transaction.Data.Description, "fields missing in the body are kept")
	suite.Equal(created.Data.Date, transaction.Data.Date)

	r = suite.request(http.MethodPatch, created.Data.Links.Self, `{"category": ""}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPatch, "http://example.com/v1/transactions/99", `{"amount": 1}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	created := suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Amount: amount("300")})

	r := suite.request(http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// IDs of deleted transactions are not reused
	next := suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Amount: amount("300")})
	suite.Equal(created.Data.ID+1, next.Data.ID)
}

func (suite *TestSuiteStandard) TestOptionsTransaction() {
	r := suite.request(http.MethodOptions, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, "http://example.com/v1/transactions/1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	created := suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Amount: amount("300")})
	r = suite.request(http.MethodOptions, fmt.Sprintf("http://example.com/v1/transactions/%d", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}
