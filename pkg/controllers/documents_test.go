package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/budget-zero/backend/pkg/codec"
	"github.com/budget-zero/backend/pkg/controllers"
	"github.com/budget-zero/backend/pkg/models"
	"github.com/budget-zero/backend/test"
)

const document = `[
	{"date": "2024-01-05", "category": "salaire", "type": "Revenu", "method": "Virement", "amount": 1000},
	{"date": "2024-01-06", "category": "Logement", "subcategory": "Loyer", "type": "Dépense", "method": "Carte", "amount": 300, "labels": ["Maison"]},
	{"date": "2024-01-07", "category": "Logement", "subcategory": "Charges", "type": "Expense", "method": "Carte", "amount": 45.5}
]`

// multipartFile returns a multipart form body containing the file and its
// content type.
func multipartFile(name, content string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	fw, _ := mw.CreateFormFile("file", name)
	_, _ = fw.Write([]byte(content))
	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}

func (suite *TestSuiteStandard) TestExport() {
	suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Subcategory: "Loyer", Amount: amount("300.50"), Labels: []string{"Maison"}})
	suite.createTestTransaction(models.TransactionDraft{Category: "Salaire", Type: models.Income, Amount: amount("1000")})

	r := suite.request(http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Equal(fmt.Sprintf("attachment; filename=%q", codec.FileName(time.Now())), r.Header().Get("Content-Disposition"))

	var records []codec.Record
	suite.Require().Nil(json.Unmarshal(r.Body.Bytes(), &records))
	suite.Require().Len(records, 2)
	suite.Equal("Logement", records[0].Category)
	suite.Equal("300.5", records[0].Amount.String())
	suite.Equal([]string{"Maison"}, records[0].Labels)
	suite.Equal(models.Income, records[1].Type)
}

func (suite *TestSuiteStandard) TestExportEmpty() {
	r := suite.request(http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.JSONEq(`[]`, r.Body.String())
}

func (suite *TestSuiteStandard) TestImport() {
	suite.createTestCategory(controllers.CategoryCreate{Name: "Salaire", Subcategories: []string{"Prime"}})
	suite.createTestTransaction(models.TransactionDraft{Category: "Transport", Amount: amount("20")})

	r := suite.request(http.MethodPost, "http://example.com/v1/import?confirm=1", document)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Equal(3, response.Data.Transactions)

	suite.Require().Len(response.Data.DerivedCategories, 1)
	suite.Equal("Logement", response.Data.DerivedCategories[0].Name)
	suite.Equal([]string{"Loyer", "Charges"}, response.Data.DerivedCategories[0].Subcategories)
	suite.Require().Len(response.Data.DerivedLabels, 1)
	suite.Equal("Maison", response.Data.DerivedLabels[0].Name)

	r = suite.request(http.MethodGet, "http://example.com/v1/transactions", "")
	var transactions controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	suite.Require().Len(transactions.Data, 3)
	suite.Equal(uint64(1), transactions.Data[0].ID)
	suite.Equal("Salaire", transactions.Data[0].Category, "names take the spelling of the existing category")

	// The category of the replaced transaction is kept
	r = suite.request(http.MethodGet, "http://example.com/v1/categories/Transport", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestImportConfirmation() {
	suite.createTestTransaction(models.TransactionDraft{Category: "Transport", Amount: amount("20")})

	r := suite.request(http.MethodPost, "http://example.com/v1/import", document)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPost, "http://example.com/v1/import?confirm=abc", document)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPost, "http://example.com/v1/import?confirm=0", document)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = suite.request(http.MethodGet, "http://example.com/v1/transactions", "")
	var transactions controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	suite.Len(transactions.Data, 1, "nothing is replaced without confirmation")
}

func (suite *TestSuiteStandard) TestImportInvalid() {
	tests := []struct {
		body string
		msg  string
	}{
		{"", "the request body must not be empty"},
		{`{"date": "2024-01-05"}`, "array"},
		{`[{"date": "2024-01-05", "category": "Logement", "type": "Loan", "method": "Carte", "amount": 3}]`, "record 0"},
		{`[{"date": "2024-01-05", "category": "Logement", "type": "Expense", "method": "Carte", "amount": 3}, {"date": "05/01/2024"}]`, "record 1"},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodPost, "http://example.com/v1/import?confirm=0", tt.body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		suite.Contains(test.DecodeError(suite.T(), r.Body.Bytes()), tt.msg, tt.body)
	}

	r := suite.request(http.MethodGet, "http://example.com/v1/categories", "")
	var categories controllers.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &categories)
	suite.Empty(categories.Data, "a failed import does not create categories")
}

func (suite *TestSuiteStandard) TestImportFile() {
	body, headers := multipartFile("budget.json", document)
	r := suite.request(http.MethodPost, "http://example.com/v1/import?confirm=0", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Equal(3, response.Data.Transactions)

	body, headers = multipartFile("budget.csv", document)
	r = suite.request(http.MethodPost, "http://example.com/v1/import?confirm=3", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Equal("this endpoint only supports .json files", test.DecodeError(suite.T(), r.Body.Bytes()))

	body = new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	_ = mw.WriteField("other", "value")
	mw.Close()

	r = suite.request(http.MethodPost, "http://example.com/v1/import?confirm=3", body, map[string]string{"Content-Type": mw.FormDataContentType()})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Equal(controllers.ErrNoFilePost.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestExportImportRoundTrip() {
	suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Subcategory: "Loyer", Amount: amount("300.50"), Labels: []string{"Maison"}, Description: "Loyer"})
	suite.createTestTransaction(models.TransactionDraft{Category: "Salaire", Type: models.Income, Amount: amount("1000")})

	r := suite.request(http.MethodGet, "http://example.com/v1/export", "")
	exported := r.Body.String()

	r = suite.request(http.MethodPost, "http://example.com/v1/import?confirm=2", exported)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Equal(2, response.Data.Transactions)
	suite.Empty(response.Data.DerivedCategories)
	suite.Empty(response.Data.DerivedLabels)

	r = suite.request(http.MethodGet, "http://example.com/v1/export", "")
	suite.JSONEq(exported, r.Body.String())
}

func (suite *TestSuiteStandard) TestBackup() {
	suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Amount: amount("300"), Labels: []string{"Maison"}})

	r := suite.request(http.MethodGet, "http://example.com/v1/backup", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var backup codec.Backup
	test.DecodeResponse(suite.T(), &r, &backup)
	suite.Equal("test", backup.Version)
	suite.Len(backup.Transactions, 1)
	suite.Equal(uint64(1), backup.Transactions[0].ID)
	suite.Len(backup.Categories, 1)
	suite.Len(backup.Labels, 1)
	suite.WithinDuration(time.Now(), backup.CreationTime, time.Minute)
}

func (suite *TestSuiteStandard) TestOptionsDocuments() {
	for path, allow := range map[string]string{
		"export":    "OPTIONS, GET",
		"import":    "OPTIONS, POST",
		"backup":    "OPTIONS, GET",
		"dashboard": "OPTIONS, GET",
		"flow":      "OPTIONS, GET",
		"methods":   "OPTIONS, GET",
	} {
		r := suite.request(http.MethodOptions, "http://example.com/v1/"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Equal(allow, r.Header().Get("allow"), path)
	}
}
