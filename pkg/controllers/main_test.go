package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/budget-zero/backend/internal/types"
	"github.com/budget-zero/backend/pkg/controllers"
	"github.com/budget-zero/backend/pkg/models"
	"github.com/budget-zero/backend/pkg/session"
	"github.com/budget-zero/backend/pkg/storage"
	"github.com/budget-zero/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TestSuiteStandard runs the API tests against a session with an in-memory
// storage that is reset for each test.
type TestSuiteStandard struct {
	suite.Suite
	controller controllers.Controller
}

func TestStandard(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

func (suite *TestSuiteStandard) SetupSuite() {
	os.Setenv("LOG_FORMAT", "human")
	os.Setenv("GIN_MODE", "debug")
	os.Setenv("API_URL", "http://example.com")
}

func (suite *TestSuiteStandard) TearDownSuite() {
	os.Unsetenv("LOG_FORMAT")
	os.Unsetenv("GIN_MODE")
	os.Unsetenv("API_URL")
}

// SetupTest is called before each test in the suite.
func (suite *TestSuiteStandard) SetupTest() {
	budget := session.New(storage.NewMemory(), session.Options{Version: "test"})
	suite.Require().Nil(budget.Load(context.Background()))

	suite.controller = controllers.Controller{Session: budget}
}

func (suite *TestSuiteStandard) request(method, url string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	return test.Request(suite.T(), suite.controller, method, url, body, headers...)
}

func (suite *TestSuiteStandard) createTestTransaction(draft models.TransactionDraft, expectedStatus ...int) controllers.TransactionResponse {
	if draft.Date.IsZero() {
		draft.Date = types.NewDate(2024, time.January, 10)
	}

	if draft.Type == "" {
		draft.Type = models.Expense
	}

	if draft.Method == "" {
		draft.Method = "Carte"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = []int{http.StatusCreated}
	}

	r := suite.request(http.MethodPost, "http://example.com/v1/transactions", draft)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var transaction controllers.TransactionResponse
	if r.Code == http.StatusCreated {
		test.DecodeResponse(suite.T(), &r, &transaction)
	}

	return transaction
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
