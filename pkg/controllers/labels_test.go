package controllers_test

import (
	"net/http"

	"github.com/budget-zero/backend/pkg/controllers"
	"github.com/budget-zero/backend/pkg/models"
	"github.com/budget-zero/backend/test"
)

func (suite *TestSuiteStandard) createTestLabel(l models.Label, expectedStatus ...int) controllers.LabelResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = []int{http.StatusCreated}
	}

	r := suite.request(http.MethodPost, "http://example.com/v1/labels", l)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var label controllers.LabelResponse
	if r.Code == http.StatusCreated {
		test.DecodeResponse(suite.T(), &r, &label)
	}

	return label
}

func (suite *TestSuiteStandard) TestCreateLabel() {
	label := suite.createTestLabel(models.Label{Name: "Vacances", Icon: "✈️"})

	suite.Equal("Vacances", label.Data.Name)
	suite.Equal(models.DefaultLabelColor, label.Data.Color)
	suite.Equal("✈️", label.Data.Icon)
	suite.Equal("http://example.com/v1/labels/Vacances", label.Data.Links.Self)
	suite.Equal("http://example.com/v1/labels/Vacances/stats", label.Data.Links.Stats)
	suite.Equal("http://example.com/v1/transactions?label=Vacances", label.Data.Links.Transactions)

	suite.createTestLabel(models.Label{Name: "vacances"}, http.StatusConflict)
	suite.createTestLabel(models.Label{Name: ""}, http.StatusBadRequest)

	r := suite.request(http.MethodGet, "http://example.com/v1/labels", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var labels controllers.LabelListResponse
	test.DecodeResponse(suite.T(), &r, &labels)
	suite.Len(labels.Data, 1)
}

func (suite *TestSuiteStandard) TestUpdateLabel() {
	label := suite.createTestLabel(models.Label{Name: "Vacances", Color: "#ec4899", Icon: "✈️"})
	suite.createTestLabel(models.Label{Name: "Travail"})
	transaction := suite.createTestTransaction(models.TransactionDraft{Category: "Loisirs", Amount: amount("40"), Labels: []string{"Vacances"}})

	// Only the color changes
	r := suite.request(http.MethodPatch, label.Data.Links.Self, `{"color": "#10b981"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.LabelResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Equal("#10b981", updated.Data.Color)
	suite.Equal("✈️", updated.Data.Icon)

	// Renaming updates the transactions
	r = suite.request(http.MethodPatch, label.Data.Links.Self, `{"name": "Voyages", "icon": ""}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Equal("Voyages", updated.Data.Name)
	suite.Equal("#10b981", updated.Data.Color)
	suite.Equal("", updated.Data.Icon)

	r = suite.request(http.MethodGet, transaction.Data.Links.Self, "")
	var t controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &t)
	suite.Equal([]string{"Voyages"}, t.Data.Labels)

	// An empty color resets to the default
	r = suite.request(http.MethodPatch, updated.Data.Links.Self, `{"color": ""}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Equal(models.DefaultLabelColor, updated.Data.Color)

	r = suite.request(http.MethodPatch, updated.Data.Links.Self, `{"name": "TRAVAIL"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = suite.request(http.MethodPatch, "http://example.com/v1/labels/Vacances", `{"color": "#10b981"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteLabel() {
	suite.createTestLabel(models.Label{Name: "Vacances"})
	suite.createTestLabel(models.Label{Name: "Travail"})
	suite.createTestTransaction(models.TransactionDraft{Category: "Loisirs", Amount: amount("40"), Labels: []string{"vacances"}})

	r := suite.request(http.MethodDelete, "http://example.com/v1/labels/Vacances", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = suite.request(http.MethodDelete, "http://example.com/v1/labels/Travail", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, "http://example.com/v1/labels/Travail", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Equal(`there is no label "Travail"`, test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestLabelStats() {
	suite.createTestTransaction(models.TransactionDraft{Category: "Loisirs", Amount: amount("40"), Labels: []string{"Vacances"}})
	suite.createTestTransaction(models.TransactionDraft{Category: "Transport", Amount: amount("60.5"), Labels: []string{"Vacances", "Train"}})
	suite.createTestTransaction(models.TransactionDraft{Category: "Salaire", Type: models.Income, Amount: amount("100"), Labels: []string{"Vacances"}})
	suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Amount: amount("300")})

	r := suite.request(http.MethodGet, "http://example.com/v1/labels/vacances/stats", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var stats controllers.LabelStatsResponse
	test.DecodeResponse(suite.T(), &r, &stats)
	suite.True(amount("100").Equal(stats.Data.Income), stats.Data.Income.String())
	suite.True(amount("100.5").Equal(stats.Data.Expense), stats.Data.Expense.String())
	suite.True(amount("-0.5").Equal(stats.Data.Balance), stats.Data.Balance.String())
	suite.Equal(3, stats.Data.Count)

	r = suite.request(http.MethodGet, "http://example.com/v1/labels/Vacances/stats?category=Transport", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &stats)
	suite.Equal(1, stats.Data.Count)

	r = suite.request(http.MethodGet, "http://example.com/v1/labels/Vacances/stats?month=2023-12", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &stats)
	suite.Equal(0, stats.Data.Count)
	suite.True(stats.Data.Balance.IsZero())

	r = suite.request(http.MethodGet, "http://example.com/v1/labels/Unknown/stats", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodGet, "http://example.com/v1/labels/Vacances/stats?month=13", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestOptionsLabel() {
	r := suite.request(http.MethodOptions, "http://example.com/v1/labels", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, "http://example.com/v1/labels/Vacances", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	label := suite.createTestLabel(models.Label{Name: "Vacances"})
	r = suite.request(http.MethodOptions, label.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, label.Data.Links.Stats, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Equal("OPTIONS, GET", r.Header().Get("allow"))
}
