package controllers_test

import (
	"net/http"
	"time"

	"github.com/budget-zero/backend/internal/types"
	"github.com/budget-zero/backend/pkg/controllers"
	"github.com/budget-zero/backend/pkg/flow"
	"github.com/budget-zero/backend/pkg/models"
	"github.com/budget-zero/backend/pkg/query"
	"github.com/budget-zero/backend/test"
)

func (suite *TestSuiteStandard) createDashboardTransactions() {
	suite.createTestTransaction(models.TransactionDraft{Category: "Salaire", Type: models.Income, Method: "Virement", Amount: amount("1000")})
	suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Subcategory: "Loyer", Amount: amount("300")})
	suite.createTestTransaction(models.TransactionDraft{Category: "Loisirs", Subcategory: "Cinéma", Method: "PayPal", Amount: amount("40")})
	suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Subcategory: "Loyer", Amount: amount("300"), Date: types.NewDate(2024, time.February, 10)})
}

func (suite *TestSuiteStandard) TestDashboard() {
	suite.createDashboardTransactions()

	r := suite.request(http.MethodGet, "http://example.com/v1/dashboard?month=2024-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var dashboard controllers.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &dashboard)

	d := dashboard.Data
	suite.Len(d.Transactions, 3)
	suite.Equal(3, d.Totals.Count)
	suite.True(amount("1000").Equal(d.Totals.Income), d.Totals.Income.String())
	suite.True(amount("340").Equal(d.Totals.Expense), d.Totals.Expense.String())
	suite.True(amount("660").Equal(d.Totals.Balance), d.Totals.Balance.String())
	suite.Equal(query.Positive, d.Status)

	if suite.Len(d.TopExpenses, 2) {
		suite.Equal("Logement", d.TopExpenses[0].Category)
		suite.Equal("Loyer", d.TopExpenses[0].Subcategory)
		suite.Equal("Cinéma", d.TopExpenses[1].Subcategory)
	}

	if suite.Len(d.TopIncomeCategories, 1) {
		suite.Equal("Salaire", d.TopIncomeCategories[0].Category)
		suite.Equal("", d.TopIncomeCategories[0].Subcategory)
	}

	suite.True(amount("660").Equal(d.Flow.Balance), d.Flow.Balance.String())

	r = suite.request(http.MethodGet, "http://example.com/v1/dashboard?month=2024-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &dashboard)
	suite.Equal(query.Negative, dashboard.Data.Status)
	suite.Len(dashboard.Data.Transactions, 1)
}

func (suite *TestSuiteStandard) TestDashboardFollowsChanges() {
	suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Amount: amount("300")})

	var dashboard controllers.DashboardResponse
	r := suite.request(http.MethodGet, "http://example.com/v1/dashboard", "")
	test.DecodeResponse(suite.T(), &r, &dashboard)
	suite.Equal(1, dashboard.Data.Totals.Count)

	suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Amount: amount("300")})

	r = suite.request(http.MethodGet, "http://example.com/v1/dashboard", "")
	test.DecodeResponse(suite.T(), &r, &dashboard)
	suite.Equal(2, dashboard.Data.Totals.Count)
}

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	r := suite.request(http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var dashboard controllers.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &dashboard)
	suite.Equal(query.Neutral, dashboard.Data.Status)
	suite.Equal(0, dashboard.Data.Totals.Count)

	if suite.Len(dashboard.Data.Flow.Nodes, 1) {
		suite.Equal(flow.BudgetID, dashboard.Data.Flow.Nodes[0].ID)
	}
}

func (suite *TestSuiteStandard) TestFlow() {
	suite.createDashboardTransactions()

	r := suite.request(http.MethodGet, "http://example.com/v1/flow?month=2024-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.FlowResponse
	test.DecodeResponse(suite.T(), &r, &response)

	g := response.Data
	suite.True(amount("1000").Equal(g.TotalIncome), g.TotalIncome.String())
	suite.True(amount("340").Equal(g.TotalExpense), g.TotalExpense.String())

	for _, id := range []string{
		flow.BudgetID,
		flow.NodeID(flow.SideIncome, "Salaire", ""),
		flow.NodeID(flow.SideIncome, "Salaire", models.DefaultSubcategory),
		flow.NodeID(flow.SideExpense, "Logement", ""),
		flow.NodeID(flow.SideExpense, "Logement", "Loyer"),
		flow.NodeID(flow.SideExpense, "Loisirs", "Cinéma"),
	} {
		_, ok := g.Node(id)
		suite.True(ok, "node %s is missing", id)
	}

	node, _ := g.Node(flow.NodeID(flow.SideExpense, "Logement", "Loyer"))
	suite.True(amount("300").Equal(node.Amount), node.Amount.String())
	suite.Len(g.Edges, 6)

	r = suite.request(http.MethodGet, "http://example.com/v1/flow?month=2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMethods() {
	r := suite.request(http.MethodGet, "http://example.com/v1/methods", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var methods controllers.MethodListResponse
	test.DecodeResponse(suite.T(), &r, &methods)
	suite.ElementsMatch(models.BaseMethods, methods.Data)

	suite.createDashboardTransactions()

	r = suite.request(http.MethodGet, "http://example.com/v1/methods", "")
	test.DecodeResponse(suite.T(), &r, &methods)
	suite.Contains(methods.Data, "PayPal")
	suite.Len(methods.Data, len(models.BaseMethods)+1)
}
