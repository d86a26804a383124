package controllers_test

import (
	"context"
	"net/http"

	"github.com/budget-zero/backend/pkg/controllers"
	"github.com/budget-zero/backend/pkg/session"
	"github.com/budget-zero/backend/pkg/storage"
	"github.com/budget-zero/backend/test"
)

func (suite *TestSuiteStandard) TestHealthz() {
	r := suite.request(http.MethodGet, "http://example.com/healthz", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodOptions, "http://example.com/healthz", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestHealthzDatabaseClosed() {
	s, err := storage.OpenSQLite(context.Background(), ":memory:")
	suite.Require().Nil(err)

	budget := session.New(s, session.Options{})
	suite.Require().Nil(budget.Load(context.Background()))
	suite.Require().Nil(s.Close())

	r := test.Request(suite.T(), controllers.Controller{Session: budget}, http.MethodGet, "http://example.com/healthz", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
