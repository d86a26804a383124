package controllers

import (
	"net/http"

	"github.com/budget-zero/backend/pkg/flow"
	"github.com/budget-zero/backend/pkg/httputil"
	"github.com/budget-zero/backend/pkg/session"
	"github.com/gin-gonic/gin"
)

type DashboardResponse struct {
	Data session.Dashboard `json:"data"` // Summary of the filtered transactions
}

type FlowResponse struct {
	Data flow.Graph `json:"data"` // Cash flow graph of the filtered transactions
}

type MethodListResponse struct {
	Data []string `json:"data" example:"Carte"` // Payment methods
}

func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/dashboard", httputil.OptionsGet)
	r.GET("/dashboard", co.GetDashboard)

	r.OPTIONS("/flow", httputil.OptionsGet)
	r.GET("/flow", co.GetFlow)

	r.OPTIONS("/methods", httputil.OptionsGet)
	r.GET("/methods", co.GetMethods)
}

// @Summary     Get dashboard
// @Description Returns the filtered transactions with their totals, the balance status, the top categories and subcategories and the cash flow graph
// @Tags        Dashboard
// @Produce     json
// @Success     200       {object} DashboardResponse
// @Failure     400       {object} httperrors.HTTPError
// @Param       month     query    string false "Month of the transaction date, YYYY-MM"
// @Param       category  query    string false "Exact category name"
// @Param       label     query    string false "Label the transaction carries"
// @Param       search    query    string false "Glob pattern matched against the description"
// @Param       sort      query    string false "Column to sort by" Enums(date, category, subcategory, type, method, amount, description)
// @Param       direction query    string false "Sort direction" Enums(asc, desc)
// @Router      /v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: co.Session.Dashboard(f)})
}

// @Summary     Get flow graph
// @Description Returns the graph of income flowing into the budget and expenses flowing out of it
// @Tags        Dashboard
// @Produce     json
// @Success     200      {object} FlowResponse
// @Failure     400      {object} httperrors.HTTPError
// @Param       month    query    string false "Month of the transaction date, YYYY-MM"
// @Param       category query    string false "Exact category name"
// @Param       label    query    string false "Label the transaction carries"
// @Param       search   query    string false "Glob pattern matched against the description"
// @Router      /v1/flow [get]
func (co Controller) GetFlow(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, FlowResponse{Data: co.Session.Dashboard(f).Flow})
}

// @Summary     Get payment methods
// @Description Returns the default payment methods and all methods used by transactions
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} MethodListResponse
// @Router      /v1/methods [get]
func (co Controller) GetMethods(c *gin.Context) {
	c.JSON(http.StatusOK, MethodListResponse{Data: co.Session.Methods()})
}
