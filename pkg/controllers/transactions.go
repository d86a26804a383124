package controllers

import (
	"net/http"

	"github.com/budget-zero/backend/pkg/httperrors"
	"github.com/budget-zero/backend/pkg/httputil"
	"github.com/budget-zero/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type TransactionListResponse struct {
	Data []Transaction `json:"data"` // List of transactions
}

type TransactionResponse struct {
	Data Transaction `json:"data"` // Data for the transaction
}

type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/3"` // The transaction itself
}

func newTransaction(c *gin.Context, t models.Transaction) Transaction {
	return Transaction{
		Transaction: t,
		Links: TransactionLinks{
			Self: httputil.URL(c, transactionPath(t.ID)),
		},
	}
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:transactionId", co.OptionsTransactionDetail)
		r.GET("/:transactionId", co.GetTransaction)
		r.PATCH("/:transactionId", co.UpdateTransaction)
		r.DELETE("/:transactionId", co.DeleteTransaction)
	}
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Transactions
// @Success     204
// @Router      /v1/transactions [options]
func (co Controller) OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Transactions
// @Success     204
// @Failure     400           {object} httperrors.HTTPError
// @Failure     404           {object} httperrors.HTTPError
// @Param       transactionId path     integer true "ID of the transaction"
// @Router      /v1/transactions/{transactionId} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	id, ok := httputil.ParseID(c, "transactionId")
	if !ok {
		return
	}

	if _, err := co.Session.Transaction(id); err != nil {
		httperrors.Handler(c, err)
		return
	}
	httputil.OptionsGetPatchDelete(c)
}

// @Summary     Create transaction
// @Description Creates a new transaction. Categories, subcategories and labels that do not exist yet are created.
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Success     201         {object} TransactionResponse
// @Failure     400         {object} httperrors.HTTPError
// @Failure     500         {object} httperrors.HTTPError
// @Param       transaction body     models.TransactionDraft true "Transaction"
// @Router      /v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var draft models.TransactionDraft
	if err := httputil.BindData(c, &draft); err != nil {
		return
	}

	t, err := co.Session.AddTransaction(c.Request.Context(), draft)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: newTransaction(c, t)})
}

// @Summary     Get transactions
// @Description Returns the transactions matching the filter, in the order requested
// @Tags        Transactions
// @Produce     json
// @Success     200       {object} TransactionListResponse
// @Failure     400       {object} httperrors.HTTPError
// @Param       month     query    string false "Month of the transaction date, YYYY-MM"
// @Param       category  query    string false "Exact category name"
// @Param       label     query    string false "Label the transaction carries"
// @Param       search    query    string false "Glob pattern matched against the description"
// @Param       sort      query    string false "Column to sort by" Enums(date, category, subcategory, type, method, amount, description)
// @Param       direction query    string false "Sort direction" Enums(asc, desc)
// @Router      /v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	transactions := make([]Transaction, 0)
	for _, t := range co.Session.Transactions(f) {
		transactions = append(transactions, newTransaction(c, t))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// @Summary     Get transaction
// @Description Returns a specific transaction
// @Tags        Transactions
// @Produce     json
// @Success     200           {object} TransactionResponse
// @Failure     400           {object} httperrors.HTTPError
// @Failure     404           {object} httperrors.HTTPError
// @Param       transactionId path     integer true "ID of the transaction"
// @Router      /v1/transactions/{transactionId} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	id, ok := httputil.ParseID(c, "transactionId")
	if !ok {
		return
	}

	t, err := co.Session.Transaction(id)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: newTransaction(c, t)})
}

// @Summary     Update transaction
// @Description Updates an existing transaction. Only values to be updated need to be specified.
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Success     200           {object} TransactionResponse
// @Failure     400           {object} httperrors.HTTPError
// @Failure     404           {object} httperrors.HTTPError
// @Failure     500           {object} httperrors.HTTPError
// @Param       transactionId path     integer                 true "ID of the transaction"
// @Param       transaction   body     models.TransactionDraft true "Transaction"
// @Router      /v1/transactions/{transactionId} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	id, ok := httputil.ParseID(c, "transactionId")
	if !ok {
		return
	}

	t, err := co.Session.Transaction(id)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	// Fields missing in the body keep their current value
	draft := t.TransactionDraft
	if err := httputil.BindData(c, &draft); err != nil {
		return
	}

	t, err = co.Session.UpdateTransaction(c.Request.Context(), id, draft)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: newTransaction(c, t)})
}

// @Summary     Delete transaction
// @Description Deletes a transaction
// @Tags        Transactions
// @Success     204
// @Failure     400           {object} httperrors.HTTPError
// @Failure     404           {object} httperrors.HTTPError
// @Failure     500           {object} httperrors.HTTPError
// @Param       transactionId path     integer true "ID of the transaction"
// @Router      /v1/transactions/{transactionId} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	id, ok := httputil.ParseID(c, "transactionId")
	if !ok {
		return
	}

	if err := co.Session.DeleteTransaction(c.Request.Context(), id); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
