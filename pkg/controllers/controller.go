package controllers

import (
	"net/url"
	"strconv"

	"github.com/budget-zero/backend/pkg/httperrors"
	"github.com/budget-zero/backend/pkg/query"
	"github.com/budget-zero/backend/pkg/session"
	"github.com/gin-gonic/gin"
)

// Controller serves the API for a budget session.
type Controller struct {
	Session *session.Session
}

// bindFilter binds the filter from the query string. If that fails, an
// error response is written and ok is false.
func bindFilter(c *gin.Context) (f query.Filter, ok bool) {
	if err := c.ShouldBindQuery(&f); err != nil {
		httperrors.InvalidQueryString(c)
		return query.Filter{}, false
	}
	return f, true
}

func transactionPath(id uint64) string {
	return "/v1/transactions/" + strconv.FormatUint(id, 10)
}

func categoryPath(name string) string {
	return "/v1/categories/" + url.PathEscape(name)
}

func labelPath(name string) string {
	return "/v1/labels/" + url.PathEscape(name)
}
