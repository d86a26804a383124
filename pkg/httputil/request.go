package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/budget-zero/backend/pkg/httperrors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
)

// ContextKey is the type of keys set on the gin context.
type ContextKey string

// ContextURL is the key of the external base URL of the API.
const ContextURL ContextKey = "requestURL"

// URL returns the external base URL of the API with the path appended.
func URL(c *gin.Context, path string) string {
	return c.GetString(string(ContextURL)) + path
}

// BindData binds the JSON body of the request to data. If that fails, an
// error response is written and the error returned.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	var typeError *json.UnmarshalTypeError

	switch {
	case errors.Is(err, io.EOF):
		err = ErrRequestBodyEmpty
	case errors.As(err, &typeError):
		// The message names the field, it helps the user
	default:
		// Custom unmarshalers report the problem themselves, but the
		// message of the syntax error is not helpful
		var syntaxError *json.SyntaxError
		if errors.As(err, &syntaxError) {
			log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			err = ErrInvalidBody
		}
	}

	httperrors.New(c, http.StatusBadRequest, err.Error())
	return err
}

// ParseID parses a transaction ID. If that fails, an error response is
// written and ok is false.
func ParseID(c *gin.Context, param string) (id uint64, ok bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		httperrors.InvalidID(c)
		return 0, false
	}
	return id, true
}
