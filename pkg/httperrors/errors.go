package httperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/budget-zero/backend/pkg/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Error string `json:"error" example:"there is no transaction with ID 23"`
}

// New writes an error response with the formatted message.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	// Format msgAndArgs in a final string.
	// This is taken almost exactly from https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.AbortWithStatusJSON(status, HTTPError{
		Error: msg,
	})
}

func InvalidID(c *gin.Context) {
	New(c, http.StatusBadRequest, "The specified transaction ID is not a valid positive integer")
}

func InvalidQueryString(c *gin.Context) {
	New(c, http.StatusBadRequest, "The query string contains unparseable data. Please check the values")
}

// Status returns the HTTP status code for an error.
func Status(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateName), errors.Is(err, models.ErrInUse), errors.Is(err, models.ErrUnconfirmed):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidFormat), errors.Is(err, models.ErrEmptyName), errors.Is(err, models.ErrInvalidTransaction):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Handler writes the error response for an error returned by the budget.
//
// Errors without a known cause are logged, their message is not shown to
// the user.
func Handler(c *gin.Context, err error) {
	status := Status(err)
	if status != http.StatusInternalServerError {
		New(c, status, err.Error())
		return
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	New(c, status, fmt.Sprintf("%s, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", models.ErrGeneral, requestid.Get(c)))
}
