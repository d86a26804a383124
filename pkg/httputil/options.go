package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// Options returns a handler that answers OPTIONS requests with the
// allowed methods.
func Options(methods ...string) gin.HandlerFunc {
	allow := strings.Join(append([]string{http.MethodOptions}, methods...), ", ")

	return func(c *gin.Context) {
		c.Header("allow", allow)
		c.Render(http.StatusNoContent, render.JSON{})
	}
}

var (
	OptionsGet            = Options(http.MethodGet)
	OptionsPost           = Options(http.MethodPost)
	OptionsGetPost        = Options(http.MethodGet, http.MethodPost)
	OptionsPatchDelete    = Options(http.MethodPatch, http.MethodDelete)
	OptionsGetPatchDelete = Options(http.MethodGet, http.MethodPatch, http.MethodDelete)
)
