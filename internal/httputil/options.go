package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// Allow returns a handler answering OPTIONS requests with the "allow"
// header listing OPTIONS and the given methods.
func Allow(methods ...string) gin.HandlerFunc {
	allow := strings.Join(append([]string{http.MethodOptions}, methods...), ", ")

	return func(c *gin.Context) {
		c.Header("allow", allow)
		c.Render(http.StatusNoContent, render.JSON{})
	}
}

var (
	OptionsGet            = Allow(http.MethodGet)
	OptionsPost           = Allow(http.MethodPost)
	OptionsGetPost        = Allow(http.MethodGet, http.MethodPost)
	OptionsGetDelete      = Allow(http.MethodGet, http.MethodDelete)
	OptionsGetPatch       = Allow(http.MethodGet, http.MethodPatch)
	OptionsGetPatchDelete = Allow(http.MethodGet, http.MethodPatch, http.MethodDelete)
	OptionsPatchDelete    = Allow(http.MethodPatch, http.MethodDelete)
	OptionsDelete         = Allow(http.MethodDelete)
)
