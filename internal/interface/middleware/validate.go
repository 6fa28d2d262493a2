package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notasdev/api-notas/pkg/response"
	"github.com/notasdev/api-notas/pkg/schema"
)

// CtxValidatedBodyKey holds the normalized payload produced by ValidateBody.
const CtxValidatedBodyKey = "validatedBody"

// ValidateBody checks the JSON body against a schema before the handler
// runs. On success the normalized payload (unknown fields stripped,
// defaults applied) replaces the raw body for all downstream use; on
// failure the request ends with 400 and the full violation list.
func ValidateBody(spec *schema.Spec) gin.HandlerFunc {
	return func(c *gin.Context) {
		var raw map[string]interface{}
		if err := c.ShouldBindJSON(&raw); err != nil {
			response.AbortError(c, http.StatusBadRequest, "Validación fallida", []string{"el cuerpo debe ser un objeto JSON"})
			return
		}

		value, err := spec.Validate(raw)
		if err != nil {
			var verr *schema.ValidationError
			if errors.As(err, &verr) {
				response.AbortError(c, http.StatusBadRequest, "Validación fallida", verr.Violations)
				return
			}
			response.AbortError(c, http.StatusBadRequest, "Validación fallida", nil)
			return
		}

		c.Set(CtxValidatedBodyKey, value)
		c.Next()
	}
}

// ValidatedBody returns the payload stored by ValidateBody, or nil when the
// route is not behind the validator.
func ValidatedBody(c *gin.Context) map[string]interface{} {
	if v, ok := c.Get(CtxValidatedBodyKey); ok {
		if m, ok := v.(map[string]interface{}); ok {
			return m
		}
	}
	return nil
}
