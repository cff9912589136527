package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindError writes a binding failure as {field, reason}. Only the first
// failing field is surfaced — the dashboard shows one error at a time.
// Non-validation failures (malformed JSON) get a body-level reason.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		c.JSON(http.StatusBadRequest, gin.H{
			"field":  strings.ToLower(fe.Field()),
			"reason": fieldReason(fe),
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"field": "body", "reason": "Request body is not valid JSON"})
}

func fieldReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing data for required field"
	case "email":
		return "Not a valid email address"
	case "eqfield":
		return "Passwords must match"
	default:
		return "Invalid value"
	}
}
