package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	pkgErrors "token-srv/pkg/errors"
	"token-srv/pkg/jwt"
	"token-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// processGenerateRequest binds the optional generate body. An empty body
// selects every default.
func (h *Handler) processGenerateRequest(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return generateReq{}, toValidationError(err)
	}
	return req, nil
}

func (h *Handler) processDecodeRequest(c *gin.Context) (decodeReq, error) {
	var req decodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return decodeReq{}, toValidationError(err)
	}
	return req, nil
}

// processTestRequest reads the claims stored by the token guard.
func (h *Handler) processTestRequest(c *gin.Context) (jwt.Claims, error) {
	claims, ok := scope.GetClaimsFromContext(c.Request.Context())
	if !ok {
		return jwt.Claims{}, fmt.Errorf("token.delivery.http.processTestRequest: %w", errClaimsMissing)
	}
	return claims, nil
}

// toValidationError converts binding failures into a collector keyed by the
// JSON field name.
func toValidationError(err error) *pkgErrors.ValidationErrorCollector {
	collector := pkgErrors.NewValidationErrorCollector()

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		for _, fe := range ves {
			collector.Add(pkgErrors.NewValidationError(jsonFieldName(fe), validationMessage(fe)))
		}
		return collector
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		return collector.Add(pkgErrors.NewValidationError(ute.Field, "must be of type "+ute.Type.String()))
	}
	if errors.Is(err, io.EOF) {
		return collector.Add(pkgErrors.NewValidationError("body", "request body is required"))
	}
	return collector.Add(pkgErrors.NewValidationError("body", "request body is not valid JSON"))
}

func jsonFieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Subject":
		return "subject"
	case "LifetimeHours":
		return "lifetime_hours"
	case "Token":
		return "token"
	default:
		return strings.ToLower(fe.Field())
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
