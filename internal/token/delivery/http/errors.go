package http

import (
	"errors"
	"net/http"

	"token-srv/internal/auth"
	"token-srv/internal/token"
	pkgErrors "token-srv/pkg/errors"
	"token-srv/pkg/jwt"
)

const decodeFailedPrefix = "Token decode failed: "

var errClaimsMissing = errors.New("claims missing from request context")

// mapError maps use case errors to HTTP errors. Unknown errors are returned
// as is and end up as a 500.
func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrInvalidToken):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, auth.CodeInvalidToken, decodeFailedPrefix+err.Error())
	case errors.Is(err, token.ErrSubjectTooLong):
		return pkgErrors.NewValidationErrorCollector().
			Add(pkgErrors.NewValidationError("subject", err.Error()))
	default:
		return err
	}
}
