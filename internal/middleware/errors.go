package middleware

import (
	"net/http"

	"token-srv/internal/auth"
	pkgErrors "token-srv/pkg/errors"
)

var (
	errNotAuthenticated   = pkgErrors.NewHTTPError(http.StatusForbidden, auth.CodeInvalidMasterToken, pkgErrors.MessageUnauthorized)
	errInvalidMasterToken = pkgErrors.NewHTTPError(http.StatusForbidden, auth.CodeInvalidMasterToken, auth.MsgInvalidMasterToken)
	errInvalidToken       = pkgErrors.NewHTTPError(http.StatusUnauthorized, auth.CodeInvalidToken, auth.MsgInvalidToken)
	errTokenExpired       = pkgErrors.NewHTTPError(http.StatusUnauthorized, auth.CodeTokenExpired, auth.MsgTokenExpired)
)

// mapTokenError maps a RequireValidToken failure to its HTTP error.
func mapTokenError(err error) *pkgErrors.HTTPError {
	if denied, ok := auth.IsAccessDenied(err); ok && denied.Reason == auth.ReasonExpiredToken {
		return errTokenExpired
	}
	return errInvalidToken
}
