package response

import (
	"fmt"
	"net/http"
	"runtime"

	"token-srv/pkg/discord"
	"token-srv/pkg/errors"
	"token-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Data:   data,
		Errors: []ErrorItem{},
	}
}

// NewErrorResp returns an error envelope with empty data.
func NewErrorResp(items ...ErrorItem) Resp {
	return Resp{
		Data:   gin.H{},
		Errors: items,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// HttpError sends response for *errors.HTTPError. 401 and 403 carry a
// WWW-Authenticate challenge.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	statusCode, resp := parseError(err, c, nil)
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.AbortWithStatusJSON(statusCode, resp)
}

// Error sends the error response for err. Unknown errors become a generic
// 500; their detail is attached to the gin context for the access logger and
// reported to d when it is set.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	if httpErr, ok := err.(*errors.HTTPError); ok {
		HttpError(c, httpErr)
		return
	}
	statusCode, resp := parseError(err, c, d)
	c.AbortWithStatusJSON(statusCode, resp)
}

// PanicError handles panic recovery and sends error response.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("%v", recovered)
	}
	statusCode, resp := parseError(err, c, d)
	c.AbortWithStatusJSON(statusCode, resp)
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	lang := locale.GetLang(c.Request.Context())

	switch parsedErr := err.(type) {
	case *errors.HTTPError:
		return parsedErr.StatusCode, NewErrorResp(ErrorItem{
			Code:    parsedErr.Code,
			Message: locale.Translate(lang, parsedErr.Message),
			Field:   parsedErr.Field,
		})
	case *errors.ValidationErrorCollector:
		items := make([]ErrorItem, 0, len(parsedErr.Errors()))
		for _, ve := range parsedErr.Errors() {
			for _, msg := range ve.Messages {
				items = append(items, ErrorItem{
					Code:    CodeValidation,
					Message: msg,
					Field:   ve.Field,
				})
			}
		}
		return http.StatusUnprocessableEntity, NewErrorResp(items...)
	default:
		_ = c.Error(err)
		if d != nil {
			stackTrace := captureStackTrace()
			sendDiscordMessageAsync(d, buildInternalServerErrorDataForReportBug(c, err.Error(), stackTrace))
		}
		return http.StatusInternalServerError, NewErrorResp(ErrorItem{
			Code:    CodeInternal,
			Message: locale.Translate(lang, InternalServerErrorMsg),
		})
	}
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var stackTrace []string
	for {
		f, more := frames.Next()
		stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Function))
		if !more {
			break
		}
	}
	return stackTrace
}
