package response

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime"

	"helpdesk-srv/pkg/discord"
	"helpdesk-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

func Unauthorized(c *gin.Context, message string) {
	httpErr := errors.NewUnauthorizedHTTPError()
	if message != "" {
		httpErr.Message = message
	}
	c.JSON(parseError(httpErr, c, nil))
}

func Forbidden(c *gin.Context) {
	c.JSON(parseError(errors.NewForbiddenHTTPError(), c, nil))
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	switch parsedErr := err.(type) {
	case *errors.ValidationError:
		return http.StatusBadRequest, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Error(),
		}
	case *errors.ValidationErrorCollector:
		return http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   ValidationErrorMsg,
			Errors:    parsedErr.Errors(),
		}
	case *errors.HTTPError:
		statusCode := parsedErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Message,
		}
	default:
		if d != nil && err != nil {
			sendDiscordMessageAsync(d, buildInternalServerErrorDataForReportBug(c, err.Error(), captureStackTrace()))
		}
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}

// Error sends the response matching err. Unknown errors become 500 and are
// reported to Discord when d is set.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	c.JSON(parseError(err, c, d))
}

// ErrorWithMap resolves err (or anything it wraps) through eMap before
// falling back to Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range eMap {
		if stderrors.Is(err, target) {
			Error(c, httpErr, nil)
			return
		}
	}
	Error(c, err, d)
}

// PanicError renders a recovered panic value.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec)
	}
	c.JSON(parseError(err, c, d))
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
