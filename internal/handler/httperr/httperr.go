package httperr

import (
	"log/slog"
	"net/http"

	"staybook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

var kindStatus = map[errs.Kind]int{
	errs.KindNotFound:         http.StatusNotFound,
	errs.KindForbidden:        http.StatusForbidden,
	errs.KindInvalidState:     http.StatusConflict,
	errs.KindRangeUnavailable: http.StatusConflict,
	errs.KindRangeConflict:    http.StatusConflict,
	errs.KindPayoutNotReady:   http.StatusUnprocessableEntity,
	errs.KindInvalidSignature: http.StatusBadRequest,
	errs.KindUpstream:         http.StatusBadGateway,
	errs.KindUnavailable:      http.StatusServiceUnavailable,
	errs.KindValidation:       http.StatusBadRequest,
	errs.KindInternal:         http.StatusInternalServerError,
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(kind errs.Kind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, kind errs.Kind, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Kind = string(kind)
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Respond classifies err by its taxonomy kind. Internal failures are logged
// with their stack and reported without detail.
func Respond(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	if kind == errs.KindInternal {
		slog.Error("request failed",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 10))
		AbortWithError(c, http.StatusInternalServerError, kind, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, StatusOf(kind), kind, err, err.Error(), nil)
}

func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, errs.KindValidation, err, msg, nil)
}

func Unauthorized(c *gin.Context) {
	AbortWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", errs.New("missing principal"), "Unauthorized", nil)
}
