package httperr

import (
	"field-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope written for every failed request.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail *Detail `json:"detail,omitempty"`
}

// Detail carries the engine error kind so clients can branch without parsing messages.
type Detail struct {
	Kind string `json:"kind"`
}

func NewResponse(status int, msg string, detail *Detail) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError records err on the context for the logging middleware and
// writes the envelope. Transport errors such as auth and rate limiting carry
// no kind.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	abort(c, err, NewResponse(status, msg, nil))
}

func AbortWithKind(c *gin.Context, status int, err error, msg string, kind errs.Kind) {
	abort(c, err, NewResponse(status, msg, &Detail{Kind: kind.String()}))
}

func abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("httperr: aborting without an error")
	}
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
