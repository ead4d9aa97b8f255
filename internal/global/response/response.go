package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResponseBody is the envelope of every JSON response.
type ResponseBody struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// Success writes a 200 envelope with the given payload.
func Success(c *gin.Context, data any) {
	body := ResponseBody{
		Code: 200,
		Msg:  "ok",
		Data: data,
	}
	c.Set(ResponseContextKey, body)
	c.JSON(http.StatusOK, body)
}

// SuccessWithMsg writes a 200 envelope with a user-visible message, used for
// idempotent-duplicate warnings which succeed without writing a row.
func SuccessWithMsg(c *gin.Context, msg string, data any) {
	body := ResponseBody{
		Code: 200,
		Msg:  msg,
		Data: data,
	}
	c.Set(ResponseContextKey, body)
	c.JSON(http.StatusOK, body)
}

// Fail writes the coded error as the response envelope. The HTTP status is
// always 200; clients dispatch on the business code.
func Fail(c *gin.Context, err *Error) {
	c.Set(ErrorContextKey, err)
	body := ResponseBody{
		Code: err.Code,
		Msg:  err.Message,
	}
	if err.Origin != "" && gin.Mode() == gin.DebugMode {
		body.Data = gin.H{"origin": err.Origin}
	}
	c.Set(ResponseContextKey, body)
	c.JSON(http.StatusOK, body)
}

// Recovery converts a panic into an ErrInternal response; backs the recovery
// middleware.
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		Fail(c, ErrInternal.WithOrigin(err))
		c.Abort()
	}
}
