package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the unified JSON envelope of every API reply.
type Response struct {
	Code int    `json:"code"`
	Data any    `json:"data"`
	Msg  string `json:"message"`
}

// Business codes carried in Response.Code.
const (
	CodeSuccess    = 0
	CodeError      = -1
	CodeNotFound   = 40400
	CodeValidation = 40001
)

var codeMessages = map[int]string{
	CodeSuccess:    "ok",
	CodeError:      "internal error",
	CodeNotFound:   "not found",
	CodeValidation: "validation failed",
}

// Success writes a 200 reply with the default message.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: CodeSuccess,
		Data: data,
		Msg:  codeMessages[CodeSuccess],
	})
}

// SuccessWithMessage writes a 200 reply with a custom message.
func SuccessWithMessage(c *gin.Context, data any, msg string) {
	c.JSON(http.StatusOK, Response{
		Code: CodeSuccess,
		Data: data,
		Msg:  msg,
	})
}

// Error writes an error reply; the HTTP status follows the business code.
func Error(c *gin.Context, code int, msg string) {
	if msg == "" {
		msg = codeMessages[code]
	}

	c.JSON(httpStatus(code), Response{
		Code: code,
		Data: nil,
		Msg:  msg,
	})
}

func httpStatus(code int) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
