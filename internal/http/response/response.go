package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform failure envelope.
type ErrorBody struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorBody{Detail: msg, Code: code})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondJSONBytes writes an already encoded JSON body.
func RespondJSONBytes(c *gin.Context, body []byte) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
