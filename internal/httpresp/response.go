package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Result is the single response shape of the API. StatusCode travels with the
// body so a service decides the HTTP status of what it produced.
type Result struct {
	StatusCode int    `json:"-"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

type Page[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func OK(data any, message string) *Result {
	return &Result{StatusCode: http.StatusOK, Data: data, Message: message, Success: true}
}

func Created(data any, message string) *Result {
	return &Result{StatusCode: http.StatusCreated, Data: data, Message: message, Success: true}
}

func Fail(status int, message string) *Result {
	return &Result{StatusCode: status, Message: message, Success: false}
}

func Write(c *gin.Context, res *Result) {
	status := res.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, res)
}

func Abort(c *gin.Context, res *Result) {
	status := res.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	c.AbortWithStatusJSON(status, res)
}
