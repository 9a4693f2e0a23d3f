package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-scheduler/internal/httpresp"
)

const MsgAuthorizationRequired = "Authorization header is required"

func Write(c *gin.Context, status int, message string) {
	httpresp.Write(c, httpresp.Fail(status, message))
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

// Unauthenticated aborts the handler chain. Clients read the failure from the
// body, so the status stays 200.
func Unauthenticated(c *gin.Context, message string) {
	httpresp.Abort(c, httpresp.Fail(http.StatusOK, message))
}

// FromError writes err as a failed result. Business errors keep their own
// status and message; anything else is logged and hidden behind a 500.
func FromError(c *gin.Context, log *zap.Logger, err error) {
	if be, ok := AsBusiness(err); ok {
		Write(c, be.Status(), be.Message())
		return
	}

	_ = c.Error(err)
	log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("route", c.FullPath()),
		zap.Error(err),
	)
	Internal(c, "Something went wrong, please try again later")
}
