package middleware

import (
	"log/slog"
	"net/http"

	"guesthouse-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the body for handlers that recorded an httperr
// response without writing one themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}

		slog.Error("unhandled request error",
			"error", c.Errors.Last().Error(),
			"route", c.FullPath(),
			"request_id", GetRequestID(c))
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

func lastPublicResponse(errors []*gin.Error) (httperr.Response, bool) {
	for i := len(errors) - 1; i >= 0; i-- {
		if !errors[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := errors[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

func CustomRecovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("recovered from panic",
			"panic", recovered,
			"route", c.FullPath(),
			"request_id", GetRequestID(c))
		c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
	})
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}
