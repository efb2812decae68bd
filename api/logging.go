package api

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-droid/service/i"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request through l.
func RequestLogger(l i.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		msg := fmt.Sprintf("%s %s %d %s", ctx.Request.Method, ctx.Request.URL.Path, ctx.Writer.Status(), time.Since(start))
		switch {
		case ctx.Writer.Status() >= 500:
			l.Error(msg)
		case ctx.Writer.Status() >= 400:
			l.Warning(msg)
		default:
			l.Info(msg)
		}
	}
}
