package middleware

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Methods":  "GET, POST, PUT, DELETE, OPTIONS",
	"Access-Control-Allow-Headers":  "Origin, Content-Type, Accept, X-Requested-With, X-Request-ID",
	"Access-Control-Expose-Headers": "Content-Length, X-Request-ID",
	"Access-Control-Max-Age":        "86400",
}

// CORSMiddleware 本地前端直连，放开跨域即可
func CORSMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		allowOrigin := "*"
		if origin := string(c.Request.Header.Get("Origin")); origin != "" {
			allowOrigin = origin
		}
		c.Header("Access-Control-Allow-Origin", allowOrigin)
		for k, v := range corsHeaders {
			c.Header(k, v)
		}

		// OPTIONS 预检直接放行
		if string(c.Method()) == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next(ctx)
	}
}
