package middleware

import (
	"time"

	xlogger "BondRV/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs one structured line per HTTP request.
func RequestLogging(log *xlogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			err := next(c)

			log.Info("http request",
				xlogger.String("method", req.Method),
				xlogger.String("uri", req.RequestURI),
				xlogger.String("remote", req.RemoteAddr),
				xlogger.Int("status", res.Status),
				xlogger.Duration("took", time.Since(start)),
			)

			return err
		}
	}
}
