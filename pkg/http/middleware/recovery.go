package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	xlogger "BondRV/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Recover converts handler panics into 500 responses and logs the stack.
func Recover(log *xlogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}
					log.Error("panic recovered",
						xlogger.String("method", c.Request().Method),
						xlogger.String("uri", c.Request().RequestURI),
						xlogger.String("stack", string(debug.Stack())),
						xlogger.Error(err),
					)
					_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"status":  http.StatusInternalServerError,
						"message": "Internal Server Error",
					})
				}
			}()
			return next(c)
		}
	}
}
