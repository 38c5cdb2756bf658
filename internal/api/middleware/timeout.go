package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies the default timeout to most endpoints
// and a longer timeout to generation endpoints, which chain multiple
// model calls per request.
func SelectiveTimeoutConfig(defaultTimeout, generateTimeout time.Duration) echo.MiddlewareFunc {
	standard := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: defaultTimeout,
	})
	generate := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: generateTimeout,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		standardNext := standard(next)
		generateNext := generate(next)

		return func(c echo.Context) error {
			if strings.HasPrefix(c.Path(), "/api/v1/generate") {
				return generateNext(c)
			}
			return standardNext(c)
		}
	}
}
