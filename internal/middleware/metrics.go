package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daylist-io/daylist/pkg/metrics"
)

// unmatchedRoute is the shared path label for requests that hit no
// registered route, keeping series cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics observes per-request latency using the route template as the
// path label so parameterised routes collapse into a single series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		metrics.APILatency.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
