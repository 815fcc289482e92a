package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
)

const locationKey = "clientLocation"

// ClientTimezone resolves the "tz" cookie (an IANA zone name the web client
// sets) into a *time.Location. Water tracking buckets days in this location;
// everything else uses the server clock.
func ClientTimezone() gin.HandlerFunc {
	return func(c *gin.Context) {
		loc := time.Local
		if tz, err := c.Cookie("tz"); err == nil && tz != "" {
			if parsed, err := time.LoadLocation(tz); err == nil {
				loc = parsed
			}
		}
		c.Set(locationKey, loc)
		c.Next()
	}
}

// LocationFromContext returns the client location, falling back to the server
// zone when the middleware did not run.
func LocationFromContext(c *gin.Context) *time.Location {
	if v, ok := c.Get(locationKey); ok {
		if loc, ok := v.(*time.Location); ok {
			return loc
		}
	}
	return time.Local
}
