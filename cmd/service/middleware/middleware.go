package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/time/rate"

	"github.com/campus-sathi/campus-sathi/app/response"
	"github.com/campus-sathi/campus-sathi/pkg/errors"
	"github.com/campus-sathi/campus-sathi/pkg/i18n"
)

func I18n() gin.HandlerFunc {
	var allowList []string
	for k := range i18n.ALLOW_LANG {
		allowList = append(allowList, k)
	}
	l := i18n.NewLocalizer(allowList...)

	return response.ProvideResponseLocalizer(l)
}

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization, Accept-Language")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Cache-Control, Content-Language, Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	if method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
	}
	c.Next()
}

var limiters = cmap.New[*rate.Limiter]()

// UseLimit throttles per generated key, typically operation+client ip. The
// limiter map grows with the key space; acceptable for per-IP keys behind a
// normal edge.
func UseLimit(operation string, perSecond rate.Limit, burst int, genKeyFunc func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := operation + ":" + genKeyFunc(c)

		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(perSecond, burst)
			limiters.SetIfAbsent(key, limiter)
			limiter, _ = limiters.Get(key)
		}

		if !limiter.Allow() {
			response.APIError(c, errors.New("middleware.UseLimit", i18n.ERROR_TOO_MANY_REQUESTS, nil).Code(http.StatusTooManyRequests))
			return
		}
		c.Next()
	}
}

func IPLimit(operation string, perSecond rate.Limit, burst int) gin.HandlerFunc {
	return UseLimit(operation, perSecond, burst, func(c *gin.Context) string {
		return c.ClientIP()
	})
}
