package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var corsMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodPatch,
	http.MethodHead,
	http.MethodOptions,
}

// CORS admits every origin when origins is empty or contains "*". An explicit
// list also allows credentials.
func CORS(origins []string) gin.HandlerFunc {
	wildcard := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			wildcard = true
			break
		}
	}
	if wildcard {
		return cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    corsMethods,
			AllowHeaders:    []string{"*"},
			ExposeHeaders:   []string{HeaderRequestID, HeaderTraceID},
		})
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     corsMethods,
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", HeaderRequestID, HeaderTraceID},
		ExposeHeaders:    []string{HeaderRequestID, HeaderTraceID},
		AllowCredentials: true,
	})
}
