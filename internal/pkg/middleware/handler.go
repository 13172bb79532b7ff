package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/monitor"
)

func RegisterGlobalMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery(), CORS(), RequestLogger(), monitor.PrometheusMiddleware())
}

// CORS lets frame clients on other origins fetch and post to the frames.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", requestIdHeader},
		ExposeHeaders:   []string{requestIdHeader},
	})
}
