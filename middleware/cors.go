package middleware

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORSMiddleware() gin.HandlerFunc {
	originEnv := os.Getenv("ORIGIN_URL")

	allowedOrigins := []string{
		"http://localhost:5173",
	}

	if originEnv != "" {
		allowedOrigins = append(allowedOrigins, originEnv)
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Client-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Client-ID"},
		AllowCredentials: true,
	})
}
