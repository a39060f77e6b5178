package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/sakibmorshed/assignment-11-new-serverside/config"
	"github.com/sakibmorshed/assignment-11-new-serverside/routes"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	// Error reporting, only when a DSN is configured
	sentryEnabled := false
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Println("Sentry initialization failed:", err)
		} else {
			sentryEnabled = true
		}
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	if sentryEnabled {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	// CORS middleware for frontend integration
	origins := config.AllowedOrigins()
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", corsOrigin(origins, c.GetHeader("Origin")))
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Home Cook Marketplace API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Home Cook Marketplace API",
			"docs":    "/order-lifecycle",
			"health":  "/health",
			"roles":   []string{"user", "chef", "admin"},
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// corsOrigin picks the origin header value: "*" when open, the request's own
// origin when it is allow-listed, the first configured origin otherwise.
func corsOrigin(allowed []string, requestOrigin string) string {
	for _, o := range allowed {
		if o == "*" {
			return "*"
		}
		if strings.EqualFold(o, requestOrigin) {
			return requestOrigin
		}
	}
	if len(allowed) > 0 {
		return allowed[0]
	}
	return "*"
}
