package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tmreyes/staffboard-api/pkg/auth"
	"github.com/tmreyes/staffboard-api/pkg/database"
	"github.com/tmreyes/staffboard-api/pkg/handlers"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	if err := auth.EnsureManagerExists(db); err != nil {
		logger.Fatal("could not seed manager account", zap.Error(err))
	}
	h := handlers.New(db, logger)

	r := gin.New()
	r.Use(handlers.RequestLogger(logger), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Staffboard API",
			"version": "1.0.0",
		})
	})

	handlers.Routes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("could not run server", zap.Error(err))
	}
}
