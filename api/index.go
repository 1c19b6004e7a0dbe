package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tmreyes/staffboard-api/pkg/auth"
	"github.com/tmreyes/staffboard-api/pkg/database"
	"github.com/tmreyes/staffboard-api/pkg/handlers"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	logger, _ := zap.NewProduction()

	db := database.InitDB()
	_ = auth.EnsureManagerExists(db)
	h := handlers.New(db, logger)

	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(handlers.RequestLogger(logger), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Staffboard API",
			"version": "1.0.0",
		})
	})

	handlers.Routes(r, h)
}

// Handler is the Vercel serverless entrypoint
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
