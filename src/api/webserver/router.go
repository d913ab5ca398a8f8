package webserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/GavinoGM/Problem-Solver/src/api/config"
	_ "github.com/GavinoGM/Problem-Solver/src/ai/providers"
)

// New builds the gin engine with all routes attached.
func New(cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	cfgH := NewConfigInfo(cfg)
	chatH := NewChat(cfg)

	api := r.Group("/api")
	{
		api.GET("/config", cfgH.Get)
		api.POST("/openai", chatH.Relay)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
