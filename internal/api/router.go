package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(handler *Handler, logger *zap.SugaredLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	router.GET("/health", handler.Health)

	api := router.Group("/api")
	api.POST("/polls", handler.CreatePoll)
	api.GET("/polls/:id", handler.GetPoll)
	api.PATCH("/polls/:id", handler.UpdatePoll)
	api.DELETE("/polls/:id", handler.DeletePoll)
	api.GET("/polls/:id/stats", handler.GetPollStats)
	api.POST("/polls/:id/vote", handler.SubmitVote)

	api.PATCH("/participants/:id", handler.UpdateParticipant)
	api.DELETE("/participants/:id", handler.DeleteParticipant)
	api.PUT("/participants/:id/availability", handler.ReplaceAvailability)

	api.GET("/timezones", handler.ListTimezones)

	return router
}

func requestLogger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
