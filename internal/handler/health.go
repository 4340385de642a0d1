package handler

import (
	"opensy-web/internal/handler/response"

	"github.com/gin-gonic/gin"
)

const Version = "1.0.0"

// HealthCheck godoc
// @Summary Check system health
// @Description Get the current health status of the server
// @Tags system
// @Produce  json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.JSON(c, gin.H{
			"status":  "UP",
			"version": Version,
			"service": service,
		})
	}
}
