package httpserver

import (
	"github.com/gin-gonic/gin"

	"nifi-nlp-gateway/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "nifi-nlp-gateway"
)

// healthCheck handles health check requests. The NiFi connection is probed;
// an unreachable backend degrades the report without failing the endpoint.
// @Summary Health Check
// @Description Check if the API and its NiFi backend are healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	status := "starting"
	nifiConnected := false

	if srv.nifiClient != nil {
		nifiConnected = srv.nifiClient.HealthCheck(c.Request.Context())
		if nifiConnected {
			status = "healthy"
		} else {
			status = "degraded"
		}
	}

	response.OK(c, gin.H{
		"status":         status,
		"nifi_connected": nifiConnected,
		"version":        HealthVersion,
		"service":        ServiceName,
	})
}

// readyCheck handles readiness check requests. The server is not ready to
// serve queries until the NiFi client has been constructed.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Not Ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if srv.nifiClient == nil {
		response.ServiceUnavailable(c, "NiFi client not initialized")
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
