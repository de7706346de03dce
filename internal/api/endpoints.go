package api

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointsJSON []byte

// getEndpoints handles GET /api, serving the static manifest describing
// every endpoint the service exposes
func getEndpoints(c *gin.Context) {
	var endpoints map[string]interface{}
	if err := json.Unmarshal(endpointsJSON, &endpoints); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"endpoints": endpoints})
}
