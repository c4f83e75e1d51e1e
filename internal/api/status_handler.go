package api

import (
	"net/http"
	"os"

	repoMongo "fitlog/fitness-api/internal/repository/mongo"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// StatusHandler serves the liveness and connectivity diagnostic endpoints.
// It holds the raw client rather than a repository because the probe is a
// read-only inspection of the store, not an entity operation.
type StatusHandler struct {
	dbClient *mongo.Client
	dbName   string
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(dbClient *mongo.Client, dbName string) *StatusHandler {
	return &StatusHandler{dbClient: dbClient, dbName: dbName}
}

// StatusResponse is the diagnostic payload for GET /test. The env fields
// report presence only, never the configured values.
type StatusResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURI      string   `json:"database_uri"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Root handles GET /. Static liveness message.
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Fitness API is running"})
}

// TestDatabase handles GET /test. The probe never fails; whatever goes
// wrong while checking the store comes back as a status string.
func (h *StatusHandler) TestDatabase(c *gin.Context) {
	probe := repoMongo.ProbeStatus(c.Request.Context(), h.dbClient, h.dbName)

	c.JSON(http.StatusOK, StatusResponse{
		Backend:          "Running",
		Database:         probe.Database,
		DatabaseURI:      presence(os.Getenv("DATABASE_URI")),
		DatabaseName:     presence(os.Getenv("DATABASE_NAME")),
		ConnectionStatus: probe.ConnectionStatus,
		Collections:      probe.Collections,
	})
}

func presence(value string) string {
	if value == "" {
		return "Not Set"
	}
	return "Set"
}
