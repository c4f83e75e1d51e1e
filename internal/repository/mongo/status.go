package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Listing every collection on a busy cluster is pointless for a
// diagnostic page; show a bounded sample instead.
const maxProbeCollections = 10

// ConnStatus is the result of a connectivity probe. All fields are
// display strings so the diagnostic endpoint can render them directly.
type ConnStatus struct {
	Database         string   `json:"database"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// ProbeStatus reports the current state of the MongoDB connection. It is
// read-only and never returns an error: every fault encountered while
// probing degrades to a descriptive status string.
func ProbeStatus(ctx context.Context, client *mongo.Client, dbName string) ConnStatus {
	status := ConnStatus{
		Database:         "Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if client == nil {
		return status
	}
	status.Database = "Available"

	if err := Ping(ctx, client); err != nil {
		status.Database = fmt.Sprintf("Unreachable: %s", truncateMessage(err.Error(), 50))
		return status
	}

	collections, err := client.Database(dbName).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		status.Database = fmt.Sprintf("Connected but Error: %s", truncateMessage(err.Error(), 50))
		return status
	}

	if len(collections) > maxProbeCollections {
		collections = collections[:maxProbeCollections]
	}
	status.Database = "Connected & Working"
	status.ConnectionStatus = "Connected"
	status.Collections = collections
	return status
}

func truncateMessage(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
