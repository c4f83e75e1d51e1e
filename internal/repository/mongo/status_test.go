package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbeStatus_NilClient(t *testing.T) {
	status := ProbeStatus(context.Background(), nil, "fitness_api")

	assert.Equal(t, "Not Available", status.Database)
	assert.Equal(t, "Not Connected", status.ConnectionStatus)
	assert.Empty(t, status.Collections)
}

func TestProbeStatus_UnreachableServer(t *testing.T) {
	// Nothing listens on this port; the ping must fail fast and the probe
	// must degrade to a status string instead of returning an error.
	client, err := ConnectDB("mongodb://127.0.0.1:1/?connectTimeoutMS=200&serverSelectionTimeoutMS=200")
	if err != nil {
		t.Skipf("client construction failed: %v", err)
	}
	defer func() { _ = DisconnectDB(client) }()

	status := ProbeStatus(context.Background(), client, "fitness_api")

	assert.Contains(t, status.Database, "Unreachable")
	assert.Equal(t, "Not Connected", status.ConnectionStatus)
}

func TestTruncateMessage(t *testing.T) {
	assert.Equal(t, "short", truncateMessage("short", 50))
	long := make([]byte, 80)
	for i := range long {
		long[i] = 'x'
	}
	assert.Len(t, truncateMessage(string(long), 50), 50)
}
