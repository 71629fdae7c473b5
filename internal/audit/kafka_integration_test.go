//go:build integration

package audit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complyhub/pkg/testutil/containers"
)

func TestKafkaPublisher(t *testing.T) {
	broker := containers.NewRedpandaContainer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p, err := NewKafkaPublisher([]string{broker.Broker}, "complyhub.audit.test")
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.EnsureTopic(ctx, 1, 1))
	require.NoError(t, p.EnsureTopic(ctx, 1, 1), "second call tolerates an existing topic")

	event := Event{Node: "company-lookup", Branch: "not_found", Status: 404, ErrorCode: "COMPANY_NOT_FOUND", SubjectHash: HashSubject("abc")}
	require.NoError(t, p.Emit(ctx, event))

	records := broker.Consume(ctx, t, "complyhub.audit.test", 1)
	require.Len(t, records, 1)
	assert.Equal(t, "company-lookup", string(records[0].Key))

	var got Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	assert.Equal(t, "not_found", got.Branch)
	assert.Equal(t, 404, got.Status)
	assert.Equal(t, HashSubject("abc"), got.SubjectHash)
}
