package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/custcheck/pkg/logger"
)

type sourceKey struct{}

func TestFromContext(t *testing.T) {
	t.Parallel()

	ex := logger.FromContext("source", sourceKey{})

	attr, ok := ex(context.WithValue(context.Background(), sourceKey{}, "customers.yaml"))
	require.True(t, ok)
	assert.Equal(t, "source", attr.Key)
	assert.Equal(t, "customers.yaml", attr.Value.String())

	_, ok = ex(context.Background())
	assert.False(t, ok)
}

func TestContextValueInsideGroup(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextValue("source", sourceKey{}),
	).WithGroup("check")

	ctx := context.WithValue(context.Background(), sourceKey{}, "stdin")
	log.InfoContext(ctx, "msg")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	group, ok := entry["check"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "stdin", group["source"])
}
