package bootstrap

import (
	"encoding/json"
	"testing"

	"github.com/PilarGuataquira/202214-BaseProject/internal/logger"
	"github.com/stretchr/testify/require"
)

func jsonField(t *testing.T, body, field string) string {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	v, ok := m[field].(string)
	require.True(t, ok, "field %s missing in %s", field, body)
	return v
}

func nopLogger() logger.Logger {
	return logger.NewNop()
}
