package sl_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		env       string
		json      bool
		debugSeen bool
	}{
		{env: "local", json: false, debugSeen: true},
		{env: "dev", json: true, debugSeen: true},
		{env: "prod", json: true, debugSeen: false},
		{env: "staging", json: false, debugSeen: false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			var buf bytes.Buffer
			logger := sl.NewLogger(tt.env, &buf)

			logger.Debug("debug line")
			logger.Info("info line")

			out := buf.String()
			assert.Equal(t, tt.debugSeen, strings.Contains(out, "debug line"))
			require.Contains(t, out, "info line")

			lines := strings.Split(strings.TrimSpace(out), "\n")
			var rec map[string]any
			assert.Equal(t, tt.json, json.Unmarshal([]byte(lines[len(lines)-1]), &rec) == nil)
		})
	}
}
