package msg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMessage(t *testing.T) {
	cases := []struct {
		name     string
		key      string
		args     []interface{}
		expected string
	}{
		{
			name:     "plain message",
			key:      "weather.error.timeout",
			expected: "Request timeout. Please try again.",
		},
		{
			name:     "int placeholder",
			key:      "weather.error.http",
			args:     []interface{}{503},
			expected: "HTTP Error 503",
		},
		{
			name:     "several placeholders",
			key:      "weather.error.provider",
			args:     []interface{}{"404", "city not found"},
			expected: "API Error 404: city not found",
		},
		{
			name:     "float placeholder",
			key:      "weather.log.coordinates",
			args:     []interface{}{"London", 51.5073, -0.1277},
			expected: "Coordinates for London: (51.5073, -0.1277)",
		},
		{
			name:     "struct placeholder is rendered as json",
			key:      "weather.error.unexpected",
			args:     []interface{}{struct{ A int }{A: 1}},
			expected: `Unexpected error: {"A":1}`,
		},
		{
			name:     "unknown key",
			key:      "does.not.exist",
			expected: "Message not found: does.not.exist",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetMessage(tc.key, tc.args...))
		})
	}
}

func TestInitOverridesEmbeddedMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	err := os.WriteFile(path, []byte("custom:\n  greeting: \"hello {0}\"\n"), 0o600)
	assert.NoError(t, err)

	Init(path)

	assert.Equal(t, "hello dashboard", GetMessage("custom.greeting", "dashboard"))
	assert.Equal(t, "Request timeout. Please try again.", GetMessage("weather.error.timeout"))
}
