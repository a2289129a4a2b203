package scaffold

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_OrderedAndRelative(t *testing.T) {
	files := Files()
	require.Len(t, files, 8)

	assert.Equal(t, "requirements.txt", files[0].Path)
	for _, f := range files {
		assert.NotEmpty(t, f.Path)
		assert.False(t, strings.HasPrefix(f.Path, "/"), "path %s must be repo-relative", f.Path)
	}
}

func TestFiles_JSONPayloadsAreValid(t *testing.T) {
	for _, f := range Files() {
		if !strings.HasSuffix(f.Path, ".json") {
			continue
		}
		var v any
		assert.NoError(t, json.Unmarshal([]byte(f.Content), &v), "invalid JSON in %s", f.Path)
	}
}

func TestFiles_PackageInitsEmpty(t *testing.T) {
	for _, f := range Files() {
		if strings.HasSuffix(f.Path, "__init__.py") {
			assert.Empty(t, f.Content)
		}
	}
}
