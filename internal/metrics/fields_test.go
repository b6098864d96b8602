package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricFieldKeysAreDistinct(t *testing.T) {
	keys := []string{AttrMethod, AttrPath, AttrStatus, AttrProvider, AttrResource, AttrOutcome}
	seen := map[string]bool{}
	for _, k := range keys {
		assert.NotEmpty(t, k)
		assert.False(t, seen[k], "duplicate attribute key %q", k)
		seen[k] = true
	}
}
