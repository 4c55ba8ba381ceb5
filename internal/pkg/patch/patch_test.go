//go:build unit

package patch_test

import (
	"testing"

	"field-reservation/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	price := int64(4000)
	assert.Equal(t, int64(4000), patch.Coalesce(&price, 5000))
	assert.Equal(t, int64(5000), patch.Coalesce[int64](nil, 5000))

	var zero string
	assert.Equal(t, "", patch.Coalesce(&zero, "kept"), "an explicit zero value still overrides")
}

func TestTrimmed(t *testing.T) {
	name := "  Court B  "
	assert.Equal(t, "Court B", patch.Trimmed(&name, "Court A"))
	assert.Equal(t, "Court A", patch.Trimmed(nil, "Court A"))
}
