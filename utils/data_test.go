package utils

import (
	"testing"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/stretchr/testify/assert"
)

func TestOrderedMapToString(t *testing.T) {
	assert.Equal(t, "[]", OrderedMapToString(nil))

	m := orderedmap.NewOrderedMap[string, any]()
	assert.Equal(t, "[]", OrderedMapToString(m))

	m.Set("speed", 12.5)
	m.Set("phase", "Boost")
	m.Set("altitude", 3)
	assert.Equal(t, "[speed=12.5 phase=Boost altitude=3]", OrderedMapToString(m))
}
