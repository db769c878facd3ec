package utils

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// OrderedMapToString formats the map as "[key=value key=value]" in insertion order.
func OrderedMapToString(data *orderedmap.OrderedMap[string, any]) string {
	if data == nil {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	count := data.Len()
	for el := data.Front(); el != nil; el = el.Next() {
		fmt.Fprintf(&b, "%s=%v", el.Key, el.Value)
		count--
		if count > 0 {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(']')
	return b.String()
}
