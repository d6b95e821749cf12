package catalog

import (
	"strings"

	"github.com/tidwall/gjson"
)

// conjugationParent returns the verb root owning a path of the form
// <root>.conjugations.<tense>.<i>
func conjugationParent(raw []byte, path string) (gjson.Result, bool) {
	if pathSegment(path, -3) != "conjugations" {
		return gjson.Result{}, false
	}
	parent := gjson.GetBytes(raw, parentPath(path, 3))
	return parent, parent.IsObject()
}

// parentPath drops the last n segments of a dotted path
func parentPath(path string, n int) string {
	parts := strings.Split(path, ".")
	if n >= len(parts) {
		return ""
	}
	return strings.Join(parts[:len(parts)-n], ".")
}

// pathSegment returns a segment by index, negative counting from the end
func pathSegment(path string, i int) string {
	parts := strings.Split(path, ".")
	if i < 0 {
		i += len(parts)
	}
	if i < 0 || i >= len(parts) {
		return ""
	}
	return parts[i]
}
