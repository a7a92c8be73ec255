package platform

import (
	"fmt"
	"strings"
)

// RenderFrontMatter serializes fields as a front-matter header. The layout
// rule is fixed and platform-agnostic: arrays become an indented bulleted
// sub-list, booleans stay unquoted literals, everything else is quoted.
// Empty fields produce no header at all.
func RenderFrontMatter(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("---\n")
	for _, f := range fields {
		switch v := f.Value.(type) {
		case bool:
			fmt.Fprintf(&b, "%s: %t\n", f.Key, v)
		case []string:
			fmt.Fprintf(&b, "%s:\n", f.Key)
			for _, item := range v {
				fmt.Fprintf(&b, "  - %q\n", item)
			}
		default:
			fmt.Fprintf(&b, "%s: %q\n", f.Key, fmt.Sprint(v))
		}
	}
	b.WriteString("---\n\n")
	return b.String()
}
