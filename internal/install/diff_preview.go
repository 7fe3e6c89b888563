package install

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// DiffAgainstDefault renders a unified diff between the existing config file
// and the shipped default, for display before an overwrite prompt.
func DiffAgainstDefault(path string, existing []byte, template []byte) string {
	diff := udiff.Unified(path+" (current)", path+" (default)", string(existing), string(template))
	return ensureTrailingNewline(diff)
}

func ensureTrailingNewline(content string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
