// Package templates exposes the embedded default configuration shipped with
// the binary.
package templates

import (
	"embed"
	"fmt"
)

//go:embed cvsetup.toml
var files embed.FS

// Read returns the contents of the named embedded template.
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}
	return data, nil
}
