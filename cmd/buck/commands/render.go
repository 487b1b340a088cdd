package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sandeepsanjusplr/buck/internal/ui/style"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

// displayPath shortens p to be relative to root when it lies below it.
func displayPath(root, p string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		return p
	}
	rel, err := filepath.Rel(abs, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return filepath.ToSlash(rel)
}

func cellLabel(name string) string {
	if name == "" {
		return style.Heading.Render("(root)")
	}
	return style.Heading.Render(name)
}
