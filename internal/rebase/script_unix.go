//go:build !windows

package rebase

import (
	"fmt"
	"os"
	"strings"
)

// shellScriptGenerator writes /bin/sh scripts
type shellScriptGenerator struct{}

func newPlatformScriptGenerator() EditorScriptGenerator {
	return shellScriptGenerator{}
}

func (shellScriptGenerator) Generate(path, sourceFile string) error {
	content := fmt.Sprintf("#!/bin/sh\nexec cp %s \"$1\"\n", shellQuote(sourceFile))
	return os.WriteFile(path, []byte(content), 0o755)
}

func (shellScriptGenerator) Extension() string {
	return ""
}

// shellQuote wraps s in single quotes so the shell takes it literally.
// Embedded single quotes become '\'' (close, escaped quote, reopen).
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
