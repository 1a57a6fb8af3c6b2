//go:build windows

package rebase

import (
	"fmt"
	"os"
)

// cmdScriptGenerator writes cmd.exe batch scripts
type cmdScriptGenerator struct{}

func newPlatformScriptGenerator() EditorScriptGenerator {
	return cmdScriptGenerator{}
}

func (cmdScriptGenerator) Generate(path, sourceFile string) error {
	content := fmt.Sprintf("@echo off\r\ncopy /Y \"%s\" \"%%1\" >nul\r\n", sourceFile)
	return os.WriteFile(path, []byte(content), 0o755)
}

func (cmdScriptGenerator) Extension() string {
	return ".cmd"
}
