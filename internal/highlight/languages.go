package highlight

import (
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	gosrc "github.com/smacker/go-tree-sitter/golang"
	jssrc "github.com/smacker/go-tree-sitter/javascript"
	pythonsrc "github.com/smacker/go-tree-sitter/python"
	rustsrc "github.com/smacker/go-tree-sitter/rust"
)

// grammars maps file extensions to tree-sitter grammars.
var grammars = map[string]func() *sitter.Language{
	".go":   gosrc.GetLanguage,
	".py":   pythonsrc.GetLanguage,
	".pyw":  pythonsrc.GetLanguage,
	".js":   jssrc.GetLanguage,
	".mjs":  jssrc.GetLanguage,
	".cjs":  jssrc.GetLanguage,
	".json": jssrc.GetLanguage,
	".rs":   rustsrc.GetLanguage,
}

// LanguageForFile returns the grammar for filePath, or nil.
func LanguageForFile(filePath string) *sitter.Language {
	if get, ok := grammars[strings.ToLower(filepath.Ext(filePath))]; ok {
		return get()
	}
	return nil
}
