// Package lang maps file names to language comment syntax.
package lang

// Language describes the comment syntax of a file type.
type Language struct {
	// Name is the display name of the language
	Name string

	// Extensions maps file extensions to this language
	Extensions []string

	// CommentPrefix starts a line comment, e.g. "//" or "#"
	CommentPrefix string
}

var builtin = []*Language{
	{Name: "Go", Extensions: []string{".go"}, CommentPrefix: "//"},
	{Name: "C", Extensions: []string{".c", ".h"}, CommentPrefix: "//"},
	{Name: "C++", Extensions: []string{".cc", ".cpp", ".cxx", ".hh", ".hpp"}, CommentPrefix: "//"},
	{Name: "Java", Extensions: []string{".java"}, CommentPrefix: "//"},
	{Name: "JavaScript", Extensions: []string{".js", ".mjs", ".cjs", ".ts"}, CommentPrefix: "//"},
	{Name: "Rust", Extensions: []string{".rs"}, CommentPrefix: "//"},
	{Name: "Python", Extensions: []string{".py", ".pyw"}, CommentPrefix: "#"},
	{Name: "Shell", Extensions: []string{".sh", ".bash", ".zsh"}, CommentPrefix: "#"},
	{Name: "TOML", Extensions: []string{".toml"}, CommentPrefix: "#"},
	{Name: "YAML", Extensions: []string{".yaml", ".yml"}, CommentPrefix: "#"},
	{Name: "Lua", Extensions: []string{".lua"}, CommentPrefix: "--"},
	{Name: "SQL", Extensions: []string{".sql"}, CommentPrefix: "--"},
	{Name: "Lisp", Extensions: []string{".el", ".lisp", ".scm"}, CommentPrefix: ";;"},
}
