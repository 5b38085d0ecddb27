package lang

import "testing"

func TestCommentPrefix(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "//"},
		{"/tmp/Script.PY", "#"},
		{"init.el", ";;"},
		{"query.sql", "--"},
		{"notes.txt", "%"},
		{"Makefile", "%"},
	}
	for _, tt := range tests {
		if got := CommentPrefix(tt.path, "%"); got != tt.want {
			t.Errorf("CommentPrefix(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRegisterOverrides(t *testing.T) {
	Register(&Language{Name: "Custom", Extensions: []string{".cst"}, CommentPrefix: "!"})

	if l := GetForFile("a.CST"); l == nil || l.Name != "Custom" {
		t.Fatalf("GetForFile(a.CST) = %v", l)
	}
	found := false
	for _, l := range GetAll() {
		if l.Name == "Custom" {
			found = true
		}
	}
	if !found {
		t.Error("GetAll() is missing the registered language")
	}
}
