package lang

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/bethropolis/emacsmode/internal/logger"
)

var (
	// Global language registry
	registry struct {
		sync.RWMutex
		languages     []*Language
		extToLanguage map[string]*Language
	}

	// One-time initialization
	initOnce sync.Once
)

// Initialize ensures the registry is ready for use and holds the
// built-in languages.
func Initialize() {
	initOnce.Do(func() {
		registry.extToLanguage = make(map[string]*Language)
		for _, l := range builtin {
			register(l)
		}
		logger.Debugf("Language registry initialized with %d languages", len(builtin))
	})
}

// Register adds a language to the registry. Later registrations win
// for shared extensions.
func Register(lang *Language) {
	Initialize()

	registry.Lock()
	defer registry.Unlock()
	register(lang)
	logger.Debugf("Registered language: %s with extensions: %v", lang.Name, lang.Extensions)
}

func register(lang *Language) {
	registry.languages = append(registry.languages, lang)
	for _, ext := range lang.Extensions {
		lowerExt := strings.ToLower(ext)
		if existing, ok := registry.extToLanguage[lowerExt]; ok {
			logger.Warnf("Extension %s already registered to %s, overriding with %s",
				lowerExt, existing.Name, lang.Name)
		}
		registry.extToLanguage[lowerExt] = lang
	}
}

// GetForFile returns the language for a given file path, or nil.
func GetForFile(filePath string) *Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()

	return registry.extToLanguage[strings.ToLower(filepath.Ext(filePath))]
}

// CommentPrefix returns the line comment prefix for filePath, or fallback
// when the file type is unknown.
func CommentPrefix(filePath, fallback string) string {
	if l := GetForFile(filePath); l != nil && l.CommentPrefix != "" {
		return l.CommentPrefix
	}
	return fallback
}

// GetAll returns all registered languages
func GetAll() []*Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()

	result := make([]*Language, len(registry.languages))
	copy(result, registry.languages)
	return result
}
