// Package i18n supplies the user-facing strings of the API layer by
// key, in English or Turkish. The engine packages never import it; only
// the command layer composes localized messages.
package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"sync"
)

// SupportedLanguages are the locale codes with a translation table.
var SupportedLanguages = []string{"en", "tr"}

// DefaultLanguage is used when no supported language is requested.
const DefaultLanguage = "en"

// translations maps language -> flattened dot key -> message. Loaded
// once at startup, read-only afterwards.
var (
	translations map[string]map[string]string
	loadOnce     sync.Once
)

// Load reads the per-language JSON files from localesFS. Nested objects
// are flattened to dot keys ({"toast":{"created":…}} -> "toast.created").
func Load(localesFS fs.FS) error {
	var loadErr error

	loadOnce.Do(func() {
		translations = make(map[string]map[string]string)

		for _, lang := range SupportedLanguages {
			fileName := lang + ".json"

			data, err := fs.ReadFile(localesFS, fileName)
			if err != nil {
				loadErr = fmt.Errorf("failed to read translation file %s: %w", fileName, err)
				return
			}

			var nested map[string]any
			if err := json.Unmarshal(data, &nested); err != nil {
				loadErr = fmt.Errorf("failed to parse translation file %s: %w", fileName, err)
				return
			}

			flat := make(map[string]string)
			flattenMap("", nested, flat)
			translations[lang] = flat

			log.Printf("INFO: Loaded %d translation keys for language %s", len(flat), lang)
		}
	})

	return loadErr
}

// Localizer resolves keys for one language.
type Localizer struct {
	lang string
}

// NewLocalizer creates a Localizer, falling back to the default
// language when lang is unsupported.
func NewLocalizer(lang string) *Localizer {
	if !isSupported(lang) {
		lang = DefaultLanguage
	}
	return &Localizer{lang: lang}
}

// FromRequest picks the localizer for the request's Accept-Language
// header. Only the primary subtag is considered.
func FromRequest(r *http.Request) *Localizer {
	header := r.Header.Get("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		if isSupported(lang) {
			return NewLocalizer(lang)
		}
	}
	return NewLocalizer(DefaultLanguage)
}

// Language returns the resolved language code.
func (l *Localizer) Language() string {
	return l.lang
}

// T returns the message for key, falling back to English and then to
// the key itself so a missing translation never breaks a response.
func (l *Localizer) T(key string) string {
	if msg, ok := translations[l.lang][key]; ok {
		return msg
	}
	if msg, ok := translations[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// Tf returns the message for key formatted with args.
func (l *Localizer) Tf(key string, args ...any) string {
	return fmt.Sprintf(l.T(key), args...)
}

func isSupported(lang string) bool {
	for _, supported := range SupportedLanguages {
		if lang == supported {
			return true
		}
	}
	return false
}

func flattenMap(prefix string, nested map[string]any, flat map[string]string) {
	for key, value := range nested {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			flat[full] = v
		case map[string]any:
			flattenMap(full, v, flat)
		}
	}
}
