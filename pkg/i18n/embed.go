package i18n

import "embed"

// EmbeddedLocales holds the translation JSON files compiled into the
// binary, so a deployed server needs no external locale files.
//
//go:embed locales/*.json
var EmbeddedLocales embed.FS
