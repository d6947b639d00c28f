// Package langdetect resolves the analysis language of a source file.
// It uses go-enry, first on the file name and then on the content, and
// maps the result onto the languages treelint has a front end for.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/treelint/pkg/config"
)

// Unknown is returned when no supported language is detected.
const Unknown = ""

// enryNames maps go-enry language names to treelint languages.
var enryNames = map[string]string{
	"Go":         config.LanguageGo,
	"JavaScript": config.LanguageJavaScript,
	"JSX":        config.LanguageJavaScript,
}

// classifierCandidates restricts the content classifier to supported languages.
var classifierCandidates = []string{"Go", "JavaScript"}

// Detect returns the language of a file, or Unknown.
//
// The file name decides first: extension, then well-known names. Files
// without a usable name fall back to the shebang, a few strong content
// patterns and finally the go-enry classifier.
func Detect(filename string, content []byte) string {
	if filename != "" {
		if lang, safe := enry.GetLanguageByExtension(filename); safe {
			return normalize(lang)
		}
		if lang, safe := enry.GetLanguageByFilename(filename); safe {
			return normalize(lang)
		}
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return Unknown
	}

	// Shebang is the most reliable content signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(content); lang != Unknown {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Unknown
}

// detectByPattern checks for patterns that are highly indicative.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)

	if lang := detectGo(trimmed); lang != Unknown {
		return lang
	}
	if lang := detectJavaScript(string(content)); lang != Unknown {
		return lang
	}

	return Unknown
}

// detectGo checks for a leading package clause, comments aside.
func detectGo(trimmed []byte) string {
	for bytes.HasPrefix(trimmed, []byte("//")) {
		end := bytes.IndexByte(trimmed, '\n')
		if end < 0 {
			return Unknown
		}
		trimmed = bytes.TrimSpace(trimmed[end+1:])
	}
	if bytes.HasPrefix(trimmed, []byte("package ")) {
		return config.LanguageGo
	}
	return Unknown
}

// detectJavaScript checks for JavaScript patterns.
func detectJavaScript(contentStr string) string {
	if strings.Contains(contentStr, "=>") ||
		strings.Contains(contentStr, "require(") ||
		strings.Contains(contentStr, "console.log") ||
		strings.Contains(contentStr, "module.exports") {
		return config.LanguageJavaScript
	}
	return Unknown
}

// normalize converts go-enry language names to treelint languages.
// Unsupported languages give Unknown.
func normalize(lang string) string {
	return enryNames[lang]
}
