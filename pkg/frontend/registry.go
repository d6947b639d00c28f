package frontend

import (
	"cmp"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Registry maps languages and file extensions to producers.
type Registry struct {
	mu          sync.RWMutex
	byLanguage  map[string]Producer
	byExtension map[string]Producer
}

// NewRegistry creates a registry holding the given producers.
func NewRegistry(producers ...Producer) *Registry {
	r := &Registry{
		byLanguage:  make(map[string]Producer),
		byExtension: make(map[string]Producer),
	}
	for _, p := range producers {
		r.Register(p)
	}
	return r
}

// Register adds a producer. A later producer for the same language or
// extension replaces the earlier one.
func (r *Registry) Register(p Producer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byLanguage[p.Language()] = p
	for _, ext := range p.Extensions() {
		r.byExtension[strings.ToLower(ext)] = p
	}
}

// ForLanguage returns the producer of a language.
//
//nolint:ireturn // Registry hands out the registered interface values.
func (r *Registry) ForLanguage(language string) (Producer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byLanguage[language]
	return p, ok
}

// ForFile returns the producer for a filename, chosen by extension.
//
//nolint:ireturn // Registry hands out the registered interface values.
func (r *Registry) ForFile(filename string) (Producer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byExtension[strings.ToLower(filepath.Ext(filename))]
	return p, ok
}

// Languages returns the registered language keys, sorted.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	languages := make([]string, 0, len(r.byLanguage))
	for lang := range r.byLanguage {
		languages = append(languages, lang)
	}
	slices.Sort(languages)
	return languages
}

// Extensions returns every registered extension, sorted.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.byExtension))
	for ext := range r.byExtension {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// TerminateAll terminates every registered producer implementing Terminator,
// once each, in language order. Failures are joined.
func (r *Registry) TerminateAll() error {
	r.mu.RLock()
	producers := make([]Producer, 0, len(r.byLanguage))
	for _, p := range r.byLanguage {
		producers = append(producers, p)
	}
	r.mu.RUnlock()

	slices.SortFunc(producers, func(a, b Producer) int {
		return cmp.Compare(a.Language(), b.Language())
	})

	var errs []error
	for _, p := range producers {
		term, ok := p.(Terminator)
		if !ok {
			continue
		}
		if err := term.Terminate(); err != nil {
			errs = append(errs, fmt.Errorf("terminate %s: %w", p.Language(), err))
		}
	}
	return errors.Join(errs...)
}
