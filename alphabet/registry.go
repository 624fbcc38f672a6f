package alphabet

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Resolver maps a language identifier to its Alphabet.
// Implementations must return ErrUnsupportedLanguage (possibly wrapped) when
// the language is unknown, and must return the same Alphabet on every call.
type Resolver interface {
	Resolve(lang string) (*Alphabet, error)
}

// Registry is a concurrency-safe Resolver backed by a map.
// Language identifiers are trimmed and case-folded, so "English" and
// "ENGLISH" resolve to the same entry.
type Registry struct {
	mu        sync.RWMutex
	alphabets map[string]*Alphabet
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{alphabets: make(map[string]*Alphabet)}
}

// Default returns a new Registry holding the built-in English and Hebrew
// alphabets.
func Default() *Registry {
	r := NewRegistry()
	for _, a := range []*Alphabet{English, Hebrew} {
		_ = r.Register(a) // built-ins are distinct and non-nil
	}

	return r
}

// Register adds a under a.Language().
//
// Errors: ErrNilAlphabet, ErrAlreadyRegistered.
func (r *Registry) Register(a *Alphabet) error {
	if a == nil {
		return ErrNilAlphabet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.alphabets[a.lang]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, a.lang)
	}
	r.alphabets[a.lang] = a

	return nil
}

// Resolve returns the alphabet registered for lang.
//
// Errors: ErrUnsupportedLanguage (wrapped with the requested identifier).
func (r *Registry) Resolve(lang string) (*Alphabet, error) {
	key := foldLanguage(lang)

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.alphabets[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	return a, nil
}

// Languages returns the registered language identifiers in ascending order.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.alphabets))
	for lang := range r.alphabets {
		out = append(out, lang)
	}
	sort.Strings(out)

	return out
}

// foldLanguage normalizes a language identifier for map lookups.
func foldLanguage(lang string) string {
	return cases.Fold().String(strings.TrimSpace(lang))
}
