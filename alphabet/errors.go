package alphabet

import "errors"

var (
	// ErrEmptyAlphabet is returned by New when no symbols are supplied.
	ErrEmptyAlphabet = errors.New("alphabet: symbol list is empty")

	// ErrDuplicateSymbol is returned by New when a symbol occurs more than once
	// after lower-casing.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")

	// ErrMissingSeparator is returned by New when the separator symbol is not
	// part of the symbol list.
	ErrMissingSeparator = errors.New("alphabet: separator is not a member of the alphabet")

	// ErrEmptyLanguage indicates a blank language identifier.
	ErrEmptyLanguage = errors.New("alphabet: language identifier is empty")

	// ErrNilAlphabet indicates that a nil *Alphabet was passed where one is required.
	ErrNilAlphabet = errors.New("alphabet: alphabet is nil")

	// ErrAlreadyRegistered indicates a second Register call for the same language.
	ErrAlreadyRegistered = errors.New("alphabet: language already registered")

	// ErrUnsupportedLanguage indicates that Resolve has no alphabet for the
	// requested language. Cipher operations treat it as a pass-through signal.
	ErrUnsupportedLanguage = errors.New("alphabet: unsupported language")
)
