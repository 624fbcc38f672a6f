package cipher

// Status tells how a language-level cipher call produced its output.
type Status int

const (
	// Applied means the text was transformed with a resolved alphabet and a
	// usable key. The output may still equal the input (e.g. a zero shift).
	Applied Status = iota

	// UnsupportedLanguage means the language could not be resolved and the
	// input was passed through unchanged.
	UnsupportedLanguage

	// EmptyKey means the cleaned key had no alphabet symbols and the cipher
	// acted as the identity transform.
	EmptyKey
)

// String returns a short label for s.
func (s Status) String() string {
	switch s {
	case Applied:
		return "applied"
	case UnsupportedLanguage:
		return "unsupported-language"
	case EmptyKey:
		return "empty-key"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of a language-level cipher call.
type Result struct {
	// Text is the output; equal to the input unless Status == Applied.
	Text string

	// Status records whether the transform ran or why it was skipped.
	Status Status
}

// Handled reports whether the cipher actually ran.
func (r Result) Handled() bool { return r.Status == Applied }
