package recovery

import "errors"

// Sentinel errors.
var (
	// ErrBadKeyRange indicates MinKeyLen < 1 or MaxKeyLen < MinKeyLen.
	ErrBadKeyRange = errors.New("recovery: invalid key length range")

	// ErrBadSampleSize indicates a non-positive SampleSize.
	ErrBadSampleSize = errors.New("recovery: sample size must be positive")

	// ErrNoCribs is returned when the crib list is empty.
	ErrNoCribs = errors.New("recovery: no cribs given")

	// ErrNoMatches is returned when no crib aligned anywhere in the ciphertext.
	ErrNoMatches = errors.New("recovery: no crib matches in ciphertext")
)

// Candidate is one recovered-key hypothesis.
type Candidate struct {
	Key    string
	Length int // key length in runes, equal to the candidate length L
	Score  int
}

// Defaults of DefaultOptions.
const (
	DefaultMinKeyLen  = 4
	DefaultMaxKeyLen  = 16
	DefaultSampleSize = 2000
	DefaultTopN       = 10
)

// DefaultCribs are guesses suited to an English text on the history of
// Jerusalem.
var DefaultCribs = []string{
	"Jerusalem", "Israel", "second temple", "temple", "David", "Solomon", "Babylon",
	"exile", "covenant", "prophet", "king", "holy", "mountain", "priest", "sacrifice",
	"the", "and", "that", "bce", "jewish", "ce", "acd",
}

// DefaultWords are the expected plaintext words used for scoring.
var DefaultWords = []string{"jerusalem", "the", "israel", "temple", "david"}

// Options configures Recover.
type Options struct {
	MinKeyLen int
	MaxKeyLen int

	// SampleSize is the ciphertext prefix, in runes, decrypted for scoring.
	SampleSize int

	// TopN bounds the returned candidates; <= 0 returns all of them.
	TopN int

	// Words are counted in each decrypted sample. Nil or empty scores zero.
	Words []string

	// CleanCiphertext drops every rune outside the alphabet and lower-cases
	// the ciphertext before searching, so crib offsets line up with key
	// positions. On by default.
	CleanCiphertext bool

	// Workers bounds the goroutines scoring key lengths; <= 0 is unbounded.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns key lengths 4..16, a 2000-rune sample, the top 10
// candidates, DefaultWords and ciphertext cleaning.
func DefaultOptions() Options {
	words := make([]string, len(DefaultWords))
	copy(words, DefaultWords)

	return Options{
		MinKeyLen:       DefaultMinKeyLen,
		MaxKeyLen:       DefaultMaxKeyLen,
		SampleSize:      DefaultSampleSize,
		TopN:            DefaultTopN,
		Words:           words,
		CleanCiphertext: true,
	}
}

// WithKeyRange sets the inclusive candidate key length range.
func WithKeyRange(minLen, maxLen int) Option {
	return func(o *Options) {
		o.MinKeyLen = minLen
		o.MaxKeyLen = maxLen
	}
}

// WithSampleSize sets the scoring prefix length.
func WithSampleSize(n int) Option {
	return func(o *Options) {
		o.SampleSize = n
	}
}

// WithTopN sets how many candidates are returned.
func WithTopN(n int) Option {
	return func(o *Options) {
		o.TopN = n
	}
}

// WithWords replaces the scoring words.
func WithWords(words ...string) Option {
	return func(o *Options) {
		o.Words = append([]string(nil), words...)
	}
}

// WithCleanCiphertext strips non-alphabet runes before the attack.
func WithCleanCiphertext() Option {
	return func(o *Options) {
		o.CleanCiphertext = true
	}
}

// WithRawCiphertext searches the ciphertext as given. Only useful when it
// holds nothing but alphabet symbols; any other rune shifts the crib
// offsets away from the key positions.
func WithRawCiphertext() Option {
	return func(o *Options) {
		o.CleanCiphertext = false
	}
}

// WithWorkers bounds concurrency.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

func (o Options) validate() error {
	if o.MinKeyLen < 1 || o.MaxKeyLen < o.MinKeyLen {
		return ErrBadKeyRange
	}
	if o.SampleSize <= 0 {
		return ErrBadSampleSize
	}

	return nil
}
