package recovery

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polycipher/alphabet"
	"github.com/katalvlaran/polycipher/crib"
)

// Recover runs the full crib-voting attack and returns the ranked
// candidates, at most TopN of them.
//
// Errors: alphabet.ErrNilAlphabet, ErrBadKeyRange, ErrBadSampleSize,
// ErrNoCribs, ErrNoMatches, or ctx.Err() on cancellation.
func Recover(ctx context.Context, a *alphabet.Alphabet, ciphertext string, cribs []string, opts ...Option) ([]Candidate, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if a == nil {
		return nil, alphabet.ErrNilAlphabet
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if len(cribs) == 0 {
		return nil, ErrNoCribs
	}
	if o.CleanCiphertext {
		ciphertext = Clean(a, ciphertext)
	}

	matches, err := crib.SearchAll(ctx, a, ciphertext, cribs)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNoMatches
	}

	cands := make([]Candidate, o.MaxKeyLen-o.MinKeyLen+1)
	g, gctx := errgroup.WithContext(ctx)
	if o.Workers > 0 {
		g.SetLimit(o.Workers)
	}
	for i := range cands {
		i := i
		keyLen := o.MinKeyLen + i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			key := VoteKey(a, matches, keyLen)
			cands[i] = Candidate{
				Key:    key,
				Length: keyLen,
				Score:  Score(a, ciphertext, key, o.Words, o.SampleSize),
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	Rank(cands)
	if o.TopN > 0 && len(cands) > o.TopN {
		cands = cands[:o.TopN]
	}

	return cands, nil
}

// Clean lower-cases text and keeps only alphabet members.
func Clean(a *alphabet.Alphabet, text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		lr := unicode.ToLower(r)
		if a.Contains(lr) {
			sb.WriteRune(lr)
		}
	}

	return sb.String()
}
