package crib

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polycipher/alphabet"
)

// Match is one fully valid alignment of a crib.
type Match struct {
	// Position is the rune offset of the window in the ciphertext.
	Position int
	// Fragment is the derived key fragment, one symbol per crib rune.
	Fragment string
	// Window is the lower-cased ciphertext slice that was aligned.
	Window string
}

// Search drags crib across ciphertext. It returns nil for a nil alphabet,
// an empty crib, or a crib longer than the ciphertext.
func Search(a *alphabet.Alphabet, ciphertext, crib string) []Match {
	if a == nil {
		return nil
	}
	ct := []rune(strings.ToLower(ciphertext))
	cr := []rune(strings.ToLower(crib))
	if len(cr) == 0 || len(cr) > len(ct) {
		return nil
	}

	// Crib indices are fixed; an invalid crib rune rules out every offset.
	plain := make([]int, len(cr))
	for j, r := range cr {
		idx, ok := a.Index(r)
		if !ok {
			return nil
		}
		plain[j] = idx
	}

	// Ciphertext indices, -1 for non-members.
	cipherIdx := make([]int, len(ct))
	for i, r := range ct {
		idx, ok := a.Index(r)
		if !ok {
			idx = -1
		}
		cipherIdx[i] = idx
	}

	n := a.Len()
	var out []Match
	frag := make([]rune, len(cr))
	for i := 0; i+len(cr) <= len(ct); i++ {
		valid := true
		for j, p := range plain {
			c := cipherIdx[i+j]
			if c < 0 {
				valid = false
				break
			}
			frag[j] = a.At(((c-p)%n + n) % n)
		}
		if !valid {
			continue
		}
		out = append(out, Match{
			Position: i,
			Fragment: string(frag),
			Window:   string(ct[i : i+len(cr)]),
		})
	}

	return out
}

// SearchAll runs Search for every crib concurrently and concatenates the
// results in crib order. It only fails when ctx is cancelled before all
// searches started.
func SearchAll(ctx context.Context, a *alphabet.Alphabet, ciphertext string, cribs []string) ([]Match, error) {
	perCrib := make([][]Match, len(cribs))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range cribs {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perCrib[i] = Search(a, ciphertext, c)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, m := range perCrib {
		total += len(m)
	}
	out := make([]Match, 0, total)
	for _, m := range perCrib {
		out = append(out, m...)
	}

	return out, nil
}
