package cipher_test

import (
	"math/rand"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polycipher/alphabet"
	"github.com/katalvlaran/polycipher/cipher"
)

var en = alphabet.English

func TestNormalize(t *testing.T) {
	cases := []struct {
		amount, n, want int
	}{
		{3, 27, 3},
		{27, 27, 0},
		{30, 27, 3},
		{-1, 27, 26},
		{-28, 27, 26},
		{0, 27, 0},
		{5, 0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, cipher.Normalize(c.amount, c.n), "Normalize(%d, %d)", c.amount, c.n)
	}

	for s := -100; s <= 100; s++ {
		sum := cipher.Normalize(s, 27) + cipher.Normalize(-s, 27)
		assert.Zero(t, sum%27, "shift %d and its negation must cancel", s)
	}
}

func TestShiftText_Scenarios(t *testing.T) {
	assert.Equal(t, "khoor", cipher.ShiftText(en, "hello", 3))
	// x y z sit at 23..25; the space at 26 is the first wrap target.
	assert.Equal(t, " ab", cipher.ShiftText(en, "xyz", 3))
	assert.Equal(t, "abc", cipher.ShiftText(en, "xyz", 4))
	assert.Equal(t, "Khoor,cZruog!", cipher.ShiftText(en, "Hello, World!", 3))
}

func TestShiftSymbol_CasePreservation(t *testing.T) {
	for _, r := range "ABCXYZ" {
		for _, s := range []int{1, 3, 13, -5, 27} {
			out := cipher.ShiftSymbol(en, r, s)
			if out != ' ' {
				assert.True(t, unicode.IsUpper(out), "%q shifted by %d -> %q", r, s, out)
			}
		}
	}
	for _, r := range "abcxyz" {
		out := cipher.ShiftSymbol(en, r, 7)
		assert.False(t, unicode.IsUpper(out), "%q -> %q", r, out)
	}
	assert.Equal(t, 'a', cipher.ShiftSymbol(en, ' ', 1), "separator wraps to the first symbol")
	assert.Equal(t, ' ', cipher.ShiftSymbol(en, 'Z', 1), "separator has no case")
}

func TestShiftSymbol_NonMemberPassThrough(t *testing.T) {
	for _, r := range "0123456789,.!?-\n\tשé" {
		assert.Equal(t, r, cipher.ShiftSymbol(en, r, 11), "%q must pass through", r)
	}
	assert.Equal(t, 'q', cipher.ShiftSymbol(nil, 'q', 4), "nil alphabet is a pass-through")
}

func TestShiftText_Hebrew(t *testing.T) {
	he := alphabet.Hebrew
	assert.Equal(t, "ת ", cipher.ShiftText(he, "שת", 1))
	assert.Equal(t, "שלום עולם", cipher.UnshiftText(he, cipher.ShiftText(he, "שלום עולם", 9), 9))
}

func TestShiftText_Periodicity(t *testing.T) {
	text := "The Quick Brown Fox, 1999!"
	for s := -30; s <= 30; s++ {
		assert.Equal(t, cipher.ShiftText(en, text, s), cipher.ShiftText(en, text, s+en.Len()), "shift %d", s)
	}
}

func TestShiftText_RoundTripAndLength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		text := randomText(rng, lowerPool, 40)
		s := rng.Intn(200) - 100
		enc := cipher.ShiftText(en, text, s)
		assert.Equal(t, len([]rune(text)), len([]rune(enc)))
		assert.Equal(t, text, cipher.UnshiftText(en, enc, s))
	}
}

// An upper-case letter that lands on the caseless separator comes back
// lower-case, so mixed-case text round-trips up to case.
func TestShiftText_MixedCaseRoundTrip(t *testing.T) {
	assert.Equal(t, "z", cipher.UnshiftText(en, cipher.ShiftText(en, "Z", 1), 1))

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		text := randomText(rng, mixedPool, 40)
		s := rng.Intn(60) - 30
		back := cipher.UnshiftText(en, cipher.ShiftText(en, text, s), s)
		assert.Equal(t, strings.ToLower(text), strings.ToLower(back))
	}
}

func TestCaesar_ByLanguage(t *testing.T) {
	reg := alphabet.Default()

	res := cipher.CaesarEncrypt(reg, "english", "hello", 3)
	assert.True(t, res.Handled())
	assert.Equal(t, "khoor", res.Text)

	back := cipher.CaesarDecrypt(reg, "English", res.Text, 3)
	assert.Equal(t, cipher.Applied, back.Status)
	assert.Equal(t, "hello", back.Text)

	zero := cipher.CaesarEncrypt(reg, "english", "hello", 0)
	assert.True(t, zero.Handled(), "a zero shift is still applied")
	assert.Equal(t, "hello", zero.Text)

	bad := cipher.CaesarEncrypt(reg, "klingon", "hello", 3)
	assert.False(t, bad.Handled())
	assert.Equal(t, cipher.UnsupportedLanguage, bad.Status)
	assert.Equal(t, "hello", bad.Text)

	assert.Equal(t, cipher.UnsupportedLanguage, cipher.CaesarEncrypt(nil, "english", "x", 1).Status)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "applied", cipher.Applied.String())
	assert.Equal(t, "unsupported-language", cipher.UnsupportedLanguage.String())
	assert.Equal(t, "empty-key", cipher.EmptyKey.String())
	assert.Equal(t, "unknown", cipher.Status(42).String())
}

const (
	lowerPool = "abcdefghijklmnopqrstuvwxyz     0123456789.,;!?-"
	mixedPool = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ     0123456789.,;!?-"
)

// randomText draws n bytes from pool.
func randomText(rng *rand.Rand, pool string, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = pool[rng.Intn(len(pool))]
	}

	return string(out)
}
