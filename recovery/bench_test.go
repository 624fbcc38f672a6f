package recovery_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/polycipher/cipher"
	"github.com/katalvlaran/polycipher/recovery"
)

func BenchmarkRecover(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	ct := cipher.EncryptText(en, wordText(rng, 300), "secret")
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = recovery.Recover(ctx, en, ct, vocab, recovery.WithWords(vocab...))
	}
}
