package crib_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/polycipher/cipher"
	"github.com/katalvlaran/polycipher/crib"
)

var benchCipher = cipher.EncryptText(en, strings.Repeat("the second temple stood in jerusalem ", 200), "keylen")

func BenchmarkSearch(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = crib.Search(en, benchCipher, "temple")
	}
}

func BenchmarkSearchAll(b *testing.B) {
	cribs := []string{"the", "temple", "jerusalem", "second", "stood"}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = crib.SearchAll(ctx, en, benchCipher, cribs)
	}
}
