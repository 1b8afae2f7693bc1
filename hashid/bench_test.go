package hashid_test

import (
	"testing"

	"github.com/uniacid/go-hashid-utils/hashid"
)

func BenchmarkFactory_Create_CacheHit(b *testing.B) {
	f := newTestFactory(b, 8)
	overrides := map[string]any{"salt": "bench"}
	_, _ = f.Create("default", overrides)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Create("default", overrides)
	}
}

func BenchmarkFactory_CreateConverter(b *testing.B) {
	f := newTestFactory(b, 8)
	overrides := map[string]any{"salt": "bench"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.CreateConverter("default", overrides)
	}
}

func BenchmarkDefaultHasher_Encode(b *testing.B) {
	h, _ := hashid.NewDefaultHasher(hashid.Config{Salt: "bench", MinLength: 8, Alphabet: hashid.DefaultAlphabet})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Encode(123456)
	}
}

func BenchmarkDefaultHasher_Decode(b *testing.B) {
	h, _ := hashid.NewDefaultHasher(hashid.Config{Salt: "bench", MinLength: 8, Alphabet: hashid.DefaultAlphabet})
	encoded := h.Encode(123456)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Decode(encoded)
	}
}

func BenchmarkSecureHasher_Encode(b *testing.B) {
	h, _ := hashid.NewSecureHasher(hashid.Config{Salt: "bench", MinLength: hashid.SecureMinLength, Alphabet: hashid.SecureAlphabet})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Encode(123456)
	}
}
