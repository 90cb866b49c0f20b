package orgname_test

import (
	"math/rand/v2"
	"testing"

	"github.com/volontulo/seedkit/pkg/orgname"
)

func BenchmarkGenerate(b *testing.B) {
	b.Run("Default", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = orgname.Generate()
		}
	})

	b.Run("Seeded", func(b *testing.B) {
		gen := orgname.MustNew(orgname.WithPicker(rand.New(rand.NewPCG(1, 2))))
		b.ReportAllocs()
		for b.Loop() {
			_, _ = gen.Generate()
		}
	})
}

func BenchmarkGenerateParallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = orgname.Generate()
		}
	})
}
