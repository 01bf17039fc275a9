package extend_test

import (
	"testing"

	"github.com/katalvlaran/mecenum/builder"
	"github.com/katalvlaran/mecenum/extend"
)

func BenchmarkExtendable_K32(b *testing.B) {
	g, err := builder.Complete(32)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !extend.Extendable(g) {
			b.Fatal("clique must be extendable")
		}
	}
}

func BenchmarkExtend_Path256(b *testing.B) {
	g, err := builder.Path(256)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := extend.Extend(g); err != nil {
			b.Fatal(err)
		}
	}
}
