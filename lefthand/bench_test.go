package lefthand_test

import (
	"testing"

	"github.com/katalvlaran/theseus/lefthand"
)

// BenchmarkWalk_Spiral measures a full 54-move walk of the 12×12 spiral.
func BenchmarkWalk_Spiral(b *testing.B) {
	g := mustParse(b, spiral)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lefthand.Walk(g); err != nil {
			b.Fatal(err)
		}
	}
}
