package gridgraph_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/crucible/gridgraph"
)

// BenchmarkParse measures Parse on a deterministic 500×500 digit grid.
// Complexity: O(W×H)
func BenchmarkParse(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			sb.WriteByte(byte('1' + rng.Intn(9)))
		}
		sb.WriteByte('\n')
	}
	input := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.ParseString(input); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}
