package dsf_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/lvmaze/dsf"
)

// BenchmarkUnionFind merges 4096 elements in a chain and then queries each.
func BenchmarkUnionFind(b *testing.B) {
	const n = 4096
	elems := make([]node, n)
	for i := range elems {
		elems[i] = node(strconv.Itoa(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := dsf.NewWithCapacity[string, node](n)
		for _, e := range elems {
			_ = f.MakeSet(e)
		}
		for j := 1; j < n; j++ {
			_, _ = f.Union(elems[j-1], elems[j])
		}
		for _, e := range elems {
			_, _ = f.Find(e)
		}
	}
}
