//go:build bench

package svg2png

import (
	"fmt"
	"sync"
	"testing"
)

// BenchmarkResolvePoolSize benchmarks pool size calculation.
func BenchmarkResolvePoolSize(b *testing.B) {
	for _, w := range []int{0, 1, 2, 4, 8} {
		b.Run(workerName(w), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = ResolvePoolSize(w)
			}
		})
	}
}

func workerName(w int) string {
	if w == 0 {
		return "auto"
	}
	return fmt.Sprintf("%d", w)
}

// BenchmarkConverterPoolAcquireRelease benchmarks the acquire/release cycle
// on a warm pool. Uses a mock rasterizer to avoid renderer overhead.
func BenchmarkConverterPoolAcquireRelease(b *testing.B) {
	for _, size := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			pool := NewConverterPool(size, withRasterizer(&mockRasterizer{}))
			warmPool(b, pool, size)

			b.ReportAllocs()
			for b.Loop() {
				conv, err := pool.Acquire()
				if err != nil {
					b.Fatal(err)
				}
				pool.Release(conv)
			}

			b.StopTimer()
			_ = pool.Close()
		})
	}
}

// BenchmarkConverterPoolContention benchmarks a pool of 4 shared by more
// goroutines than converters.
func BenchmarkConverterPoolContention(b *testing.B) {
	const poolSize = 4

	for _, g := range []int{4, 8, 16, 32} {
		b.Run(fmt.Sprintf("goroutines_%d", g), func(b *testing.B) {
			pool := NewConverterPool(poolSize, withRasterizer(&mockRasterizer{}))
			warmPool(b, pool, poolSize)

			b.ReportAllocs()
			b.ResetTimer()

			var wg sync.WaitGroup
			perG := max(b.N/g, 1)
			for range g {
				wg.Go(func() {
					for range perG {
						conv, err := pool.Acquire()
						if err != nil {
							return
						}
						pool.Release(conv)
					}
				})
			}
			wg.Wait()

			b.StopTimer()
			_ = pool.Close()
		})
	}
}

// warmPool creates every converter up front so the benchmark measures reuse.
func warmPool(b *testing.B, pool *ConverterPool, size int) {
	b.Helper()
	convs := make([]*Converter, size)
	for i := range size {
		conv, err := pool.Acquire()
		if err != nil {
			b.Fatal(err)
		}
		convs[i] = conv
	}
	for _, conv := range convs {
		pool.Release(conv)
	}
}
