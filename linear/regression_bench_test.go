package linear

import (
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linml/pkg/errors"
)

// createBenchmarkData はベンチマーク用のデータを生成する
func createBenchmarkData(rows, cols int) (*mat.Dense, *mat.Dense) {
	// シードを固定して再現性を確保
	rng := rand.New(rand.NewPCG(42, 42))

	X := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			X.Set(i, j, rng.Float64()*2.0-1.0)
		}
	}

	// y = 1 + X·w + 小さなノイズ
	y := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		sum := 1.0
		for j := 0; j < cols; j++ {
			sum += X.At(i, j) * float64(j+1) * 0.5
		}
		sum += (rng.Float64() - 0.5) * 0.1
		y.Set(i, 0, sum)
	}

	return X, y
}

var benchSizes = []struct {
	name string
	rows int
	cols int
}{
	{"Small_100x10", 100, 10},
	{"Medium_1000x10", 1000, 10}, // 並列処理の閾値
	{"Medium_2000x10", 2000, 10},
	{"Large_10000x20", 10000, 20},
	{"XLarge_50000x50", 50000, 50},
}

func BenchmarkLinearRegressionTrain(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			X, y := createBenchmarkData(size.rows, size.cols)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := NewLinearRegression().Train(X, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRidgeTrain(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			X, y := createBenchmarkData(size.rows, size.cols)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := NewRidge(WithLambda(0.5)).Train(X, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLogisticRegressionTrain(b *testing.B) {
	errors.SetWarningHandler(func(error) {})
	defer errors.SetWarningHandler(nil)

	X, yCont := createBenchmarkData(2000, 10)
	y := mat.NewDense(2000, 1, nil)
	for i := 0; i < 2000; i++ {
		if yCont.At(i, 0) > 1 {
			y.Set(i, 0, 1)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lr := NewLogisticRegression(WithSeed(1), WithMaxIter(100), WithLearningRate(0.1))
		if err := lr.Train(X, y); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAugment はバイアス列付加のみのベンチマーク
func BenchmarkAugment(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			X, _ := createBenchmarkData(size.rows, size.cols)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = augment(X, true)
			}
		})
	}
}
