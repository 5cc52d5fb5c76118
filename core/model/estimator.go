package model

import "gonum.org/v1/gonum/mat"

// Trainer は学習可能なモデルのインターフェース
type Trainer interface {
	// Train はモデルを訓練データで学習させ、重みベクトルを確定する
	Train(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を N×1 の列として返す
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Model は Train と Predict の二つだけからなる推定器プロトコル
type Model interface {
	Trainer
	Predictor
}

// LinearModel は重みベクトルを公開する線形モデル
type LinearModel interface {
	Model
	// Weights は学習された重みのコピーを返す。バイアス項を学習した場合は先頭が切片
	Weights() []float64
	// FitBias はバイアス列を付加するかどうかを返す
	FitBias() bool
}
