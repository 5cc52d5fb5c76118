package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/rs/zerolog"
)

// 警告は処理を止めない。学習は続行し、通知だけをハンドラに渡す
var warnings = struct {
	sync.Mutex
	handler func(error)
	zerolog func(error) // 設定されていれば handler より優先
}{
	handler: defaultWarningHandler,
}

func defaultWarningHandler(w error) {
	log.Printf("linml-Warning: %v\n", w)
}

// SetWarningHandler は警告の出力先を差し替える。nil で標準ロガーに戻る。
//
//	errors.SetWarningHandler(func(w error) {}) // 警告を捨てる
func SetWarningHandler(handler func(w error)) {
	warnings.Lock()
	defer warnings.Unlock()
	if handler == nil {
		handler = defaultWarningHandler
	}
	warnings.handler = handler
}

// SetZerologWarnFunc は zerolog 経由の警告出力を登録する。nil で解除。
// 警告型は zerolog.LogObjectMarshaler を実装しているので EmbedObject で展開できる。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warnings.Lock()
	defer warnings.Unlock()
	warnings.zerolog = warnFunc
}

// Warn は警告を登録済みのハンドラに渡す
func Warn(w error) {
	warnings.Lock()
	defer warnings.Unlock()
	switch {
	case warnings.zerolog != nil:
		warnings.zerolog(w)
	case warnings.handler != nil:
		warnings.handler(w)
	}
}

// ConvergenceWarning は反復計算が収束判定を満たさずに終わったことを表す。
// 反復上限に達した場合と、損失が増加して打ち切った場合に使う
type ConvergenceWarning struct {
	Algorithm  string
	Iterations int
	Message    string
}

func (w *ConvergenceWarning) Error() string {
	if w.Message == "" {
		return fmt.Sprintf("%s failed to converge after %d iterations. Consider increasing max_iter or adjusting the learning rate.", w.Algorithm, w.Iterations)
	}
	return fmt.Sprintf("%s failed to converge after %d iterations: %s", w.Algorithm, w.Iterations, w.Message)
}

func (w *ConvergenceWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("type", "ConvergenceWarning").
		Str("algorithm", w.Algorithm).
		Int("iterations", w.Iterations).
		Str("message", w.Message)
}

// NewConvergenceWarning はスタックを付けずに警告を作る
func NewConvergenceWarning(algorithm string, iterations int, message string) *ConvergenceWarning {
	return &ConvergenceWarning{Algorithm: algorithm, Iterations: iterations, Message: message}
}
