package httpapi

// Result 画面側と取り決めた共通レスポンス封筒
// - code: 2000 = 成功, -1 = 失敗
// - type: 'success' | 'error'
// - message: 利用者向けメッセージ
// - result: 本体
type Result[T any] struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Result  T      `json:"result"`
}

const (
	ResultSuccess = 2000
	ResultError   = -1
)

func Ok[T any](result T) Result[T] {
	return Result[T]{Code: ResultSuccess, Type: "success", Message: "ok", Result: result}
}

func Fail(message string) Result[any] {
	return Result[any]{Code: ResultError, Type: "error", Message: message, Result: nil}
}
