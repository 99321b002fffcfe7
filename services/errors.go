// file: services/errors.go
package services

// ErrorKind 工作流错误分类
type ErrorKind string

const (
	KindAuthenticationRequired ErrorKind = "authentication_required"
	KindUnauthorized           ErrorKind = "unauthorized"
	KindValidationFailed       ErrorKind = "validation_failed"
	KindConflict               ErrorKind = "conflict"
	KindNotFound               ErrorKind = "not_found"
	KindUpstreamFailure        ErrorKind = "upstream_failure"
)

// WorkflowError 所有 service 的失败都以该类型返回，绝不向 controller 抛异常。
// Code 直接作为响应体里的业务码；Fields 仅校验失败时携带逐字段错误；
// Err 保留内部错误用于服务端日志，不会出现在响应里。
type WorkflowError struct {
	Kind   ErrorKind
	Code   int
	Msg    string
	Fields map[string]string
	Err    error
}

func (e *WorkflowError) Error() string {
	return e.Msg
}

func validationError(msg string, fields map[string]string) *WorkflowError {
	return &WorkflowError{Kind: KindValidationFailed, Code: 1001, Msg: msg, Fields: fields}
}

func conflictError(code int, msg string) *WorkflowError {
	return &WorkflowError{Kind: KindConflict, Code: code, Msg: msg}
}

func notFoundError(msg string) *WorkflowError {
	return &WorkflowError{Kind: KindNotFound, Code: 4004, Msg: msg}
}

func unauthorizedError(msg string) *WorkflowError {
	return &WorkflowError{Kind: KindUnauthorized, Code: 4003, Msg: msg}
}

// upstreamError 对外只暴露统一话术，内部错误由 controller 记日志
func upstreamError(err error) *WorkflowError {
	return &WorkflowError{Kind: KindUpstreamFailure, Code: 5000, Msg: "服务器开小差了，请稍后重试", Err: err}
}
