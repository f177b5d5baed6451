package models

import (
	"errors"
)

// Sentinel errors
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInput indicates a required parameter is missing or empty
	ErrInput = errors.New("input error")

	// ErrTransport indicates a connection, timeout, TLS or non-2xx failure
	ErrTransport = errors.New("transport error")

	// ErrVendor indicates the vendor answered with a non-zero err_no
	ErrVendor = errors.New("vendor error")

	// ErrFormat indicates the vendor payload could not be parsed or mapped
	ErrFormat = errors.New("format error")

	// ErrToken indicates the access token could not be obtained
	ErrToken = errors.New("token error")
)

// Labels prefixed to failure messages in the result envelope.
const (
	LabelNetwork    = "网络请求错误"
	LabelProcessing = "处理错误"
	LabelAPI        = "API错误"
	LabelFormat     = "数据格式化错误"
	LabelToken      = "获取访问令牌失败"
	LabelJSON       = "JSON解析错误"
	LabelExecution  = "执行错误"
	LabelMissing    = "缺少必需参数"
	UnknownVendor   = "未知错误"
)

// QueryError carries the taxonomy kind of a failed query next to its cause.
type QueryError struct {
	Kind  error
	Label string
	Err   error

	// VendorCode is the err_no reported by the vendor, set for ErrVendor only.
	VendorCode int64
}

func NewQueryError(kind error, label string, err error) *QueryError {
	return &QueryError{
		Kind:  kind,
		Label: label,
		Err:   err,
	}
}

func (e *QueryError) Error() string {
	if e.Err == nil {
		return e.Label
	}
	if e.Label == "" {
		return e.Err.Error()
	}

	return e.Label + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

// MissingParam reports a required boundary field that is absent or empty.
func MissingParam(name string) *QueryError {
	return NewQueryError(ErrInput, LabelMissing, errors.New(name))
}
