// 带错误码的错误，调用方按 code 区分输入错误类型
package errorx

import (
	"fmt"

	"bincount/infra/errorx/errCode"

	"github.com/pkg/errors"
)

type Error struct {
	Code errCode.ErrCode
	Msg  string
	Err  error // 底层错误，可为空
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Msg, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New 生成带调用栈的错误码错误
func New(code errCode.ErrCode, msg string) error {
	return errors.WithStack(&Error{Code: code, Msg: msg})
}

func Newf(code errCode.ErrCode, format string, args ...any) error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap 保留原错误码，只补充上下文
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}

// WrapCode 给外部错误（io、yaml 等）挂上错误码，原错误仍可 errors.Is/As
func WrapCode(err error, code errCode.ErrCode, msg string) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(&Error{Code: code, Msg: msg, Err: err})
}

// CodeOf 穿透 Wrap/WithStack 取出错误码；非 errorx 错误返回 UNKNOWN
func CodeOf(err error) errCode.ErrCode {
	if err == nil {
		return errCode.UNKNOWN
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return errCode.UNKNOWN
}

func Is(err error, code errCode.ErrCode) bool {
	return err != nil && CodeOf(err) == code
}
