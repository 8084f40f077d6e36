package apperr

import "errors"

// 错误分类。具体的业务错误通过 New 包装这些分类，调用方可以用 errors.Is 判断任意一级。
var (
	ErrUnauthenticated = errors.New("User not authenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrAlreadyExists   = errors.New("already exists")
	ErrDomainRule      = errors.New("domain rule violated")
	ErrInvalidInput    = errors.New("invalid input")
)

// Error 带用户可见信息的业务错误
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// New 创建属于 kind 分类的业务错误
func New(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Kind 返回错误所属分类，未知错误返回 nil
func Kind(err error) error {
	for _, k := range []error{ErrUnauthenticated, ErrForbidden, ErrAlreadyExists, ErrDomainRule, ErrInvalidInput} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
