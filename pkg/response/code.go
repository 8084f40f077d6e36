package response

// 业务状态码
const (
	CodeSuccess = 0
	CodeError   = 1

	// 认证模块错误 100xx
	ErrUserExists      = 10001
	ErrAuthFailed      = 10002
	ErrTokenInvalid    = 10003
	ErrNoPermission    = 10004
	ErrUnauthenticated = 10005

	// 内容模块错误 200xx
	ErrNotFound      = 20001
	ErrAlreadyExists = 20002
	ErrDomainRule    = 20003

	// 系统错误 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
)
