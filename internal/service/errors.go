package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("invalid parameter")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("only the owner may do this")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("account is inactive")
	ErrUsernameExist      = errors.New("username already taken")
	ErrPasswordIncorrect  = errors.New("invalid username or password")
	ErrPostNotFound       = errors.New("post not found")
	ErrPostNotPublished   = errors.New("post is not published")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrTagNotFound        = errors.New("tag not found")
	ErrFollowSelf         = errors.New("cannot follow yourself")
	ErrToggleConflict     = errors.New("concurrent toggle, please retry")
	ErrFileNotSupported   = errors.New("unsupported file type")
	ErrActivationNotFound = errors.New("activation link is invalid")
	ErrActivationExpired  = errors.New("recovery period is over, please sign up again")
	UnExpectedError       = errors.New("internal error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrUnauthorized:       Unauthorized,
	ErrForbidden:          Forbidden,
	ErrUserNotFound:       NotFound,
	ErrUserInactive:       Unauthorized,
	ErrUsernameExist:      BadRequest,
	ErrPasswordIncorrect:  Unauthorized,
	ErrPostNotFound:       NotFound,
	ErrPostNotPublished:   BadRequest,
	ErrCommentNotFound:    NotFound,
	ErrTagNotFound:        NotFound,
	ErrFollowSelf:         BadRequest,
	ErrToggleConflict:     Conflict,
	ErrFileNotSupported:   BadRequest,
	ErrActivationNotFound: NotFound,
	ErrActivationExpired:  BadRequest,
	UnExpectedError:       InternalServerError,
}

// CodeOf 查找业务错误对应的状态码，支持被 %w 包装的错误
func CodeOf(err error) (int, bool) {
	if code, ok := ErrorMap[err]; ok {
		return code, true
	}
	for known, code := range ErrorMap {
		if errors.Is(err, known) {
			return code, true
		}
	}
	return 0, false
}
