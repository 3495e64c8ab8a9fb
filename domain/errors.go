package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error. Message is user-facing and is
// returned verbatim in {success:false, message} payloads.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors. Messages mirror the strings the service has always
// shown to users.
var (
	ErrUserNotFound       = NewError(ErrCodeNotFound, "사용자를 찾을 수 없습니다.")
	ErrProjectNotFound    = NewError(ErrCodeNotFound, "프로젝트를 찾을 수 없습니다.")
	ErrTaskNotFound       = NewError(ErrCodeNotFound, "작업을 찾을 수 없습니다.")
	ErrCommentNotFound    = NewError(ErrCodeNotFound, "댓글이 존재하지 않습니다.")
	ErrCommentTaskGone    = NewError(ErrCodeNotFound, "관련 작업을 찾을 수 없습니다.")
	ErrSessionNotFound    = NewError(ErrCodeUnauthorized, "세션이 만료되었습니다.")
	ErrNotMember          = NewError(ErrCodeForbidden, "권한이 없습니다.")
	ErrNoEditRight        = NewError(ErrCodeForbidden, "수정할 권한이 없습니다.")
	ErrNoDeleteRight      = NewError(ErrCodeForbidden, "삭제할 권한이 없습니다.")
	ErrFieldsRequired     = NewError(ErrCodeInvalid, "모든 필드를 입력해주세요.")
	ErrNoStatusValue      = NewError(ErrCodeInvalid, "새로운 상태 값이 없습니다.")
	ErrNoCommentContent   = NewError(ErrCodeInvalid, "댓글 내용이 없습니다.")
	ErrAlreadyMember      = NewError(ErrCodeConflict, "이미 프로젝트 멤버입니다.")
	ErrUsernameTaken      = NewError(ErrCodeConflict, "이미 사용 중인 사용자 이름입니다.")
	ErrInvalidCredentials = NewError(ErrCodeUnauthorized, "사용자 이름 또는 비밀번호가 올바르지 않습니다.")
	ErrInvalidPayload     = NewError(ErrCodeInvalid, "잘못된 요청입니다.")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
