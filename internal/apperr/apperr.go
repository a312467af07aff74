// Package apperr описывает ошибки, которыми сервисы обмениваются с HTTP-слоем.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Code — машинно-читаемый код ошибки.
type Code string

const (
	CodeNotFound                    Code = "NOT_FOUND"
	CodeInternalInconsistency       Code = "INTERNAL_INCONSISTENCY"
	CodeDownstreamUnavailable       Code = "DOWNSTREAM_UNAVAILABLE"
	CodeMalformedDownstreamResponse Code = "MALFORMED_DOWNSTREAM_RESPONSE"
	CodeValidationFailed            Code = "VALIDATION_FAILED"
	CodeAlreadyExists               Code = "ALREADY_EXISTS"
	CodeInternal                    Code = "INTERNAL_ERROR"
)

// Error — структурированная ошибка приложения.
type Error struct {
	Code      Code      `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	cause     error
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is сравнивает только коды, поэтому errors.Is(err, ErrNotFound) работает
// для любой ошибки NOT_FOUND независимо от сообщения.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Сентинелы для errors.Is.
var (
	ErrNotFound                    = &Error{Code: CodeNotFound}
	ErrInternalInconsistency       = &Error{Code: CodeInternalInconsistency}
	ErrDownstreamUnavailable       = &Error{Code: CodeDownstreamUnavailable}
	ErrMalformedDownstreamResponse = &Error{Code: CodeMalformedDownstreamResponse}
	ErrValidationFailed            = &Error{Code: CodeValidationFailed}
	ErrAlreadyExists               = &Error{Code: CodeAlreadyExists}
)

func newError(code Code, msg, details string, cause error) *Error {
	return &Error{
		Code:      code,
		Message:   msg,
		Details:   details,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NotFound — запись с указанным ключом отсутствует.
func NotFound(resource, field, value string) *Error {
	return newError(CodeNotFound,
		fmt.Sprintf("%s not found with the given input data %s : '%s'", resource, field, value), "", nil)
}

// InternalInconsistency — основная запись есть, а обязательная связанная отсутствует.
func InternalInconsistency(resource, field, value string) *Error {
	return newError(CodeInternalInconsistency,
		fmt.Sprintf("%s is missing for %s : '%s'", resource, field, value), "", nil)
}

// DownstreamUnavailable используется адаптерами только для логов и метрик,
// наружу такая ошибка не уходит.
func DownstreamUnavailable(service, reason string) *Error {
	return newError(CodeDownstreamUnavailable, service+" is unavailable", reason, nil)
}

func MalformedDownstreamResponse(service string, cause error) *Error {
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	return newError(CodeMalformedDownstreamResponse, service+" returned an undecodable body", details, cause)
}

func Validation(details string) *Error {
	return newError(CodeValidationFailed, "request validation failed", details, nil)
}

func AlreadyExists(msg string) *Error {
	return newError(CodeAlreadyExists, msg, "", nil)
}

// CodeOf возвращает код ошибки; всё, что не *Error, считается INTERNAL_ERROR.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// HTTPStatus сопоставляет ошибку HTTP-статусу ответа.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidationFailed, CodeAlreadyExists:
		return http.StatusBadRequest
	case CodeDownstreamUnavailable, CodeMalformedDownstreamResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message отдаёт текст, безопасный для клиента.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Details != "" && e.Code == CodeValidationFailed {
			return e.Details
		}
		return e.Message
	}
	return "internal server error"
}
