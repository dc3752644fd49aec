package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica un error de dominio. El conjunto es cerrado: la capa HTTP hace un switch exhaustivo.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBadRequest
	KindUnauthorized
	KindForbidden
)

// String devuelve el nombre estable del tipo (se usa en logs y métricas).
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error es el resultado de fallo que devuelven los servicios. Inmutable una vez construido.
// El mensaje se entrega tal cual al cliente; cause solo se usa para diagnóstico.
type Error struct {
	kind    Kind
	message string
	cause   error
}

func (e *Error) Error() string { return e.message }

// Kind devuelve la clasificación del error.
func (e *Error) Kind() Kind { return e.kind }

// Unwrap expone la causa original para errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.cause }

// NotFound el recurso solicitado no existe.
func NotFound(format string, args ...any) *Error {
	return &Error{kind: KindNotFound, message: fmt.Sprintf(format, args...)}
}

// BadRequest entrada inválida o duplicada.
func BadRequest(format string, args ...any) *Error {
	return &Error{kind: KindBadRequest, message: fmt.Sprintf(format, args...)}
}

// Unauthorized falta autenticación o es inválida.
func Unauthorized(format string, args ...any) *Error {
	return &Error{kind: KindUnauthorized, message: fmt.Sprintf(format, args...)}
}

// Forbidden el usuario autenticado no tiene permiso.
func Forbidden(format string, args ...any) *Error {
	return &Error{kind: KindForbidden, message: fmt.Sprintf(format, args...)}
}

// Internal fallo de persistencia o no clasificado. cause puede ser nil.
func Internal(cause error, format string, args ...any) *Error {
	return &Error{kind: KindInternal, message: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf clasifica cualquier error; lo que no es *Error cae en KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.kind
	}
	return KindInternal
}

// IsNotFound atajo para tests y llamadores que solo distinguen inexistencia.
func IsNotFound(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.kind == KindNotFound
}
