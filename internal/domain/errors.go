package domain

import "fmt"

// Kind clasifica un error de dominio. Los handlers HTTP mapean Kind a status
// y código de wire en un único lugar; el texto del mensaje puede cambiar sin
// romper el mapeo (nunca se hace matching sobre strings de error).
type Kind string

const (
	KindUnauthorized  Kind = "UNAUTHORIZED"
	KindMissingRole   Kind = "MISSING_ROLE"
	KindForbidden     Kind = "FORBIDDEN"
	KindTokenExpired  Kind = "TOKEN_EXPIRED"
	KindTokenInvalid  Kind = "INVALID_TOKEN"
	KindValidation    Kind = "VALIDATION_ERROR"
	KindNotFound      Kind = "NOT_FOUND"
	KindAlreadyExists Kind = "ALREADY_EXISTS"
	KindConflict      Kind = "CONFLICT"
	KindInternal      Kind = "INTERNAL_ERROR"
)

// Error error de dominio etiquetado. Field señala el campo de entrada
// implicado (ej. "email" en credenciales inválidas) sin cambiar el mensaje.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Err     error // causa interna, no se expone al cliente
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap expone la causa para errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// E construye un error de dominio.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// EField construye un error de dominio con campo implicado.
func EField(kind Kind, message, field string) *Error {
	return &Error{Kind: kind, Message: message, Field: field}
}

// Wrap construye un error de dominio con causa interna.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Atajos para los casos más comunes.
func Unauthorized(message string) *Error  { return E(KindUnauthorized, message) }
func Forbidden(message string) *Error     { return E(KindForbidden, message) }
func NotFound(message string) *Error      { return E(KindNotFound, message) }
func AlreadyExists(message string) *Error { return E(KindAlreadyExists, message) }
func Validation(message string) *Error    { return E(KindValidation, message) }
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "error interno", Err: err}
}
