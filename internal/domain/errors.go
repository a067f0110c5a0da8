package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los handlers HTTP los traducen a códigos de estado; los casos de uso
// los retornan tal cual o envueltos con fmt.Errorf("...: %w", err).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrReferenceNotFound  = errors.New("referencia no encontrada")
	ErrInactiveReference  = errors.New("referencia inactiva")
	ErrInvalidTransition  = errors.New("transición de estado inválida")
	ErrImmutableField     = errors.New("campo inmutable")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrFutureDate         = errors.New("la fecha no puede ser futura")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
)
