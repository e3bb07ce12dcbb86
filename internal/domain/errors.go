package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidDocument   = errors.New("documento inválido")
	ErrUnknownKind       = errors.New("tipo de documento desconocido")
	ErrLastLineItem      = errors.New("el documento debe conservar al menos una posición")
	ErrLineItemIndex     = errors.New("índice de posición fuera de rango")
	ErrUnsupportedFormat = errors.New("formato de salida no soportado")
)
