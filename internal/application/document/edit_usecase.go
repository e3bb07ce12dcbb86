package document

import (
	"fmt"

	"github.com/jhoicas/invoice-composer/internal/domain"
	"github.com/jhoicas/invoice-composer/internal/domain/entity"
)

// EditUseCase operaciones del editor sobre instantáneas inmutables: cada una recibe
// el documento actual y devuelve uno nuevo; la entrada nunca se modifica.
type EditUseCase struct {
	templates *Templates
}

// NewEditUseCase construye el caso de uso.
func NewEditUseCase(templates *Templates) *EditUseCase {
	return &EditUseCase{templates: templates}
}

// AddLineItem agrega una posición en blanco al final.
func (uc *EditUseCase) AddLineItem(doc *entity.Document) (*entity.Document, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	out := doc.Clone()
	out.LineItems = append(out.LineItems, NewLineItem())
	return out, nil
}

// RemoveLineItem quita la posición index. Un documento conserva siempre al menos una posición.
//
// Retorna:
//   - domain.ErrLastLineItem   si es la única posición.
//   - domain.ErrLineItemIndex  si el índice no existe.
func (uc *EditUseCase) RemoveLineItem(doc *entity.Document, index int) (*entity.Document, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := checkIndex(doc, index); err != nil {
		return nil, err
	}
	if len(doc.LineItems) <= 1 {
		return nil, domain.ErrLastLineItem
	}
	out := doc.Clone()
	out.LineItems = append(out.LineItems[:index], out.LineItems[index+1:]...)
	return out, nil
}

// UpdateLineItem reemplaza la posición index. El total recibido se descarta: siempre se recalcula.
func (uc *EditUseCase) UpdateLineItem(doc *entity.Document, index int, item entity.LineItem) (*entity.Document, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := checkIndex(doc, index); err != nil {
		return nil, err
	}
	if item.Quantity.IsNegative() || item.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: cantidad y precio no pueden ser negativos", domain.ErrInvalidInput)
	}
	out := doc.Clone()
	item.Total = nil
	out.LineItems[index] = item
	return out, nil
}

// SetKind cambia el tipo de documento. Es un reemplazo completo por la plantilla del
// tipo nuevo: los datos introducidos para el tipo anterior se descartan.
func (uc *EditUseCase) SetKind(kind entity.DocumentKind) (*entity.Document, error) {
	return uc.templates.ForKind(kind)
}

func checkIndex(doc *entity.Document, index int) error {
	if index < 0 || index >= len(doc.LineItems) {
		return fmt.Errorf("%w: %d (posiciones: %d)", domain.ErrLineItemIndex, index, len(doc.LineItems))
	}
	return nil
}
