package composition

import "github.com/jhoicas/invoice-composer/pkg/i18n"

// Field fila etiqueta/valor ya resuelta, lista para dibujar.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// fieldSpec fila condicional declarada: (condición, clave de etiqueta, valor).
// label, si no está vacío, reemplaza a la etiqueta de la clave.
type fieldSpec struct {
	when  bool
	key   i18n.Key
	label string
	value string
}

// present fila opcional: se muestra solo si el valor está informado.
func present(key i18n.Key, value string) fieldSpec {
	return fieldSpec{when: value != "", key: key, value: value}
}

// always fila obligatoria: se muestra aunque el valor esté vacío.
func always(key i18n.Key, value string) fieldSpec {
	return fieldSpec{when: true, key: key, value: value}
}

// resolve devuelve la fila y si debe mostrarse.
func (s fieldSpec) resolve(labels i18n.Labels) (Field, bool) {
	if !s.when {
		return Field{}, false
	}
	label := s.label
	if label == "" {
		label = labels.Get(s.key)
	}
	return Field{Label: label, Value: s.value}, true
}

// resolveFields evalúa las declaraciones en orden; las filas cuya condición es falsa
// no producen salida (ni siquiera una fila vacía).
func resolveFields(labels i18n.Labels, specs []fieldSpec) []Field {
	out := make([]Field, 0, len(specs))
	for _, s := range specs {
		if f, ok := s.resolve(labels); ok {
			out = append(out, f)
		}
	}
	return out
}
