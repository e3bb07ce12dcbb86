package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnknownLocale el tag no corresponde a ningún idioma soportado.
var ErrUnknownLocale = errors.New("i18n: idioma no soportado")

// Labels tabla plana clave → texto para un idioma.
type Labels map[Key]string

// Get devuelve la etiqueta; una clave ausente es un defecto de datos y se muestra la propia clave.
func (l Labels) Get(k Key) string {
	if v, ok := l[k]; ok {
		return v
	}
	return string(k)
}

// Missing lista las claves de Keys que la tabla no define.
func (l Labels) Missing() []Key {
	var out []Key
	for _, k := range Keys {
		if _, ok := l[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}

func (l Labels) clone() Labels {
	out := make(Labels, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// Catalog resuelve tags BCP 47 ("de", "de-AT", "en-GB") a tablas de etiquetas.
// El primer idioma es el predeterminado. Es inmutable tras construirse.
type Catalog struct {
	tags    []language.Tag
	tables  []Labels
	matcher language.Matcher
}

// NewCatalog construye el catálogo con las tablas integradas (de, en).
func NewCatalog() *Catalog {
	return newCatalog(
		[]language.Tag{language.German, language.English},
		[]Labels{german, english},
	)
}

func newCatalog(tags []language.Tag, tables []Labels) *Catalog {
	return &Catalog{tags: tags, tables: tables, matcher: language.NewMatcher(tags)}
}

// Default devuelve el tag del idioma predeterminado.
func (c *Catalog) Default() string { return c.tags[0].String() }

// Supported devuelve los tags soportados en orden.
func (c *Catalog) Supported() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.String()
	}
	return out
}

// Match resuelve tag al idioma soportado más cercano ("de-AT" → "de").
// Un tag vacío resuelve al predeterminado.
func (c *Catalog) Match(tag string) (string, error) {
	idx, err := c.match(tag)
	if err != nil {
		return "", err
	}
	return c.tags[idx].String(), nil
}

// Lookup devuelve una copia de la tabla de etiquetas para tag.
func (c *Catalog) Lookup(tag string) (Labels, error) {
	idx, err := c.match(tag)
	if err != nil {
		return nil, err
	}
	return c.tables[idx].clone(), nil
}

// MatchAcceptLanguage elige el idioma a partir de una cabecera Accept-Language.
// ok es false si la cabecera está vacía, es inválida o no coincide con ningún idioma.
func (c *Catalog) MatchAcceptLanguage(header string) (tag string, ok bool) {
	if strings.TrimSpace(header) == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return c.tags[idx].String(), true
}

func (c *Catalog) match(tag string) (int, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return 0, nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLocale, tag)
	}
	_, idx, conf := c.matcher.Match(t)
	if conf == language.No {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLocale, tag)
	}
	return idx, nil
}

// WithOverrides devuelve un catálogo nuevo con las etiquetas sobreescritas.
// Un idioma que no existía se agrega partiendo de la tabla predeterminada, de modo
// que siempre define todas las claves.
func (c *Catalog) WithOverrides(o Overrides) (*Catalog, error) {
	tags := append([]language.Tag(nil), c.tags...)
	tables := make([]Labels, len(c.tables))
	for i, t := range c.tables {
		tables[i] = t.clone()
	}

	locales := make([]string, 0, len(o))
	for loc := range o {
		locales = append(locales, loc)
	}
	sort.Strings(locales)

	for _, loc := range locales {
		t, err := language.Parse(loc)
		if err != nil {
			return nil, fmt.Errorf("i18n: idioma inválido en sobreescrituras %q: %w", loc, err)
		}
		idx := -1
		for i, existing := range tags {
			if existing == t {
				idx = i
				break
			}
		}
		if idx < 0 {
			tags = append(tags, t)
			tables = append(tables, tables[0].clone())
			idx = len(tags) - 1
		}
		for k, v := range o[loc] {
			if !knownKey(k) {
				return nil, fmt.Errorf("i18n: clave desconocida %q en %q", k, loc)
			}
			tables[idx][k] = v
		}
	}
	return newCatalog(tags, tables), nil
}

func knownKey(k Key) bool {
	for _, known := range Keys {
		if k == known {
			return true
		}
	}
	return false
}
