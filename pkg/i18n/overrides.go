package i18n

import (
	"fmt"

	"github.com/spf13/viper"
)

// Overrides etiquetas a sobreescribir por idioma: {"de": {"discount": "Nachlass"}}.
type Overrides map[string]Labels

// LoadOverrides lee un archivo (yaml, json, toml… según extensión) con la forma
//
//	de:
//	  discount: Nachlass
//	en:
//	  discount: Reduction
//
// Viper pasa las claves a minúsculas; las claves del catálogo ya son snake_case.
func LoadOverrides(path string) (Overrides, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("i18n: leer sobreescrituras %s: %w", path, err)
	}

	out := make(Overrides)
	for loc := range v.AllSettings() {
		entries := v.GetStringMapString(loc)
		if len(entries) == 0 {
			continue
		}
		labels := make(Labels, len(entries))
		for k, text := range entries {
			labels[Key(k)] = text
		}
		out[loc] = labels
	}
	return out, nil
}

// LoadCatalog catálogo integrado más las sobreescrituras de path (si se indica).
func LoadCatalog(path string) (*Catalog, error) {
	c := NewCatalog()
	if path == "" {
		return c, nil
	}
	o, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	return c.WithOverrides(o)
}
