// Package locale holds the Arabic and English dictionaries and picks one per
// request.
package locale

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"reflect"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	Arabic  = "ar"
	English = "en"
)

// Supported lists the languages every catalog must provide.
var Supported = []string{Arabic, English}

//go:embed dict
var dictFS embed.FS

// Catalog maps a language tag to its dictionary. It is read-only once loaded.
type Catalog[T any] struct {
	def   string
	dicts map[string]*T
}

// Load decodes dir/<tag>.yaml for every supported tag. Unknown keys and empty
// values are load errors, so a loaded catalog always has every key filled.
func Load[T any](fsys fs.FS, dir, defaultTag string) (*Catalog[T], error) {
	c := &Catalog[T]{dicts: make(map[string]*T, len(Supported))}
	for _, tag := range Supported {
		raw, err := fs.ReadFile(fsys, path.Join(dir, tag+".yaml"))
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", tag, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		dict := new(T)
		if err := dec.Decode(dict); err != nil {
			return nil, fmt.Errorf("locale %s/%s: %w", dir, tag, err)
		}
		if missing := emptyKeys(reflect.ValueOf(dict).Elem(), ""); len(missing) > 0 {
			return nil, fmt.Errorf("locale %s/%s: empty keys %s", dir, tag, strings.Join(missing, ", "))
		}
		c.dicts[tag] = dict
	}

	def, ok := Normalize(defaultTag)
	if !ok {
		return nil, fmt.Errorf("locale: unsupported default language %q", defaultTag)
	}
	c.def = def
	return c, nil
}

// LoadExplorer loads the embedded explorer dictionaries.
func LoadExplorer(defaultTag string) (*Catalog[Explorer], error) {
	return Load[Explorer](dictFS, "dict/explorer", defaultTag)
}

// LoadWebsite loads the embedded website dictionaries.
func LoadWebsite(defaultTag string) (*Catalog[Website], error) {
	return Load[Website](dictFS, "dict/website", defaultTag)
}

func (c *Catalog[T]) Default() string {
	return c.def
}

// Lookup returns the dictionary for tag and the tag actually used. Unknown
// tags get the default dictionary.
func (c *Catalog[T]) Lookup(tag string) (*T, string) {
	if t, ok := Normalize(tag); ok {
		return c.dicts[t], t
	}
	return c.dicts[c.def], c.def
}

// Normalize reduces a BCP 47 tag to a supported base language: "AR" and
// "ar-SY" give "ar", "en-US" gives "en".
func Normalize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf != language.Exact {
		return "", false
	}
	for _, s := range Supported {
		if base.String() == s {
			return s, true
		}
	}
	return "", false
}

// Resolve applies the precedence query > cookie > default. The first
// non-empty source wins even if it names an unsupported language, in which
// case the default is used.
func Resolve(query, cookie, defaultTag string) string {
	for _, raw := range []string{query, cookie} {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if t, ok := Normalize(raw); ok {
			return t
		}
		return defaultTag
	}
	return defaultTag
}

// Dir is the text direction of tag.
func Dir(tag string) string {
	if tag == Arabic {
		return "rtl"
	}
	return "ltr"
}

// emptyKeys lists the yaml paths of empty strings, walking nested structs
// and slices.
func emptyKeys(v reflect.Value, prefix string) []string {
	var out []string
	switch v.Kind() {
	case reflect.String:
		if v.String() == "" {
			out = append(out, prefix)
		}
	case reflect.Slice:
		if v.Len() == 0 {
			out = append(out, prefix)
		}
		for i := 0; i < v.Len(); i++ {
			out = append(out, emptyKeys(v.Index(i), fmt.Sprintf("%s[%d]", prefix, i))...)
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
			if prefix != "" {
				name = prefix + "." + name
			}
			out = append(out, emptyKeys(v.Field(i), name)...)
		}
	}
	return out
}
