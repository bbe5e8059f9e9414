// Package i18n holds the translation dictionaries served to clients.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// BaseLanguage is the reference locale; every other locale must carry its keys.
const BaseLanguage = "en"

// KeySettingsSaved is the acknowledgment shown after a successful save.
const KeySettingsSaved = "settingsSaved"

// Dictionary maps message keys to display strings for one language.
type Dictionary map[string]string

type localeFile struct {
	Language string            `yaml:"language"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog is an immutable set of dictionaries keyed by language code.
type Catalog struct {
	dictionaries map[string]Dictionary
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// LoadEmbedded loads the locales compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return LoadFromFS(embeddedLocales)
}

// LoadFromFS reads locales/<code>.yaml files from fsys.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	c := &Catalog{dictionaries: make(map[string]Dictionary, len(paths))}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", p, err)
		}

		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", p, err)
		}
		if err := c.add(p, file); err != nil {
			return nil, err
		}
	}

	base, ok := c.dictionaries[BaseLanguage]
	if !ok {
		return nil, fmt.Errorf("base language %q is not defined", BaseLanguage)
	}
	for code, dict := range c.dictionaries {
		for key := range base {
			if _, ok := dict[key]; !ok {
				return nil, fmt.Errorf("locale %q is missing key %q", code, key)
			}
		}
	}

	return c, nil
}

func (c *Catalog) add(p string, file localeFile) error {
	code := strings.TrimSpace(file.Language)
	if code == "" {
		return fmt.Errorf("locale %s: language is required", p)
	}
	if fromPath := strings.TrimSuffix(path.Base(p), path.Ext(p)); code != fromPath {
		return fmt.Errorf("locale %s: language %q must match file name %q", p, code, fromPath)
	}
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("locale %s: invalid language code %q: %w", p, code, err)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("locale %s: messages are required", p)
	}

	dict := make(Dictionary, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("locale %s: message key cannot be blank", p)
		}
		dict[key] = value
	}
	c.dictionaries[code] = dict
	return nil
}

// Lookup returns a copy of the dictionary for code. The boolean is false
// when the language is not supported.
func (c *Catalog) Lookup(code string) (Dictionary, bool) {
	dict, ok := c.dictionaries[code]
	if !ok {
		return nil, false
	}
	out := make(Dictionary, len(dict))
	for k, v := range dict {
		out[k] = v
	}
	return out, true
}

// Supports reports whether code has a dictionary.
func (c *Catalog) Supports(code string) bool {
	_, ok := c.dictionaries[code]
	return ok
}

// Codes lists the supported language codes in sorted order.
func (c *Catalog) Codes() []string {
	out := make([]string, 0, len(c.dictionaries))
	for code := range c.dictionaries {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Message returns one string, or "" when either the code or key is unknown.
func (c *Catalog) Message(code, key string) string {
	return c.dictionaries[code][key]
}
