// Package presentation applies stored accessibility preferences to a page
// and keeps every open tab of an origin in step through a shared cache.
package presentation

import "sort"

// Root class markers toggled by preferences.
const (
	ClassDark         = "dark"
	ClassContrast     = "contrast"
	ClassReduceMotion = "reduce-motion"
)

// Document is the presentation state of one page: the root element's class
// list, its base font size and its declared language.
type Document struct {
	classes  map[string]struct{}
	fontSize string
	lang     string
}

func NewDocument() *Document {
	return &Document{classes: make(map[string]struct{})}
}

func (d *Document) HasClass(name string) bool {
	_, ok := d.classes[name]
	return ok
}

func (d *Document) setClass(name string, on bool) {
	if on {
		d.classes[name] = struct{}{}
	} else {
		delete(d.classes, name)
	}
}

// FontSize returns the base size as a CSS length, or "" if never set.
func (d *Document) FontSize() string { return d.fontSize }

// Lang returns the declared language attribute.
func (d *Document) Lang() string { return d.lang }

// State is a comparable snapshot of a Document.
type State struct {
	Classes  []string `json:"classes"`
	FontSize string   `json:"fontSize"`
	Lang     string   `json:"lang"`
}

// Snapshot copies the current state with classes in sorted order.
func (d *Document) Snapshot() State {
	classes := make([]string, 0, len(d.classes))
	for name := range d.classes {
		classes = append(classes, name)
	}
	sort.Strings(classes)
	return State{
		Classes:  classes,
		FontSize: d.fontSize,
		Lang:     d.lang,
	}
}
