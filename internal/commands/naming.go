package commands

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/plotdoc/internal/project"
)

// titleCase capitalizes each word of s for user-facing text.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// kindLabel returns the display name of a kind, "Item" for unknown ones.
func kindLabel(kind project.Kind) string {
	if kind == "" {
		return "Item"
	}
	return titleCase(string(kind))
}

// defaultName returns "New <Kind> N" where N starts at one more than the
// number of siblings of the same kind and is bumped until the name is free.
func defaultName(parent project.Collection, kind project.Kind) string {
	taken := make(map[string]bool)
	n := 1
	for _, sib := range parent.Items() {
		taken[sib.Name()] = true
		if sib.Kind() == kind {
			n++
		}
	}
	prefix := "New " + kindLabel(kind)
	for {
		name := fmt.Sprintf("%s %d", prefix, n)
		if !taken[name] {
			return name
		}
		n++
	}
}

// quote formats a name for descriptions and messages.
func quote(name string) string {
	return "'" + name + "'"
}
