package presentation

import (
	"sort"
	"strings"
)

// StyleTarget is the style-application boundary: a handle onto which derived
// CSS variables and class tokens are written. Keeping the side effect behind
// this interface keeps the derivation itself pure and testable.
type StyleTarget interface {
	SetVariable(name, value string)
	AddClass(token string)
}

// Apply writes the bundle onto the target, one property at a time.
// Variables are applied in sorted order so repeated applications produce
// identical write sequences.
func Apply(b Bundle, target StyleTarget) {
	if target == nil {
		return
	}

	names := make([]string, 0, len(b.CSSVariables))
	for name := range b.CSSVariables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		target.SetVariable(name, b.CSSVariables[name])
	}
	for _, token := range b.ClassTokens {
		target.AddClass(token)
	}
}

// StyleSheet is a StyleTarget that accumulates the bundle into servable text:
// a :root stylesheet for the CSS variables and a class attribute string for
// the tokens. It is what the dashboard's device endpoints hand to the page.
type StyleSheet struct {
	variables []string
	classes   []string
	seen      map[string]bool
}

// NewStyleSheet creates an empty stylesheet target.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{seen: make(map[string]bool)}
}

// SetVariable records one CSS custom property.
func (s *StyleSheet) SetVariable(name, value string) {
	s.variables = append(s.variables, "\t"+name+": "+value+";")
}

// AddClass records one class token, dropping duplicates.
func (s *StyleSheet) AddClass(token string) {
	if token == "" || s.seen[token] {
		return
	}
	s.seen[token] = true
	s.classes = append(s.classes, token)
}

// Render returns the accumulated variables as a :root rule.
func (s *StyleSheet) Render() string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, line := range s.variables {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// ClassAttr returns the accumulated tokens as a space-joined class attribute
// value, in insertion order.
func (s *StyleSheet) ClassAttr() string {
	return strings.Join(s.classes, " ")
}
