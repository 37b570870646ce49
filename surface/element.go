// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/tdewolff/parse/v2"
	"golang.org/x/net/html"
)

// Element is a handle to one element of a [Surface]. Handles are
// cheap; two handles are the same element when their Nodes are equal.
type Element struct {
	Node *html.Node

	surface *Surface
}

// Surface returns the surface the element belongs to.
func (e *Element) Surface() *Surface {
	return e.surface
}

// Tag returns the element name, such as "circle".
func (e *Element) Tag() string {
	return e.Node.Data
}

// Append adds a new child element with the given tag and returns it.
func (e *Element) Append(tag string) *Element {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	e.Node.AppendChild(n)
	return e.surface.wrap(n)
}

// Parent returns the parent element, or nil for the container.
func (e *Element) Parent() *Element {
	if e.Node.Parent == nil {
		return nil
	}
	return e.surface.wrap(e.Node.Parent)
}

// Children returns the child elements.
func (e *Element) Children() []*Element {
	var els []*Element
	for c := e.Node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			els = append(els, e.surface.wrap(c))
		}
	}
	return els
}

// Select returns the first descendant matching the CSS selector, or nil.
func (e *Element) Select(selector string) *Element {
	ns := selectAll(e.Node, selector)
	if len(ns) == 0 {
		return nil
	}
	return e.surface.wrap(ns[0])
}

// SelectAll returns the descendants matching the CSS selector.
func (e *Element) SelectAll(selector string) []*Element {
	ns := selectAll(e.Node, selector)
	els := make([]*Element, len(ns))
	for i, n := range ns {
		els[i] = e.surface.wrap(n)
	}
	return els
}

// Remove detaches the element from its surface, cancelling the
// transitions and listeners of it and its descendants.
func (e *Element) Remove() {
	s := e.surface
	s.cancelTransitions(e.Node)
	walk(e.Node, func(n *html.Node) bool {
		delete(s.listeners, n)
		return true
	})
	if e.Node.Parent != nil {
		e.Node.Parent.RemoveChild(e.Node)
	}
}

// Attached reports whether the element is still part of its surface.
func (e *Element) Attached() bool {
	return contains(e.surface.container, e.Node)
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return attr(e.Node, "id")
}

// HasClass reports whether the class attribute includes class.
func (e *Element) HasClass(class string) bool {
	return hasClass(e.Node, class)
}

// SetAttr sets an attribute. Numbers are written in their shortest form.
func (e *Element) SetAttr(key string, val any) *Element {
	setAttr(e.Node, key, formatValue(val))
	return e
}

// Attr returns the value of an attribute, or "" if it is not set.
func (e *Element) Attr(key string) string {
	return attr(e.Node, key)
}

// HasAttr reports whether an attribute is set.
func (e *Element) HasAttr(key string) bool {
	return hasAttr(e.Node, key)
}

// AttrFloat returns the numeric value of an attribute, ignoring any
// unit, or 0 if it is not a number.
func (e *Element) AttrFloat(key string) float32 {
	v, _ := parseLength(e.Attr(key))
	return float32(v)
}

// SetText replaces the children of the element with the given text.
func (e *Element) SetText(text string) *Element {
	for c := e.Node.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.TextNode {
			e.Node.RemoveChild(c)
		}
		c = next
	}
	tn := &html.Node{Type: html.TextNode, Data: text}
	e.Node.InsertBefore(tn, e.Node.FirstChild)
	return e
}

// Text returns the text directly inside the element.
func (e *Element) Text() string {
	var b strings.Builder
	for c := e.Node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// declarations returns the parsed inline style.
func (e *Element) declarations() []*css.Declaration {
	st := strings.TrimSpace(e.Attr("style"))
	if st == "" {
		return nil
	}
	// the parser is strict about the final semicolon
	if !strings.HasSuffix(st, ";") {
		st += ";"
	}
	decls, err := parser.ParseDeclarations(st)
	if errors.Log(err) != nil {
		return nil
	}
	return decls
}

func (e *Element) setDeclarations(decls []*css.Declaration) {
	if len(decls) == 0 {
		removeAttr(e.Node, "style")
		return
	}
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.String()
	}
	setAttr(e.Node, "style", strings.Join(parts, " "))
}

// SetStyle sets one property of the inline style.
func (e *Element) SetStyle(prop string, val any) *Element {
	decls := e.declarations()
	sv := formatValue(val)
	for _, d := range decls {
		if d.Property == prop {
			d.Value = sv
			e.setDeclarations(decls)
			return e
		}
	}
	decls = append(decls, &css.Declaration{Property: prop, Value: sv})
	e.setDeclarations(decls)
	return e
}

// RemoveStyle removes one property from the inline style.
func (e *Element) RemoveStyle(prop string) *Element {
	decls := e.declarations()
	for i, d := range decls {
		if d.Property == prop {
			decls = append(decls[:i], decls[i+1:]...)
			break
		}
	}
	e.setDeclarations(decls)
	return e
}

// Style returns the value of one property of the inline style.
func (e *Element) Style(prop string) string {
	for _, d := range e.declarations() {
		if d.Property == prop {
			return d.Value
		}
	}
	return ""
}

// ComputedStyle returns the value of a property from the inline style
// of the element or its nearest ancestor that sets it.
func (e *Element) ComputedStyle(prop string) string {
	for el := e; el != nil; el = el.Parent() {
		if v := el.Style(prop); v != "" {
			return v
		}
	}
	return ""
}

// Opacity returns the opacity of the element, from its opacity
// attribute or style, or 1 if neither is set.
func (e *Element) Opacity() float32 {
	if v := e.Style("opacity"); v != "" {
		f, _ := parseLength(v)
		return float32(f)
	}
	if e.HasAttr("opacity") {
		return e.AttrFloat("opacity")
	}
	return 1
}

// formatValue formats an attribute or style value.
func formatValue(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(val)
}

// parseLength parses a CSS number with an optional unit such as
// "12px" or ".8rem", returning the number and the unit.
func parseLength(s string) (float64, string) {
	b := []byte(strings.TrimSpace(s))
	num, unit := parse.Dimension(b)
	if num == 0 {
		return 0, ""
	}
	v, err := strconv.ParseFloat(string(b[:num]), 64)
	if err != nil {
		return 0, ""
	}
	return v, string(b[num : num+unit])
}
