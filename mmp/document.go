// Copyright © 2023-2026 B0ney
// Use of this file is governed by the license that can be found in LICENSE.

/*
Package mmp reads and writes LMMS project data.

A project file is either plain UTF-8 XML or a compressed container: a 4-byte
big-endian length of the serialized XML followed by a zlib stream. Both forms
decode to the same mutable element tree, which callers edit in place before
encoding it back.
*/
package mmp

import (
	"encoding/xml"
	"io"
)

// Attr is a single XML attribute. Attribute order is preserved so that
// re-encoding a project does not shuffle what LMMS wrote.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of the project tree. Character data is aggregated per
// element; LMMS stores all meaningful data in attributes, so interleaving of
// text and child elements is not preserved.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			return e.Attrs[i].Value, true
		}
	}
	return "", false
}

// SetAttr updates the named attribute in place, appending it if absent.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Document is a decoded project file.
type Document struct {
	Root *Element
}

// Walk visits every element in depth-first document order, parents before
// children.
func (d *Document) Walk(fn func(*Element)) {
	if d.Root == nil {
		return
	}
	walk(d.Root, fn)
}

func walk(e *Element, fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		walk(c, fn)
	}
}

// parse builds the element tree from an XML token stream.
func parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)

	var stack []*Element
	var root *Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			elem := &Element{
				Tag:   t.Name.Local,
				Attrs: convertAttrs(t.Attr),
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, elem)
			} else if root == nil {
				root = elem
			}
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}
	return &Document{Root: root}, nil
}

func convertAttrs(attrs []xml.Attr) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attr, len(attrs))
	for i, a := range attrs {
		out[i] = Attr{Name: a.Name.Local, Value: a.Value}
	}
	return out
}

// write emits the tree back as XML tokens.
func write(w io.Writer, d *Document) error {
	enc := xml.NewEncoder(w)
	if err := writeElement(enc, d.Root); err != nil {
		return err
	}
	return enc.Flush()
}

func writeElement(enc *xml.Encoder, e *Element) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Tag}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: a.Name},
			Value: a.Value,
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := writeElement(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(xml.EndElement{Name: start.Name})
}
