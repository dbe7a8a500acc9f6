// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svg writes meander patterns as SVG documents.
//
// The document holds one stroked path for the meander band followed by the
// outer and inner frame shapes. Nothing is filled.
package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/meander"
)

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Ext is the file extension appended by Save.
const Ext = ".svg"

// Encode writes p as a standalone SVG document styled with st.
func Encode(w io.Writer, p meander.Pattern, st meander.Style) error {
	if err := st.Validate(); err != nil {
		return err
	}

	width, height := p.CanvasSize()
	root := xml.StartElement{Name: xml.Name{Local: "svg"}}
	addAttr(&root.Attr, "xmlns", Namespace)
	addAttr(&root.Attr, "version", "1.1")
	addAttr(&root.Attr, "width", num(width))
	addAttr(&root.Attr, "height", num(height))
	addAttr(&root.Attr, "viewBox", "0 0 "+num(width)+" "+num(height))

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.EncodeToken(root); err != nil {
		return fmt.Errorf("svg: %w", err)
	}

	path := element("path", st)
	addAttr(&path.Attr, "d", PathData(p.Path()))
	if err := emptyElement(enc, path); err != nil {
		return err
	}

	outer, inner := p.FrameShapes()
	for _, s := range []meander.Shape{outer, inner} {
		if err := emptyElement(enc, frame(s, st)); err != nil {
			return err
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	return nil
}

// Save writes p to basename + ".svg" and returns the file name.
func Save(basename string, p meander.Pattern, st meander.Style) (filename string, err error) {
	filename = basename + Ext
	fp, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("svg: %w", err)
	}
	defer func() {
		if cerr := fp.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("svg: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(fp)
	if err := Encode(bw, p, st); err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("svg: %w", err)
	}

	meander.Logger().Info("svg written", "file", filename)
	return filename, nil
}

// PathData returns the SVG path data for p. Relative segments keep their
// relative form so the document mirrors how the pattern was built.
func PathData(p *meander.Path) string {
	var sb strings.Builder
	for i, e := range p.Elements() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e := e.(type) {
		case meander.MoveTo:
			sb.WriteString("M" + pair(e.Point))
		case meander.LineTo:
			sb.WriteString("L" + pair(e.Point))
		case meander.LineBy:
			sb.WriteString("l" + pair(e.Offset))
		case meander.Close:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

// frame returns the element for a frame shape.
func frame(s meander.Shape, st meander.Style) xml.StartElement {
	switch s := s.(type) {
	case meander.Rect:
		se := element("rect", st)
		addAttr(&se.Attr, "x", num(s.X))
		addAttr(&se.Attr, "y", num(s.Y))
		addAttr(&se.Attr, "width", num(s.W))
		addAttr(&se.Attr, "height", num(s.H))
		return se
	case meander.Circle:
		se := element("circle", st)
		addAttr(&se.Attr, "cx", num(s.Center.X))
		addAttr(&se.Attr, "cy", num(s.Center.Y))
		addAttr(&se.Attr, "r", num(s.R))
		return se
	}
	panic(fmt.Sprintf("svg: unknown shape %T", s))
}

// element returns a start element carrying the shared stroke attributes.
func element(name string, st meander.Style) xml.StartElement {
	se := xml.StartElement{Name: xml.Name{Local: name}}
	addAttr(&se.Attr, "fill", "none")
	addAttr(&se.Attr, "stroke", st.Color)
	addAttr(&se.Attr, "stroke-width", num(st.Width))
	addAttr(&se.Attr, "stroke-opacity", num(st.Opacity))
	return se
}

func emptyElement(enc *xml.Encoder, se xml.StartElement) error {
	if err := enc.EncodeToken(se); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	if err := enc.EncodeToken(se.End()); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	return nil
}

func addAttr(attr *[]xml.Attr, name, val string) {
	*attr = append(*attr, xml.Attr{Name: xml.Name{Local: name}, Value: val})
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func pair(p meander.Point) string {
	return num(p.X) + "," + num(p.Y)
}
