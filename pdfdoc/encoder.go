// Package pdfdoc assembles minimal PDF 1.4 documents that show lines of text.
//
// A document is built in one pass: the lines become a content stream, the
// stream is wrapped with a fixed set of indirect objects, and the objects are
// written after a header while their byte offsets are recorded for the
// cross-reference table and trailer.
package pdfdoc

import (
	"bytes"
	"fmt"
)

// Header opens every document.
const Header = "%PDF-1.4\n"

// Output is an assembled document.
type Output struct {
	// Data is the complete file.
	Data []byte

	// Offsets[i] is the byte position in Data where object i+1 starts.
	Offsets []int

	// StartXRef is the byte position of the "xref" keyword.
	StartXRef int
}

type encoder struct {
	bytes.Buffer

	offsets   []int
	startxref int
}

// Assemble writes the header and objects, in order, followed by the
// cross-reference table and trailer. Object 1 is the root. Each object's
// offset is taken immediately before it is written, so the table is exact as
// long as objects are already in their final byte form.
func Assemble(objects []string) *Output {
	e := new(encoder)
	e.encode(objects)
	return &Output{
		Data:      e.Bytes(),
		Offsets:   e.offsets,
		StartXRef: e.startxref,
	}
}

func (e *encoder) encode(objects []string) {
	e.Reset()
	e.offsets = nil

	e.WriteString(Header)
	for _, obj := range objects {
		e.offsets = append(e.offsets, e.Len())
		e.WriteString(obj)
	}

	e.startxref = e.Len()
	size := len(objects) + 1
	e.WriteString("xref\n")
	fmt.Fprintf(e, "0 %d\n", size)
	e.WriteString("0000000000 65535 f \n")
	for _, offset := range e.offsets {
		fmt.Fprintf(e, "%010d 00000 n \n", offset)
	}

	e.WriteString("trailer\n")
	fmt.Fprintf(e, "<< /Root %d 0 R /Size %d >>\n", catalogObj, size)
	e.WriteString("startxref\n")
	fmt.Fprintf(e, "%d\n", e.startxref)
	e.WriteString("%%EOF")
}
