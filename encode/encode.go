package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/oval/ir"
	"github.com/signadot/oval/token"
)

type EncState struct {
	depth, indent int
	wire          bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node followed by a newline.  Invalid trees are rejected
// with the error from [ir.Validate].
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := ir.Validate(node); err != nil {
		return err
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.AtomType:
		return writeString(w, es.color(ir.AtomType, ValueColor, token.Quote(node.Atom)))
	case ir.ElementType:
		return encodeElement(node, w, es)
	case ir.ListType:
		if err := writeString(w, es.color(ir.ListType, SepColor, "(")); err != nil {
			return err
		}
		if err := encodeValues(node, w, es, true); err != nil {
			return err
		}
		return writeString(w, es.color(ir.ListType, SepColor, ")"))
	default:
		return fmt.Errorf("%w: unknown type %d", ir.ErrInvalidNode, node.Type)
	}
}

func encodeElement(node *ir.Node, w io.Writer, es *EncState) error {
	open := es.color(ir.ElementType, SepColor, "(")
	if err := writeString(w, open); err != nil {
		return err
	}
	if err := encodeHeader(node, w, es); err != nil {
		return err
	}
	if err := encodeValues(node, w, es, false); err != nil {
		return err
	}
	return writeString(w, es.color(ir.ElementType, SepColor, ")"))
}

func encodeHeader(node *ir.Node, w io.Writer, es *EncState) error {
	name := es.color(ir.ElementType, NameColor, quoteName(node.Name))
	if len(node.Attrs) == 0 {
		return writeString(w, name)
	}
	parts := make([]string, 0, 1+2*len(node.Attrs))
	parts = append(parts, name)
	for _, a := range node.Attrs {
		parts = append(parts, es.color(ir.ElementType, MarkerColor, a.Marker()))
		if a.Value != nil {
			parts = append(parts, es.color(ir.ElementType, ValueColor, token.Quote(a.Value.Atom)))
		}
	}
	sep := es.color(ir.ElementType, SepColor, "(")
	end := es.color(ir.ElementType, SepColor, ")")
	return writeString(w, sep+strings.Join(parts, " ")+end)
}

func quoteName(v string) string {
	if token.NeedsQuote(v) {
		return token.Quote(v)
	}
	return v
}

// encodeValues writes the children of node.  Children which are all atoms
// stay on the line of their parent.
func encodeValues(node *ir.Node, w io.Writer, es *EncState, first bool) error {
	inline := es.wire
	if !inline {
		inline = true
		for _, v := range node.Values {
			if !v.IsAtom() {
				inline = false
				break
			}
		}
	}
	es.depth++
	defer func() { es.depth-- }()
	for i, v := range node.Values {
		switch {
		case inline && i == 0 && first:
		case inline:
			if err := writeString(w, " "); err != nil {
				return err
			}
		default:
			if err := writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent)); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
