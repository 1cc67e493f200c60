package ber

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

var universalNames = map[uint]string{
	TagEndOfContents:    "EOC",
	TagBoolean:          "BOOLEAN",
	TagInteger:          "INTEGER",
	TagBitString:        "BIT STRING",
	TagOctetString:      "OCTET STRING",
	TagNull:             "NULL",
	TagOID:              "OBJECT IDENTIFIER",
	TagObjectDescriptor: "ObjectDescriptor",
	TagExternal:         "EXTERNAL",
	TagEnumerated:       "ENUMERATED",
	TagSequence:         "SEQUENCE",
	TagSet:              "SET",
	TagGeneralizedTime:  "GeneralizedTime",
	TagVisibleString:    "VisibleString",
	TagGeneralString:    "GeneralString",
}

// Fprint writes an indented listing of the node tree to w, one node per
// line with its tag, form and content length. Primitive content is shown
// in hex, followed by its text when printable.
func Fprint(w io.Writer, n *Node) error {
	return fprint(w, n, 0)
}

func fprint(w io.Writer, n *Node, indent int) error {
	name := n.tag.String()
	if n.tag.Class == ClassUniversal {
		if s, ok := universalNames[n.tag.Number]; ok {
			name = s
		}
	}
	form := "prim"
	if n.constructed {
		form = "cons"
	}

	line := fmt.Sprintf("%s%s (%s) len=%d", strings.Repeat("  ", indent), name, form, n.clen)
	if !n.constructed && len(n.content) > 0 {
		line += " " + hex.EncodeToString(n.content)
		if printable(n.content) {
			line += fmt.Sprintf(" %q", n.content)
		}
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	for _, c := range n.children {
		if err := fprint(w, c, indent+1); err != nil {
			return err
		}
	}
	return nil
}

func printable(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

// String returns the Fprint listing of n.
func (n *Node) String() string {
	sb := strings.Builder{}
	_ = Fprint(&sb, n)
	return sb.String()
}
