package graph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownIDTag is returned when an identifier's text form carries a
	// variant tag other than "int" or "text".
	ErrUnknownIDTag = errors.New("unknown identifier tag")

	// ErrInvalidID is returned when an identifier's text form is malformed,
	// e.g. a missing tag separator or an "int" payload that is not a
	// non-negative whole number.
	ErrInvalidID = errors.New("invalid identifier")
)

// IDKind is the variant of an identifier.
type IDKind uint8

const (
	// KindInvalid is the variant of the zero identifier.
	KindInvalid IDKind = iota
	// KindInt identifies a node or edge by a non-negative whole number.
	KindInt
	// KindText identifies a node or edge by a text label.
	KindText
)

// Wire tags for the two variants. These are part of the persisted format.
const (
	tagInt  = "int"
	tagText = "text"
)

func (k IDKind) String() string {
	switch k {
	case KindInt:
		return tagInt
	case KindText:
		return tagText
	default:
		return "invalid"
	}
}

// ident holds the variant and payload shared by NodeID and EdgeID. It is a
// comparable value, so both identifier types can key maps directly.
type ident struct {
	kind IDKind
	num  uint64
	text string
}

func intIdent(v uint64) ident  { return ident{kind: KindInt, num: v} }
func textIdent(s string) ident { return ident{kind: KindText, text: s} }

// Kind reports the identifier's variant.
func (i ident) Kind() IDKind { return i.kind }

// IsZero reports whether the identifier is the zero value (no variant).
func (i ident) IsZero() bool { return i.kind == KindInvalid }

// Int returns the integer payload and true for Int identifiers.
func (i ident) Int() (uint64, bool) { return i.num, i.kind == KindInt }

// Text returns the label and true for Text identifiers.
func (i ident) Text() (string, bool) { return i.text, i.kind == KindText }

// String returns the tagged text form, e.g. "int:7" or "text:a".
func (i ident) String() string {
	switch i.kind {
	case KindInt:
		return tagInt + ":" + strconv.FormatUint(i.num, 10)
	case KindText:
		return tagText + ":" + i.text
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (i ident) MarshalText() ([]byte, error) {
	if i.IsZero() {
		return nil, fmt.Errorf("%w: zero value", ErrInvalidID)
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *ident) UnmarshalText(b []byte) error {
	v, err := parseIdent(string(b))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// compare orders Int identifiers before Text identifiers, ints numerically
// and texts lexically.
func (i ident) compare(o ident) int {
	if i.kind != o.kind {
		if i.kind < o.kind {
			return -1
		}
		return 1
	}
	switch i.kind {
	case KindInt:
		switch {
		case i.num < o.num:
			return -1
		case i.num > o.num:
			return 1
		}
		return 0
	default:
		return strings.Compare(i.text, o.text)
	}
}

func parseIdent(s string) (ident, error) {
	tag, payload, ok := strings.Cut(s, ":")
	if !ok {
		return ident{}, fmt.Errorf("%w: %q has no variant tag", ErrInvalidID, s)
	}
	switch tag {
	case tagInt:
		v, err := strconv.ParseUint(payload, 10, 64)
		if err != nil {
			return ident{}, fmt.Errorf("%w: %q: %v", ErrInvalidID, s, err)
		}
		return intIdent(v), nil
	case tagText:
		return textIdent(payload), nil
	default:
		return ident{}, fmt.Errorf("%w: %q", ErrUnknownIDTag, tag)
	}
}

// NodeID distinguishes nodes. It is either an integer or a text label, and
// the two variants never compare equal: IntID(1) != TextID("1").
//
// NodeID is immutable and comparable; the zero value is not a valid
// identifier.
type NodeID struct{ ident }

// IntID returns an integer node identifier.
func IntID(v uint64) NodeID { return NodeID{intIdent(v)} }

// TextID returns a text node identifier.
func TextID(s string) NodeID { return NodeID{textIdent(s)} }

// ParseNodeID parses the tagged text form produced by NodeID.String.
func ParseNodeID(s string) (NodeID, error) {
	v, err := parseIdent(s)
	if err != nil {
		return NodeID{}, err
	}
	return NodeID{v}, nil
}

// Compare orders identifiers: integers ascending, then texts lexically.
func (id NodeID) Compare(other NodeID) int { return id.compare(other.ident) }

// EdgeID names an edge in a node's adjacency list. It has the same two
// variants and wire tags as NodeID but is a distinct type.
type EdgeID struct{ ident }

// IntEdgeID returns an integer edge identifier.
func IntEdgeID(v uint64) EdgeID { return EdgeID{intIdent(v)} }

// TextEdgeID returns a text edge identifier.
func TextEdgeID(s string) EdgeID { return EdgeID{textIdent(s)} }

// ParseEdgeID parses the tagged text form produced by EdgeID.String.
func ParseEdgeID(s string) (EdgeID, error) {
	v, err := parseIdent(s)
	if err != nil {
		return EdgeID{}, err
	}
	return EdgeID{v}, nil
}
