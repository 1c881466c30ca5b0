package airtrack

import(
	"bytes"
	"encoding/json"
	"fmt"
)

/* The live feed sends each aircraft as a positional array of mixed types:

 ["abc123", "PS101  ", "Ukraine", null, null, 30.45, 50.45, 2000.0, false, 61.1, 140.0, -1.2]

Position defines meaning. Any slot can be null, rows are routinely
truncated, and the occasional slot holds the wrong type. So we decode
into a tagged union, and accessors hand back an absent marker rather
than panicking or guessing.
*/

type RawKind int
const(
	KindNull RawKind = iota
	KindString
	KindNumber
	KindBool
)

// RawValue holds exactly one of the shapes we accept from a feed slot.
type RawValue struct {
	Kind  RawKind
	Str   string
	Num   float64
	Bool  bool
}

func (v RawValue)String() string {
	switch v.Kind {
	case KindString: return fmt.Sprintf("%q", v.Str)
	case KindNumber: return fmt.Sprintf("%g", v.Num)
	case KindBool:   return fmt.Sprintf("%v", v.Bool)
	}
	return "null"
}

// UnmarshalJSON rejects objects and nested arrays; that kills decoding of
// the row it sits in, but never of sibling rows (see opensky.Normalize).
func (v *RawValue)UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = RawValue{Kind:KindNull}
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil { return err }
		*v = RawValue{Kind:KindString, Str:s}
	case 't','f':
		var t bool
		if err := json.Unmarshal(b, &t); err != nil { return err }
		*v = RawValue{Kind:KindBool, Bool:t}
	case '{','[':
		return fmt.Errorf("rawvalue: slot is not a scalar: %.20s", b)
	default:
		var f float64
		if err := json.Unmarshal(b, &f); err != nil { return err }
		*v = RawValue{Kind:KindNumber, Num:f}
	}

	return nil
}

// RawRow is one positional record, before interpretation.
type RawRow []RawValue

// The accessors return (zero,false) for an out of range index or a slot of
// the wrong kind. No coercions; a number slot read as a string is absent.

func (r RawRow)StringAt(i int) (string, bool) {
	if i < 0 || i >= len(r) || r[i].Kind != KindString { return "", false }
	return r[i].Str, true
}

func (r RawRow)DoubleAt(i int) (float64, bool) {
	if i < 0 || i >= len(r) || r[i].Kind != KindNumber { return 0, false }
	return r[i].Num, true
}

func (r RawRow)BoolAt(i int) (bool, bool) {
	if i < 0 || i >= len(r) || r[i].Kind != KindBool { return false, false }
	return r[i].Bool, true
}

// IntAt truncates the stored double.
func (r RawRow)IntAt(i int) (int64, bool) {
	f,ok := r.DoubleAt(i)
	if !ok { return 0, false }
	return int64(f), true
}
