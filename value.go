// The PVL value typing engine. A Value is the right hand side of a
// KEY = VALUE line, stored as raw text together with a type inferred
// once at construction.

package vicar

import (
	"regexp"
	"strconv"
	"strings"
)

type ValueType uint8

const (
	TypeUndetermined ValueType = iota
	TypeArray
	TypeString
	TypeFloat
	TypeInteger
	TypeBool
	TypeFlag // A string but not wrapped in quotes
	TypeBitMask
)

func (self ValueType) String() string {
	switch self {
	case TypeArray:
		return "Array"
	case TypeString:
		return "String"
	case TypeFloat:
		return "Float"
	case TypeInteger:
		return "Integer"
	case TypeBool:
		return "Bool"
	case TypeFlag:
		return "Flag"
	case TypeBitMask:
		return "BitMask"
	default:
		return "Undetermined"
	}
}

// Type determination patterns. Compiled once at init and never
// mutated; the order they are tried in matters because the patterns
// overlap (see determineType).
var (
	boolDeterminate    = regexp.MustCompile(`^"(TRUE|FALSE)"$`)
	stringDeterminate  = regexp.MustCompile(`^".*"$`)
	arrayDeterminate   = regexp.MustCompile(`^\(.*\)$`)
	floatDeterminate   = regexp.MustCompile(`^-*[0-9]+\.[0-9][ ]*`)
	integerDeterminate = regexp.MustCompile(`^[+-]*[0-9]+[^#a-zA-Z]*[ ]*`)
	flagDeterminate    = regexp.MustCompile(`^[a-zA-Z_]+[a-zA-Z0-9]+$`)
	bitMaskDeterminate = regexp.MustCompile(`^[1-8]*#+[0-1]+#+$`)
)

// A Value is immutable: the raw text and the type are fixed at
// construction and the type is never re-inferred.
type Value struct {
	value_raw  string
	value_type ValueType
}

func NewValue(value_raw string) Value {
	return Value{
		value_raw:  value_raw,
		value_type: determineType(value_raw),
	}
}

// First matching rule wins. Quoted TRUE/FALSE must be checked before
// the generic quoted string, and bitmasks before integers, since the
// wider pattern would otherwise claim them.
func determineType(value_raw string) ValueType {
	switch {
	case boolDeterminate.MatchString(value_raw):
		return TypeBool
	case stringDeterminate.MatchString(value_raw):
		return TypeString
	case arrayDeterminate.MatchString(value_raw):
		return TypeArray
	case floatDeterminate.MatchString(value_raw):
		return TypeFloat
	case bitMaskDeterminate.MatchString(value_raw):
		return TypeBitMask
	case integerDeterminate.MatchString(value_raw):
		return TypeInteger
	case flagDeterminate.MatchString(value_raw):
		return TypeFlag
	default:
		return TypeUndetermined
	}
}

func (self Value) Raw() string {
	return self.value_raw
}

func (self Value) Type() ValueType {
	return self.value_type
}

// An undetermined type is the parser's problem, not the caller's, so
// accessors attempt a best effort conversion in that case. A
// determined type other than the requested one is refused outright.
func (self Value) checkType(want ValueType) error {
	if self.value_type != TypeUndetermined && self.value_type != want {
		return ErrInvalidType
	}
	return nil
}

func (self Value) parseUint(bits int) (uint64, error) {
	if err := self.checkType(TypeInteger); err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(self.value_raw, 10, bits)
	if err != nil {
		return 0, ErrValueTypeParse
	}
	return v, nil
}

func (self Value) parseSigned(bits int) (int64, error) {
	if err := self.checkType(TypeInteger); err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(self.value_raw, 10, bits)
	if err != nil {
		return 0, ErrValueTypeParse
	}
	return v, nil
}

func (self Value) ParseUint8() (uint8, error) {
	v, err := self.parseUint(8)
	return uint8(v), err
}

func (self Value) ParseUint16() (uint16, error) {
	v, err := self.parseUint(16)
	return uint16(v), err
}

func (self Value) ParseUint32() (uint32, error) {
	v, err := self.parseUint(32)
	return uint32(v), err
}

func (self Value) ParseUint64() (uint64, error) {
	return self.parseUint(64)
}

func (self Value) ParseInt8() (int8, error) {
	v, err := self.parseSigned(8)
	return int8(v), err
}

func (self Value) ParseInt16() (int16, error) {
	v, err := self.parseSigned(16)
	return int16(v), err
}

func (self Value) ParseInt32() (int32, error) {
	v, err := self.parseSigned(32)
	return int32(v), err
}

func (self Value) ParseInt64() (int64, error) {
	return self.parseSigned(64)
}

// ParseInt is the machine sized accessor used for dimensions and
// offsets.
func (self Value) ParseInt() (int, error) {
	v, err := self.parseSigned(strconv.IntSize)
	return int(v), err
}

func (self Value) ParseFloat32() (float32, error) {
	if err := self.checkType(TypeFloat); err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(self.value_raw, 32)
	if err != nil {
		return 0, ErrValueTypeParse
	}
	return float32(v), nil
}

func (self Value) ParseFloat64() (float64, error) {
	if err := self.checkType(TypeFloat); err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(self.value_raw, 64)
	if err != nil {
		return 0, ErrValueTypeParse
	}
	return v, nil
}

func (self Value) ParseBool() (bool, error) {
	if err := self.checkType(TypeBool); err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(self.value_raw)
	if err != nil {
		return false, ErrValueTypeParse
	}
	return v, nil
}

// ParseFlag returns the bare identifier text.
func (self Value) ParseFlag() (string, error) {
	if err := self.checkType(TypeFlag); err != nil {
		return "", err
	}
	return self.value_raw, nil
}

// ParseString strips the surrounding quote characters.
func (self Value) ParseString() (string, error) {
	if err := self.checkType(TypeString); err != nil {
		return "", err
	}
	return strings.ReplaceAll(self.value_raw, "\"", ""), nil
}

// ParseArray splits the parenthesized interior on commas and types
// each element independently. The split is flat: nested parentheses
// and quoted commas inside elements are not recognized.
func (self Value) ParseArray() ([]Value, error) {
	if self.value_type != TypeArray {
		return nil, ErrInvalidType
	}
	interior := self.value_raw[1 : len(self.value_raw)-1]
	parts := strings.Split(interior, ",")
	result := make([]Value, 0, len(parts))
	for _, part := range parts {
		result = append(result, NewValue(part))
	}
	return result, nil
}
