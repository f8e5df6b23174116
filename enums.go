// Closed enumerations for the fixed VICAR label fields TYPE, FORMAT
// and ORG. All three parse case insensitively and refuse unknown
// tokens.

package vicar

import (
	"strings"
)

// PixelFormat is the on-disk sample encoding. WORD and LONG are
// deprecated aliases in the VICAR specification and are routed to
// HALF and FULL when parsed, so they never appear in a resolved
// reader.
type PixelFormat uint8

const (
	FormatByte PixelFormat = iota
	FormatHalf
	FormatWord
	FormatFull
	FormatLong
	FormatReal
	FormatDoub
	FormatComp
	FormatComplex
)

// REAL and DOUB report two bytes even though they encode floating
// point samples wider than that. Correcting the table would shift
// every pixel offset computed against existing products.
var pixelFormatSizes = map[PixelFormat]int{
	FormatByte:    1,
	FormatHalf:    2,
	FormatWord:    2,
	FormatFull:    4,
	FormatLong:    4,
	FormatReal:    2,
	FormatDoub:    2,
	FormatComp:    4,
	FormatComplex: 4,
}

func PixelFormatFromString(s string) (PixelFormat, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BYTE":
		return FormatByte, nil
	case "HALF", "WORD":
		return FormatHalf, nil
	case "FULL", "LONG":
		return FormatFull, nil
	case "REAL":
		return FormatReal, nil
	case "DOUB":
		return FormatDoub, nil
	case "COMP":
		return FormatComp, nil
	case "COMPLEX":
		return FormatComplex, nil
	default:
		return FormatByte, unexpectedEnum("pixel format", s)
	}
}

// Size returns the byte width used for pixel addressing.
func (self PixelFormat) Size() int {
	return pixelFormatSizes[self]
}

func (self PixelFormat) String() string {
	switch self {
	case FormatByte:
		return "BYTE"
	case FormatHalf:
		return "HALF"
	case FormatWord:
		return "WORD"
	case FormatFull:
		return "FULL"
	case FormatLong:
		return "LONG"
	case FormatReal:
		return "REAL"
	case FormatDoub:
		return "DOUB"
	case FormatComp:
		return "COMP"
	default:
		return "COMPLEX"
	}
}

// DataType is the label TYPE field.
type DataType uint8

const (
	DataTypeImage DataType = iota
	DataTypeParms
	DataTypeParm
	DataTypeParam
	DataTypeGraph1
	DataTypeGraph2
	DataTypeGraph3
	DataTypeTabular
)

func DataTypeFromString(s string) (DataType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "IMAGE":
		return DataTypeImage, nil
	case "PARMS":
		return DataTypeParms, nil
	case "PARM":
		return DataTypeParm, nil
	case "PARAM":
		return DataTypeParam, nil
	case "GRAPH1":
		return DataTypeGraph1, nil
	case "GRAPH2":
		return DataTypeGraph2, nil
	case "GRAPH3":
		return DataTypeGraph3, nil
	case "TABULAR":
		return DataTypeTabular, nil
	default:
		return DataTypeImage, unexpectedEnum("data type", s)
	}
}

func (self DataType) String() string {
	switch self {
	case DataTypeImage:
		return "IMAGE"
	case DataTypeParms:
		return "PARMS"
	case DataTypeParm:
		return "PARM"
	case DataTypeParam:
		return "PARAM"
	case DataTypeGraph1:
		return "GRAPH1"
	case DataTypeGraph2:
		return "GRAPH2"
	case DataTypeGraph3:
		return "GRAPH3"
	default:
		return "TABULAR"
	}
}

// DataOrganization is the on-disk axis ordering of the pixel records.
type DataOrganization uint8

const (
	OrgBsq DataOrganization = iota // band sequential
	OrgBil                        // band interleaved by line
	OrgBip                        // band interleaved by pixel
)

func DataOrganizationFromString(s string) (DataOrganization, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BSQ":
		return OrgBsq, nil
	case "BIL":
		return OrgBil, nil
	case "BIP":
		return OrgBip, nil
	default:
		return OrgBsq, unexpectedEnum("data organization", s)
	}
}

func (self DataOrganization) String() string {
	switch self {
	case OrgBil:
		return "BIL"
	case OrgBip:
		return "BIP"
	default:
		return "BSQ"
	}
}
