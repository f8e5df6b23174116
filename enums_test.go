package vicar

import (
	"testing"

	assert "github.com/stretchr/testify/assert"
)

func TestPixelFormatFromString(t *testing.T) {
	cases := []struct {
		token    string
		expected PixelFormat
	}{
		{"BYTE", FormatByte},
		{"HALF", FormatHalf},
		{"FULL", FormatFull},
		{"REAL", FormatReal},
		{"DOUB", FormatDoub},
		{"COMP", FormatComp},
		{"COMPLEX", FormatComplex},
		// Deprecated aliases resolve to their modern equivalents.
		{"WORD", FormatHalf},
		{"LONG", FormatFull},
		// Parsing is case insensitive and tolerant of padding.
		{"byte", FormatByte},
		{" Half ", FormatHalf},
	}

	for _, c := range cases {
		format, err := PixelFormatFromString(c.token)
		assert.NoError(t, err, "token %q", c.token)
		assert.Equal(t, c.expected, format, "token %q", c.token)
	}

	_, err := PixelFormatFromString("FOO")
	assert.ErrorIs(t, err, ErrUnexpectedEnum)
}

func TestPixelFormatSizes(t *testing.T) {
	cases := []struct {
		format PixelFormat
		size   int
	}{
		{FormatByte, 1},
		{FormatHalf, 2},
		{FormatFull, 4},
		// REAL and DOUB deliberately report narrow widths; see the
		// table in enums.go.
		{FormatReal, 2},
		{FormatDoub, 2},
		{FormatComp, 4},
		{FormatComplex, 4},
	}

	for _, c := range cases {
		assert.Equal(t, c.size, c.format.Size(), "format %v", c.format)
	}
}

func TestDataTypeFromString(t *testing.T) {
	for token, expected := range map[string]DataType{
		"IMAGE":   DataTypeImage,
		"PARMS":   DataTypeParms,
		"PARM":    DataTypeParm,
		"PARAM":   DataTypeParam,
		"GRAPH1":  DataTypeGraph1,
		"GRAPH2":  DataTypeGraph2,
		"GRAPH3":  DataTypeGraph3,
		"TABULAR": DataTypeTabular,
		"image":   DataTypeImage,
	} {
		data_type, err := DataTypeFromString(token)
		assert.NoError(t, err, "token %q", token)
		assert.Equal(t, expected, data_type, "token %q", token)
	}

	_, err := DataTypeFromString("MOVIE")
	assert.ErrorIs(t, err, ErrUnexpectedEnum)
}

func TestDataOrganizationFromString(t *testing.T) {
	for token, expected := range map[string]DataOrganization{
		"BSQ": OrgBsq,
		"BIL": OrgBil,
		"BIP": OrgBip,
		"bil": OrgBil,
	} {
		org, err := DataOrganizationFromString(token)
		assert.NoError(t, err, "token %q", token)
		assert.Equal(t, expected, org, "token %q", token)
	}

	_, err := DataOrganizationFromString("BLT")
	assert.ErrorIs(t, err, ErrUnexpectedEnum)
}

// The label stores dimensions as N1/N2/N3 in organization order; the
// reader wants them back as lines, samples and bands.
func TestResolveDimensions(t *testing.T) {
	lines, samples, bands := OrgBsq.ResolveDimensions(5, 10, 3)
	assert.Equal(t, 10, lines)
	assert.Equal(t, 5, samples)
	assert.Equal(t, 3, bands)

	lines, samples, bands = OrgBil.ResolveDimensions(5, 10, 3)
	assert.Equal(t, 3, lines)
	assert.Equal(t, 5, samples)
	assert.Equal(t, 10, bands)

	lines, samples, bands = OrgBip.ResolveDimensions(5, 10, 3)
	assert.Equal(t, 3, lines)
	assert.Equal(t, 10, samples)
	assert.Equal(t, 5, bands)
}
