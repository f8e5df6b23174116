package vicar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	assert "github.com/stretchr/testify/assert"
)

// embeddedImage builds an in memory VICAR file: the label text padded
// with spaces to the declared LBLSIZE, followed by the pixel bytes.
func embeddedImage(label string, label_size int, pixels []byte) []byte {
	padded := label + strings.Repeat(" ", label_size-len(label))
	return append([]byte(padded), pixels...)
}

// A 4x4 single band byte image whose pixel value equals line*4+sample.
func byteTestImage() []byte {
	label := "LBLSIZE=100 RECSIZE=100 DIM=3 N1=4 N2=4 N3=1 NLB=0 NBB=0 " +
		"TYPE=IMAGE FORMAT=BYTE ORG=BSQ"
	pixels := make([]byte, 16)
	for i := range pixels {
		pixels[i] = byte(i)
	}
	return embeddedImage(label, 100, pixels)
}

func TestEmbeddedLabelResolution(t *testing.T) {
	vr, err := NewVicarReaderFromBytes(byteTestImage())
	assert.NoError(t, err)
	defer vr.Close()

	assert.Equal(t, 4, vr.Lines)
	assert.Equal(t, 4, vr.Samples)
	assert.Equal(t, 1, vr.Bands)
	assert.Equal(t, 100, vr.LabelSize())
	assert.Equal(t, 100, vr.RecordSize())
	assert.Equal(t, FormatByte, vr.Format())
	assert.Equal(t, OrgBsq, vr.Organization())
	assert.Equal(t, DataTypeImage, vr.Type())
	assert.Equal(t, 100, vr.DataStartOffset())
	assert.True(t, vr.HasInternalLabel())
}

func TestEmbeddedPixelValues(t *testing.T) {
	vr, err := NewVicarReaderFromBytes(byteTestImage())
	assert.NoError(t, err)
	defer vr.Close()

	for line := 0; line < vr.Lines; line++ {
		for sample := 0; sample < vr.Samples; sample++ {
			value, err := vr.GetPixelValue(line, sample, 0)
			assert.NoError(t, err)
			assert.Equal(t, float64(line*4+sample), value,
				"line %d sample %d", line, sample)
		}
	}

	// Addressing past the pixel data runs off the end of the file.
	_, err = vr.GetPixelValue(4, 0, 0)
	assert.ErrorIs(t, err, ErrEof)
}

// The embedded label need not start at byte zero: some products carry
// a text header in front of it.
func TestEmbeddedLabelAfterHeader(t *testing.T) {
	header := "CCSD3ZF0000100000001NJPL3IF0PDS200000001 = SFDU_LABEL\n"
	data := append([]byte(header), byteTestImage()...)

	vr, err := NewVicarReaderFromBytes(data)
	assert.NoError(t, err)
	defer vr.Close()

	indx, err := vr.ScanForProperty("LBLSIZE")
	assert.NoError(t, err)
	assert.Equal(t, len(header), indx)
	assert.Equal(t, len(header)+100, vr.DataStartOffset())

	value, err := vr.GetPixelValue(2, 3, 0)
	assert.NoError(t, err)
	assert.Equal(t, float64(11), value)
}

// Embedded label values may be singly quoted.
func TestQuotedEnumTokens(t *testing.T) {
	label := "LBLSIZE=100 RECSIZE=100 DIM=3 N1=4 N2=4 N3=1 NLB=0 NBB=0 " +
		"TYPE='IMAGE' FORMAT='BYTE' ORG='BSQ'"
	vr, err := NewVicarReaderFromBytes(embeddedImage(label, 100, make([]byte, 16)))
	assert.NoError(t, err)
	defer vr.Close()

	assert.Equal(t, FormatByte, vr.Format())
	assert.Equal(t, OrgBsq, vr.Organization())
	assert.Equal(t, DataTypeImage, vr.Type())
}

func TestHalfPixelDecode(t *testing.T) {
	label := "LBLSIZE=90 RECSIZE=90 DIM=3 N1=2 N2=1 N3=1 NLB=0 NBB=0 " +
		"TYPE=IMAGE FORMAT=HALF ORG=BSQ"
	// Two big endian int16 samples: 258 and -2.
	pixels := []byte{0x01, 0x02, 0xff, 0xfe}

	vr, err := NewVicarReaderFromBytes(embeddedImage(label, 90, pixels))
	assert.NoError(t, err)
	defer vr.Close()

	assert.Equal(t, 1, vr.Lines)
	assert.Equal(t, 2, vr.Samples)

	value, err := vr.GetPixelValue(0, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, float64(258), value)

	value, err = vr.GetPixelValue(0, 1, 0)
	assert.NoError(t, err)
	assert.Equal(t, float64(-2), value)
}

func TestMissingRequiredField(t *testing.T) {
	label := "LBLSIZE=90 RECSIZE=90 DIM=3 N1=2 N2=1 N3=1 NLB=0 NBB=0 " +
		"TYPE=IMAGE FORMAT=BYTE"
	_, err := NewVicarReaderFromBytes(embeddedImage(label, 90, nil))
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestUnknownFormatToken(t *testing.T) {
	label := "LBLSIZE=90 RECSIZE=90 DIM=3 N1=2 N2=1 N3=1 NLB=0 NBB=0 " +
		"TYPE=IMAGE FORMAT=FOO ORG=BSQ"
	_, err := NewVicarReaderFromBytes(embeddedImage(label, 90, nil))
	assert.ErrorIs(t, err, ErrUnexpectedEnum)
}

// COMP parses as a format but carries no decoder.
func TestComplexDecodeUnsupported(t *testing.T) {
	label := "LBLSIZE=90 RECSIZE=90 DIM=3 N1=2 N2=1 N3=1 NLB=0 NBB=0 " +
		"TYPE=IMAGE FORMAT=COMP ORG=BSQ"
	vr, err := NewVicarReaderFromBytes(embeddedImage(label, 90, make([]byte, 16)))
	assert.NoError(t, err)
	defer vr.Close()

	_, err = vr.GetPixelValue(0, 0, 0)
	assert.ErrorIs(t, err, ErrLabel)
}

// Binary prefix records between label and pixels shift the data start.
func TestBinaryHeaderOffsets(t *testing.T) {
	label := "LBLSIZE=90 RECSIZE=10 DIM=3 N1=2 N2=1 N3=1 NLB=2 NBB=0 " +
		"TYPE=IMAGE FORMAT=BYTE ORG=BSQ"
	data := embeddedImage(label, 90, make([]byte, 32))

	vr, err := NewVicarReaderFromBytes(data)
	assert.NoError(t, err)
	defer vr.Close()

	// 90 byte label plus two 10 byte binary header records.
	assert.Equal(t, 110, vr.DataStartOffset())
}

func TestNewVicarReaderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synthetic.vic")
	assert.NoError(t, os.WriteFile(path, byteTestImage(), 0644))

	vr, err := NewVicarReader(path)
	assert.NoError(t, err)
	defer vr.Close()

	value, err := vr.GetPixelValue(3, 3, 0)
	assert.NoError(t, err)
	assert.Equal(t, float64(15), value)
}

func TestResolvedLabelDict(t *testing.T) {
	vr, err := NewVicarReaderFromBytes(byteTestImage())
	assert.NoError(t, err)
	defer vr.Close()

	label := vr.Label()
	format, pres := label.Get("FORMAT")
	assert.True(t, pres)
	assert.Equal(t, "BYTE", format)

	lines, pres := label.Get("LINES")
	assert.True(t, pres)
	assert.Equal(t, 4, lines)

	data_start, pres := label.Get("DATA_START")
	assert.True(t, pres)
	assert.Equal(t, 100, data_start)
}

func TestDetachedLabel(t *testing.T) {
	vr, err := NewVicarReaderFromDetachedLabel("test_data/controlled_test.lbl")
	assert.NoError(t, err)
	defer vr.Close()

	assert.Equal(t, 4, vr.Lines)
	assert.Equal(t, 4, vr.Samples)
	assert.Equal(t, 1, vr.Bands)
	assert.Equal(t, FormatByte, vr.Format())
	assert.Equal(t, OrgBsq, vr.Organization())
	assert.Equal(t, 0, vr.DataStartOffset())
	assert.False(t, vr.HasInternalLabel())

	for line := 0; line < vr.Lines; line++ {
		for sample := 0; sample < vr.Samples; sample++ {
			value, err := vr.GetPixelValue(line, sample, 0)
			assert.NoError(t, err)
			assert.Equal(t, float64(line*4+sample), value,
				"line %d sample %d", line, sample)
		}
	}
}

func TestDetachedLabelMissingPointer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.lbl")
	content := "PDS_VERSION_ID = PDS3\n" +
		"OBJECT = IMAGE\n" +
		"  LINES = 4\n" +
		"END_OBJECT = IMAGE\n" +
		"END\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := NewVicarReaderFromDetachedLabel(path)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}
