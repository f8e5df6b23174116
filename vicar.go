// The VICAR label resolver and pixel addressing engine.
//
// Two construction paths produce an equivalent reader. Embedded
// labels (label and pixels in one file) are resolved by an ad-hoc
// token scan: the label may be preceded and followed by raw binary,
// so no line based structure can be assumed beyond the header tokens
// themselves. Detached labels are full PVL documents and go through
// the structural parser. The two scans share the value typing engine
// but are deliberately separate strategies.

package vicar

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Velocidex/ordereddict"
)

// VicarReader holds the resolved geometry and encoding for one image.
// It is immutable after construction and caches no pixels: every
// query recomputes its offset and reads from the underlying file.
type VicarReader struct {
	Lines   int
	Samples int
	Bands   int

	label_size  int
	record_size int
	dim         int
	nlb         int
	nbb         int
	data_type   DataType
	format      PixelFormat
	org         DataOrganization
	data_start  int

	content string
	reader  *BinFile
}

// Sample decoders per pixel format. VICAR numeric fields are big
// endian on disk. DOUB is read as a 64 bit integer and narrowed, not
// decoded as a true double; COMP/COMPLEX have no decoder and always
// fail.
var pixelDecoders = map[PixelFormat]func(reader *BinFile, offset int) (float64, error){
	FormatByte: func(reader *BinFile, offset int) (float64, error) {
		v, err := reader.ReadU8(offset)
		return float64(v), err
	},
	FormatHalf: func(reader *BinFile, offset int) (float64, error) {
		v, err := reader.ReadInt16(offset)
		return float64(v), err
	},
	FormatWord: func(reader *BinFile, offset int) (float64, error) {
		v, err := reader.ReadInt16(offset)
		return float64(v), err
	},
	FormatFull: func(reader *BinFile, offset int) (float64, error) {
		v, err := reader.ReadInt32(offset)
		return float64(v), err
	},
	FormatLong: func(reader *BinFile, offset int) (float64, error) {
		v, err := reader.ReadInt32(offset)
		return float64(v), err
	},
	FormatReal: func(reader *BinFile, offset int) (float64, error) {
		v, err := reader.ReadFloat32(offset)
		return float64(v), err
	},
	FormatDoub: func(reader *BinFile, offset int) (float64, error) {
		v, err := reader.ReadInt64(offset)
		return float64(v), err
	},
}

// NewVicarReader resolves an embedded label: the whole file is loaded
// and scanned for the fixed header tokens.
func NewVicarReader(file_path string) (*VicarReader, error) {
	data, err := os.ReadFile(file_path)
	if err != nil {
		return nil, labelError(err)
	}

	reader, err := OpenBinFile(file_path, binary.BigEndian)
	if err != nil {
		return nil, err
	}

	self, err := newFromEmbeddedLabel(string(data), reader)
	if err != nil {
		reader.Close()
		return nil, err
	}
	return self, nil
}

// NewVicarReaderFromBytes resolves an embedded label over an in
// memory buffer.
func NewVicarReaderFromBytes(data []byte) (*VicarReader, error) {
	reader := NewBinFile(bytes.NewReader(data), binary.BigEndian)
	return newFromEmbeddedLabel(string(data), reader)
}

func newFromEmbeddedLabel(content string, reader *BinFile) (*VicarReader, error) {
	self := &VicarReader{
		content: content,
		reader:  reader,
	}

	var err error
	if self.label_size, err = self.intProperty("LBLSIZE"); err != nil {
		return nil, err
	}
	if self.record_size, err = self.intProperty("RECSIZE"); err != nil {
		return nil, err
	}
	if self.dim, err = self.intProperty("DIM"); err != nil {
		return nil, err
	}
	n1, err := self.intProperty("N1")
	if err != nil {
		return nil, err
	}
	n2, err := self.intProperty("N2")
	if err != nil {
		return nil, err
	}
	n3, err := self.intProperty("N3")
	if err != nil {
		return nil, err
	}
	if self.nlb, err = self.intProperty("NLB"); err != nil {
		return nil, err
	}
	if self.nbb, err = self.intProperty("NBB"); err != nil {
		return nil, err
	}

	type_token, err := self.enumProperty("TYPE")
	if err != nil {
		return nil, err
	}
	if self.data_type, err = DataTypeFromString(type_token); err != nil {
		return nil, err
	}
	format_token, err := self.enumProperty("FORMAT")
	if err != nil {
		return nil, err
	}
	if self.format, err = PixelFormatFromString(format_token); err != nil {
		return nil, err
	}
	org_token, err := self.enumProperty("ORG")
	if err != nil {
		return nil, err
	}
	if self.org, err = DataOrganizationFromString(org_token); err != nil {
		return nil, err
	}

	self.Lines, self.Samples, self.Bands = self.org.ResolveDimensions(n1, n2, n3)

	// The label starts wherever the LBLSIZE token was found, not
	// necessarily at byte zero: embedded VICAR labels can trail a
	// PDS text header.
	label_start, err := self.ScanForProperty("LBLSIZE")
	if err != nil {
		return nil, err
	}
	binary_header_length := self.nlb * self.record_size
	self.data_start = label_start + self.label_size + binary_header_length + self.nbb

	return self, nil
}

// NewVicarReaderFromDetachedLabel resolves a label stored separately
// from its pixel data. The pixel file is located through the ^IMAGE
// pointer, relative to the label's directory. This path assumes band
// sequential organization, byte pixels and a zero data offset; it does
// not re-derive them from the label.
func NewVicarReaderFromDetachedLabel(label_path string) (*VicarReader, error) {
	pvl, err := LoadPvl(label_path)
	if err != nil {
		return nil, err
	}

	image_object, err := pvl.GetObject("IMAGE")
	if err != nil {
		return nil, err
	}

	pointer, err := pvl.GetProperty("^IMAGE")
	if err != nil {
		return nil, err
	}
	elements, err := pointer.Value.ParseArray()
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, syntaxError("^IMAGE pointer array is empty")
	}
	filename, err := elements[0].ParseString()
	if err != nil {
		return nil, err
	}

	image_path := filepath.Join(filepath.Dir(label_path), filename)
	reader, err := OpenBinFile(image_path, binary.BigEndian)
	if err != nil {
		return nil, err
	}

	self := &VicarReader{
		// Missing or unparsable geometry degrades to zero sized
		// rather than failing; detached labels in the wild are
		// inconsistent about these fields.
		Lines:     intPropertyOrZero(image_object, "LINES"),
		Samples:   intPropertyOrZero(image_object, "LINE_SAMPLES"),
		Bands:     intPropertyOrZero(image_object, "BANDS"),
		data_type: DataTypeImage,
		format:    FormatByte,
		org:       OrgBsq,
		reader:    reader,
	}
	return self, nil
}

func intPropertyOrZero(grouping PropertyGrouping, name string) int {
	kvp, err := grouping.GetProperty(name)
	if err != nil {
		return 0
	}
	v, err := kvp.Value.ParseInt()
	if err != nil {
		return 0
	}
	return v
}

// ResolveDimensions reorders the on-disk axis lengths N1, N2, N3 into
// (lines, samples, bands) for this organization.
func (self DataOrganization) ResolveDimensions(n1, n2, n3 int) (lines, samples, bands int) {
	switch self {
	case OrgBil:
		return n3, n1, n2
	case OrgBip:
		return n3, n2, n1
	default:
		return n2, n1, n3
	}
}

// HasInternalLabel reports whether the file carries an embedded VICAR
// label at all.
func (self *VicarReader) HasInternalLabel() bool {
	_, err := self.ScanForProperty("LBLSIZE")
	return err == nil
}

// ScanForProperty returns the byte index at which the token NAME=
// occurs in the file.
func (self *VicarReader) ScanForProperty(name string) (int, error) {
	indx := strings.Index(self.content, name+"=")
	if indx < 0 {
		return 0, fmt.Errorf("%w: %s", ErrPropertyNotFound, name)
	}
	return indx, nil
}

// GetProperty extracts one embedded label field by literal token
// scan: the text from NAME= up to the next space, split once on the
// equals sign and typed through the value engine.
func (self *VicarReader) GetProperty(name string) (KeyValuePair, error) {
	indx, err := self.ScanForProperty(name)
	if err != nil {
		return KeyValuePair{}, err
	}

	rest := self.content[indx:]
	if end := strings.IndexByte(rest, ' '); end >= 0 {
		rest = rest[:end]
	}

	parts := strings.SplitN(rest, "=", 2)
	if len(parts) != 2 {
		return KeyValuePair{}, syntaxError("malformed label property %q", rest)
	}
	return KeyValuePair{
		Key:   KeySymbol(parts[0]),
		Value: NewValue(parts[1]),
	}, nil
}

func (self *VicarReader) intProperty(name string) (int, error) {
	kvp, err := self.GetProperty(name)
	if err != nil {
		return 0, err
	}
	v, err := kvp.Value.ParseInt()
	if err != nil {
		return 0, fmt.Errorf("label field %s: %w", name, err)
	}
	return v, nil
}

// Label values may be bare (FORMAT=BYTE) or singly quoted
// (FORMAT='BYTE'); the quotes are not part of the token.
func (self *VicarReader) enumProperty(name string) (string, error) {
	kvp, err := self.GetProperty(name)
	if err != nil {
		return "", err
	}
	return strings.Trim(kvp.Value.Raw(), "'\""), nil
}

// LabelSize is the total byte length of the embedded label.
func (self *VicarReader) LabelSize() int {
	return self.label_size
}

func (self *VicarReader) RecordSize() int {
	return self.record_size
}

func (self *VicarReader) Format() PixelFormat {
	return self.format
}

func (self *VicarReader) Organization() DataOrganization {
	return self.org
}

func (self *VicarReader) Type() DataType {
	return self.data_type
}

// DataStartOffset is the absolute byte offset where pixel data
// begins.
func (self *VicarReader) DataStartOffset() int {
	return self.data_start
}

func (self *VicarReader) Close() error {
	return self.reader.Close()
}

// Label collects the resolved geometry into an ordered dict for
// display and serialization.
func (self *VicarReader) Label() *ordereddict.Dict {
	return ordereddict.NewDict().
		Set("LBLSIZE", self.label_size).
		Set("RECSIZE", self.record_size).
		Set("DIM", self.dim).
		Set("LINES", self.Lines).
		Set("SAMPLES", self.Samples).
		Set("BANDS", self.Bands).
		Set("NLB", self.nlb).
		Set("NBB", self.nbb).
		Set("TYPE", self.data_type.String()).
		Set("FORMAT", self.format.String()).
		Set("ORG", self.org.String()).
		Set("DATA_START", self.data_start)
}

// GetPixelValue reads and decodes the sample at (line, sample, band).
// Addressing is band sequential regardless of the declared
// organization.
func (self *VicarReader) GetPixelValue(line, sample, band int) (float64, error) {
	bytes_per_sample := self.format.Size()

	offset := self.Lines * self.Samples * bytes_per_sample * band
	offset += line * self.nbb
	offset += line * self.Samples * bytes_per_sample
	offset += sample * bytes_per_sample
	offset += self.data_start

	decode, pres := pixelDecoders[self.format]
	if !pres {
		return 0, fmt.Errorf("%w: %v pixel decode is not implemented",
			ErrLabel, self.format)
	}
	return decode(self.reader, offset)
}
