// BinFile provides fixed width reads at arbitrary byte offsets with a
// selectable byte order. Pixel queries go through here; label text
// never does.

package vicar

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

type BinFile struct {
	reader io.ReaderAt
	order  binary.ByteOrder
	closer io.Closer
}

// OpenBinFile opens a file for random access reads. Every read goes
// back to the file; there is no buffering layer.
func OpenBinFile(file_path string, order binary.ByteOrder) (*BinFile, error) {
	f, err := os.Open(file_path)
	if err != nil {
		return nil, labelError(err)
	}
	return &BinFile{reader: f, order: order, closer: f}, nil
}

// NewBinFile wraps an existing random access reader, typically an in
// memory buffer in tests.
func NewBinFile(reader io.ReaderAt, order binary.ByteOrder) *BinFile {
	return &BinFile{reader: reader, order: order}
}

func (self *BinFile) Close() error {
	if self.closer != nil {
		return self.closer.Close()
	}
	return nil
}

func (self *BinFile) SetByteOrder(order binary.ByteOrder) {
	self.order = order
}

func (self *BinFile) readAt(offset int, size int) ([]byte, error) {
	buf := make([]byte, size)
	n, err := self.reader.ReadAt(buf, int64(offset))
	if n < size {
		if err == nil || err == io.EOF {
			return nil, fmt.Errorf("%w: short read at offset %d", ErrEof, offset)
		}
		return nil, labelError(err)
	}
	return buf, nil
}

func (self *BinFile) ReadU8(offset int) (uint8, error) {
	buf, err := self.readAt(offset, 1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (self *BinFile) ReadInt16(offset int) (int16, error) {
	buf, err := self.readAt(offset, 2)
	if err != nil {
		return 0, err
	}
	return int16(self.order.Uint16(buf)), nil
}

func (self *BinFile) ReadInt32(offset int) (int32, error) {
	buf, err := self.readAt(offset, 4)
	if err != nil {
		return 0, err
	}
	return int32(self.order.Uint32(buf)), nil
}

func (self *BinFile) ReadInt64(offset int) (int64, error) {
	buf, err := self.readAt(offset, 8)
	if err != nil {
		return 0, err
	}
	return int64(self.order.Uint64(buf)), nil
}

func (self *BinFile) ReadFloat32(offset int) (float32, error) {
	buf, err := self.readAt(offset, 4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(self.order.Uint32(buf)), nil
}
