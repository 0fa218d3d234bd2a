package bitmap

import (
	"encoding/binary"
	"fmt"
)

const (
	fileHeaderSize = 14
	coreHeaderSize = 12
	infoHeaderSize = 40
)

// Header summarizes the file and DIB headers of a BMP container.
type Header struct {
	FileSize   uint32
	DataOffset uint32
	DIBSize    uint32
	Width      int32
	// Height is negative for top-down bitmaps.
	Height       int32
	BitsPerPixel uint16
}

// TopDown reports whether rows are stored top to bottom.
func (h Header) TopDown() bool {
	return h.Height < 0
}

// ReadHeader parses the fixed-offset header fields of an encoded BMP.
// Both BITMAPCOREHEADER and BITMAPINFOHEADER (and its larger successors)
// are understood.
func ReadHeader(buf []byte) (Header, error) {
	if len(buf) < fileHeaderSize+4 {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrHeader, len(buf))
	}
	if buf[0] != 'B' || buf[1] != 'M' {
		return Header{}, fmt.Errorf("%w: signature %q", ErrHeader, buf[:2])
	}

	le := binary.LittleEndian
	h := Header{
		FileSize:   le.Uint32(buf[2:]),
		DataOffset: le.Uint32(buf[10:]),
		DIBSize:    le.Uint32(buf[14:]),
	}

	dib := buf[fileHeaderSize:]
	switch {
	case h.DIBSize == coreHeaderSize:
		if len(dib) < coreHeaderSize {
			return Header{}, fmt.Errorf("%w: truncated core header", ErrHeader)
		}
		h.Width = int32(le.Uint16(dib[4:]))
		h.Height = int32(le.Uint16(dib[6:]))
		h.BitsPerPixel = le.Uint16(dib[10:])
	case h.DIBSize >= infoHeaderSize:
		if len(dib) < infoHeaderSize {
			return Header{}, fmt.Errorf("%w: truncated info header", ErrHeader)
		}
		h.Width = int32(le.Uint32(dib[4:]))
		h.Height = int32(le.Uint32(dib[8:]))
		h.BitsPerPixel = le.Uint16(dib[14:])
	default:
		return Header{}, fmt.Errorf("%w: DIB header size %d", ErrHeader, h.DIBSize)
	}

	return h, nil
}
