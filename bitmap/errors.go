package bitmap

import "github.com/pkg/errors"

var (
	// ErrOpen indicates the input file could not be opened.
	ErrOpen = errors.New("open image failed")
	// ErrDecode indicates the input could not be decoded as an image.
	ErrDecode = errors.New("decode image failed")
	// ErrEncode indicates the image could not be encoded as BMP.
	ErrEncode = errors.New("encode BMP failed")
	// ErrHeader indicates a malformed or truncated BMP header.
	ErrHeader = errors.New("invalid BMP header")
	// ErrDDSFormat indicates a DDS pixel format that cannot be decoded.
	ErrDDSFormat = errors.New("unsupported DDS format")
	// ErrDDSSize indicates DDS dimensions outside supported limits.
	ErrDDSSize = errors.New("unsupported DDS size")
)
