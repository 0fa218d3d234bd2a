package bitmap

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/woozymasta/bcn"
)

// maxDDSDimension bounds the texture edge length accepted from a header.
const maxDDSDimension = 16384

func init() {
	image.RegisterFormat("dds", "DDS ", decodeDDS, decodeDDSConfig)
}

func decodeDDSConfig(r io.Reader) (image.Config, error) {
	header, _, err := readDDSHeaders(r)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		Width:      int(header.Width),
		Height:     int(header.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}

// decodeDDS decodes the top mip level of a plain DDS texture.
func decodeDDS(r io.Reader) (image.Image, error) {
	header, dx10, err := readDDSHeaders(r)
	if err != nil {
		return nil, err
	}

	format, name := ddsFormat(header, dx10)
	if format == bcn.FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrDDSFormat, name)
	}

	width, height := int(header.Width), int(header.Height)
	if width <= 0 || height <= 0 || width > maxDDSDimension || height > maxDDSDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrDDSSize, width, height)
	}

	data := make([]byte, ddsDataLength(format, width, height))
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: reading %s pixel data: %w", ErrDecode, name, err)
	}

	img, err := bcn.DecodeImageWithOptions(data, width, height, format, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return img, nil
}

func readDDSHeaders(r io.Reader) (*bcn.DDSHeader, *bcn.DDSHeaderDX10, error) {
	header, err := bcn.ReadDDSHeader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading DDS header: %w", ErrDecode, err)
	}

	dx10, err := bcn.ReadDDSHeaderDX10(r, header)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading DDS DX10 header: %w", ErrDecode, err)
	}

	return header, dx10, nil
}

// ddsFormat maps the pixel format of a DDS header onto a bcn format. The
// second result names the format for error messages.
func ddsFormat(header *bcn.DDSHeader, dx10 *bcn.DDSHeaderDX10) (bcn.Format, string) {
	if dx10 != nil {
		name := fmt.Sprintf("DXGI %d", dx10.DXGIFormat)
		switch dx10.DXGIFormat {
		case 71:
			return bcn.FormatDXT1, name
		case 74:
			return bcn.FormatDXT3, name
		case 77:
			return bcn.FormatDXT5, name
		case 80:
			return bcn.FormatBC4, name
		case 83:
			return bcn.FormatBC5, name
		case 87:
			return bcn.FormatBGRA8, name
		case 28:
			return bcn.FormatRGBA8, name
		}
		return bcn.FormatUnknown, name
	}

	pf := header.PixelFormat
	if pf.Flags&bcn.DDSPFFourCC != 0 {
		fourCC := string([]byte{
			byte(pf.FourCC),
			byte(pf.FourCC >> 8),
			byte(pf.FourCC >> 16),
			byte(pf.FourCC >> 24),
		})
		switch fourCC {
		case "DXT1":
			return bcn.FormatDXT1, fourCC
		case "DXT2", "DXT3":
			return bcn.FormatDXT3, fourCC
		case "DXT4", "DXT5":
			return bcn.FormatDXT5, fourCC
		case "ATI1", "BC4U", "BC4S":
			return bcn.FormatBC4, fourCC
		case "ATI2", "BC5U", "BC5S":
			return bcn.FormatBC5, fourCC
		}
		return bcn.FormatUnknown, fourCC
	}

	if pf.Flags&bcn.DDSPFRGB != 0 && pf.Flags&bcn.DDSPFAlphaPixels != 0 && pf.RGBBitCount == 32 {
		switch {
		case pf.RBitMask == 0x000000ff && pf.BBitMask == 0x00ff0000:
			return bcn.FormatRGBA8, "RGBA8"
		case pf.RBitMask == 0x00ff0000 && pf.BBitMask == 0x000000ff:
			return bcn.FormatBGRA8, "BGRA8"
		}
	}

	return bcn.FormatUnknown, fmt.Sprintf("flags 0x%x, %d bpp", pf.Flags, pf.RGBBitCount)
}

// ddsDataLength is the byte size of one mip level: 4x4 blocks for BCn,
// four bytes per pixel otherwise.
func ddsDataLength(format bcn.Format, width, height int) int {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	switch format {
	case bcn.FormatDXT1, bcn.FormatBC4:
		return blocksW * blocksH * 8
	case bcn.FormatDXT3, bcn.FormatDXT5, bcn.FormatBC5:
		return blocksW * blocksH * 16
	default:
		return width * height * 4
	}
}
