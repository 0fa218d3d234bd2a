// Package dump writes the BMP encoding of an image as lines of hex byte
// literals, ten to a line. With TrimCompat the lines are the body of a C
// array initializer.
package dump

import "aslak.net/dump-bitmap/bitmap"

// Result describes a completed dump.
type Result struct {
	Format string
	Header bitmap.Header
	Bytes  int
	Lines  int
}

// Run loads cfg.InputPath, re-encodes it as BMP and writes the formatted
// bytes to cfg.OutputPath. Nothing is written when the input fails to load.
func Run(cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()

	img, format, err := bitmap.Load(cfg.InputPath)
	if err != nil {
		return nil, imageLoadError(err, "load %q", cfg.InputPath)
	}

	buf, err := bitmap.Encode(img)
	if err != nil {
		return nil, imageLoadError(err, "encode %q", cfg.InputPath)
	}

	hdr, err := bitmap.ReadHeader(buf)
	if err != nil {
		return nil, imageLoadError(err, "read header of %q", cfg.InputPath)
	}

	lines := Lines(buf, cfg.GroupSize, cfg.Trim)
	if err := Write(cfg.OutputPath, lines); err != nil {
		return nil, err
	}

	return &Result{
		Format: format,
		Header: hdr,
		Bytes:  len(buf),
		Lines:  len(lines),
	}, nil
}
