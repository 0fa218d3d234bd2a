package dump

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return errors.WithStack(err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.WithStack(err)
		}
	}
	return errors.Wrap(bw.Flush(), "flush")
}

// Write creates or truncates path and writes lines to it. The file is closed
// on every path.
func Write(path string, lines []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return outputWriteError(err, "create %q", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = outputWriteError(cerr, "close %q", path)
		}
	}()

	if err := WriteLines(f, lines); err != nil {
		return outputWriteError(err, "write %q", path)
	}

	return nil
}
