package dump

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	separator  = ", "
	hexPrefix  = "0x"
	terminator = ","
)

// Split partitions buf into consecutive groups of size bytes. The last group
// holds the remainder. The groups alias buf.
func Split(buf []byte, size int) [][]byte {
	if size <= 0 {
		size = DefaultGroupSize
	}

	groups := make([][]byte, 0, (len(buf)+size-1)/size)
	for i := 0; i < len(buf); i += size {
		end := i + size
		if end > len(buf) {
			end = len(buf)
		}
		groups = append(groups, buf[i:end:end])
	}

	return groups
}

// FormatLine renders group as "0x00, 0x01, ..." with lowercase hex digits.
func FormatLine(group []byte) string {
	var sb strings.Builder
	sb.Grow(len(group) * (len(hexPrefix) + 2 + len(separator)))
	for i, b := range group {
		if i > 0 {
			sb.WriteString(separator)
		}
		fmt.Fprintf(&sb, "0x%02x", b)
	}
	return sb.String()
}

// Lines splits buf into groups and formats one line per group. trim decides
// how each line ends.
func Lines(buf []byte, size int, trim TrimMode) []string {
	groups := Split(buf, size)
	lines := make([]string, len(groups))
	for i, g := range groups {
		lines[i] = FormatLine(g)
		if trim == TrimCompat && i < len(groups)-1 {
			lines[i] += terminator
		}
	}
	if n := len(lines); n > 0 {
		lines[n-1] = trimLast(lines[n-1], trim)
	}
	return lines
}

func trimLast(line string, trim TrimMode) string {
	switch trim {
	case TrimDouble:
		if len(line) < len(separator) {
			return ""
		}
		return line[:len(line)-len(separator)]
	case TrimCompat:
		return strings.TrimSuffix(line, terminator)
	default:
		return strings.TrimSuffix(line, separator)
	}
}

// Parse reads a dump back into its byte groups, one per line. A trailing ","
// on a line is accepted.
func Parse(r io.Reader) ([][]byte, error) {
	var groups [][]byte

	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		fields := strings.Split(strings.TrimSuffix(sc.Text(), terminator), separator)
		group := make([]byte, 0, len(fields))
		for _, f := range fields {
			if !strings.HasPrefix(f, hexPrefix) || len(f) != len(hexPrefix)+2 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, n, f)
			}
			v, err := strconv.ParseUint(f[len(hexPrefix):], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, n, err)
			}
			group = append(group, byte(v))
		}
		groups = append(groups, group)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
