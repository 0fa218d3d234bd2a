package dump

import (
	"bytes"
	"encoding/hex"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

type lineCase struct {
	Name     string   `yaml:"name"`
	Input    string   `yaml:"input"`
	Artifact []string `yaml:"artifact"`
	Compat   []string `yaml:"compat"`
	Double   []string `yaml:"double"`
}

func loadLineCases(t *testing.T) []lineCase {
	t.Helper()
	data, err := os.ReadFile("testdata/lines.yaml")
	require.NoError(t, err)

	var cases []lineCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)
	return cases
}

func TestLines(t *testing.T) {
	for _, tc := range loadLineCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			buf, err := hex.DecodeString(tc.Input)
			require.NoError(t, err)

			for _, mode := range []struct {
				trim TrimMode
				want []string
			}{
				{TrimArtifact, tc.Artifact},
				{TrimCompat, tc.Compat},
				{TrimDouble, tc.Double},
			} {
				got := Lines(buf, DefaultGroupSize, mode.trim)
				if len(mode.want) == 0 {
					assert.Empty(t, got, mode.trim.String())
					continue
				}
				assert.Equal(t, mode.want, got, mode.trim.String())
			}
		})
	}
}

func TestSplitPartition(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 19, 20, 21, 58, 100} {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = byte(i)
		}

		groups := Split(buf, DefaultGroupSize)
		assert.Len(t, groups, (n+9)/10, "len %d", n)

		var joined []byte
		for i, g := range groups {
			if i < len(groups)-1 {
				assert.Len(t, g, 10)
			} else {
				want := n % 10
				if want == 0 {
					want = 10
				}
				assert.Len(t, g, want, "last group of %d", n)
			}
			joined = append(joined, g...)
		}
		assert.Equal(t, buf, joined)
	}
}

func TestSplitDoesNotShareCapacity(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	groups := Split(buf, 2)
	groups[0] = append(groups[0], 9)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, buf)
}

func TestFormatLine(t *testing.T) {
	assert.Equal(t, "", FormatLine(nil))
	assert.Equal(t, "0x05", FormatLine([]byte{5}))
	assert.Equal(t, "0xff", FormatLine([]byte{255}))
	assert.Equal(t, "0x00, 0x0a, 0xa0", FormatLine([]byte{0, 10, 160}))
}

func TestTrimLast(t *testing.T) {
	assert.Equal(t, "0x01, 0x02", trimLast("0x01, 0x02, ", TrimArtifact))
	assert.Equal(t, "0x01, 0x02", trimLast("0x01, 0x02", TrimArtifact))
	assert.Equal(t, "0x01, 0x02", trimLast("0x01, 0x02,", TrimCompat))
	assert.Equal(t, "0x01, 0x02", trimLast("0x01, 0x02", TrimCompat))
	assert.Equal(t, "0x01, 0x", trimLast("0x01, 0x02", TrimDouble))
	assert.Equal(t, "0x01, 0x02", trimLast("0x01, 0x02, ", TrimDouble))
	assert.Equal(t, "", trimLast("x", TrimDouble))
}

func TestCompatLinesFormArrayBody(t *testing.T) {
	buf := make([]byte, 35)
	for i := range buf {
		buf[i] = byte(i * 7)
	}

	lines := Lines(buf, DefaultGroupSize, TrimCompat)
	require.Len(t, lines, 4)
	for _, line := range lines[:len(lines)-1] {
		assert.True(t, strings.HasSuffix(line, ","), line)
	}
	assert.Equal(t, "0xd2, 0xd9, 0xe0, 0xe7, 0xee", lines[len(lines)-1])
	assert.Equal(t, FormatLine(buf), strings.Join(lines, " "))
}

func TestParseRoundTrip(t *testing.T) {
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(255 - i)
	}

	var out bytes.Buffer
	require.NoError(t, WriteLines(&out, Lines(buf, DefaultGroupSize, TrimArtifact)))

	groups, err := Parse(&out)
	require.NoError(t, err)
	require.Len(t, groups, 26)

	var joined []byte
	for _, g := range groups[:len(groups)-1] {
		assert.Len(t, g, 10)
		joined = append(joined, g...)
	}
	joined = append(joined, groups[len(groups)-1]...)
	assert.Len(t, groups[len(groups)-1], 6)
	assert.Equal(t, buf, joined)
}

func TestParseCompat(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	var out bytes.Buffer
	require.NoError(t, WriteLines(&out, Lines(buf, DefaultGroupSize, TrimCompat)))

	groups, err := Parse(&out)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, {11, 12}}, groups)
}

func TestParseDoubleLastLine(t *testing.T) {
	lines := Lines([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, DefaultGroupSize, TrimDouble)

	var out bytes.Buffer
	require.NoError(t, WriteLines(&out, lines))

	_, err := Parse(strings.NewReader(out.String()))
	assert.True(t, errors.Is(err, ErrMalformedLine), "got %v", err)

	groups, err := Parse(strings.NewReader(lines[0] + "\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}, groups)
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"05", "0x5", "0xzz", "0x01,0x02", "0x01, 0x100", "\n"} {
		_, err := Parse(strings.NewReader(in))
		assert.True(t, errors.Is(err, ErrMalformedLine), "%q: got %v", in, err)
	}
}
