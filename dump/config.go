package dump

const (
	// DefaultInputPath is read relative to the working directory.
	DefaultInputPath = "img.bmp"
	// DefaultOutputPath is written relative to the working directory.
	DefaultOutputPath = "img.dump"
	// DefaultGroupSize is the number of bytes per output line.
	DefaultGroupSize = 10
)

// TrimMode selects how line ends are written, the last line in particular.
type TrimMode int

const (
	// TrimArtifact drops a trailing ", " from the last line only when one is
	// present. Lines are formatted without one, so the dump round-trips.
	TrimArtifact TrimMode = iota
	// TrimCompat matches the legacy dumper: every line but the last ends in
	// ",", so the lines form the body of a C array initializer.
	TrimCompat
	// TrimDouble always drops the last two characters of the last line. This
	// loses the final hex digits and exists only to reproduce dumps made that
	// way.
	TrimDouble
)

func (m TrimMode) String() string {
	switch m {
	case TrimArtifact:
		return "artifact"
	case TrimCompat:
		return "compat"
	case TrimDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Config holds the paths and layout of a dump. Zero fields take defaults.
type Config struct {
	InputPath  string
	OutputPath string
	GroupSize  int
	Trim       TrimMode
}

// DefaultConfig returns the fixed img.bmp -> img.dump configuration.
func DefaultConfig() Config {
	return Config{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
		GroupSize:  DefaultGroupSize,
		Trim:       TrimArtifact,
	}
}

func (c Config) withDefaults() Config {
	if c.InputPath == "" {
		c.InputPath = DefaultInputPath
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.GroupSize <= 0 {
		c.GroupSize = DefaultGroupSize
	}
	return c
}
