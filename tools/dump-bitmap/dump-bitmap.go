package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"aslak.net/dump-bitmap/dump"
)

func newRootCommand(cfg dump.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "dump-bitmap",
		Short: "Write img.bmp as lines of hex byte literals to img.dump",
		Long: `Loads img.bmp from the working directory, re-encodes it as a BMP and
writes the bytes to img.dump, ten 0x.. literals per line. Any arguments are
ignored.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpBitmap(cfg)
		},
	}
}

func dumpBitmap(cfg dump.Config) error {
	log.WithFields(logrus.Fields{
		"input":  cfg.InputPath,
		"output": cfg.OutputPath,
		"trim":   cfg.Trim,
	}).Debug("dumping bitmap")

	res, err := dump.Run(cfg)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"format":      res.Format,
		"width":       res.Header.Width,
		"height":      res.Header.Height,
		"bpp":         res.Header.BitsPerPixel,
		"data_offset": res.Header.DataOffset,
		"bytes":       res.Bytes,
		"lines":       res.Lines,
	}).Infof("wrote %s", cfg.OutputPath)

	return nil
}

func main() {
	setupLogging(logrus.InfoLevel, os.Stderr)

	if err := newRootCommand(dump.DefaultConfig()).Execute(); err != nil {
		log.WithError(err).Error("dump failed")
		os.Exit(1)
	}
}
