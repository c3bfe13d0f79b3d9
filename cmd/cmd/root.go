package cmd

import (
	"github.com/egasimus/hfedisk/internal/env"
	"github.com/egasimus/hfedisk/internal/hfe"
	"github.com/egasimus/hfedisk/internal/image"
	"github.com/egasimus/hfedisk/internal/logger"
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   env.AppName,
		Short: env.AppName + " - HFE floppy disk image inspector",
	}

	rootCmd.PersistentFlags().String("log-level", "INFO", "minimum log level (DEBUG, INFO, WARN, ERROR)")

	rootCmd.AddCommand(
		DefineInfoCommand(),
		DefineDumpCommand(),
		DefineExtractCommand(),
		DefineMountCommand(),
		DefineVersionCommand(),
	)
	return rootCmd
}

func Execute() error {
	return NewRootCommand().Execute()
}

// newLogger writes to stderr so that command output can be piped.
func newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")

	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	return logger.New(cmd.ErrOrStderr(), level), nil
}

// loadDisk reads and decodes the image at path. The returned image must be
// closed by the caller.
func loadDisk(path string, log *logger.Logger) (*image.Image, *hfe.Disk, error) {
	img, err := image.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if img.Compressed {
		log.Debugf("decompressed %s to %d bytes", path, img.Size())
	}

	disk, err := img.Decode()
	if err != nil {
		img.Close()
		return nil, nil, err
	}

	log.Debugf("decoded %d tracks from %s", len(disk.Tracks), path)
	return img, disk, nil
}
