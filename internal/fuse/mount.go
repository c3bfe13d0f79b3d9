//go:build !linux

package fuse

import (
	"fmt"

	"github.com/egasimus/hfedisk/internal/hfe"
	"github.com/egasimus/hfedisk/internal/logger"
)

func Mount(mountpoint string, disk *hfe.Disk, log *logger.Logger) error {
	return fmt.Errorf("FUSE mount is only supported on Linux")
}
