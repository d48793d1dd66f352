// Package mounts resolves which disk and partition back a filesystem path.
//
// efibootmgr needs an explicit --disk and --part for every invocation.
// When the caller does not supply them, bootsync derives both from the
// mount table: the mount point with the longest prefix match against the
// configuration file's path wins, and its device string is split into the
// parent disk and the partition number.
package mounts

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrNoDevice indicates no /dev-backed mount contains the given path.
	ErrNoDevice = errors.New("no mounted device contains path")

	// ErrNoPartition indicates the device string carries no partition number.
	ErrNoPartition = errors.New("could not identify the partition")
)

// Resolver resolves the disk and partition backing a path.
type Resolver interface {
	// Resolve returns the parent disk (e.g. /dev/sda) and partition number
	// (e.g. "1") for the device the path lives on.
	Resolve(path string) (disk, part string, err error)
}

// ProcResolver implements Resolver by parsing a mounts table in
// /proc/mounts format.
type ProcResolver struct {
	// Table is the path of the mounts file. Defaults to /proc/mounts.
	Table string
}

// NewProcResolver creates a ProcResolver reading /proc/mounts.
func NewProcResolver() *ProcResolver {
	return &ProcResolver{Table: "/proc/mounts"}
}

// Resolve finds the device whose mount point is the longest prefix of path
// and splits it into disk and partition number.
func (r *ProcResolver) Resolve(path string) (string, string, error) {
	data, err := os.ReadFile(r.Table)
	if err != nil {
		return "", "", fmt.Errorf("failed to read mount table: %w", err)
	}

	var device, prefix string
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || !strings.HasPrefix(fields[0], "/dev") {
			continue
		}
		// Mount points with spaces are octal-escaped in /proc/mounts.
		mount := strings.ReplaceAll(fields[1], `\040`, " ")
		if strings.HasPrefix(path, mount) && len(mount) > len(prefix) {
			prefix = mount
			device = fields[0]
		}
	}

	if device == "" {
		return "", "", fmt.Errorf("%w: %s", ErrNoDevice, path)
	}
	return SplitDevice(device)
}

// SplitDevice splits a partition device string into the parent disk and the
// partition number. The partition number is the trailing digit run; devices
// whose naming scheme separates disk and partition with "p" (nvme0n1p2,
// mmcblk0p1) have the separator stripped as well.
func SplitDevice(device string) (string, string, error) {
	i := len(device)
	for i > 0 && device[i-1] >= '0' && device[i-1] <= '9' {
		i--
	}
	if i == len(device) || i == 0 {
		return "", "", fmt.Errorf("%w: %s", ErrNoPartition, device)
	}

	disk, part := device[:i], device[i:]
	if strings.HasSuffix(disk, "p") && len(disk) > 1 && disk[len(disk)-2] >= '0' && disk[len(disk)-2] <= '9' {
		disk = disk[:len(disk)-1]
	}
	return disk, part, nil
}
