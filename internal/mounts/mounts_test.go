package mounts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, content string) *ProcResolver {
	t.Helper()
	table := filepath.Join(t.TempDir(), "mounts")
	require.NoError(t, os.WriteFile(table, []byte(content), 0644))
	return &ProcResolver{Table: table}
}

func TestResolveLongestPrefixWins(t *testing.T) {
	r := writeTable(t, `/dev/sda2 / ext4 rw 0 0
/dev/sda1 /boot/efi vfat rw 0 0
proc /proc proc rw 0 0
`)

	disk, part, err := r.Resolve("/boot/efi/bootsync.toml")
	require.NoError(t, err)
	require.Equal(t, "/dev/sda", disk)
	require.Equal(t, "1", part)
}

func TestResolveFallsBackToRoot(t *testing.T) {
	r := writeTable(t, `/dev/sda2 / ext4 rw 0 0
/dev/sda1 /boot/efi vfat rw 0 0
`)

	disk, part, err := r.Resolve("/etc/bootsync.toml")
	require.NoError(t, err)
	require.Equal(t, "/dev/sda", disk)
	require.Equal(t, "2", part)
}

func TestResolveUnescapesSpacesInMountPoint(t *testing.T) {
	r := writeTable(t, `/dev/sdb1 /mnt/esp\040disk vfat rw 0 0
`)

	disk, part, err := r.Resolve("/mnt/esp disk/bootsync.toml")
	require.NoError(t, err)
	require.Equal(t, "/dev/sdb", disk)
	require.Equal(t, "1", part)
}

func TestResolveIgnoresNonDeviceMounts(t *testing.T) {
	r := writeTable(t, `tmpfs /run tmpfs rw 0 0
proc /proc proc rw 0 0
`)

	_, _, err := r.Resolve("/run/whatever")
	require.ErrorIs(t, err, ErrNoDevice)
}

func TestSplitDevice(t *testing.T) {
	tests := []struct {
		device string
		disk   string
		part   string
	}{
		{"/dev/sda1", "/dev/sda", "1"},
		{"/dev/sdb12", "/dev/sdb", "12"},
		{"/dev/nvme0n1p2", "/dev/nvme0n1", "2"},
		{"/dev/mmcblk0p1", "/dev/mmcblk0", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.device, func(t *testing.T) {
			disk, part, err := SplitDevice(tt.device)
			require.NoError(t, err)
			require.Equal(t, tt.disk, disk)
			require.Equal(t, tt.part, part)
		})
	}
}

func TestSplitDeviceWithoutPartitionNumber(t *testing.T) {
	_, _, err := SplitDevice("/dev/sda")
	require.ErrorIs(t, err, ErrNoPartition)
}

func TestResolveMissingTable(t *testing.T) {
	r := &ProcResolver{Table: filepath.Join(t.TempDir(), "absent")}
	_, _, err := r.Resolve("/boot")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNoDevice))
}
