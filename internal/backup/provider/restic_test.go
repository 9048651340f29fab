package provider

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResticRepoLocation(t *testing.T) {
	restic := NewRestic("/usr/bin/restic", "r1", "b1", "c1", "s1")
	require.Equal(t, "rclone:r1:b1/c1/s1/myrepo", restic.RepoLocation("myrepo"))
}

func TestResticCommand(t *testing.T) {
	restic := NewRestic("/usr/bin/restic", "r1", "b1", "c1", "s1")
	require.Equal(t, "/usr/bin/restic -r rclone:r1:b1/c1/s1/myrepo", restic.Command("myrepo"))

	restic = NewRestic("sudo restic", "remote", "backups", "acme", "web-1")
	require.Equal(t, "sudo restic -r rclone:remote:backups/acme/web-1/nightly", restic.Command("nightly"))
}

func TestLookBinaryEmpty(t *testing.T) {
	restic := NewRestic("", "r1", "b1", "c1", "s1")
	_, err := restic.LookBinary()
	require.Error(t, err)
}

func TestLookBinaryUnparsable(t *testing.T) {
	restic := NewRestic("restic 'unbalanced", "r1", "b1", "c1", "s1")
	_, err := restic.LookBinary()
	require.Error(t, err)
}
