package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tomruk/resticenv/internal/config"
)

func sampleConfig() *config.Config {
	return &config.Config{
		Information: config.Information{
			RcloneConnectionName: "r1",
			ClientName:           "c1",
			BucketName:           "b1",
			ServerName:           "s1",
		},
		Binaries: config.Binaries{Restic: "/usr/bin/restic"},
	}
}

func TestRender(t *testing.T) {
	e := &Env{Config: sampleConfig(), Repo: "myrepo"}

	var buf bytes.Buffer
	err := e.Render(&buf)
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)

	expected := []string{
		"export RCLONE_CONNECTION_NAME=r1",
		"export CLIENT_NAME=c1",
		"export BUCKET_NAME=b1",
		"export SERVER_NAME=s1",
		"export RESTIC_REPO_NAME=myrepo",
		`export RESTIC_CMD="/usr/bin/restic -r rclone:r1:b1/c1/s1/myrepo"`,
	}
	require.Equal(t, expected, lines)
}

func TestRenderRepoName(t *testing.T) {
	repos := []string{"a", "nightly", "documents-2024"}
	for _, repo := range repos {
		e := &Env{Config: sampleConfig(), Repo: repo}

		var buf bytes.Buffer
		err := e.Render(&buf)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 6)
		require.Equal(t, "export RESTIC_REPO_NAME="+repo, lines[4])
	}
}

func TestRenderIdempotent(t *testing.T) {
	e := &Env{Config: sampleConfig(), Repo: "myrepo"}

	var first, second bytes.Buffer
	require.NoError(t, e.Render(&first))
	require.NoError(t, e.Render(&second))
	require.Equal(t, first.String(), second.String())
}
