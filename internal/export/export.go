// Package export renders the environment a shell needs to drive restic
// against an rclone-backed repository, as a series of export statements.
package export

import (
	"fmt"
	"io"

	"github.com/tomruk/resticenv/internal/backup/provider"
	"github.com/tomruk/resticenv/internal/config"
)

type Env struct {
	Config *config.Config
	Repo   string
}

// Render writes the export statements the caller is expected to eval.
// Line order and separators are fixed; only the RESTIC_CMD value is quoted.
func (e *Env) Render(w io.Writer) error {
	var (
		info   = &e.Config.Information
		restic = provider.NewRestic(
			e.Config.Binaries.Restic,
			info.RcloneConnectionName,
			info.BucketName,
			info.ClientName,
			info.ServerName,
		)
	)

	lines := []struct {
		name  string
		value string
		quote bool
	}{
		{"RCLONE_CONNECTION_NAME", info.RcloneConnectionName, false},
		{"CLIENT_NAME", info.ClientName, false},
		{"BUCKET_NAME", info.BucketName, false},
		{"SERVER_NAME", info.ServerName, false},
		{"RESTIC_REPO_NAME", e.Repo, false},
		{"RESTIC_CMD", restic.Command(e.Repo), true},
	}

	for _, line := range lines {
		var err error
		if line.quote {
			_, err = fmt.Fprintf(w, "export %s=\"%s\"\n", line.name, line.value)
		} else {
			_, err = fmt.Fprintf(w, "export %s=%s\n", line.name, line.value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
