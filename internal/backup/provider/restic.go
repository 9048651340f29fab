package provider

import (
	"fmt"
	"os/exec"

	"github.com/mattn/go-shellwords"
)

type Restic struct {
	binary     string
	connection string
	bucket     string
	client     string
	server     string
}

func NewRestic(binary, connection, bucket, client, server string) *Restic {
	return &Restic{
		binary:     binary,
		connection: connection,
		bucket:     bucket,
		client:     client,
		server:     server,
	}
}

// RepoLocation builds the rclone-backed repository location:
// rclone:<connection>:<bucket>/<client>/<server>/<repo>
func (r *Restic) RepoLocation(repo string) string {
	return fmt.Sprintf("rclone:%s:%s/%s/%s/%s", r.connection, r.bucket, r.client, r.server, repo)
}

func (r *Restic) Command(repo string) string {
	return fmt.Sprintf("%s -r %s", r.binary, r.RepoLocation(repo))
}

// LookBinary resolves the configured restic binary to a path. The binary
// field may carry a wrapper (e.g. `sudo restic`), so it is split into shell
// words first and only the first word is looked up in PATH.
func (r *Restic) LookBinary() (string, error) {
	parser := shellwords.NewParser()
	parser.ParseBacktick = true
	parser.ParseEnv = true

	w, err := parser.Parse(r.binary)
	if err != nil {
		return "", err
	}
	if len(w) == 0 {
		return "", fmt.Errorf("empty restic binary in configuration")
	}
	return exec.LookPath(w[0])
}
