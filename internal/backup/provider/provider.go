package provider

// Provider assembles command lines for a backup program. It never runs them:
// the rendered output is meant to be eval'ed by the calling shell.
type Provider interface {
	RepoLocation(repo string) string
	Command(repo string) string
	LookBinary() (string, error)
}
