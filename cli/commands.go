package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Generate  GenerateCmd  `cmd:"" help:"Generate a mock bank statement."`
	Templates TemplatesCmd `cmd:"" help:"List available institution templates."`
	Web       WebCmd       `cmd:"" help:"Start a local statement preview server."`
}
