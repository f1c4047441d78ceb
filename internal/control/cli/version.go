package cli

import (
	"fmt"
)

var version = "development"
var hash = "unknown"

// VersionCommand is the command `version`, which shows the version.
type VersionCommand struct {
}

// Execute executes the version command.
// (This gets called by `go-flags` when `version` is provided on the command
// line)
func (command *VersionCommand) Execute(args []string) error {
	fmt.Printf("%s (%s)\n", version, hash)
	return nil
}
