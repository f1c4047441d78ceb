// Package cli provides the command-line interface for dayslider.
package cli

// CommandLineOpts are the options and commands available on the command line,
// for `go-flags` to parse command line args into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	PickCommand    PickCommand    `command:"pick" description:"Pick an instant on a set of scrolling wheels" subcommands-optional:"true"`
	LabelCommand   LabelCommand   `command:"label" description:"Print the labeled time units around an instant" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" description:"Show the program version" subcommands-optional:"true"`
}

// Opts are the parsed command line options.
var Opts CommandLineOpts
