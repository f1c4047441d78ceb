package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ja-he/dayslider/internal/labeler"
	"github.com/ja-he/dayslider/internal/model"
)

// LabelCommand is the command `label`, which prints the time units a wheel
// would show around an instant, without any TUI.
type LabelCommand struct {
	Granularity    string `short:"g" long:"granularity" description:"The granularity of the units" value-name:"<GRANULARITY>" required:"true"`
	Format         string `short:"f" long:"format" description:"The label format (a Go time layout, for weeks a fmt format)" value-name:"<FORMAT>"`
	Time           string `short:"t" long:"time" description:"The instant ('YYYY-MM-DD', 'YYYY-MM-DD HH:MM', RFC 3339 or 'now')" value-name:"<TIME>"`
	Count          int    `short:"n" long:"count" description:"How many units to print either side of the instant's" default:"3" value-name:"<N>"`
	MinuteInterval int    `short:"i" long:"minute-interval" description:"Bucket minutes into steps of this many" value-name:"<MINUTES>"`
	Location       string `long:"location" description:"The time zone, e.g. 'Europe/Berlin' (default: local)" value-name:"<ZONE>"`
}

// Execute executes the label command.
// (This gets called by `go-flags` when `label` is provided on the command
// line)
func (command *LabelCommand) Execute(args []string) error {
	loc, err := loadLocation(command.Location)
	if err != nil {
		return err
	}
	at, err := parseInstant(command.Time, loc, time.Now())
	if err != nil {
		return fmt.Errorf("could not parse time (%w)", err)
	}
	if command.Count < 0 {
		return fmt.Errorf("negative count %d", command.Count)
	}

	l, err := labeler.New(command.Granularity, labeler.Options{
		Format:         command.Format,
		Location:       loc,
		MinuteInterval: command.MinuteInterval,
	})
	if err != nil {
		return fmt.Errorf("could not set up labeler (granularities: %s) (%w)", strings.Join(labeler.Granularities(), ", "), err)
	}

	printLabels(os.Stdout, labeler.Checked(l, false), at, command.Count)
	return nil
}

// printLabels prints the unit containing at, preceded and followed by count
// units each, one per line.
func printLabels(w io.Writer, l labeler.Labeler, at time.Time, count int) {
	center := l.LabelContaining(at)
	for k := -count; k <= count; k++ {
		o := center
		if k != 0 {
			o = l.StepAndLabel(at, k)
		}
		marker := " "
		if k == 0 {
			marker = ">"
		}
		fmt.Fprintf(w, "%s %-12s %s  %s\n", marker, o.Label, o.Start.Format(model.MillisLayout), o.End.Format(model.MillisLayout))
	}
}
