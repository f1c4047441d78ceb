package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/dayslider/internal/config"
	"github.com/ja-he/dayslider/internal/model"
	"github.com/ja-he/dayslider/internal/potatolog"
	"github.com/ja-he/dayslider/internal/scroll"
	"github.com/ja-he/dayslider/internal/slider"
	"github.com/ja-he/dayslider/internal/storage"
	"github.com/ja-he/dayslider/internal/styling"
	"github.com/ja-he/dayslider/internal/tui"
)

// PickCommand is the command `pick`, which shows the picker in the terminal
// and prints the picked instant.
type PickCommand struct {
	Preset         string `short:"s" long:"preset" description:"Select the preset of wheels to show (overrides config.yaml)" value-name:"<PRESET>"`
	Time           string `short:"t" long:"time" description:"The initial instant ('YYYY-MM-DD', 'YYYY-MM-DD HH:MM', RFC 3339 or 'now')" value-name:"<TIME>"`
	Min            string `long:"min" description:"The earliest selectable instant" value-name:"<TIME>"`
	Max            string `long:"max" description:"The latest selectable instant" value-name:"<TIME>"`
	MinuteInterval int    `short:"i" long:"minute-interval" description:"Pick minutes in steps of this many (must divide 60)" value-name:"<MINUTES>"`
	Location       string `long:"location" description:"The time zone to pick in, e.g. 'Europe/Berlin' (default: local)" value-name:"<ZONE>"`
	Restore        bool   `short:"r" long:"restore" description:"Start at the instant picked last (unless --time is given)"`
	Format         string `short:"f" long:"format" description:"The Go time layout to print the picked instant in" default:"2006-01-02T15:04:05Z07:00" value-name:"<LAYOUT>"`

	Theme         string `long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml)"`
	Debug         bool   `long:"debug" description:"Fail hard on inconsistent time units"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Execute executes the pick command.
// (This gets called by `go-flags` when `pick` is provided on the command line)
func (command *PickCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, &potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = &potatolog.GlobalMemoryLogReaderWriter
	}
	session := uuid.NewString()
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Str("session", session).Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	theme := themeFromFlag(command.Theme)
	envData := readEnv()
	configData, err := readConfig(envData, theme)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't read config")
	}
	command.applyTo(&configData.Slider)

	params, err := command.sliderParams(configData, envData, time.Now())
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("invalid picker setup")
	}

	stylesheet, err := styling.NewStylesheetFromConfig(configData.Stylesheet)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("invalid stylesheet")
	}

	tickInterval, err := time.ParseDuration(configData.Scroll.TickInterval)
	if err != nil {
		stderrLogger.Fatal().Err(err).Str("tick-interval", configData.Scroll.TickInterval).Msg("can't parse tick interval")
	}

	screenHandler, err := tui.NewTUIScreenHandler()
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("could not initialize screen")
	}
	_, _, w, _ := screenHandler.Dimensions()
	params.ViewportWidth = w - 2*marginX

	s, err := slider.New(params)
	if err != nil {
		screenHandler.Fini()
		stderrLogger.Fatal().Err(err).Msg("could not set up picker")
	}

	controller, err := NewController(ControllerParams{
		Slider:       s,
		Stylesheet:   stylesheet,
		Bindings:     configData.Input,
		TickInterval: tickInterval,
		Log:          &potatolog.GlobalMemoryLogReaderWriter,
	}, screenHandler)
	if err != nil {
		screenHandler.Fini()
		stderrLogger.Fatal().Err(err).Msg("could not set up controller")
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	result := controller.Run()

	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))
	if !result.Confirmed {
		return fmt.Errorf("no instant picked")
	}

	stateFile := storage.NewStateFile(envData.BaseDirPath)
	if err := stateFile.Write(storage.NewState(result.Time, s.MinuteInterval(), session)); err != nil {
		log.Warn().Err(err).Msg("could not remember picked instant")
	}

	fmt.Println(result.Time.Format(command.Format))
	return nil
}

// applyTo overrides the configuration with the flags given.
func (command *PickCommand) applyTo(c *config.Slider) {
	if command.Preset != "" {
		c.Preset = command.Preset
		c.Wheels = nil
	}
	if command.MinuteInterval != 0 {
		c.MinuteInterval = command.MinuteInterval
	}
	if command.Location != "" {
		c.Location = command.Location
	}
}

// sliderParams determines initial instant, bounds and physics of the picker.
// The viewport width is left for the caller to set.
func (command *PickCommand) sliderParams(configData config.Config, envData EnvData, now time.Time) (slider.Params, error) {
	loc, err := loadLocation(configData.Slider.Location)
	if err != nil {
		return slider.Params{}, err
	}

	initial, err := parseInstant(command.Time, loc, now)
	if err != nil {
		return slider.Params{}, fmt.Errorf("could not parse initial time (%w)", err)
	}
	if command.Restore && command.Time == "" {
		state, err := storage.NewStateFile(envData.BaseDirPath).Read()
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("could not restore last picked instant")
		case state == nil:
			log.Info().Msg("no instant picked yet, not restoring")
		default:
			initial = state.Time(loc)
			if configData.Slider.MinuteInterval == 0 {
				configData.Slider.MinuteInterval = state.MinuteInterval
			}
			log.Debug().Str("previous-session", state.Session).Msg("restored last picked instant")
		}
	}

	params := slider.Params{
		Config:  configData.Slider,
		Initial: initial,
		Physics: scroll.Physics{
			Deceleration:     configData.Scroll.Deceleration,
			MinFlingVelocity: configData.Scroll.MinFlingVelocity,
			MaxFlingVelocity: configData.Scroll.MaxFlingVelocity,
		},
		Suntimes: envData.Suntimes,
		Debug:    command.Debug,
	}
	if command.Min != "" {
		min, err := model.ParseDateAndTime(command.Min, loc)
		if err != nil {
			return slider.Params{}, fmt.Errorf("could not parse minimum (%w)", err)
		}
		params.Min = &min
	}
	if command.Max != "" {
		max, err := model.ParseDateAndTime(command.Max, loc)
		if err != nil {
			return slider.Params{}, fmt.Errorf("could not parse maximum (%w)", err)
		}
		params.Max = &max
	}
	return params, nil
}
