package cli

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/dayslider/internal/config"
	"github.com/ja-he/dayslider/internal/model"
)

// EnvData is the data taken from the environment.
type EnvData struct {
	BaseDirPath string

	// Suntimes is set if a position is given via LATITUDE and LONGITUDE.
	Suntimes *model.SuntimesProvider
}

// readEnv reads DAYSLIDER_HOME (defaulting to ~/.config/dayslider), LATITUDE
// and LONGITUDE.
func readEnv() EnvData {
	var envData EnvData

	home := os.Getenv("DAYSLIDER_HOME")
	if home == "" {
		envData.BaseDirPath = path.Join(os.Getenv("HOME"), ".config", "dayslider")
	} else {
		envData.BaseDirPath = strings.TrimRight(home, "/")
	}

	latStr, lonStr := os.Getenv("LATITUDE"), os.Getenv("LONGITUDE")
	if latStr != "" && lonStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			log.Warn().Str("latitude", latStr).Str("longitude", lonStr).Msg("could not parse position, not showing night hours")
		} else {
			envData.Suntimes = &model.SuntimesProvider{Latitude: lat, Longitude: lon}
		}
	}

	return envData
}

func themeFromFlag(theme string) config.ColorschemeType {
	switch theme {
	case "light":
		return config.Light
	default:
		return config.Dark
	}
}

// readConfig reads the config file in the base directory, augmenting the
// defaults for the given theme. A missing file yields the defaults.
func readConfig(envData EnvData, theme config.ColorschemeType) (config.Config, error) {
	filename := path.Join(envData.BaseDirPath, "config.yaml")
	yamlData, err := os.ReadFile(filename)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config.Config{}, fmt.Errorf("can't read config file '%s' (%w)", filename, err)
		}
		log.Debug().Str("file", filename).Msg("no config file, using defaults")
		yamlData = []byte{}
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return config.Config{}, fmt.Errorf("can't parse config file '%s' (%w)", filename, err)
	}
	return configData, nil
}

// parseInstant parses an instant given on the command line. "now" and the
// empty string give the current time.
func parseInstant(s string, loc *time.Location, now time.Time) (time.Time, error) {
	if s == "" || s == "now" {
		return now.In(loc), nil
	}
	return model.ParseDateAndTime(s, loc)
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("could not load location '%s' (%w)", name, err)
	}
	return loc, nil
}
