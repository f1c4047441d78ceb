// Package storage persists the picker's state between runs.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/dayslider/internal/model"
)

// State is what is remembered of a pick.
type State struct {
	// TimeMillis is the picked instant in milliseconds since the Unix epoch.
	TimeMillis     int64  `yaml:"time-ms"`
	MinuteInterval int    `yaml:"minute-interval,omitempty"`
	Session        string `yaml:"session,omitempty"`
}

// NewState returns the state for the instant t.
func NewState(t time.Time, minuteInterval int, session string) State {
	return State{
		TimeMillis:     t.UnixMilli(),
		MinuteInterval: minuteInterval,
		Session:        session,
	}
}

// Time returns the picked instant in loc.
func (s State) Time(loc *time.Location) time.Time {
	return model.FromMillis(s.TimeMillis, loc)
}

// StateFile is a YAML file holding a State.
type StateFile struct {
	Path string

	mtx sync.Mutex
}

// NewStateFile returns the state file 'state.yaml' in the given directory.
func NewStateFile(dir string) *StateFile {
	return &StateFile{Path: path.Join(dir, "state.yaml")}
}

// Read reads the state from disk.
// A missing file is not an error; the returned state is nil then.
func (f *StateFile) Read() (*State, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read state file '%s' (%w)", f.Path, err)
	}

	s := State{}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("could not parse state file '%s' (%w)", f.Path, err)
	}
	return &s, nil
}

// Write writes the state to disk, creating the containing directory if
// needed.
// The file is replaced atomically, so readers never see a partial state.
func (f *StateFile) Write(s State) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not marshal state (%w)", err)
	}

	if err := os.MkdirAll(path.Dir(f.Path), 0755); err != nil {
		return fmt.Errorf("could not create directory for state file '%s' (%w)", f.Path, err)
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("could not write file '%s' (%w)", tmp, err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("could not move '%s' to '%s' (%w)", tmp, f.Path, err)
	}
	return nil
}
