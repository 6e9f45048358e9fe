// Package sound resolves the static event-to-sound-file mapping.
package sound

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/anthoai97/hookchime/internal/event"
)

// Sound files shipped alongside the binary, under sounds/.
const (
	InputFile    = "input-needed.ogg"
	CompleteFile = "complete.ogg"
)

// Mapping is a fixed association of events to sound file paths.
// It is built once per invocation and never mutated.
type Mapping map[event.Event]string

// NewMapping builds the mapping for the given sounds directory.
func NewMapping(dir string) Mapping {
	return Mapping{
		event.InputNeeded:  filepath.Join(dir, InputFile),
		event.TaskComplete: filepath.Join(dir, CompleteFile),
	}
}

// DefaultMapping resolves the sounds directory co-located with the
// running executable. Installation location, not working directory,
// determines where the assets live.
func DefaultMapping() (Mapping, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return NewMapping(filepath.Join(filepath.Dir(exe), "sounds")), nil
}

// Path returns the sound file for ev.
func (m Mapping) Path(ev event.Event) string {
	return m[ev]
}
