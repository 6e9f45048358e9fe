package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Decode reads a sound file into a fully buffered sample stream.
// Supports WAV, OGG, and MP3 formats, selected by file extension.
func Decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode sound: %w", err)
	}
	defer func() { _ = streamer.Close() }()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)

	return buffer, nil
}

// Output plays a decoded sound, blocking until playback completes.
type Output interface {
	Play(buf *beep.Buffer) error
}

// Speaker plays sounds through the host audio device.
type Speaker struct {
	// Volume control (0.0 to 1.0)
	volume float64
}

// NewSpeaker creates a speaker output with the given volume.
// Volume is clamped to the 0.0 to 1.0 range.
func NewSpeaker(volume float64) *Speaker {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Speaker{volume: volume}
}

// Volume returns the configured volume.
func (s *Speaker) Volume() float64 {
	return s.volume
}

// Play initializes the audio device at the buffer's native sample rate,
// plays it to completion, and releases the device before returning.
func (s *Speaker) Play(buf *beep.Buffer) error {
	if buf == nil || buf.Len() == 0 {
		return nil
	}

	sampleRate := buf.Format().SampleRate

	// Use a reasonable buffer size for low latency
	bufferSize := sampleRate.N(time.Millisecond * 100)

	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	defer speaker.Close()

	var streamer beep.Streamer = buf.Streamer(0, buf.Len())

	// Apply volume
	if s.volume < 1.0 {
		streamer = &effects.Volume{
			Streamer: streamer,
			Base:     2,
			Volume:   math.Log2(s.volume),
			Silent:   s.volume == 0,
		}
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() { close(done) })))
	<-done

	return nil
}
