// Package audio decodes notification sound files and plays them through
// the host audio output. It uses the beep library for WAV, OGG, and MP3
// decoding and for speaker playback.
package audio
