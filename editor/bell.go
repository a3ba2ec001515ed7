package editor

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	bellSampleRate = beep.SampleRate(44100)
	bellFreq       = 220
	bellDuration   = 60 * time.Millisecond
)

// Bell plays a short low tone when an edit is rejected. Satisfies Feedback.
type Bell struct {
	ok bool
}

// NewBell initializes the speaker. Failure is expected on machines without
// audio; callers treat it as non-fatal and run without sound.
func NewBell() (*Bell, error) {
	if err := speaker.Init(bellSampleRate, bellSampleRate.N(time.Second/10)); err != nil {
		return nil, errors.Wrap(err, "speaker init")
	}
	return &Bell{ok: true}, nil
}

// Ring plays the rejection tone. Non-blocking; overlapping rings mix.
func (b *Bell) Ring() {
	if b == nil || !b.ok {
		return
	}
	tone, err := generators.SineTone(bellSampleRate, bellFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(bellSampleRate.N(bellDuration), tone))
}

// Close releases the speaker.
func (b *Bell) Close() {
	if b != nil && b.ok {
		speaker.Close()
		b.ok = false
	}
}
