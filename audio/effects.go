package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue timing
const (
	ReseedBlipDuration    = 40 * time.Millisecond
	ReseedGapDuration     = 30 * time.Millisecond
	GameOverSweepDuration = 600 * time.Millisecond
)

// sweepGenerator glides a sine wave from one frequency to another with a
// linear fade-out, then ends
type sweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a finite frequency sweep
func NewSweepGenerator(sr beep.SampleRate, from, to float64, duration time.Duration) beep.Streamer {
	return &sweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(duration),
	}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}

		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress
		sample := (1 - progress) * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}

// newVolume scales a streamer linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateReseedSound generates two short high blips announcing teleported killers
func CreateReseedSound(sr beep.SampleRate, vol float64) (beep.Streamer, error) {
	first, err := generators.SineTone(sr, 1320)
	if err != nil {
		return nil, err
	}
	second, err := generators.SineTone(sr, 1760)
	if err != nil {
		return nil, err
	}

	blip := sr.N(ReseedBlipDuration)
	seq := beep.Seq(
		beep.Take(blip, first),
		beep.Silence(sr.N(ReseedGapDuration)),
		beep.Take(blip, second),
	)
	return newVolume(seq, vol), nil
}

// CreateGameOverSound generates a falling tone
func CreateGameOverSound(sr beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(NewSweepGenerator(sr, 440, 110, GameOverSweepDuration), vol)
}
