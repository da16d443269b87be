package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue names recognized by Play. They match the names the simulation emits.
const (
	CueStartup = "startup"
	CueBounce  = "bounce"
	CueWarning = "warning_one_life"
	CueDeath   = "death"
	CueWin     = "win"
)

// Player mixes synthesized cues into a shared beep speaker.
// A Player whose speaker failed to initialize, or one created muted, plays
// nothing and every method is a cheap no-op.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

// NewPlayer initializes the speaker and returns a ready player.
// Initialization failure (no audio device, headless host) is not an error:
// the returned player is silent and err reports the cause for logging.
func NewPlayer(muted bool) (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}}
	if muted {
		return p, nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return p, err
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return p, nil
}

// Play triggers a named cue and returns immediately. Unknown names are
// ignored.
func (p *Player) Play(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	s := cueStreamer(name)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Wait blocks until every triggered cue has finished playing. Called once
// after the frame loop ends so the final cue is not cut off by process
// exit.
func (p *Player) Wait() {
	p.mu.Lock()
	enabled := p.enabled
	p.mu.Unlock()
	if !enabled {
		return
	}

	for {
		speaker.Lock()
		active := p.mixer.Len()
		speaker.Unlock()
		if active == 0 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// cueStreamer builds the streamer for a named cue.
func cueStreamer(name string) beep.Streamer {
	switch name {
	case CueStartup:
		return newGain(NewEnvelope(
			NewSweep(220, 880, 400*time.Millisecond, WaveSine, sampleRate),
			400*time.Millisecond, 10*time.Millisecond, 80*time.Millisecond, sampleRate), 0.5)
	case CueBounce:
		return newGain(NewEnvelope(
			NewTone(220, 90*time.Millisecond, WaveSquare, sampleRate),
			90*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond, sampleRate), 0.4)
	case CueWarning:
		return beep.Seq(
			newGain(NewEnvelope(
				NewTone(660, 120*time.Millisecond, WaveSquare, sampleRate),
				120*time.Millisecond, 2*time.Millisecond, 30*time.Millisecond, sampleRate), 0.5),
			newGain(NewEnvelope(
				NewTone(660, 120*time.Millisecond, WaveSquare, sampleRate),
				120*time.Millisecond, 2*time.Millisecond, 30*time.Millisecond, sampleRate), 0.5),
		)
	case CueDeath:
		return newGain(NewEnvelope(
			NewSweep(440, 55, 700*time.Millisecond, WaveSaw, sampleRate),
			700*time.Millisecond, 5*time.Millisecond, 200*time.Millisecond, sampleRate), 0.5)
	case CueWin:
		arpeggio := func(freq float64) beep.Streamer {
			return newGain(NewEnvelope(
				NewTone(freq, 150*time.Millisecond, WaveSine, sampleRate),
				150*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, sampleRate), 0.5)
		}
		return beep.Seq(arpeggio(523.25), arpeggio(659.25), arpeggio(783.99), arpeggio(1046.5))
	default:
		return nil
	}
}
