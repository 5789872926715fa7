package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams s to the end and returns the sample count, failing on any
// sample outside [-1, 1] or when the stream exceeds limit samples
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				if buf[i][ch] < -1 || buf[i][ch] > 1 {
					t.Fatalf("sample %d out of range: %f", total+i, buf[i][ch])
				}
			}
		}
		total += n
		if !ok {
			return total
		}
		if total > limit {
			t.Fatalf("stream did not terminate within %d samples", limit)
		}
	}
}

func TestCuesTerminateInRange(t *testing.T) {
	for c := CueStop; c <= CueChime; c++ {
		t.Run(c.String(), func(t *testing.T) {
			s := Create(c, testRate, 1.0)
			if s == nil {
				t.Fatal("nil streamer")
			}
			n := drain(t, s, testRate.N(time.Second))
			if n == 0 {
				t.Error("cue produced no samples")
			}
		})
	}
}

func TestCreateUnknownCue(t *testing.T) {
	if Create(Cue(99), testRate, 1) != nil {
		t.Error("unknown cue returned a streamer")
	}
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)
	n := drain(t, osc, testRate.N(time.Second))
	if n != testRate.N(100*time.Millisecond) {
		t.Errorf("oscillator streamed %d samples, want %d", n, testRate.N(100*time.Millisecond))
	}
	if osc.Err() != nil {
		t.Errorf("Err = %v", osc.Err())
	}
}

func TestOscillatorSquareLevels(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, testRate)
	buf := make([][2]float64, 100)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 1 && buf[i][0] != -1 {
			t.Fatalf("square sample %d = %f", i, buf[i][0])
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	src := NewOscillator(0, d, WaveSquare, testRate) // constant 1.0
	env := NewEnvelope(src, d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d of %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("attack starts at %f, want 0", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("sustain level %f, want 1", mid)
	}
	if last := buf[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("release ends at %f", last)
	}

	if n, ok := env.Stream(buf); n != 0 || ok {
		t.Errorf("finished envelope streamed %d, %v", n, ok)
	}
}

func TestSpinGeneratorEndless(t *testing.T) {
	g := NewSpinGenerator(testRate)
	buf := make([][2]float64, testRate.N(time.Second))
	n, ok := g.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("spin streamed %d, %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if buf[i][0] < -1 || buf[i][0] > 1 {
			t.Fatalf("sample %d out of range", i)
		}
	}
}

func TestPlayerWithoutInit(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("player panicked without init: %v", r)
		}
	}()

	p := NewPlayer()
	p.Play(CueSplash)
	p.SpinStart()
	p.SpinStop()
	if p.Toggle() {
		t.Error("toggle from enabled returned true")
	}
	if p.Enabled() {
		t.Error("player still enabled")
	}
	p.Toggle()
	p.Close()
}

func TestToggleResumesSpin(t *testing.T) {
	// Wired by hand so the whir state is observable without a speaker
	p := NewPlayer()
	p.spin = &beep.Ctrl{Streamer: NewSpinGenerator(testRate), Paused: true}
	p.initialized = true

	p.SpinStart()
	if p.spin.Paused {
		t.Fatal("whir paused after SpinStart")
	}

	p.Toggle()
	if !p.spin.Paused {
		t.Error("whir still audible after mute")
	}

	p.Toggle()
	if p.spin.Paused {
		t.Error("whir not resumed on unmute mid-spin")
	}

	p.SpinStop()
	p.Toggle()
	p.Toggle()
	if !p.spin.Paused {
		t.Error("unmute after SpinStop restarted the whir")
	}
}
