package audio

import (
	"fmt"
	"io"
	"math/rand"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/germ-smash/internal/encounter"
)

const queueSize = 8

// Player plays effects on a single goroutine. Play never blocks the game
// loop; requests are dropped when the queue is full.
type Player struct {
	out    io.WriteCloser
	cmd    *exec.Cmd
	logger *log.Logger

	clips map[encounter.Sound][][]byte

	queue    chan encounter.Sound
	stop     chan struct{}
	loopDone chan struct{}
	wg       sync.WaitGroup // backend monitor

	stopped atomic.Bool
	muted   atomic.Bool
	silent  atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewPlayer starts the first available audio backend. Without one, or
// when cfg disables audio, the player is silent and Play is a no-op.
func NewPlayer(cfg Config) *Player {
	logger := log.Default().WithPrefix("audio")
	if !cfg.Enabled {
		return newSilentPlayer(logger)
	}

	backend, err := DetectBackend()
	if err != nil {
		logger.Info("running silent", "err", err)
		return newSilentPlayer(logger)
	}

	cmd := exec.Command(backend.Path, backend.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		logger.Warn("audio pipe failed", "backend", backend.Name, "err", err)
		return newSilentPlayer(logger)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		logger.Warn("audio backend failed to start", "backend", backend.Name, "err", err)
		return newSilentPlayer(logger)
	}

	p := NewPlayerWithWriter(stdin, cfg.Volume)
	p.cmd = cmd
	logger.Debug("audio backend started", "backend", backend.Name)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := cmd.Wait(); err != nil && !p.stopped.Load() {
			p.logger.Warn("audio backend exited", "err", err)
		}
		p.silent.Store(true)
	}()
	return p
}

func newSilentPlayer(logger *log.Logger) *Player {
	p := &Player{logger: logger}
	p.silent.Store(true)
	p.stopped.Store(true)
	return p
}

// NewPlayerWithWriter plays PCM into out. It renders every clip up front.
func NewPlayerWithWriter(out io.WriteCloser, volume float64) *Player {
	rng := rand.New(rand.NewSource(1))
	clips := make(map[encounter.Sound][][]byte)
	for _, s := range []encounter.Sound{encounter.SoundSmash, encounter.SoundWin, encounter.SoundFail} {
		for v := 0; v < variantsPerEffect; v++ {
			clips[s] = append(clips[s], Render(Synthesize(s, v, rng), volume))
		}
	}

	p := &Player{
		out:      out,
		logger:   log.Default().WithPrefix("audio"),
		clips:    clips,
		queue:    make(chan encounter.Sound, queueSize),
		stop:     make(chan struct{}),
		loopDone: make(chan struct{}),
	}
	go p.loop()
	return p
}

// PlaySound queues s. It reports whether the request was accepted.
func (p *Player) PlaySound(s encounter.Sound) bool {
	if p.stopped.Load() || p.muted.Load() || p.silent.Load() {
		return false
	}
	select {
	case p.queue <- s:
		return true
	default:
		p.dropped.Add(1)
		return false
	}
}

func (p *Player) loop() {
	defer close(p.loopDone)
	rng := rand.New(rand.NewSource(2))
	for {
		select {
		case s := <-p.queue:
			p.write(s, rng)
		case <-p.stop:
			// Finish what was already queued.
			for {
				select {
				case s := <-p.queue:
					p.write(s, rng)
				default:
					return
				}
			}
		}
	}
}

func (p *Player) write(s encounter.Sound, rng *rand.Rand) {
	if p.silent.Load() {
		return
	}
	variants := p.clips[s]
	if len(variants) == 0 {
		return
	}
	if _, err := p.out.Write(variants[rng.Intn(len(variants))]); err != nil {
		p.silent.Store(true)
		p.logger.Warn("audio disabled", "err", fmt.Errorf("%w: %v", ErrPipeClosed, err))
		return
	}
	p.played.Add(1)
}

// SetMuted toggles playback without stopping the backend.
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Muted reports whether playback is muted.
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Enabled reports whether sounds can currently be heard.
func (p *Player) Enabled() bool {
	return !p.stopped.Load() && !p.muted.Load() && !p.silent.Load()
}

// Stats returns the number of clips written and requests dropped.
func (p *Player) Stats() (played, dropped uint64) {
	return p.played.Load(), p.dropped.Load()
}

// Close flushes queued clips and shuts the backend down.
func (p *Player) Close() error {
	if !p.stopped.CompareAndSwap(false, true) {
		return nil
	}
	close(p.stop)
	<-p.loopDone

	var err error
	if p.out != nil {
		err = p.out.Close()
	}
	if p.cmd != nil && p.cmd.Process != nil {
		p.cmd.Process.Kill() //nolint:errcheck
	}
	p.wg.Wait()

	played, dropped := p.Stats()
	p.logger.Debug("audio closed", "played", played, "dropped", dropped)
	return err
}
