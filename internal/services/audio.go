package services

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/j-veylop/macwrap/internal/logger"
)

const cueTimeout = 10 * time.Second

// Player plays short sound cues in the background. Cues are looked up as
// <dir>/<name>.mp3 and played with afplay; when either is missing the
// system beep is used instead.
type Player struct {
	dir     string
	enabled bool
	afplay  func(ctx context.Context, path string) error
	beep    func() error
	wg      sync.WaitGroup
}

// NewPlayer creates a Player reading cues from dir.
func NewPlayer(dir string, enabled bool) *Player {
	return &Player{
		dir:     dir,
		enabled: enabled,
		afplay:  runAfplay,
		beep: func() error {
			return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
	}
}

// Play starts the named cue and returns immediately.
func (p *Player) Play(cue string) {
	if p == nil || !p.enabled || cue == "" {
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.play(cue)
	}()
}

// Wait blocks until every started cue has finished.
func (p *Player) Wait() {
	if p == nil {
		return
	}
	p.wg.Wait()
}

func (p *Player) play(cue string) {
	path := filepath.Join(p.dir, cue+".mp3")
	if _, err := os.Stat(path); err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), cueTimeout)
		defer cancel()
		if err := p.afplay(ctx, path); err == nil {
			return
		}
	}

	if err := p.beep(); err != nil {
		logger.Debug("Sound cue failed", "cue", cue, "error", err)
	}
}

func runAfplay(ctx context.Context, path string) error {
	bin, err := exec.LookPath("afplay")
	if err != nil {
		return err
	}
	return exec.CommandContext(ctx, bin, path).Run()
}
