// Command damagedemo animates bouncing boxes through a damage.Driver and
// reports how many frames were presented with partial damage.
//
// The scene is drawn as terminal cells, so the terminal backend is the
// default. -backend auto opens the highest priority backend instead; a GLFW
// window then presents the same damage without content.
//
//	damagedemo -buffers 3 -log demo.log
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gogpu/damage"
	"github.com/gogpu/damage/backend/term"
	"github.com/gogpu/damage/surface"
)

func main() {
	var (
		backendName = flag.String("backend", sceneBackend, `presentation backend, "auto" selects the best available`)
		configPath  = flag.String("config", "", "TOML driver configuration file")
		frames      = flag.Int("frames", 0, "number of frames to render, 0 runs until quit")
		fps         = flag.Int("fps", 30, "frames per second")
		buffers     = flag.Int("buffers", 0, "swap chain length for backends that manage their own buffers")
		noAge       = flag.Bool("no-age", false, "hide the buffer age capability")
		boxes       = flag.Int("boxes", 3, "number of bouncing boxes")
		logPath     = flag.String("log", "", "write debug logs to this file")
		list        = flag.Bool("list", false, "list registered backends and exit")
	)
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(surface.List(), "\n"))
		return
	}

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("damagedemo: %v", err)
		}
		defer f.Close()
		damage.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	stats, err := run(runOptions{
		backend: *backendName,
		config:  *configPath,
		frames:  *frames,
		fps:     *fps,
		boxes:   *boxes,
		surface: surface.Options{Title: "damagedemo", Buffers: *buffers, DisableBufferAge: *noAge},
	})
	if err != nil {
		log.Fatalf("damagedemo: %v", err)
	}
	fmt.Printf("acquired %d, presented %d, dropped %d, fallback ages %d\n",
		stats.Acquired, stats.Presented, stats.Dropped, stats.FallbackAges)
}

type runOptions struct {
	backend string
	config  string
	frames  int
	fps     int
	boxes   int
	surface surface.Options
}

func run(opts runOptions) (damage.Stats, error) {
	cfg := damage.DefaultConfig()
	if opts.config != "" {
		var err error
		if cfg, err = damage.LoadConfig(opts.config); err != nil {
			return damage.Stats{}, err
		}
	}
	opts.surface.Width, opts.surface.Height = cfg.Width, cfg.Height

	b, err := openBackend(surface.Default(), opts.backend, opts.surface)
	if err != nil {
		return damage.Stats{}, err
	}
	defer b.Close()

	width, height := b.Size()
	d, err := damage.NewDriver(surface.HooksFor(b),
		damage.WithConfig(cfg),
		damage.WithSurfaceSize(width, height))
	if err != nil {
		return damage.Stats{}, err
	}

	sc := newScene(width, height, opts.boxes)
	if err := animate(d, b, sc, opts.frames, opts.fps); err != nil {
		return d.Stats(), err
	}
	return d.Stats(), nil
}

// sceneBackend is the backend whose targets the scene draws into.
const sceneBackend = "term"

// openBackend opens the named backend of reg. An empty name selects
// sceneBackend and "auto" the best available backend.
func openBackend(reg *surface.Registry, name string, opts surface.Options) (surface.Backend, error) {
	switch name {
	case "":
		name = sceneBackend
	case "auto":
		b, err := reg.NewBackend(opts)
		if err != nil {
			return nil, err
		}
		if !drawsInto(b) {
			damage.Logger().Warn("damagedemo: scene cannot draw into the selected backend, frames present without content")
		}
		return b, nil
	}
	return reg.NewBackendByName(name, opts)
}

// drawsInto reports whether the scene renders content on b.
func drawsInto(b surface.Backend) bool {
	_, ok := b.(*term.Surface)
	return ok
}

// animate renders frames until the count is reached or the user closes
// the backend. Failed presents are logged and the animation goes on.
func animate(d *damage.Driver, b surface.Backend, sc *scene, frames, fps int) error {
	var ticker *time.Ticker
	if fps > 0 {
		ticker = time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()
	}
	closer, _ := b.(surface.CloseRequester)

	for n := 0; frames == 0 || n < frames; n++ {
		if closer != nil && closer.CloseRequested() {
			return nil
		}

		if w, h := b.Size(); w != sc.width || h != sc.height {
			if err := d.Resize(w, h); err != nil {
				return err
			}
			sc.resize(w, h)
		}
		if n > 0 {
			sc.step()
		}

		if err := d.RenderFrame(sc); err != nil {
			if !errors.Is(err, damage.ErrPresentFailed) {
				return err
			}
			// The frame was dropped: repaint its damage next time.
			sc.dirty.InvalidateAll()
		}

		if ticker != nil {
			<-ticker.C
		}
	}
	return nil
}
