package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dropbar/component"
	"github.com/milk9111/dropbar/ecs"
	"github.com/milk9111/dropbar/ecs/entity"
	"github.com/milk9111/dropbar/ecs/systems"
	"github.com/milk9111/dropbar/prefabs"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

// Options are the startup settings read from the command line.
type Options struct {
	Width, Height float64
	SpecFile      string
	ScriptFile    string
	Debug         bool
	Watch         bool
}

type Game struct {
	opts Options
	cfg  component.Config

	world *ecs.World
	bar   ecs.Entity

	paused  bool
	pauseUI *ebitenui.UI

	watcher       *prefabs.Watcher
	clipboardInit bool
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{opts: opts}
	if err := g.reset(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("watch: disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// reset loads the bar file and rebuilds the world from scratch.
func (g *Game) reset() error {
	spec, err := prefabs.LoadDropBarSpec(g.opts.SpecFile)
	if err != nil {
		return err
	}
	cfg := spec.Config()

	world := ecs.NewWorld()
	bar, err := entity.BuildDropBar(world, cfg, g.opts.Width, g.opts.Height)
	if err != nil {
		return err
	}

	world.AddSystem(systems.NewInputSystem())
	if g.opts.ScriptFile != "" {
		src, err := prefabs.LoadScript(g.opts.ScriptFile)
		if err != nil {
			return fmt.Errorf("load script %s: %w", g.opts.ScriptFile, err)
		}
		st, err := systems.NewScriptTapSystem(g.opts.ScriptFile, src)
		if err != nil {
			return err
		}
		world.AddSystem(st)
	}
	world.AddSystem(systems.NewTapSystem())
	world.AddSystem(systems.NewAnimatorSystem(ebiten.TPS()))
	if g.opts.Debug {
		world.AddSystem(systems.NewEventLogSystem())
	}
	world.AddSystem(systems.NewRenderSystem())

	g.cfg = cfg
	g.world = world
	g.bar = bar
	g.paused = false
	return nil
}

func (g *Game) Update() error {
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.opts.Debug && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}

	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	g.world.Draw(screen)

	if g.opts.Debug {
		if db := g.world.GetDropBar(g.bar); db != nil {
			b := db.Renderer.Bar()
			ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f    node: %d    dir: %+d", ebiten.ActualFPS(), b.CurrIndex(), b.Dir()))
		}
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.opts.Width, g.opts.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Restart rebuilds the bar from its yaml file, keeping the old one on failure.
func (g *Game) Restart() {
	if err := g.reset(); err != nil {
		log.Printf("restart: %v", err)
	}
}

// Resume leaves the pause overlay.
func (g *Game) Resume() {
	g.paused = false
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("watch: %v", err)
		}
	default:
	}
	name, ok := g.watcher.Poll()
	if !ok {
		return
	}
	log.Printf("watch: %s changed, reloading", name)
	g.Restart()
}

func (g *Game) copySnapshot() {
	db := g.world.GetDropBar(g.bar)
	if db == nil {
		return
	}
	data, err := yaml.Marshal(db.Renderer.Bar().Snapshot())
	if err != nil {
		log.Printf("snapshot: marshal: %v", err)
		return
	}
	if !g.clipboardInit {
		if err := clipboard.Init(); err != nil {
			log.Printf("snapshot: clipboard unavailable: %v", err)
			log.Printf("snapshot:\n%s", data)
			return
		}
		g.clipboardInit = true
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("snapshot: copied %d bytes", len(data))
}
