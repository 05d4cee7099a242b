package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dropbar/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (event log, HUD, C copies state)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	specFile := flag.String("spec", prefabs.DefaultSpecFile, "bar spec file (prefabs/ on disk, then embedded)")
	scriptFile := flag.String("script", "", "tengo auto-tap script, e.g. "+prefabs.DefaultScriptFile)
	watch := flag.Bool("watch", false, "reload the bar file when files under prefabs/ change")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	// The surface size is read once; the layout does not follow resizes.
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("linked drop bar")

	game, err := NewGame(Options{
		Width:      float64(w),
		Height:     float64(h),
		SpecFile:   *specFile,
		ScriptFile: *scriptFile,
		Debug:      *debug,
		Watch:      *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
