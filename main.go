package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and prefab hot reload")
	boardName := flag.String("board", "", "board name in prefabs/ (basename, .yaml optional)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	clip := false
	if *debug {
		if err := clipboard.Init(); err != nil {
			log.Printf("clipboard unavailable: %v", err)
		} else {
			clip = true
		}
	}

	game, err := NewGame(*boardName, *debug, clip)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 960)
	ebiten.SetWindowTitle("tactics")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
