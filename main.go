package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profile setup failed: %v", err)
		}
		defer stop()
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("level seed: %d", seed)

	g, err := newGame(seed)
	if err != nil {
		log.Fatalf("game initialization failed: %v", err)
	}

	ebiten.SetWindowSize(levelW*windowScale, levelH*windowScale)
	ebiten.SetWindowTitle("Sound Sense")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("game loop failed: %v", err)
	}
}
