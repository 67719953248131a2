package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/liquidair/icaria/internal/demo"
)

func main() {
	ebiten.SetWindowTitle("Icaria Pathfinding")
	ebiten.SetWindowSize(demo.WindowWidth(), demo.WindowHeight())
	if err := ebiten.RunGame(demo.New()); err != nil {
		log.Fatal(err)
	}
}
