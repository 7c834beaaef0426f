// Command calc-gui is a desktop scientific calculator: a button grid and
// keyboard entry over the calc expression engine.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	ebiten.SetWindowTitle("calc")
	ebiten.SetWindowSize(screenW*2, screenH*2)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(newApp()); err != nil {
		log.Fatal(err)
	}
}
