package main

import "snakedeluxe/internal/game"

func main() {
	game.RunDesktop()
}
