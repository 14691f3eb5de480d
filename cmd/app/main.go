package main

import (
	"github.com/Ewen02/swipe-movie-sub000/internal/app"
	"github.com/Ewen02/swipe-movie-sub000/internal/config"
)

func main() {
	app.Go(config.Load())
}
