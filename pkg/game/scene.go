package game

import "github.com/gonewx/spawner/pkg/render"

// Scene represents a top-level screen of the program.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in milliseconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided surface.
	Draw(surface render.Surface)
}
