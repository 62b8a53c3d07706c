// Package stage holds the swappable top-level screens of the game.
//
// The composition root drives the active stage once per frame: Update, then
// Draw. A stage hands control to another by returning it from Update.
package stage

import "github.com/hajimehoshi/ebiten/v2"

// Stage is one screen of the game.
type Stage interface {
	// Update advances one tick. A non-nil Stage replaces this one; an error
	// stops the game.
	Update() (Stage, error)
	Draw(screen *ebiten.Image)
}

// Enterer is implemented by stages that need a one-shot start before their
// first Update.
type Enterer interface {
	Enter()
}
