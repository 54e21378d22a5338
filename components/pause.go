package components

import "github.com/yohamta/donburi"

// PauseData stores whether the window host has frozen the simulation
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
