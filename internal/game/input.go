package game

import (
	"chosenoffset.com/corridor/internal/render"
)

var (
	forwardKeys = []render.Key{render.KeyUp, render.KeyW}
	fireKeys    = []render.Key{render.KeySpace}
)

// handleInput turns key and click edges into player intent.
func (g *Game) handleInput() {
	player := g.World.Player
	if player == nil {
		return
	}

	for _, key := range forwardKeys {
		if g.InputMgr.IsKeyJustPressed(key) {
			player.IsMovingForward = true
		}
		if g.InputMgr.IsKeyJustReleased(key) {
			player.IsMovingForward = g.anyPressed(forwardKeys)
		}
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyShift) {
		player.IsRunning = true
	}
	if g.InputMgr.IsKeyJustReleased(render.KeyShift) {
		player.IsRunning = false
	}

	fire := g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft)
	for _, key := range fireKeys {
		fire = fire || g.InputMgr.IsKeyJustPressed(key)
	}
	if fire {
		g.fire()
	}
}

func (g *Game) anyPressed(keys []render.Key) bool {
	for _, key := range keys {
		if g.InputMgr.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (g *Game) fire() {
	if !g.World.Fire() {
		return
	}
	if g.Sound != nil {
		g.Sound.PlayShot()
	}
}
