package tui

import (
	"fmt"

	"github.com/dmalakhov/skyhop/internal/core"
	"github.com/dmalakhov/skyhop/internal/game"
)

// Visual characters for rendering
const (
	actorBodyChar = '●'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
	groundFill    = '▒'
)

// DrawSnapshot renders a session snapshot onto the screen buffer.
// The snapshot is the only input; drawing never feeds back into the session.
func DrawSnapshot(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()

	groundTop := int(snap.WorldH - snap.GroundThickness)

	drawGround(dst, groundTop)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, o, snap, groundTop)
	}

	drawActor(dst, snap)

	hud := fmt.Sprintf(" Score: %d   Best: %d ", snap.Score, snap.Best)
	dst.DrawTextColored(2, 0, hud, core.ColorBrightWhite)

	switch {
	case snap.Phase == game.PhaseIdle:
		drawCenteredMessage(dst, "SKY HOPPER", "Press SPACE to start")
	case snap.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case snap.Phase == game.PhaseGameOver:
		title := "GAME OVER"
		if snap.NewRecord {
			title = "NEW RECORD!"
		}
		subtitle := fmt.Sprintf("Score: %d  |  Best: %d  |  Press R to restart", snap.Score, snap.Best)
		drawCenteredMessage(dst, title, subtitle)
	}
}

// drawGround fills the rows below the ground line.
func drawGround(dst *core.Screen, groundTop int) {
	for y := groundTop; y < dst.Height(); y++ {
		ch := groundFill
		if y == groundTop {
			ch = groundChar
		}
		for x := 0; x < dst.Width(); x++ {
			dst.SetCell(x, y, ch, core.ColorGray)
		}
	}
}

// drawObstacle renders one pipe pair around its gap.
func drawObstacle(dst *core.Screen, o game.ObstacleView, snap game.Snapshot, groundTop int) {
	left := int(o.X)
	width := int(snap.ObstacleWidth)
	gapTop := int(o.GapCenterY - snap.GapHeight/2)
	gapBottom := int(o.GapCenterY + snap.GapHeight/2)

	color := core.ColorGreen
	if o.Passed {
		color = core.ColorBrightGreen
	}

	// Top section (from top of screen down to the gap)
	for y := 0; y < gapTop; y++ {
		for x := left; x < left+width; x++ {
			dst.SetCell(x, y, pipeChar, color)
		}
	}
	if gapTop > 0 {
		for x := left; x < left+width; x++ {
			dst.SetCell(x, gapTop-1, pipeCapTop, color)
		}
	}

	// Bottom section (from below the gap down to the ground)
	for y := gapBottom; y < groundTop; y++ {
		for x := left; x < left+width; x++ {
			dst.SetCell(x, y, pipeChar, color)
		}
	}
	if gapBottom < groundTop {
		for x := left; x < left+width; x++ {
			dst.SetCell(x, gapBottom, pipeCapBottom, color)
		}
	}
}

// drawActor renders the player with a beak glyph hinting at its pitch.
func drawActor(dst *core.Screen, snap game.Snapshot) {
	cx := int(snap.ActorX)
	cy := int(snap.ActorY)

	beak := '▶'
	switch {
	case snap.Rotation <= -10:
		beak = '↗'
	case snap.Rotation >= 45:
		beak = '↘'
	}

	dst.SetCell(cx-1, cy, actorBodyChar, core.ColorBrightYellow)
	dst.SetCell(cx, cy, beak, core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
