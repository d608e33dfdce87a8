package game

// HitsGround reports whether the actor's lower extent has sunk into the
// ground. The comparison is strictly greater-than: resting exactly on the
// ground line is not a collision.
func HitsGround(a Actor, worldH, groundThickness float64) bool {
	return a.Y+a.Radius > worldH-groundThickness
}

// HitsObstacle reports whether the actor overlaps the obstacle horizontally
// while any part of it sticks out of the gap vertically.
func HitsObstacle(a Actor, o Obstacle, width, gapHeight float64) bool {
	if a.X+a.Radius <= o.X || a.X-a.Radius >= o.X+width {
		return false
	}
	gapTop := o.GapCenterY - gapHeight/2
	gapBottom := o.GapCenterY + gapHeight/2
	return a.Y-a.Radius < gapTop || a.Y+a.Radius > gapBottom
}
