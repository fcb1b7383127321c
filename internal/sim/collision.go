package sim

// Resolve applies mutual damage to every overlapping pair drawn from a and b
// and returns the number of pairs that collided. A side already destroyed,
// including earlier in the same pass, takes no further damage but still deals
// it: one shot over two enemies hits both, and every shot over an enemy is
// spent. Pairs where both sides are destroyed are skipped.
//
// The boss shield only blocks damage to the boss; whatever hit it still takes
// its own damage.
func Resolve(a, b []*Entity) int {
	hits := 0
	for _, y := range b {
		for _, x := range a {
			if x.destroyed && y.destroyed {
				continue
			}
			if !x.Bounds().Intersects(y.Bounds()) {
				continue
			}
			xLive, yLive := !x.destroyed, !y.destroyed
			if xLive {
				x.TakeDamage()
			}
			if yLive {
				y.TakeDamage()
			}
			hits++
		}
	}
	return hits
}
