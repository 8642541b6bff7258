package engine

// Collides reports whether any killer occupies the cursor cell
func Collides(s *GameState) bool {
	for _, k := range s.Killers {
		if k == s.Cursor {
			return true
		}
	}
	return false
}
