package constants

// Glyphs
const (
	PlayerGlyph = '0'
	KillerGlyph = 'X'
)

// Messages
const (
	GameOverText = "GAME OVER!"

	// GameOverOffset shifts the game over text left of the board center
	GameOverOffset = 5

	QuitText = "bye"
)
