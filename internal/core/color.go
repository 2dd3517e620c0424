package core

// Color is a palette slot for a screen cell. The platform decides how each
// slot maps to terminal colors.
type Color uint8

// Palette slots used by the scene renderer.
const (
	ColorDefault Color = iota
	ColorHero          // bunny
	ColorCarrot        // obstacle bodies
	ColorLeaf          // obstacle caps
	ColorGround        // soil tiles
	ColorGrass         // top row of the ground
	ColorScore         // HUD text
	ColorDanger        // game over banner
	ColorMuted         // secondary text
)
