package arkanoid

import "github.com/vovakirdan/arkanoid/internal/core"

// BlockType tags a block with its behavior.
type BlockType int

const (
	Indestructible BlockType = iota // Never damaged, never counts toward clearing
	Destructible                    // Loses one health per hit
	SpeedUp                         // Speeds up every ball when hit
	BlockTypeCount                  // Sentinel for counting types
)

// Starting health values per block type; a block draws one uniformly.
// Indestructible carries the -1 sentinel and is never decremented.
var blockHealths = [BlockTypeCount][]int{
	Indestructible: {-1},
	Destructible:   {1, 2},
	SpeedUp:        {1},
}

var blockColors = [BlockTypeCount]core.Color{
	Indestructible: core.ColorSilver,
	Destructible:   core.ColorGold,
	SpeedUp:        core.ColorRose,
}

var blockGlyphs = [BlockTypeCount]rune{
	Indestructible: '▓',
	Destructible:   '█',
	SpeedUp:        '█',
}

var blockNames = [BlockTypeCount]string{
	Indestructible: "indestructible",
	Destructible:   "destructible",
	SpeedUp:        "speed-up",
}

// Color returns the block's draw color.
func (t BlockType) Color() core.Color {
	if t < 0 || t >= BlockTypeCount {
		return core.ColorDefault
	}
	return blockColors[t]
}

// Glyph returns the terminal fill character.
func (t BlockType) Glyph() rune {
	if t < 0 || t >= BlockTypeCount {
		return '?'
	}
	return blockGlyphs[t]
}

func (t BlockType) String() string {
	if t < 0 || t >= BlockTypeCount {
		return "unknown"
	}
	return blockNames[t]
}

// Breakable reports whether hits damage the block.
func (t BlockType) Breakable() bool {
	return t != Indestructible
}

// BonusType represents the closed set of falling pickups.
type BonusType int

const (
	BonusSizeUp     BonusType = iota // Widen paddle
	BonusSizeDown                    // Narrow paddle
	BonusSpeedUp                     // Speed up every ball
	BonusSpeedDown                   // Slow down every ball
	BonusSticky                      // Next paddle contact catches the ball
	BonusExtraLife                   // One more life
	BonusExtraBall                   // Spawn a ball on the paddle
	BonusBottomSave                  // Bottom edge bounces once
	BonusCount                       // Sentinel for counting types
)

var bonusColors = [BonusCount]core.Color{
	BonusSizeUp:     core.ColorLime,
	BonusSizeDown:   core.ColorLime,
	BonusSpeedUp:    core.ColorRose,
	BonusSpeedDown:  core.ColorRose,
	BonusSticky:     core.ColorLime,
	BonusExtraLife:  core.ColorLime,
	BonusExtraBall:  core.ColorSky,
	BonusBottomSave: core.ColorGold,
}

var bonusGlyphs = [BonusCount]rune{
	BonusSizeUp:     '+',
	BonusSizeDown:   '-',
	BonusSpeedUp:    '+',
	BonusSpeedDown:  '-',
	BonusSticky:     '■',
	BonusExtraLife:  '♥',
	BonusExtraBall:  '●',
	BonusBottomSave: '▁',
}

var bonusNames = [BonusCount]string{
	BonusSizeUp:     "size-up",
	BonusSizeDown:   "size-down",
	BonusSpeedUp:    "speed-up",
	BonusSpeedDown:  "speed-down",
	BonusSticky:     "sticky",
	BonusExtraLife:  "extra-life",
	BonusExtraBall:  "extra-ball",
	BonusBottomSave: "bottom-save",
}

// Color returns the pickup's draw color.
func (t BonusType) Color() core.Color {
	if t < 0 || t >= BonusCount {
		return core.ColorDefault
	}
	return bonusColors[t]
}

// Glyph returns the display character for a bonus type.
func (t BonusType) Glyph() rune {
	if t < 0 || t >= BonusCount {
		return '?'
	}
	return bonusGlyphs[t]
}

// String returns the name of the bonus type.
func (t BonusType) String() string {
	if t < 0 || t >= BonusCount {
		return "unknown"
	}
	return bonusNames[t]
}
