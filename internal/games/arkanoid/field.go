package arkanoid

import (
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Strategy selects the block layout algorithm of a round.
type Strategy int

const (
	StrategySymmetric Strategy = iota // Rows mirrored around the vertical midline
	StrategyPatterned                 // Breakable corridors carved row by row
	StrategyStriped                   // Indestructible studs on even/even cells
	StrategyCount                     // Sentinel for counting strategies
)

func (s Strategy) String() string {
	switch s {
	case StrategySymmetric:
		return "symmetric"
	case StrategyPatterned:
		return "patterned"
	case StrategyStriped:
		return "striped"
	default:
		return "unknown"
	}
}

// GenerateField builds the block layout for a new round. The row count is
// drawn from [MinRows, MaxRows], then a strategy is picked uniformly.
func GenerateField(rng RNG, cfg config.ArkanoidBlocks) ([]Block, Strategy) {
	rows := cfg.MinRows + rng.IntN(cfg.MaxRows-cfg.MinRows+1)
	strategy := Strategy(rng.IntN(int(StrategyCount)))
	return GenerateFieldWith(rng, cfg, strategy, rows), strategy
}

// GenerateFieldWith builds a layout with a fixed strategy and row count.
// The result always holds at least one breakable block.
func GenerateFieldWith(rng RNG, cfg config.ArkanoidBlocks, strategy Strategy, rows int) []Block {
	g := fieldGen{rng: rng, cfg: cfg, blocks: make([]Block, 0, rows*cfg.Columns)}

	switch strategy {
	case StrategyPatterned:
		g.patterned(rows)
	case StrategyStriped:
		g.striped(rows)
	default:
		g.symmetric(rows)
	}

	ensureBreakable(g.blocks)
	return g.blocks
}

type fieldGen struct {
	rng    RNG
	cfg    config.ArkanoidBlocks
	blocks []Block
}

// symmetric assigns one weighted type per mirrored pair of cells.
func (g *fieldGen) symmetric(rows int) {
	cols := g.cfg.Columns
	for i := range rows {
		for j := range (cols + 1) / 2 {
			t := g.weightedType()
			health := g.health(t)
			g.add(i, j, t, health)
			if mirror := cols - 1 - j; mirror != j {
				g.add(i, mirror, t, health)
			}
		}
	}
}

// patterned carves breakable corridors row by row. A cell below a breakable
// cell stays breakable unless the corridor can continue through a neighbor,
// in which case it is a coin flip. Cells below Indestructible blocks are
// always a coin flip.
func (g *fieldGen) patterned(rows int) {
	cols := g.cfg.Columns
	prev := make([]bool, cols) // true = indestructible
	cur := make([]bool, cols)

	for i := range rows {
		for j := range cols {
			switch {
			case prev[j]:
				cur[j] = g.rng.IntN(2) == 1
			case j < cols-1 && !prev[j+1]:
				cur[j] = g.rng.IntN(2) == 1
			case j > 0 && !prev[j-1] && !cur[j-1]:
				cur[j] = g.rng.IntN(2) == 1
			default:
				cur[j] = false
			}

			if cur[j] {
				g.add(i, j, Indestructible, g.health(Indestructible))
			} else {
				t := g.breakableType()
				g.add(i, j, t, g.health(t))
			}
		}
		prev, cur = cur, prev
	}
}

// striped studs even/even cells with Indestructible blocks.
func (g *fieldGen) striped(rows int) {
	for i := range rows {
		for j := range g.cfg.Columns {
			if i%2 == 0 && j%2 == 0 {
				g.add(i, j, Indestructible, g.health(Indestructible))
				continue
			}
			t := g.breakableType()
			g.add(i, j, t, g.health(t))
		}
	}
}

// weightedType rolls once against the cumulative type table.
func (g *fieldGen) weightedType() BlockType {
	r := roll(g.rng)
	switch {
	case r < g.cfg.DestructibleWeight:
		return Destructible
	case r < g.cfg.SpeedUpWeight:
		return SpeedUp
	default:
		return Indestructible
	}
}

// breakableType picks between the two breakable types.
func (g *fieldGen) breakableType() BlockType {
	if roll(g.rng) < g.cfg.DestructibleWeight {
		return Destructible
	}
	return SpeedUp
}

// health draws a starting health from the type's table.
func (g *fieldGen) health(t BlockType) int {
	hs := blockHealths[t]
	if len(hs) == 1 {
		return hs[0]
	}
	return hs[g.rng.IntN(len(hs))]
}

func (g *fieldGen) add(row, col int, t BlockType, health int) {
	g.blocks = append(g.blocks, Block{
		Rect: core.NewRect(
			float64(col)*g.cfg.CellW,
			g.cfg.TopOffset+float64(row)*g.cfg.CellH,
			g.cfg.Width,
			g.cfg.Height,
		),
		Type:   t,
		Health: health,
	})
}

// ensureBreakable converts the first Indestructible block into a one-hit
// Destructible block when the layout has nothing to clear.
func ensureBreakable(blocks []Block) {
	for i := range blocks {
		if blocks[i].Type.Breakable() {
			return
		}
	}
	if len(blocks) > 0 {
		blocks[0].Type = Destructible
		blocks[0].Health = 1
	}
}
