package arkanoid

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/arkanoid/internal/config"
)

type cell struct{ row, col int }

// gridOf indexes blocks by grid cell, failing on off-grid positions.
func gridOf(t *testing.T, blocks []Block, cfg config.ArkanoidBlocks) map[cell]Block {
	t.Helper()
	grid := make(map[cell]Block, len(blocks))
	for _, b := range blocks {
		col := b.Rect.X / cfg.CellW
		row := (b.Rect.Y - cfg.TopOffset) / cfg.CellH
		if col != math.Trunc(col) || row != math.Trunc(row) {
			t.Fatalf("block at (%v, %v) is off the grid", b.Rect.X, b.Rect.Y)
		}
		if b.Rect.W != cfg.Width || b.Rect.H != cfg.Height {
			t.Fatalf("block size %vx%v, expected %vx%v", b.Rect.W, b.Rect.H, cfg.Width, cfg.Height)
		}
		c := cell{int(row), int(col)}
		if _, dup := grid[c]; dup {
			t.Fatalf("two blocks in cell %+v", c)
		}
		grid[c] = b
	}
	return grid
}

func TestGenerateFieldWith(t *testing.T) {
	cfg := config.DefaultArkanoidConfig().Blocks

	for s := Strategy(0); s < StrategyCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			for seed := int64(1); seed <= 20; seed++ {
				rows := cfg.MinRows + int(seed)%(cfg.MaxRows-cfg.MinRows+1)
				blocks := GenerateFieldWith(NewRNG(seed), cfg, s, rows)

				if len(blocks) != rows*cfg.Columns {
					t.Fatalf("seed %d: got %d blocks, expected %d", seed, len(blocks), rows*cfg.Columns)
				}
				grid := gridOf(t, blocks, cfg)

				breakable := 0
				for c, b := range grid {
					if !slices.Contains(blockHealths[b.Type], b.Health) {
						t.Errorf("seed %d: %v block at %+v has health %d", seed, b.Type, c, b.Health)
					}
					if b.Destroyed {
						t.Errorf("seed %d: new block at %+v is destroyed", seed, c)
					}
					if b.Type.Breakable() {
						breakable++
					}

					switch s {
					case StrategySymmetric:
						mirror := grid[cell{c.row, cfg.Columns - 1 - c.col}]
						if mirror.Type != b.Type {
							t.Errorf("seed %d: %+v is %v but its mirror is %v", seed, c, b.Type, mirror.Type)
						}
					case StrategyStriped:
						stud := c.row%2 == 0 && c.col%2 == 0
						if stud != (b.Type == Indestructible) {
							t.Errorf("seed %d: striped cell %+v has type %v", seed, c, b.Type)
						}
					}
				}
				if breakable == 0 {
					t.Errorf("seed %d: field has nothing to clear", seed)
				}
			}
		})
	}
}

func TestGenerateFieldForcesBreakableBlock(t *testing.T) {
	cfg := config.DefaultArkanoidConfig().Blocks

	// Every roll lands in the indestructible tier
	blocks := GenerateFieldWith(constRNG(99), cfg, StrategySymmetric, 4)

	breakable := 0
	for _, b := range blocks {
		if b.Type.Breakable() {
			breakable++
		}
	}
	if breakable != 1 {
		t.Fatalf("expected exactly one forced breakable block, got %d", breakable)
	}
	if blocks[0].Type != Destructible || blocks[0].Health != 1 {
		t.Errorf("first block = %+v, expected a one-hit destructible block", blocks[0])
	}
}

func TestSymmetricWeights(t *testing.T) {
	cfg := config.DefaultArkanoidConfig().Blocks

	tests := []struct {
		roll     int
		expected BlockType
	}{
		{0, Destructible},
		{59, Destructible},
		{60, SpeedUp},
		{73, SpeedUp},
		{74, Indestructible},
		{99, Indestructible},
	}

	for _, tc := range tests {
		g := fieldGen{rng: constRNG(tc.roll), cfg: cfg}
		if got := g.weightedType(); got != tc.expected {
			t.Errorf("roll %d: got %v, expected %v", tc.roll, got, tc.expected)
		}
	}
}

func TestPatternedFirstRow(t *testing.T) {
	cfg := config.DefaultArkanoidConfig().Blocks

	// Coin flips of 1 close every cell that may close. The last column has
	// no open neighbor left to continue the corridor, so it stays open.
	blocks := GenerateFieldWith(constRNG(1), cfg, StrategyPatterned, 1)
	grid := gridOf(t, blocks, cfg)

	for col := range cfg.Columns {
		b := grid[cell{0, col}]
		wantOpen := col == cfg.Columns-1
		if b.Type.Breakable() != wantOpen {
			t.Errorf("column %d: type %v", col, b.Type)
		}
	}
}

// coinRNG answers coin flips from a queue (then 0) and every other draw
// with n-1, so breakable cells come out as single-health SpeedUp blocks.
type coinRNG struct {
	coins []int
}

func (c *coinRNG) IntN(n int) int {
	if n != 2 {
		return n - 1
	}
	if len(c.coins) == 0 {
		return 0
	}
	v := c.coins[0]
	c.coins = c.coins[1:]
	return v
}

func TestPatternedCorridors(t *testing.T) {
	cfg := config.DefaultArkanoidConfig().Blocks
	cfg.Columns = 3

	// 'I' is Indestructible, 'S' a breakable SpeedUp block. The last coin of
	// each script is spare: a cell that wrongly flips one turns Indestructible.
	tests := []struct {
		name     string
		coins    []int
		expected [2]string
	}{
		{
			// Row 1: cells under closed cells take the coin both ways, the
			// middle cell under an open cell has no open neighbor to continue
			// through and stays breakable without a flip.
			name:     "coins under closed cells",
			coins:    []int{1, 0, 1, 0, 1, 1},
			expected: [2]string{"ISI", "SSI"},
		},
		{
			// Only the middle cell flips in both rows. The outer cells sit
			// under open cells whose corridor cannot move sideways.
			name:     "forced open under open cells",
			coins:    []int{0, 1, 1, 1},
			expected: [2]string{"SIS", "SIS"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			blocks := GenerateFieldWith(&coinRNG{coins: tc.coins}, cfg, StrategyPatterned, 2)
			grid := gridOf(t, blocks, cfg)

			for row, want := range tc.expected {
				got := make([]byte, cfg.Columns)
				for col := range cfg.Columns {
					switch grid[cell{row, col}].Type {
					case Indestructible:
						got[col] = 'I'
					case SpeedUp:
						got[col] = 'S'
					default:
						got[col] = '?'
					}
				}
				if string(got) != want {
					t.Errorf("row %d = %s, expected %s", row, got, want)
				}
			}
		})
	}
}

func TestGenerateFieldPicksRowsAndStrategy(t *testing.T) {
	cfg := config.DefaultArkanoidConfig().Blocks
	seen := make(map[Strategy]bool)

	for seed := int64(1); seed <= 200; seed++ {
		blocks, s := GenerateField(NewRNG(seed), cfg)
		if s < 0 || s >= StrategyCount {
			t.Fatalf("seed %d: invalid strategy %d", seed, s)
		}
		seen[s] = true

		rows := len(blocks) / cfg.Columns
		if rows < cfg.MinRows || rows > cfg.MaxRows {
			t.Errorf("seed %d: %d rows outside [%d, %d]", seed, rows, cfg.MinRows, cfg.MaxRows)
		}
	}
	if len(seen) != int(StrategyCount) {
		t.Errorf("expected every strategy over 200 seeds, saw %v", seen)
	}
}
