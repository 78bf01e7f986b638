package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tactics/board"
	"github.com/milk9111/tactics/ecs"
	"github.com/milk9111/tactics/ecs/component"
)

var (
	gridLineColor  = color.NRGBA{R: 0x3a, G: 0x3a, B: 0x46, A: 0xff}
	cursorColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x50}
	pathColor      = color.NRGBA{R: 0x54, G: 0xc8, B: 0x6e, A: 0x60}
	selectedColor  = color.NRGBA{R: 0x54, G: 0x9c, B: 0xc8, A: 0x60}
	boardFillColor = color.NRGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}
)

// RenderSystem draws the board, the cursor overlay, and all sprites
// ordered by render layer.
type RenderSystem struct {
	grid *board.Grid
}

func NewRenderSystem(grid *board.Grid) *RenderSystem {
	return &RenderSystem{grid: grid}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil || r.grid == nil {
		return
	}

	r.drawBoard(screen)
	r.drawCursor(w, screen)
	r.drawSprites(w, screen)
}

func (r *RenderSystem) drawBoard(screen *ebiten.Image) {
	g := r.grid
	vector.DrawFilledRect(screen, float32(g.OriginX), float32(g.OriginY), float32(g.Width()), float32(g.Height()), boardFillColor, false)
	for x := 0; x <= g.Columns; x++ {
		wx := float32(g.OriginX + float64(x)*g.CellSize)
		vector.StrokeLine(screen, wx, float32(g.OriginY), wx, float32(g.OriginY+g.Height()), 1, gridLineColor, false)
	}
	for y := 0; y <= g.Rows; y++ {
		wy := float32(g.OriginY + float64(y)*g.CellSize)
		vector.StrokeLine(screen, float32(g.OriginX), wy, float32(g.OriginX+g.Width()), wy, 1, gridLineColor, false)
	}
}

func (r *RenderSystem) drawCursor(w *ecs.World, screen *ebiten.Image) {
	cursorEnt, ok := w.First(component.CursorComponent.Kind())
	if !ok {
		return
	}
	cur, ok := ecs.Get(w, cursorEnt, component.CursorComponent)
	if !ok {
		return
	}

	if cur.Selected != 0 {
		if gp, ok := ecs.Get(w, ecs.Entity(cur.Selected), component.GridPositionComponent); ok {
			r.fillCell(screen, gp.Cell, selectedColor)
		}
	}
	for _, c := range cur.PathCells {
		r.fillCell(screen, c, pathColor)
	}
	r.fillCell(screen, cur.Cell, cursorColor)
}

func (r *RenderSystem) fillCell(screen *ebiten.Image, c board.Cell, col color.NRGBA) {
	minX, minY, _, _ := r.grid.CellRect(c)
	vector.DrawFilledRect(screen, float32(minX), float32(minY), float32(r.grid.CellSize), float32(r.grid.CellSize), col, false)
}

func (r *RenderSystem) drawSprites(w *ecs.World, screen *ebiten.Image) {
	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := 0, 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent); ok {
			li = layer.Index
		}
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return entities[i] < entities[j]
	})

	for _, e := range entities {
		tr, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		sp, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok || sp.Image == nil {
			continue
		}

		b := sp.Image.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		sx, sy := tr.ScaleX, tr.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(tr.X+sp.OffsetX, tr.Y+sp.OffsetY)
		if sp.Alpha > 0 && sp.Alpha < 1 {
			op.ColorScale.ScaleAlpha(float32(sp.Alpha))
		}
		screen.DrawImage(sp.Image, op)
	}
}
