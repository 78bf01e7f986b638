package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/tactics/board"
	"github.com/milk9111/tactics/common"
	"github.com/milk9111/tactics/ecs"
	"github.com/milk9111/tactics/ecs/component"
	"github.com/milk9111/tactics/ecs/entity"
	"github.com/milk9111/tactics/ecs/render"
	"github.com/milk9111/tactics/ecs/system"
	"github.com/milk9111/tactics/prefabs"
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	renderer  *system.RenderSystem
	scripts   *system.ScriptRuntime
	grid      *board.Grid

	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI

	boardName string
	debug     bool
	clip      bool
	paused    bool
	quit      bool
	frames    int
}

func NewGame(boardName string, debug, clip bool) (*Game, error) {
	spec, err := prefabs.LoadBoardSpec(boardName)
	if err != nil {
		return nil, fmt.Errorf("game: load board %q: %w", boardName, err)
	}

	g := &Game{
		boardName: boardName,
		debug:     debug,
		clip:      clip,
		scripts:   system.NewScriptRuntime(),
	}
	if err := g.buildWorld(spec); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if debug {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) buildWorld(spec prefabs.BoardSpec) error {
	world := ecs.NewWorld()
	world.SetPhysicsWorld(ecs.NewPhysicsWorld())

	render.BuildBoardTextures(spec.CellSize)

	grid, err := entity.BuildBoard(world, spec)
	if err != nil {
		return err
	}

	g.world = world
	g.grid = grid
	g.renderer = system.NewRenderSystem(grid)
	g.scheduler = ecs.NewScheduler(
		system.NewCursorSystem(grid),
		system.NewWalkSystem(grid),
		system.NewPhysicsSystem(),
		system.NewTriggerSystem(grid, g.scripts),
		system.NewSkinSystem(nil),
	)
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.scheduler.Update(g.world)
	g.drainEvents()

	if g.debug && g.clip && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyBoardDump()
	}

	return nil
}

func (g *Game) drainEvents() {
	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventWalkFinished:
			// re-enable selection input for the next move
			system.UnlockCursor(g.world)
			if data, ok := evt.Data.(ecs.WalkFinished); ok && g.debug {
				log.Printf("game: walk finished for entity %s", data.Entity)
			}
		case ecs.EventPlateConsumed:
			if data, ok := evt.Data.(ecs.PlateConsumed); ok && g.debug {
				log.Printf("game: plate %s consumed by %s", data.Plate, data.Actor)
			}
		}
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("game: watcher: %v", err)
			}
		default:
			return
		}
	}
}

// reload rebuilds the world from the changed spec, or just drops the
// cached script so the next trigger recompiles it.
func (g *Game) reload(path string) {
	log.Printf("game: reloading after change to %s", path)
	if strings.HasSuffix(path, ".tengo") {
		// plate specs reference scripts by basename
		g.scripts.Invalidate(filepath.Base(path))
		return
	}
	spec, err := prefabs.LoadBoardSpec(g.boardName)
	if err != nil {
		log.Printf("game: reload board: %v", err)
		return
	}
	if err := g.buildWorld(spec); err != nil {
		log.Printf("game: rebuild world: %v", err)
	}
}

// copyBoardDump puts a text snapshot of the board on the OS clipboard.
func (g *Game) copyBoardDump() {
	var b strings.Builder
	fmt.Fprintf(&b, "board %dx%d\n", g.grid.Columns, g.grid.Rows)
	for _, e := range g.world.Query(component.GridPositionComponent.Kind(), component.NameComponent.Kind()) {
		gp, _ := ecs.Get(g.world, e, component.GridPositionComponent)
		name, _ := ecs.Get(g.world, e, component.NameComponent)
		if gp == nil || name == nil {
			continue
		}
		fmt.Fprintf(&b, "%s: (%d, %d)\n", name.Value, gp.Cell.X, gp.Cell.Y)
	}
	clipboard.Write(clipboard.FmtText, []byte(b.String()))
	log.Printf("game: board dump copied to clipboard")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
