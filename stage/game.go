package stage

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/communityrpg/obj"
	"github.com/milk9111/communityrpg/viewport"
)

// Settings are the tunables of a Game stage.
type Settings struct {
	Speed      float64
	Margins    viewport.Margins
	Background color.Color
	Debug      bool
}

// fadeTicks is the length of each half of a map change fade.
const fadeTicks = 20

// Game is the playable stage: a level, a walking player, wall collision and
// a camera that keeps the player inside the scroll margins. Tab moves to the
// next loaded level.
type Game struct {
	levels  []*obj.Level
	current int
	level   *obj.Level
	fade    *obj.Transition

	player *obj.Player
	world  *obj.CollisionWorld
	camera *obj.Camera
	input  *obj.Input
	logger *log.Logger

	speed      float64
	background color.Color
	debug      bool

	paused bool
	quit   bool
	pause  *ebitenui.UI
}

// NewGame wires a stage around levels[current] and player. The camera's
// margins are replaced by s.Margins.
func NewGame(levels []*obj.Level, current int, player *obj.Player, cam *obj.Camera, s Settings, logger *log.Logger) *Game {
	level := levels[current]
	cam.SetMargins(s.Margins)
	g := &Game{
		levels:     levels,
		current:    current,
		level:      level,
		fade:       obj.NewTransition(fadeTicks),
		player:     player,
		world:      obj.NewCollisionWorld(level.Walls(), player.BoundingBox()),
		camera:     cam,
		input:      obj.NewInput(),
		logger:     logger,
		speed:      s.Speed,
		background: s.Background,
		debug:      s.Debug,
	}
	if g.background == nil {
		g.background = color.Black
	}
	cam.Follow(player.BoundingBox())
	logger.Info("game ready", "map", level.Name, "layers", len(level.Layers()), "walls", g.world.WallCount())
	return g
}

// Enter fades the first level in.
func (g *Game) Enter() {
	g.fade.Reveal()
}

func (g *Game) Level() *obj.Level {
	return g.level
}

func (g *Game) Fading() bool {
	return g.fade.Active()
}

func (g *Game) Player() *obj.Player {
	return g.player
}

func (g *Game) Camera() *obj.Camera {
	return g.camera
}

func (g *Game) Input() *obj.Input {
	return g.input
}

func (g *Game) Paused() bool {
	return g.paused
}

// ApplyConfig changes speed and margins while running.
func (g *Game) ApplyConfig(speed float64, m viewport.Margins) {
	g.speed = speed
	g.camera.SetMargins(m)
	g.logger.Info("settings applied", "speed", speed, "margins", m)
}

// Update polls the devices and advances one tick.
func (g *Game) Update() (Stage, error) {
	g.input.Update()
	return g.Tick()
}

// Tick advances one tick from the current input state.
func (g *Game) Tick() (Stage, error) {
	if g.fade.Update() {
		return nil, nil
	}
	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		if g.pause != nil {
			g.pause.Update()
		}
		if g.quit {
			return nil, ebiten.Termination
		}
		return nil, nil
	}

	if g.input.NextMap && len(g.levels) > 1 {
		g.fade.Start(g.nextLevel)
		return nil, nil
	}

	g.player.SetVelocity(g.input.Velocity(g.speed))
	g.world.Step(g.player)
	g.player.Update()

	if g.input.RightClicked {
		x, y := g.camera.ScreenToWorld(float64(g.input.CursorX), float64(g.input.CursorY))
		g.player.SetDestination(x, y)
		g.logger.Debug("destination", "x", x, "y", y)
	}

	if g.camera.Follow(g.player.BoundingBox()) {
		o := g.camera.Origin()
		g.logger.Debug("viewport", "left", o.Left, "bottom", o.Bottom)
	}
	return nil, nil
}

// nextLevel moves the player to the centre of the following level.
func (g *Game) nextLevel() {
	g.current = (g.current + 1) % len(g.levels)
	g.level = g.levels[g.current]

	g.player.SetVelocity(0, 0)
	g.player.CenterX = g.level.Width / 2
	g.player.CenterY = g.level.Height / 2
	g.world = obj.NewCollisionWorld(g.level.Walls(), g.player.BoundingBox())
	g.camera.Follow(g.player.BoundingBox())
	g.logger.Info("map changed", "map", g.level.Name, "walls", g.world.WallCount())
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.camera.Render(screen, func(world *ebiten.Image) {
		g.level.Draw(world, g.camera)
		g.player.Draw(world, g.camera)
		if g.debug {
			g.world.DebugDraw(world, g.camera)
		}
	})

	if g.debug {
		o := g.camera.Origin()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.1f\norigin: %d,%d\nplayer: %0.1f,%0.1f\nframe: %d (%s)",
			ebiten.ActualFPS(), o.Left, o.Bottom, g.player.CenterX, g.player.CenterY, g.player.Frame(), g.player.Facing()))
	}

	g.fade.Draw(screen)

	if g.paused {
		if g.pause == nil {
			size := g.camera.Size()
			g.pause = newPauseUI(size.W/2, size.H/2, func() { g.paused = false }, func() { g.quit = true })
		}
		g.pause.Draw(screen)
	}
}
