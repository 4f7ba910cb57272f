package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/meghashyamc/pong2d/config"
	"github.com/meghashyamc/pong2d/geometry"
	"github.com/meghashyamc/pong2d/launch"
	"github.com/meghashyamc/pong2d/logger"
	"github.com/meghashyamc/pong2d/pong"
)

type GameState int

const (
	GameStateCountdown GameState = iota
	GameStatePlaying
	GameStateGameOver
)

func (s GameState) String() string {
	switch s {
	case GameStateCountdown:
		return "countdown"
	case GameStatePlaying:
		return "playing"
	case GameStateGameOver:
		return "game over"
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

// Game drives a pong.Match from ebiten: one Tick per frame, paddle commands
// from the keyboard, and drawing from the match's read accessors.
type Game struct {
	cfg         *config.Config
	match       *pong.Match
	launcher    *launch.Launcher
	countdown   *Timer
	state       GameState
	rallyID     string
	logger      logger.Logger
	userMessage string
}

func NewGame(cfg *config.Config) (*Game, error) {
	log := logger.New(cfg.GetLogLevel())
	launcher := launch.New(cfg.GetSeed())

	serve, err := launcher.Velocity(cfg.GetBallSpeedMin(), cfg.GetBallSpeedMax())
	if err != nil {
		log.Error("failed to pick serve velocity", "err", err)
		return nil, err
	}

	match, err := pong.NewMatch(settingsFromConfig(cfg), serve, pong.WithLogger(log))
	if err != nil {
		log.Error("failed to set up match", "err", err)
		return nil, err
	}

	// one extra second for "GO!"
	countdown := time.Duration(cfg.GetCountdownSeconds()+1) * time.Second

	g := &Game{
		cfg:       cfg,
		match:     match,
		launcher:  launcher,
		countdown: NewTimer(countdown, cfg.GetTicksPerSecond()),
		logger:    log,
	}
	g.startRally(serve)

	g.logger.Info("game initialized", "seed", launcher.Seed(), "field", match.Field(), "countdownSeconds", cfg.GetCountdownSeconds())
	return g, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(g.cfg.GetTicksPerSecond())
}

func (g *Game) Update() error {
	switch g.state {
	case GameStateCountdown:
		g.updateCountdown()
	case GameStatePlaying:
		g.updatePlaying()
	case GameStateGameOver:
		return g.updateGameOver()
	}
	return nil
}

func (g *Game) updateCountdown() {
	g.countdown.Update()
	if g.countdown.IsReady() {
		g.state = GameStatePlaying
		g.logger.Debug("countdown finished", "rallyID", g.rallyID, "state", g.state.String())
	}
}

func (g *Game) updatePlaying() {
	// commands are applied by Tick after the ball has moved
	for _, cmd := range pollCommands() {
		if err := g.match.Queue(cmd); err != nil {
			g.logger.Warn("dropping paddle command", "rallyID", g.rallyID, "err", err)
		}
	}

	if winner := g.match.Tick(); winner != pong.NoWinner {
		g.endRally(winner)
	}
}

func (g *Game) updateGameOver() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return g.Reset()
	}
	return nil
}

func (g *Game) startRally(serve geometry.Vector) {
	g.rallyID = uuid.NewString()
	g.countdown.Reset()
	g.state = GameStateCountdown
	g.userMessage = ""
	g.logger.Info("rally started", "rallyID", g.rallyID, "serve", serve)
}

func (g *Game) endRally(winner pong.Winner) {
	switch winner {
	case pong.LeftPlayer:
		g.userMessage = "Left player wins!"
	case pong.RightPlayer:
		g.userMessage = "Right player wins!"
	}
	g.state = GameStateGameOver
	g.logger.Info("rally over", "rallyID", g.rallyID, "winner", winner.String())
}

// Reset serves a new rally with a fresh velocity.
func (g *Game) Reset() error {
	g.logger.Debug("resetting game", "rallyID", g.rallyID)

	serve, err := g.launcher.Velocity(g.cfg.GetBallSpeedMin(), g.cfg.GetBallSpeedMax())
	if err != nil {
		return err
	}
	if err := g.match.Reset(serve); err != nil {
		return err
	}

	g.startRally(serve)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	field := g.match.Field()
	drawCourt(screen, field)
	drawPaddle(screen, g.match.Paddle(pong.PlayerLeft), colorLeftPaddle)
	drawPaddle(screen, g.match.Paddle(pong.PlayerRight), colorRightPaddle)
	drawBall(screen, g.match.Ball())

	switch g.state {
	case GameStateCountdown:
		drawBanner(screen, field, g.countdownText())
		drawHint(screen, field, "W/S and Up/Down move the paddles")
	case GameStateGameOver:
		drawBanner(screen, field, g.userMessage)
		drawHint(screen, field, "Press R to play again")
	}
}

// countdownText counts down whole seconds and then shows "GO!".
func (g *Game) countdownText() string {
	remaining := g.cfg.GetCountdownSeconds() - int(g.countdown.Elapsed()/time.Second)
	if remaining <= 0 {
		return "GO!"
	}
	return fmt.Sprintf("%d", remaining)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight()
}
