package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/pong2d/config"
	"github.com/meghashyamc/pong2d/pong"
)

type keyBinding struct {
	key     ebiten.Key
	command pong.Command
}

// W/S drive the left paddle, the arrow keys the right one.
var keyBindings = []keyBinding{
	{ebiten.KeyW, pong.Command{Player: pong.PlayerLeft, Direction: pong.DirectionUp}},
	{ebiten.KeyS, pong.Command{Player: pong.PlayerLeft, Direction: pong.DirectionDown}},
	{ebiten.KeyArrowUp, pong.Command{Player: pong.PlayerRight, Direction: pong.DirectionUp}},
	{ebiten.KeyArrowDown, pong.Command{Player: pong.PlayerRight, Direction: pong.DirectionDown}},
}

// pollCommands returns one command per held key, in binding order.
func pollCommands() []pong.Command {
	commands := make([]pong.Command, 0, len(keyBindings))
	for _, binding := range keyBindings {
		if ebiten.IsKeyPressed(binding.key) {
			commands = append(commands, binding.command)
		}
	}
	return commands
}

func settingsFromConfig(cfg *config.Config) pong.Settings {
	return pong.Settings{
		Field: pong.Field{
			Width:  cfg.GetFieldWidth(),
			Height: cfg.GetFieldHeight(),
		},
		PaddleHeight: cfg.GetPaddleHeight(),
		PaddleWidth:  cfg.GetPaddleWidth(),
		PaddleStep:   cfg.GetPaddleStep(),
		BallRadius:   cfg.GetBallRadius(),
	}
}
