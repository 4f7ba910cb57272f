package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/pong2d/assets"
	"github.com/meghashyamc/pong2d/pong"
)

var (
	colorBackground  = color.RGBA{0, 0, 0, 255}
	colorCourt       = color.RGBA{60, 60, 60, 255}
	colorBall        = color.RGBA{255, 220, 0, 255}
	colorLeftPaddle  = color.RGBA{40, 90, 255, 255}
	colorRightPaddle = color.RGBA{230, 40, 40, 255}
)

func drawCourt(screen *ebiten.Image, field pong.Field) {
	center := field.Center()
	vector.StrokeLine(screen, float32(center.X), float32(field.Top()), float32(center.X), float32(field.Bottom()), 2, colorCourt, false)
	vector.StrokeRect(screen, 0, 0, float32(field.Width), float32(field.Height), 2, colorCourt, false)
}

func drawPaddle(screen *ebiten.Image, paddle *pong.Paddle, col color.Color) {
	r := paddle.Rect()
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), col, false)
}

func drawBall(screen *ebiten.Image, ball *pong.Ball) {
	pos := ball.Position()
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(ball.Radius()), colorBall, true)
}

// drawCentered writes msg centred horizontally at y.
func drawCentered(screen *ebiten.Image, msg string, face text.Face, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, face, op)
}

func drawBanner(screen *ebiten.Image, field pong.Field, msg string) {
	center := field.Center()
	drawCentered(screen, msg, assets.BannerFont, center.X, center.Y-20)
}

func drawHint(screen *ebiten.Image, field pong.Field, msg string) {
	drawCentered(screen, msg, assets.HintFont, field.Center().X, field.Bottom()-30)
}
