package assets

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	BannerFont *text.GoTextFace
	HintFont   *text.GoTextFace
)

func init() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	BannerFont = &text.GoTextFace{
		Source: fontSource,
		Size:   30,
	}
	HintFont = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}
