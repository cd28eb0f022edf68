// Package fonts loads the named font faces the plugins draw with. Faces come
// from the Go fonts shipped in golang.org/x/image, so the repo carries no
// binary font assets.
package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Small   FontName = "small"
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Mono    FontName = "mono"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var fonts = map[FontName]font.Face{}

// Load parses the embedded TTFs and builds every named face. Call once at
// process start, before any Draw.
func Load() {
	loadFace(Small, goregular.TTF, 12)
	loadFace(Regular, goregular.TTF, 14)
	loadFace(Bold, gobold.TTF, 18)
	loadFace(Title, gobold.TTF, 28)
	loadFace(Mono, gomono.TTF, 14)
}

func loadFace(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("fonts: parse %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("fonts: %s not loaded", name))
	}
	return f
}
