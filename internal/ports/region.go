package ports

import "github.com/gabrielcapilla/triplay/internal/domain"

// Region is the part of the screen a surface view draws into.
type Region interface {
	SetGlyph(g domain.Glyph)
	SetInfo(title, artist string)
	SetCover(uri string)
}
