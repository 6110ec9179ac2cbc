package game

import "github.com/hexworth/blockfolio/input"

// Mode is the active screen of the game
type Mode uint8

const (
	ModeTitle Mode = iota
	ModeOverworld
	ModeParkour
	ModeTrivia
	ModeGallery
)

func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModeOverworld:
		return "overworld"
	case ModeParkour:
		return "parkour"
	case ModeTrivia:
		return "trivia"
	case ModeGallery:
		return "gallery"
	}
	return "unknown"
}

// inputContext maps the mode onto the key translation context
func (m Mode) inputContext() input.Context {
	switch m {
	case ModeTitle:
		return input.ContextTitle
	case ModeParkour:
		return input.ContextParkour
	case ModeTrivia:
		return input.ContextTrivia
	case ModeGallery:
		return input.ContextGallery
	}
	return input.ContextOverworld
}
