package input

import "github.com/gdamore/tcell/v2"

// Context mirrors game modes for key translation
// Kept in sync by the game when switching modes
type Context uint8

const (
	ContextTitle Context = iota
	ContextOverworld
	ContextParkour
	ContextTrivia
	ContextGallery
)

// Translate maps a terminal key event to a semantic intent for the given
// context. Unbound keys yield IntentNone
func Translate(ev *tcell.EventKey, ctx Context) Intent {
	// Context-independent bindings
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return Intent{Type: IntentQuit}
	case tcell.KeyEscape:
		return Intent{Type: IntentBack}
	}

	switch ctx {
	case ContextTitle:
		return translateTitle(ev)
	case ContextOverworld:
		return translateOverworld(ev)
	case ContextParkour:
		return translateParkour(ev)
	case ContextTrivia:
		return translateTrivia(ev)
	case ContextGallery:
		return translateGallery(ev)
	}
	return Intent{}
}

func translateTitle(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEnter:
		return Intent{Type: IntentConfirm}
	}
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q':
			return Intent{Type: IntentQuit}
		case ' ':
			return Intent{Type: IntentConfirm}
		}
	}
	return Intent{}
}

func translateOverworld(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return Intent{Type: IntentScrollUp}
	case tcell.KeyDown:
		return Intent{Type: IntentScrollDown}
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= '1' && r <= '9' {
			return Intent{Type: IntentSelectSlot, Slot: int(r - '1'), Char: r}
		}
		switch r {
		case 'k':
			return Intent{Type: IntentScrollUp, Char: r}
		case 'j':
			return Intent{Type: IntentScrollDown, Char: r}
		case 'm':
			return Intent{Type: IntentToggleMute, Char: r}
		}
	}
	return Intent{}
}

func translateParkour(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyLeft:
		return Intent{Type: IntentMoveLeft}
	case tcell.KeyRight:
		return Intent{Type: IntentMoveRight}
	case tcell.KeyUp:
		return Intent{Type: IntentJump}
	}
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'h', 'a':
			return Intent{Type: IntentMoveLeft, Char: ev.Rune()}
		case 'l', 'd':
			return Intent{Type: IntentMoveRight, Char: ev.Rune()}
		case ' ', 'w':
			return Intent{Type: IntentJump, Char: ev.Rune()}
		case 'm':
			return Intent{Type: IntentToggleMute, Char: ev.Rune()}
		}
	}
	return Intent{}
}

func translateTrivia(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyLeft:
		return Intent{Type: IntentCursorLeft}
	case tcell.KeyRight:
		return Intent{Type: IntentCursorRight}
	case tcell.KeyEnter:
		return Intent{Type: IntentBreakBlock}
	}
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'h', 'a':
			return Intent{Type: IntentCursorLeft, Char: ev.Rune()}
		case 'l', 'd':
			return Intent{Type: IntentCursorRight, Char: ev.Rune()}
		case ' ':
			return Intent{Type: IntentBreakBlock, Char: ev.Rune()}
		case 'm':
			return Intent{Type: IntentToggleMute, Char: ev.Rune()}
		}
	}
	return Intent{}
}

func translateGallery(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return Intent{Type: IntentScrollUp}
	case tcell.KeyDown:
		return Intent{Type: IntentScrollDown}
	case tcell.KeyEnter:
		return Intent{Type: IntentConfirm}
	}
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'k':
			return Intent{Type: IntentScrollUp, Char: ev.Rune()}
		case 'j':
			return Intent{Type: IntentScrollDown, Char: ev.Rune()}
		case 'm':
			return Intent{Type: IntentToggleMute, Char: ev.Rune()}
		}
	}
	return Intent{}
}
