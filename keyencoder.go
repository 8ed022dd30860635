package term

import (
	"fmt"
	"strings"

	"github.com/danielgatis/go-ansicode"
)

// Key identifies a logical keyboard key, independent of any particular UI
// toolkit's key codes.
type Key int

const (
	KeyUnidentified Key = iota
	KeyChar                 // a printable character; see KeyEvent.Text
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModControl
	ModSuper
)

// KeyLocation distinguishes keys that exist in more than one place on a
// keyboard (e.g. left/right Shift, or the numeric keypad).
type KeyLocation int

const (
	LocationStandard KeyLocation = iota
	LocationLeft
	LocationRight
	LocationKeypad
)

// KeyEventType distinguishes a fresh press from an OS-generated repeat or a
// key release. Only meaningful when the Kitty keyboard protocol is active;
// legacy encoding only ever sends presses.
type KeyEventType int

const (
	KeyPress KeyEventType = iota
	KeyRepeat
	KeyRelease
)

// KeyEvent is a toolkit-independent description of one keyboard event.
type KeyEvent struct {
	Key       Key
	Mods      Modifiers
	Text      string // UTF-8 text for Key == KeyChar
	Location  KeyLocation
	EventType KeyEventType
}

// CurrentKeyboardMode returns the terminal's active Kitty keyboard protocol
// flags (the top of the keyboard-mode stack), or zero if the protocol has
// never been enabled.
func (t *Terminal) CurrentKeyboardMode() ansicode.KeyboardMode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.keyboardModes) == 0 {
		return 0
	}
	return t.keyboardModes[len(t.keyboardModes)-1]
}

// AppCursorKeys reports whether DECCKM (application cursor keys mode) is
// set, which selects SS3 over CSI for arrow/Home/End encoding.
func (t *Terminal) AppCursorKeys() bool {
	return t.HasMode(ModeCursorKeys)
}

// EncodeKey is a convenience wrapper around Encode that reads the
// terminal's current keyboard mode and DECCKM setting.
func (t *Terminal) EncodeKey(ev KeyEvent) []byte {
	return Encode(ev, t.CurrentKeyboardMode(), t.AppCursorKeys())
}

// Encode translates a KeyEvent into the bytes that should be written to the
// PTY. appCursorKeys reflects DECCKM (ModeCursorKeys): when set, arrow keys
// and Home/End send SS3 sequences instead of CSI. When any of the
// terminal's keyboardModes flags are set, the Kitty keyboard protocol
// (CSI-u) is used instead of the legacy xterm encoding.
func Encode(ev KeyEvent, keyboardMode ansicode.KeyboardMode, appCursorKeys bool) []byte {
	if keyboardMode != 0 {
		return encodeKitty(ev, appCursorKeys)
	}
	return encodeLegacy(ev, appCursorKeys)
}

// encodeLegacy reproduces the fixed xterm-compatible escape sequences most
// terminal emulators fall back to outside the Kitty protocol.
func encodeLegacy(ev KeyEvent, appCursorKeys bool) []byte {
	if ev.EventType == KeyRelease {
		return nil
	}

	ctrl := ev.Mods&ModControl != 0
	alt := ev.Mods&ModAlt != 0
	shift := ev.Mods&ModShift != 0

	switch ev.Key {
	case KeyArrowUp:
		return cursorSeq('A', appCursorKeys)
	case KeyArrowDown:
		return cursorSeq('B', appCursorKeys)
	case KeyArrowRight:
		return cursorSeq('C', appCursorKeys)
	case KeyArrowLeft:
		return cursorSeq('D', appCursorKeys)
	case KeyHome:
		return cursorSeq('H', appCursorKeys)
	case KeyEnd:
		return cursorSeq('F', appCursorKeys)
	case KeyPageUp:
		return []byte("\x1b[5~")
	case KeyPageDown:
		return []byte("\x1b[6~")
	case KeyInsert:
		return []byte("\x1b[2~")
	case KeyDelete:
		return []byte("\x1b[3~")
	case KeyF1:
		return []byte("\x1bOP")
	case KeyF2:
		return []byte("\x1bOQ")
	case KeyF3:
		return []byte("\x1bOR")
	case KeyF4:
		return []byte("\x1bOS")
	case KeyF5:
		return []byte("\x1b[15~")
	case KeyF6:
		return []byte("\x1b[17~")
	case KeyF7:
		return []byte("\x1b[18~")
	case KeyF8:
		return []byte("\x1b[19~")
	case KeyF9:
		return []byte("\x1b[20~")
	case KeyF10:
		return []byte("\x1b[21~")
	case KeyF11:
		return []byte("\x1b[23~")
	case KeyF12:
		return []byte("\x1b[24~")
	case KeyBackspace:
		return []byte{0x7f}
	case KeyEscape:
		return []byte{0x1b}
	case KeyEnter:
		return []byte{'\r'}
	case KeyTab:
		if shift {
			return []byte("\x1b[Z")
		}
		return []byte{'\t'}
	case KeyChar:
		return encodeChar(ev.Text, ctrl, alt, shift)
	}

	return nil
}

// cursorSeq picks the CSI or SS3 form of an arrow/Home/End sequence
// depending on DECCKM (application cursor keys mode).
func cursorSeq(final byte, appCursorKeys bool) []byte {
	if appCursorKeys {
		return []byte{0x1b, 'O', final}
	}
	return []byte{0x1b, '[', final}
}

// encodeChar handles a printable character, including Ctrl and Alt
// combinations that don't route through a named Key constant.
func encodeChar(text string, ctrl, alt, shift bool) []byte {
	if text == "" {
		return nil
	}
	r := []rune(text)[0]

	if ctrl {
		switch {
		case r >= 'a' && r <= 'z':
			return []byte{byte(r-'a') + 1}
		case r >= 'A' && r <= 'Z':
			return []byte{byte(r-'A') + 1}
		case r == ' ':
			return []byte{0}
		}
	}

	var out []byte
	if alt {
		out = append(out, 0x1b)
	}
	_ = shift // shift is already reflected in the case of text's rune
	return append(out, []byte(text)...)
}

// encodeKitty implements the subset of the Kitty keyboard protocol (CSI-u)
// needed to disambiguate modified keys and key-release/repeat events: a
// plain, unmodified press of a printable character is sent as its literal
// UTF-8 bytes (the common fast path every terminal supports), while
// anything that needs the extra information the legacy encoding can't
// express — modifiers on a char key, function/navigation keys, and
// repeat/release events — is sent as `CSI codepoint ; modifiers : event u`.
func encodeKitty(ev KeyEvent, appCursorKeys bool) []byte {
	if ev.Key == KeyChar && ev.Mods == 0 && ev.EventType == KeyPress {
		return []byte(ev.Text)
	}

	code, ok := kittyKeyCode(ev)
	if !ok {
		return encodeLegacy(ev, appCursorKeys)
	}

	mod := kittyModifier(ev.Mods)
	event := int(ev.EventType) + 1 // Kitty event numbers are 1-based: press=1, repeat=2, release=3

	var b strings.Builder
	b.WriteString("\x1b[")
	b.WriteString(fmt.Sprintf("%d", code))
	if mod != 1 || event != 1 {
		b.WriteString(fmt.Sprintf(";%d", mod))
		if event != 1 {
			b.WriteString(fmt.Sprintf(":%d", event))
		}
	}
	b.WriteByte('u')
	return []byte(b.String())
}

// kittyKeyCode maps a Key to the Unicode codepoint (or private-use code for
// non-character keys) the Kitty protocol expects in a CSI-u sequence.
func kittyKeyCode(ev KeyEvent) (int, bool) {
	if ev.Key == KeyChar {
		if ev.Text == "" {
			return 0, false
		}
		return int([]rune(ev.Text)[0]), true
	}

	// Private-use-area codes for functional keys, per the Kitty protocol spec.
	codes := map[Key]int{
		KeyEnter:      13,
		KeyTab:        9,
		KeyBackspace:  127,
		KeyEscape:     27,
		KeyArrowUp:    57352,
		KeyArrowDown:  57353,
		KeyArrowRight: 57351,
		KeyArrowLeft:  57350,
		KeyHome:       57356,
		KeyEnd:        57357,
		KeyPageUp:     57354,
		KeyPageDown:   57355,
		KeyInsert:     57348,
		KeyDelete:     57349,
		KeyF1:         57364,
		KeyF2:         57365,
		KeyF3:         57366,
		KeyF4:         57367,
		KeyF5:         57368,
		KeyF6:         57369,
		KeyF7:         57370,
		KeyF8:         57371,
		KeyF9:         57372,
		KeyF10:        57373,
		KeyF11:        57374,
		KeyF12:        57375,
	}
	code, ok := codes[ev.Key]
	return code, ok
}

// kittyModifier packs Modifiers into the Kitty protocol's 1-based modifier
// number: 1 + (Shift=1, Alt=2, Ctrl=4, Super=8).
func kittyModifier(mods Modifiers) int {
	n := 1
	if mods&ModShift != 0 {
		n += 1
	}
	if mods&ModAlt != 0 {
		n += 2
	}
	if mods&ModControl != 0 {
		n += 4
	}
	if mods&ModSuper != 0 {
		n += 8
	}
	return n
}
