package term

import (
	"bytes"
	"testing"
)

func TestEncodeLegacyArrowKeys(t *testing.T) {
	got := Encode(KeyEvent{Key: KeyArrowUp}, 0, false)
	if !bytes.Equal(got, []byte("\x1b[A")) {
		t.Errorf("expected CSI arrow-up, got %q", got)
	}

	got = Encode(KeyEvent{Key: KeyArrowUp}, 0, true)
	if !bytes.Equal(got, []byte("\x1bOA")) {
		t.Errorf("expected SS3 arrow-up under DECCKM, got %q", got)
	}
}

func TestEncodeLegacyChar(t *testing.T) {
	got := Encode(KeyEvent{Key: KeyChar, Text: "a"}, 0, false)
	if !bytes.Equal(got, []byte("a")) {
		t.Errorf("expected literal 'a', got %q", got)
	}
}

func TestEncodeLegacyCtrlChar(t *testing.T) {
	got := Encode(KeyEvent{Key: KeyChar, Text: "c", Mods: ModControl}, 0, false)
	if !bytes.Equal(got, []byte{3}) {
		t.Errorf("expected Ctrl-C byte 0x03, got %v", got)
	}
}

func TestEncodeLegacyAltChar(t *testing.T) {
	got := Encode(KeyEvent{Key: KeyChar, Text: "x", Mods: ModAlt}, 0, false)
	if !bytes.Equal(got, []byte("\x1bx")) {
		t.Errorf("expected ESC-prefixed 'x', got %q", got)
	}
}

func TestEncodeLegacyKeyRelease(t *testing.T) {
	got := Encode(KeyEvent{Key: KeyChar, Text: "a", EventType: KeyRelease}, 0, false)
	if got != nil {
		t.Errorf("expected legacy encoding to drop key releases, got %q", got)
	}
}

func TestEncodeKittyUnmodifiedCharFastPath(t *testing.T) {
	got := Encode(KeyEvent{Key: KeyChar, Text: "q"}, 1, false)
	if !bytes.Equal(got, []byte("q")) {
		t.Errorf("expected unmodified kitty char to pass through literally, got %q", got)
	}
}

func TestEncodeKittyModifiedChar(t *testing.T) {
	got := Encode(KeyEvent{Key: KeyChar, Text: "q", Mods: ModControl}, 1, false)
	want := "\x1b[113;5u"
	if string(got) != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncodeKittyRelease(t *testing.T) {
	got := Encode(KeyEvent{Key: KeyArrowUp, EventType: KeyRelease}, 1, false)
	want := "\x1b[57352;1:3u"
	if string(got) != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncodeKittyUnknownKeyFallsBackToLegacy(t *testing.T) {
	// KeyUnidentified has no Kitty code mapping; Encode should fall back to
	// the legacy path, which also produces nothing for it.
	got := Encode(KeyEvent{Key: KeyUnidentified}, 1, false)
	if got != nil {
		t.Errorf("expected nil for an unidentified key, got %q", got)
	}
}
