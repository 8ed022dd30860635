package term

import "testing"

func TestBuildFrameBasic(t *testing.T) {
	term := New(WithSize(5, 10))
	term.WriteString("hi")

	frame := term.BuildFrame(nil, -1, -1, -1)

	if frame.Rows != 5 || frame.Cols != 10 {
		t.Errorf("expected 5x10 frame, got %dx%d", frame.Rows, frame.Cols)
	}
	if len(frame.Grid) != 5 || len(frame.Grid[0]) != 10 {
		t.Fatalf("expected grid shaped 5x10, got %dx%d", len(frame.Grid), len(frame.Grid[0]))
	}
	if frame.Grid[0][0].Char != 'h' || frame.Grid[0][1].Char != 'i' {
		t.Errorf("expected 'hi' written into row 0, got %c%c", frame.Grid[0][0].Char, frame.Grid[0][1].Char)
	}
}

func TestBuildFrameCarriesConfig(t *testing.T) {
	term := New(WithSize(5, 10))
	if err := term.ApplyConfig(ConfigDelta{
		Opacity:      floatPtr(0.5),
		BoldIsBright: boolPtr(true),
	}); err != nil {
		t.Fatalf("ApplyConfig failed: %v", err)
	}

	frame := term.BuildFrame(nil, -1, -1, -1)
	if frame.Opacity != 0.5 {
		t.Errorf("expected opacity 0.5, got %v", frame.Opacity)
	}
	if !frame.BoldIsBright {
		t.Error("expected bold-is-bright to carry through to the frame")
	}
}

func TestBuildFrameHoverURL(t *testing.T) {
	term := New(WithSize(5, 40))
	term.WriteString("go to http://example.com now")

	frame := term.BuildFrame(nil, -1, 0, 7)
	if len(frame.HoverURLSegments) != 1 {
		t.Fatalf("expected 1 hovered URL segment, got %d", len(frame.HoverURLSegments))
	}
}

func TestBuildFrameNoHoverWhenCoordsNegative(t *testing.T) {
	term := New(WithSize(5, 40))
	term.WriteString("go to http://example.com now")

	frame := term.BuildFrame(nil, -1, -1, -1)
	if frame.HoverURLSegments != nil {
		t.Errorf("expected no hover segments when hoverRow/Col are negative, got %v", frame.HoverURLSegments)
	}
}

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
