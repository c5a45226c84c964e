package screen

import (
	"strings"
	"testing"

	"github.com/stupied4ever/tig/pkg/lineinfo"
)

type recordingCell struct {
	out strings.Builder
}

func (c *recordingCell) WriteStyled(s string, info lineinfo.Info) {
	c.out.WriteString(s)
}

func newCanvas(width int) (*Canvas, *recordingCell) {
	cell := &recordingCell{}
	return &Canvas{Cell: cell, Width: width}, cell
}

func TestDrawCharsTruncatesWithTilde(t *testing.T) {
	c, cell := newCanvas(5)
	full := DrawChars(c, lineinfo.Info{}, "hello world", 0, 8, true)
	if !full {
		t.Fatalf("expected canvas to report full")
	}
	if cell.out.String() != "hell~" {
		t.Fatalf("got %q, want %q", cell.out.String(), "hell~")
	}
}

func TestDrawCharsNoTildeWhenItFits(t *testing.T) {
	c, cell := newCanvas(20)
	full := DrawChars(c, lineinfo.Info{}, "hi", 0, 8, true)
	if full {
		t.Fatalf("did not expect canvas to be full")
	}
	if cell.out.String() != "hi" {
		t.Fatalf("got %q", cell.out.String())
	}
}

func TestDrawCharsSkipsScrolledColumns(t *testing.T) {
	c, cell := newCanvas(5)
	c.Offset = 3
	DrawChars(c, lineinfo.Info{}, "0123456789", 0, 8, false)
	if cell.out.String() != "34567" {
		t.Fatalf("got %q, want %q", cell.out.String(), "34567")
	}
}

func TestDrawFieldLeftAlignPadsAndSeparates(t *testing.T) {
	c, cell := newCanvas(20)
	DrawField(c, lineinfo.Info{}, "ab", 5, AlignLeft)
	if cell.out.String() != "ab    " {
		t.Fatalf("got %q", cell.out.String())
	}
}

func TestDrawFieldRightAlign(t *testing.T) {
	c, cell := newCanvas(20)
	DrawField(c, lineinfo.Info{}, "ab", 5, AlignRight)
	if cell.out.String() != "   ab " {
		t.Fatalf("got %q", cell.out.String())
	}
}

func TestDrawDateDisabledReservesNoSpace(t *testing.T) {
	c, cell := newCanvas(20)
	full := DrawDate(c, lineinfo.Info{}, "2026-07-30", false)
	if full {
		t.Fatalf("disabled draw must not report full")
	}
	if cell.out.String() != "" {
		t.Fatalf("disabled draw must not write anything, got %q", cell.out.String())
	}
	if c.Width != 20 {
		t.Fatalf("disabled draw must not consume width, got %d remaining", c.Width)
	}
}

func TestDrawIDReservesCellWhenDisabled(t *testing.T) {
	c, cell := newCanvas(20)
	DrawID(c, lineinfo.Info{}, "deadbeef", 8, false)
	if cell.out.String() != strings.Repeat(" ", 9) {
		t.Fatalf("expected a blank reserved cell, got %q", cell.out.String())
	}
	if c.Width != 11 {
		t.Fatalf("expected 9 columns consumed, got %d remaining", c.Width)
	}
}

func TestDrawLineNoOnlyAtInterval(t *testing.T) {
	c, cell := newCanvas(20)
	DrawLineNo(c, lineinfo.Info{}, 3, 3, 5, false)
	if strings.TrimRight(cell.out.String(), " |") != "" {
		t.Fatalf("expected blank line number off-interval, got %q", cell.out.String())
	}

	c2, cell2 := newCanvas(20)
	DrawLineNo(c2, lineinfo.Info{}, 5, 3, 5, false)
	if !strings.Contains(cell2.out.String(), "5") {
		t.Fatalf("expected line 5 to be drawn at interval 5, got %q", cell2.out.String())
	}
}

func TestTitleBarComposesExpectedShape(t *testing.T) {
	title := TitleBar("main", "refs/heads/main", "commit", 4, 100, 0, false)
	if !strings.Contains(title, "[main]") || !strings.Contains(title, "of 100") {
		t.Fatalf("got %q", title)
	}
}

func TestTitleBarShowsLoadingWhilePipeOpen(t *testing.T) {
	title := TitleBar("log", "", "commit", 0, 0, 3, true)
	if !strings.Contains(title, "loading 3s") {
		t.Fatalf("expected loading suffix, got %q", title)
	}
}
