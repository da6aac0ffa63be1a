package editor

import (
	"fmt"

	"github.com/ha1tch/deluxetex/internal/scene"
)

// ModeKind enumerates the interaction modes. Exactly one is active.
type ModeKind int

const (
	ModeIdle ModeKind = iota
	ModeDrawing
	ModeDraggingImage
	ModeResizingImage
	ModeDraggingText
)

func (k ModeKind) String() string {
	names := []string{"idle", "drawing", "dragging-image", "resizing-image", "dragging-text"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Mode is the active interaction mode with its payload. Index refers to
// the stroke (Drawing), image (DraggingImage, ResizingImage) or text
// item (DraggingText). Fields that do not belong to Kind are zero.
type Mode struct {
	Kind   ModeKind
	Index  int
	Corner scene.Corner // ResizingImage
	Offset scene.Point  // DraggingImage, DraggingText: pointer minus item origin
	Last   scene.Point  // Drawing: previous pointer position
}

func idle() Mode { return Mode{Kind: ModeIdle} }

func drawing(stroke int, at scene.Point) Mode {
	return Mode{Kind: ModeDrawing, Index: stroke, Last: at}
}

func draggingImage(i int, off scene.Point) Mode {
	return Mode{Kind: ModeDraggingImage, Index: i, Offset: off}
}

func resizingImage(i int, c scene.Corner) Mode {
	return Mode{Kind: ModeResizingImage, Index: i, Corner: c}
}

func draggingText(i int, off scene.Point) Mode {
	return Mode{Kind: ModeDraggingText, Index: i, Offset: off}
}

func (m Mode) String() string {
	switch m.Kind {
	case ModeDrawing:
		return fmt.Sprintf("drawing(stroke %d)", m.Index)
	case ModeDraggingImage:
		return fmt.Sprintf("dragging-image(%d)", m.Index)
	case ModeResizingImage:
		return fmt.Sprintf("resizing-image(%d, %v)", m.Index, m.Corner)
	case ModeDraggingText:
		return fmt.Sprintf("dragging-text(%d)", m.Index)
	}
	return "idle"
}
