package scene

import "fmt"

// SelectionKind tags the Selection variant.
type SelectionKind int

const (
	SelectedNone SelectionKind = iota
	SelectedImage
	SelectedText
)

// Selection is {None} | {Image, index} | {Text, index}. Only one list can
// be selected at a time.
type Selection struct {
	Kind  SelectionKind
	Index int
}

func SelectNone() Selection           { return Selection{Kind: SelectedNone} }
func SelectImage(index int) Selection { return Selection{Kind: SelectedImage, Index: index} }
func SelectText(index int) Selection  { return Selection{Kind: SelectedText, Index: index} }

// Image returns the selected image index.
func (s Selection) Image() (int, bool) {
	return s.Index, s.Kind == SelectedImage
}

// Text returns the selected text index.
func (s Selection) Text() (int, bool) {
	return s.Index, s.Kind == SelectedText
}

// IsNone reports whether nothing is selected.
func (s Selection) IsNone() bool {
	return s.Kind == SelectedNone
}

func (s Selection) String() string {
	switch s.Kind {
	case SelectedImage:
		return fmt.Sprintf("image[%d]", s.Index)
	case SelectedText:
		return fmt.Sprintf("text[%d]", s.Index)
	}
	return "none"
}
