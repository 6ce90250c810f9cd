package render

import (
	"errors"
	"fmt"
)

// Board describes how sections are split across the two columns of the
// reorderable layout. Order within each list is render order.
type Board struct {
	Left  []Section `json:"left"`
	Right []Section `json:"right"`
}

// ErrInvalidMove covers out-of-range indexes and unknown list names.
var ErrInvalidMove = errors.New("invalid move")

// List names accepted by Move.
const (
	ListLeft  = "left"
	ListRight = "right"
)

// DefaultBoard is the arrangement used before the user reorders anything.
func DefaultBoard() Board {
	return Board{
		Left:  []Section{SectionSummary, SectionExperience, SectionEducation},
		Right: []Section{SectionSkills},
	}
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	out := Board{
		Left:  make([]Section, len(b.Left)),
		Right: make([]Section, len(b.Right)),
	}
	copy(out.Left, b.Left)
	copy(out.Right, b.Right)
	return out
}

// Sections returns every section on the board, left column first.
func (b Board) Sections() []Section {
	out := make([]Section, 0, len(b.Left)+len(b.Right))
	out = append(out, b.Left...)
	out = append(out, b.Right...)
	return out
}

// Move relocates the section at srcIndex of srcList to dstIndex of dstList.
// The move is applied atomically: on any validation failure the board is
// returned unchanged. dstIndex is interpreted against the destination list
// after the removal, so moving within one list behaves like drag and drop.
func (b Board) Move(srcList string, srcIndex int, dstList string, dstIndex int) (Board, error) {
	src, err := b.list(srcList)
	if err != nil {
		return b, err
	}
	if srcIndex < 0 || srcIndex >= len(src) {
		return b, fmt.Errorf("%w: source index %d out of range", ErrInvalidMove, srcIndex)
	}

	next := b.Clone()
	section := next.pick(srcList)[srcIndex]
	next.setList(srcList, removeAt(next.pick(srcList), srcIndex))

	dst := next.pick(dstList)
	if _, err := next.list(dstList); err != nil {
		return b, err
	}
	if dstIndex < 0 || dstIndex > len(dst) {
		return b, fmt.Errorf("%w: destination index %d out of range", ErrInvalidMove, dstIndex)
	}
	next.setList(dstList, insertAt(dst, dstIndex, section))
	return next, nil
}

// Normalize drops unknown sections and appends any missing ones in default
// order, so stored boards survive layout changes.
func (b Board) Normalize() Board {
	seen := make(map[Section]bool, 4)
	keep := func(list []Section) []Section {
		out := make([]Section, 0, len(list))
		for _, s := range list {
			if KnownSection(s) && !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
		return out
	}
	next := Board{Left: keep(b.Left), Right: keep(b.Right)}

	def := DefaultBoard()
	for _, s := range def.Left {
		if !seen[s] {
			next.Left = append(next.Left, s)
			seen[s] = true
		}
	}
	for _, s := range def.Right {
		if !seen[s] {
			next.Right = append(next.Right, s)
			seen[s] = true
		}
	}
	return next
}

func (b Board) list(name string) ([]Section, error) {
	switch name {
	case ListLeft:
		return b.Left, nil
	case ListRight:
		return b.Right, nil
	}
	return nil, fmt.Errorf("%w: unknown list %q", ErrInvalidMove, name)
}

func (b Board) pick(name string) []Section {
	if name == ListRight {
		return b.Right
	}
	return b.Left
}

func (b *Board) setList(name string, list []Section) {
	if name == ListRight {
		b.Right = list
		return
	}
	b.Left = list
}

func removeAt(list []Section, i int) []Section {
	out := make([]Section, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

func insertAt(list []Section, i int, s Section) []Section {
	out := make([]Section, 0, len(list)+1)
	out = append(out, list[:i]...)
	out = append(out, s)
	return append(out, list[i:]...)
}
