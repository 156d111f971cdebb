package cubeengine

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Move represents a rotation of one or more parallel layers about a face.
type Move struct {
	Layers []int // Slices counted inward from Face, 1 is the face itself
	Face   Face  // Which face the layers are counted from
	Turns  int   // Clockwise quarter turns as seen from outside Face
}

// Canonical returns the move with defaults filled in: layers sorted and
// de-duplicated, an empty layer set replaced by {1}.
func (m Move) Canonical() Move {
	layers := slices.Clone(m.Layers)
	if len(layers) == 0 {
		layers = []int{1}
	}
	slices.Sort(layers)
	return Move{Layers: slices.Compact(layers), Face: m.Face, Turns: m.Turns}
}

// Notation returns the canonical notation string for this move.
// Examples: 1F1, 12R3, 123U2
func (m Move) Notation() string {
	c := m.Canonical()
	var b strings.Builder
	for _, l := range c.Layers {
		b.WriteString(strconv.Itoa(l))
	}
	b.WriteString(string(c.Face))
	b.WriteString(strconv.Itoa(c.Turns))
	return b.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// NetTurns returns the number of quarter turns modulo 4.
func (m Move) NetTurns() int {
	return ((m.Turns % 4) + 4) % 4
}

// Inverse returns the move that undoes this one.
// R1 becomes R3, R3 becomes R1, R2 stays R2 and R4 becomes R0.
func (m Move) Inverse() Move {
	inv := m.Canonical()
	inv.Turns = (4 - m.NetTurns()) % 4
	return inv
}

// ParseMove parses one move token of the form <layers>?<FACE><turns>?.
// Each layer digit is a separate layer index. Omitted layers mean {1} and
// omitted turns mean 1. Input is case-insensitive.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty move", ErrInvalidMoveSyntax)
	}

	// Find the face letter; everything before it is the layer prefix
	pos := strings.IndexFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if pos < 0 {
		return Move{}, fmt.Errorf("%w: %q has no face", ErrInvalidMoveSyntax, s)
	}
	face, ok := parseFace(s[pos])
	if !ok {
		return Move{}, fmt.Errorf("%w: %q has invalid face %q", ErrInvalidMoveSyntax, s, s[pos])
	}

	// Extract layers
	var layers []int
	for i := 0; i < pos; i++ {
		layer := int(s[i] - '0')
		if layer == 0 {
			return Move{}, fmt.Errorf("%w: %q has layer 0", ErrInvalidMoveSyntax, s)
		}
		layers = append(layers, layer)
	}

	// Extract turns
	turns := 1
	if suffix := s[pos+1:]; suffix != "" {
		for i := 0; i < len(suffix); i++ {
			if suffix[i] < '0' || suffix[i] > '9' {
				return Move{}, fmt.Errorf("%w: %q has non-digit turn count", ErrInvalidMoveSyntax, s)
			}
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			return Move{}, fmt.Errorf("%w: %q: %v", ErrInvalidMoveSyntax, s, err)
		}
		turns = n
	}

	return Move{Layers: layers, Face: face, Turns: turns}.Canonical(), nil
}

// ParseMoves parses a comma-separated sequence of moves.
// Example: "R, 2U3, F2"
// An empty string yields no moves. Any invalid token fails the whole parse.
func ParseMoves(s string) ([]Move, error) {
	if strings.TrimSpace(s) == "" {
		return []Move{}, nil
	}

	parts := strings.Split(s, ",")
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a comma-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, ",")
}

// InverseSequence returns the moves that undo moves, in reverse order.
func InverseSequence(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
