// Package analysis computes statistics over a cube's move history.
package analysis

import (
	"slices"

	"github.com/SeamusWaldron/cubeengine"
)

// Default n-gram window used by Summarize.
const (
	DefaultMinN = 2
	DefaultMaxN = 8
	DefaultTopK = 5
)

// Summary contains statistics for one move history.
type Summary struct {
	TotalMoves      int              `json:"total_moves"`
	SimplifiedMoves int              `json:"simplified_moves"`
	Efficiency      float64          `json:"efficiency"`
	QuarterTurns    int              `json:"quarter_turns"`
	Profile         *MovementProfile `json:"profile"`
	NGrams          *NGramReport     `json:"ngrams"`
}

// Summarize builds the full summary for a history.
func Summarize(moves []cubeengine.Move) *Summary {
	simplified := Simplify(moves)
	s := &Summary{
		TotalMoves:      len(moves),
		SimplifiedMoves: len(simplified),
		Efficiency:      1,
		QuarterTurns:    QuarterTurns(moves),
		Profile:         AnalyzeMovementProfile(moves),
		NGrams:          MineNGrams(moves, DefaultMinN, DefaultMaxN, DefaultTopK),
	}
	if len(moves) > 0 {
		s.Efficiency = float64(len(simplified)) / float64(len(moves))
	}
	return s
}

// Simplify merges runs of moves that turn the same layers of the same
// face and drops runs that cancel out. The result leaves the cube in the
// same state as the input.
func Simplify(moves []cubeengine.Move) []cubeengine.Move {
	var out []cubeengine.Move
	for _, m := range moves {
		m = m.Canonical()
		if n := len(out); n > 0 && sameSlice(out[n-1], m) {
			out[n-1].Turns = (out[n-1].Turns + m.NetTurns()) % 4
			if out[n-1].Turns == 0 {
				out = out[:n-1]
			}
			continue
		}
		if m.NetTurns() == 0 {
			continue
		}
		m.Turns = m.NetTurns()
		out = append(out, m)
	}
	return out
}

func sameSlice(a, b cubeengine.Move) bool {
	return a.Face == b.Face && slices.Equal(a.Layers, b.Layers)
}

// QuarterTurns counts moves in the quarter-turn metric: a half turn counts
// two, a quarter turn either way counts one.
func QuarterTurns(moves []cubeengine.Move) int {
	total := 0
	for _, m := range moves {
		switch m.NetTurns() {
		case 1, 3:
			total++
		case 2:
			total += 2
		}
	}
	return total
}

// MovementProfile analyzes which faces, layers and turns are most used.
type MovementProfile struct {
	FaceCounts    map[cubeengine.Face]int `json:"face_counts"`
	TurnCounts    map[int]int             `json:"turn_counts"`  // by net turns
	LayerCounts   map[int]int             `json:"layer_counts"` // by layer index
	MostUsedFace  cubeengine.Face         `json:"most_used_face,omitempty"`
	FaceSequences map[string]int          `json:"face_sequences"` // e.g., "RU" -> count
}

// AnalyzeMovementProfile counts face, turn and layer usage.
func AnalyzeMovementProfile(moves []cubeengine.Move) *MovementProfile {
	profile := &MovementProfile{
		FaceCounts:    make(map[cubeengine.Face]int),
		TurnCounts:    make(map[int]int),
		LayerCounts:   make(map[int]int),
		FaceSequences: make(map[string]int),
	}

	for i, m := range moves {
		m = m.Canonical()
		profile.FaceCounts[m.Face]++
		profile.TurnCounts[m.NetTurns()]++
		for _, l := range m.Layers {
			profile.LayerCounts[l]++
		}

		// Track 2-move face sequences
		if i > 0 {
			seq := string(moves[i-1].Face) + string(m.Face)
			profile.FaceSequences[seq]++
		}
	}

	// Ties go to the earlier face in notation order
	maxFaceCount := 0
	for _, face := range cubeengine.Faces {
		if count := profile.FaceCounts[face]; count > maxFaceCount {
			maxFaceCount = count
			profile.MostUsedFace = face
		}
	}

	return profile
}
