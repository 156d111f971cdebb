// Package render draws cubes as colored unfolded nets for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubeengine"
)

// Palette maps sticker colors to terminal colors.
var Palette = map[cubeengine.Color]lipgloss.Color{
	cubeengine.White:  lipgloss.Color("255"),
	cubeengine.Yellow: lipgloss.Color("226"),
	cubeengine.Green:  lipgloss.Color("34"),
	cubeengine.Blue:   lipgloss.Color("27"),
	cubeengine.Red:    lipgloss.Color("196"),
	cubeengine.Orange: lipgloss.Color("208"),
}

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Net renders c as
//
//	  U
//	L F R B
//	  D
//
// with one two-column block per sticker.
type Net struct {
	// Plain uses letters instead of colored blocks.
	Plain bool
	// Labels prints the face letter above each face.
	Labels bool
}

func (n Net) sticker(color cubeengine.Color) string {
	if n.Plain {
		return color.String() + " "
	}
	return lipgloss.NewStyle().Background(Palette[color]).Render("  ")
}

func (n Net) face(c *cubeengine.Cube, f cubeengine.Face) string {
	var rows []string
	if n.Labels {
		rows = append(rows, labelStyle.Render(string(f))+strings.Repeat(" ", 2*c.Dim()-1))
	}
	for _, row := range c.FaceGrid(f) {
		var b strings.Builder
		for _, color := range row {
			b.WriteString(n.sticker(color))
		}
		rows = append(rows, b.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Render returns the net of c.
func (n Net) Render(c *cubeengine.Cube) string {
	gap := " "
	pad := lipgloss.NewStyle().PaddingLeft(2*c.Dim() + len(gap))

	up := pad.Render(n.face(c, cubeengine.FaceU))
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		n.face(c, cubeengine.FaceL), gap,
		n.face(c, cubeengine.FaceF), gap,
		n.face(c, cubeengine.FaceR), gap,
		n.face(c, cubeengine.FaceB),
	)
	down := pad.Render(n.face(c, cubeengine.FaceD))

	return lipgloss.JoinVertical(lipgloss.Left, up, middle, down)
}

// Render draws c with colored blocks.
func Render(c *cubeengine.Cube) string {
	return Net{Labels: true}.Render(c)
}
