// Cube - CLI application for turning, storing and serving N×N×N cubes.
package main

import (
	"github.com/SeamusWaldron/cubeengine/internal/cli"
)

func main() {
	cli.Execute()
}
