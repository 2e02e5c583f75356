package scene

import (
	"bytes"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/olekukonko/tablewriter"
)

// Counts tallies the scene contents by kind
type Counts struct {
	Spheres     int
	Chessboards int
	Other       int
	Lights      int
}

// Count tallies the scene contents by kind
func (s *Scene) Count() Counts {
	var c Counts
	for _, shape := range s.Objects {
		switch shape.(type) {
		case *geometry.Sphere:
			c.Spheres++
		case *geometry.Chessboard:
			c.Chessboards++
		default:
			c.Other++
		}
	}
	c.Lights = len(s.Lights)
	return c
}

// Stats builds a tabular representation of the scene contents.
func (s *Scene) Stats() string {
	counts := s.Count()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Element", "Detail", "Count"})
	table.Append([]string{"Objects", "Spheres", fmt.Sprintf("%d", counts.Spheres)})
	table.Append([]string{"", "Chessboards", fmt.Sprintf("%d", counts.Chessboards)})
	if counts.Other > 0 {
		table.Append([]string{"", "Other", fmt.Sprintf("%d", counts.Other)})
	}
	table.Append([]string{"Lights", "Point", fmt.Sprintf("%d", counts.Lights)})
	table.Append([]string{"Camera", fmt.Sprintf("%dx%d, fov %.1f°", s.CameraConfig.Width, s.CameraConfig.Height, s.CameraConfig.FOV*180/math.Pi), ""})
	table.SetFooter([]string{"Total", "", fmt.Sprintf("%d", len(s.Objects)+counts.Lights)})

	table.Render()
	return buf.String()
}
