package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in materials that scene files can refer to.
func ListMaterials(ctx *cli.Context) error {
	setupLogging(ctx)

	logger.Noticef("built-in materials\n%s", materialTable())
	return nil
}

func materialTable() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Diffuse color", "Diffuse", "Specular", "Reflect", "Refract", "Specular exp", "Refractive index"})
	for _, name := range material.PresetNames() {
		m, _ := material.Preset(name)
		table.Append([]string{
			name,
			fmt.Sprintf("%.2f %.2f %.2f", m.DiffuseColor.X, m.DiffuseColor.Y, m.DiffuseColor.Z),
			fmt.Sprintf("%.2f", m.Diffuse()),
			fmt.Sprintf("%.2f", m.Specular()),
			fmt.Sprintf("%.2f", m.Reflective()),
			fmt.Sprintf("%.2f", m.Refractive()),
			fmt.Sprintf("%g", m.SpecularExponent),
			fmt.Sprintf("%g", m.RefractiveIndex),
		})
	}

	table.Render()
	return buf.String()
}
