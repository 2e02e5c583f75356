package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var logger = log.New("loaders")

var (
	ErrUnknownDirective = errors.New("unknown directive")
	ErrArgumentCount    = errors.New("wrong number of arguments")
	ErrBadNumber        = errors.New("malformed number")
	ErrUnknownMaterial  = errors.New("unknown material")
)

// ParseError locates a problem in a scene file
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("[line %d] error: %s", e.Line, e.Err)
	}
	return fmt.Sprintf("[%s: %d] error: %s", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// sceneParser holds the state of a scene file being parsed
type sceneParser struct {
	file      string
	scene     *scene.Scene
	materials map[string]material.Material
}

// ParseScene parses a scene description from an io.Reader. name is only used in
// error messages.
//
// Each non-empty line holds one directive; '#' starts a comment:
//
//	camera <width> <height> <fov-degrees>
//	material <name> <r> <g> <b> <diffuse> <specular> <reflect> <refract> <specular-exp> <refractive-index>
//	sphere <x> <y> <z> <radius> <material>
//	chessboard <material1> <material2> [height]
//	light <x> <y> <z> <intensity>
//
// The preset materials are predeclared and may be redefined.
func ParseScene(reader io.Reader, name string) (*scene.Scene, error) {
	p := &sceneParser{
		file: name,
		scene: &scene.Scene{
			CameraConfig: scene.DefaultCameraConfig(),
		},
		materials: make(map[string]material.Material),
	}
	for _, preset := range material.PresetNames() {
		p.materials[preset], _ = material.Preset(preset)
	}

	scanner := bufio.NewScanner(reader)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := p.processLine(scanner.Text()); err != nil {
			return nil, &ParseError{File: name, Line: lineNum, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	if err := p.scene.Validate(); err != nil {
		return nil, err
	}

	logger.Infof("parsed scene %q: %d objects, %d lights", name, len(p.scene.Objects), len(p.scene.Lights))
	return p.scene, nil
}

// LoadScene loads and parses a scene file
func LoadScene(filename string) (*scene.Scene, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename cannot be empty")
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return ParseScene(file, filename)
}

// processLine parses a single line of the scene file
func (p *sceneParser) processLine(line string) error {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	directive, args := fields[0], fields[1:]
	switch directive {
	case "camera":
		return p.parseCamera(args)
	case "material":
		return p.parseMaterial(args)
	case "sphere":
		return p.parseSphere(args)
	case "chessboard":
		return p.parseChessboard(args)
	case "light":
		return p.parseLight(args)
	}
	return fmt.Errorf("%w %q", ErrUnknownDirective, directive)
}

func (p *sceneParser) parseCamera(args []string) error {
	if err := expectArgs("camera", args, 3, 3); err != nil {
		return err
	}
	width, err := parseInt(args[0])
	if err != nil {
		return err
	}
	height, err := parseInt(args[1])
	if err != nil {
		return err
	}
	fov, err := parseFloats(args[2:3])
	if err != nil {
		return err
	}

	camera := scene.CameraConfig{Width: width, Height: height, FOV: fov[0] * math.Pi / 180}
	if err := camera.Validate(); err != nil {
		return err
	}
	p.scene.CameraConfig = camera
	return nil
}

func (p *sceneParser) parseMaterial(args []string) error {
	if err := expectArgs("material", args, 10, 10); err != nil {
		return err
	}
	v, err := parseFloats(args[1:])
	if err != nil {
		return err
	}

	p.materials[args[0]] = material.NewMaterial(
		core.NewVec3(v[0], v[1], v[2]),
		material.Albedo{v[3], v[4], v[5], v[6]},
		v[7],
		v[8],
	)
	return nil
}

func (p *sceneParser) parseSphere(args []string) error {
	if err := expectArgs("sphere", args, 5, 5); err != nil {
		return err
	}
	v, err := parseFloats(args[:4])
	if err != nil {
		return err
	}
	mat, err := p.lookupMaterial(args[4])
	if err != nil {
		return err
	}
	return p.scene.AddSphere(core.NewVec3(v[0], v[1], v[2]), v[3], mat)
}

func (p *sceneParser) parseChessboard(args []string) error {
	if err := expectArgs("chessboard", args, 2, 3); err != nil {
		return err
	}
	material1, err := p.lookupMaterial(args[0])
	if err != nil {
		return err
	}
	material2, err := p.lookupMaterial(args[1])
	if err != nil {
		return err
	}

	board := geometry.NewChessboard(material1, material2)
	if len(args) == 3 {
		height, err := parseFloats(args[2:])
		if err != nil {
			return err
		}
		board.Height = height[0]
	}
	p.scene.Objects = append(p.scene.Objects, board)
	return nil
}

func (p *sceneParser) parseLight(args []string) error {
	if err := expectArgs("light", args, 4, 4); err != nil {
		return err
	}
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	return p.scene.AddLight(core.NewVec3(v[0], v[1], v[2]), v[3])
}

func (p *sceneParser) lookupMaterial(name string) (material.Material, error) {
	mat, ok := p.materials[name]
	if !ok {
		return material.Material{}, fmt.Errorf("%w %q", ErrUnknownMaterial, name)
	}
	return mat, nil
}

func expectArgs(directive string, args []string, minArgs, maxArgs int) error {
	if len(args) < minArgs || len(args) > maxArgs {
		if minArgs == maxArgs {
			return fmt.Errorf("%w: %s expects %d, got %d", ErrArgumentCount, directive, minArgs, len(args))
		}
		return fmt.Errorf("%w: %s expects %d to %d, got %d", ErrArgumentCount, directive, minArgs, maxArgs, len(args))
	}
	return nil
}

func parseFloats(values []string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, value := range values {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrBadNumber, value)
		}
		out[i] = f
	}
	return out, nil
}

func parseInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrBadNumber, value)
	}
	return n, nil
}
