package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var logger = log.New("server")

// Request limits
const (
	minFrameSize = 1
	maxFrameSize = 2000
	minFOV       = 1.0
	maxFOV       = 179.0
	maxDepth     = 16
)

// Server handles web requests for the raytracer
type Server struct {
	port     int
	sceneDir string
}

// NewServer creates a new web server. Scene names other than "default" are
// loaded from <sceneDir>/<name>.scene.
func NewServer(port int, sceneDir string) *Server {
	return &Server{port: port, sceneDir: sceneDir}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string  `json:"scene"`    // Scene name (e.g., "default")
	Width    int     `json:"width"`    // Image width
	Height   int     `json:"height"`   // Image height
	FOV      float64 `json:"fov"`      // Horizontal field of view in degrees
	MaxDepth int     `json:"maxDepth"` // Deepest shaded reflection/refraction level
}

// Handler returns the routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render-stream", s.handleRenderStream)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Noticef("starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseRenderRequest parses request parameters. Values that are not given fall
// back to the scene's camera and the default render options.
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, *scene.Scene, error) {
	query := r.URL.Query()

	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	sc, err := s.createScene(req.Scene)
	if err != nil {
		return nil, nil, err
	}

	opts := renderer.OptionsForScene(sc)
	if req.Width, err = parseIntParam(query, "width", opts.Width, minFrameSize, maxFrameSize); err != nil {
		return nil, nil, err
	}
	if req.Height, err = parseIntParam(query, "height", opts.Height, minFrameSize, maxFrameSize); err != nil {
		return nil, nil, err
	}
	if req.FOV, err = parseFloatParam(query, "fov", opts.FOV*180/math.Pi, minFOV, maxFOV); err != nil {
		return nil, nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", opts.MaxDepth, 0, maxDepth); err != nil {
		return nil, nil, err
	}

	return req, sc, nil
}

// options converts the request into render options
func (req *RenderRequest) options() renderer.Options {
	opts := renderer.DefaultOptions()
	opts.Width = req.Width
	opts.Height = req.Height
	opts.FOV = req.FOV * math.Pi / 180
	opts.MaxDepth = req.MaxDepth
	return opts
}

// parseIntParam parses an integer parameter from URL query with validation.
// The default is held to the same range, as it may come from a scene file.
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	parsed := defaultValue
	if value := values.Get(key); value != "" {
		var err error
		if parsed, err = strconv.Atoi(value); err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
	}
	return parsed, nil
}

// parseFloatParam parses a float parameter from URL query with validation.
// The default is held to the same range, as it may come from a scene file.
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	parsed := defaultValue
	if value := values.Get(key); value != "" {
		var err error
		if parsed, err = strconv.ParseFloat(value, 64); err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
	}
	if !(parsed >= min && parsed <= max) {
		return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
	}
	return parsed, nil
}

// createScene returns the built-in scene for "default" and loads any other name
// from the scene directory
func (s *Server) createScene(sceneName string) (*scene.Scene, error) {
	if sceneName == "default" {
		return scene.NewDefaultScene(), nil
	}
	if sceneName != filepath.Base(sceneName) || strings.HasPrefix(sceneName, ".") {
		return nil, fmt.Errorf("invalid scene name: %q", sceneName)
	}
	return loaders.LoadScene(filepath.Join(s.sceneDir, sceneName+".scene"))
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sc, err := s.createScene(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	opts := renderer.OptionsForScene(sc)
	counts := sc.Count()
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":    opts.Width,
			"height":   opts.Height,
			"fov":      opts.FOV * 180 / math.Pi,
			"maxDepth": opts.MaxDepth,
		},
		"contents": map[string]int{
			"spheres":     counts.Spheres,
			"chessboards": counts.Chessboards,
			"other":       counts.Other,
			"lights":      counts.Lights,
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": minFrameSize, "max": maxFrameSize},
			"height":   map[string]int{"min": minFrameSize, "max": maxFrameSize},
			"fov":      map[string]float64{"min": minFOV, "max": maxFOV},
			"maxDepth": map[string]int{"min": 0, "max": maxDepth},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warningf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
