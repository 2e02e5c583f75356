package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/writer"
)

// ProgressUpdate reports a completed row via SSE
type ProgressUpdate struct {
	Row  int `json:"row"`
	Rows int `json:"rows"`
}

// FrameUpdate carries the finished frame via SSE
type FrameUpdate struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	PrimaryRays    int     `json:"primaryRays"`
	ShadowRays     int     `json:"shadowRays"`
	ReflectionRays int     `json:"reflectionRays"`
	RefractionRays int     `json:"refractionRays"`
	Hits           int     `json:"hits"`
	RaysPerPixel   float64 `json:"raysPerPixel"`
	RenderTimeMs   int64   `json:"renderTimeMs"`
}

func newStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:    stats.Pixels,
		PrimaryRays:    stats.Rays.Primary,
		ShadowRays:     stats.Rays.Shadow,
		ReflectionRays: stats.Rays.Reflection,
		RefractionRays: stats.Rays.Refraction,
		Hits:           stats.Rays.Hits,
		RaysPerPixel:   stats.RaysPerPixel(),
		RenderTimeMs:   stats.RenderTime.Milliseconds(),
	}
}

// handleRender renders a frame and responds with it as a PNG image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, sc, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rt, err := renderer.NewRaytracer(sc, req.options())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	frame, stats := rt.Render()
	logger.Infof("rendered %s at %dx%d in %d ms", req.Scene, req.Width, req.Height, stats.RenderTime.Milliseconds())

	var buf bytes.Buffer
	if err := writer.Encode(&buf, frame.Image(), writer.PNG); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleRenderStream renders a frame while streaming row progress via SSE and
// finishes with a frame event holding the encoded image
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	req, sc, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	opts := req.options()
	opts.Progress = func(row, rows int) {
		if r.Context().Err() != nil {
			return
		}
		if err := s.sendSSEJSON(w, "progress", ProgressUpdate{Row: row, Rows: rows}); err != nil {
			logger.Warningf("failed to send progress: %v", err)
		}
	}

	rt, err := renderer.NewRaytracer(sc, opts)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Render error: %v", err))
		return
	}

	frame, stats := rt.Render()

	imageData, err := imageToBase64PNG(frame.Image())
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("failed to encode image: %v", err))
		return
	}
	s.sendSSEJSON(w, "frame", FrameUpdate{ImageData: imageData, Stats: newStats(stats)})
	s.sendSSEEvent(w, "complete", "Rendering completed")
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := writer.Encode(&buf, img, writer.PNG); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendSSEJSON sends v as the JSON payload of an SSE event
func (s *Server) sendSSEJSON(w http.ResponseWriter, event string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, event, string(data))
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}
