package server

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/renderer"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

const (
	defaultSceneName = "default"
	maxImageSize     = 1024
	maxAAGrid        = 16
	consoleBuffer    = 64
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene string  // Builtin name or scene file stem
	AA    int     // Anti-aliasing grid size (AA×AA samples per pixel)
	Size  int     // Square image resolution
	Gamma float64 // Gamma exponent applied to the final color
}

// handleRender renders a scene and responds with a PNG image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	renderID := s.nextRenderID()
	consoleChan := make(chan ConsoleMessage, consoleBuffer)
	logger := NewWebLogger(renderID, consoleChan)

	req := parseRenderRequest(r.URL.Query(), logger)

	sceneObj, status, err := createScene(req.Scene, logger)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}
	sceneObj.SamplingConfig = core.SamplingConfig{
		Width:           req.Size,
		Height:          req.Size,
		SamplesPerPixel: req.AA,
		Gamma:           req.Gamma,
	}
	if err := sceneObj.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rend, err := renderer.NewRenderer(sceneObj, renderer.DefaultRenderConfig(), logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Client disconnection cancels the render through the request context
	buffer, stats, err := rend.Render(r.Context())
	if err != nil {
		log.Printf("[%s] Render aborted: %v", renderID, err)
		writeError(w, http.StatusServiceUnavailable, "render cancelled")
		return
	}

	data, err := encodePNG(buffer)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Aliased-Pixels", strconv.Itoa(stats.AliasedPixels))
	for _, warning := range drainWarnings(consoleChan) {
		w.Header().Add("X-Render-Warning", warning)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("[%s] Failed to write response: %v", renderID, err)
	}
}

// parseRenderRequest reads render parameters from the query string.
// Unparseable or out-of-range values fall back to defaults with a warning.
func parseRenderRequest(values url.Values, logger core.Logger) RenderRequest {
	defaults := core.DefaultSamplingConfig()

	req := RenderRequest{
		Scene: values.Get("scene"),
		AA:    parseIntParam(values, "aa", defaults.SamplesPerPixel, logger),
		Size:  parseIntParam(values, "size", defaults.Width, logger),
		Gamma: parseFloatParam(values, "gamma", defaults.Gamma, logger),
	}
	if req.Scene == "" {
		req.Scene = defaultSceneName
	}

	if req.AA < 1 {
		logger.Printf("Warning: aa %d below 1, using 1\n", req.AA)
		req.AA = 1
	} else if req.AA > maxAAGrid {
		logger.Printf("Warning: aa %d above %d, using %d\n", req.AA, maxAAGrid, maxAAGrid)
		req.AA = maxAAGrid
	}

	if req.Size < 1 {
		logger.Printf("Warning: size %d invalid, using %d\n", req.Size, defaults.Width)
		req.Size = defaults.Width
	} else if req.Size > maxImageSize {
		logger.Printf("Warning: size %d above %d, using %d\n", req.Size, maxImageSize, maxImageSize)
		req.Size = maxImageSize
	}

	if req.Gamma <= 0 {
		logger.Printf("Warning: gamma %g invalid, using %g\n", req.Gamma, defaults.Gamma)
		req.Gamma = defaults.Gamma
	}

	return req
}

// parseIntParam parses an integer parameter, falling back to defaultValue when it is absent or invalid
func parseIntParam(values url.Values, key string, defaultValue int, logger core.Logger) int {
	value := values.Get(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logger.Printf("Warning: invalid %s %q, using %d\n", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

// parseFloatParam parses a float parameter, falling back to defaultValue when it is absent or invalid
func parseFloatParam(values url.Values, key string, defaultValue float64, logger core.Logger) float64 {
	value := values.Get(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logger.Printf("Warning: invalid %s %q, using %g\n", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

// createScene loads a scene by name. Only bare names are accepted so requests
// cannot read files outside the scene directories.
func createScene(name string, logger core.Logger) (*scene.Scene, int, error) {
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return nil, http.StatusBadRequest, fmt.Errorf("invalid scene name: %s", name)
	}

	sceneObj, err := scene.Load(name, logger)
	if errors.Is(err, os.ErrNotExist) {
		return nil, http.StatusNotFound, fmt.Errorf("unknown scene: %s", name)
	}
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("failed to load scene %s: %w", name, err)
	}
	return sceneObj, http.StatusOK, nil
}

// encodePNG encodes img as PNG bytes
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
