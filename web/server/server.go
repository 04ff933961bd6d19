package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/cache"
	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Limits on request parameters
const (
	MaxImageSize  = 2000
	MaxDepthLimit = 20
)

// Server handles web requests for the ray tracer
type Server struct {
	config   config.Config
	cache    *cache.Cache // nil disables caching
	uploader output.Sink  // nil disables uploads
	mux      *http.ServeMux
}

// NewServer creates a new web server. renderCache and uploader are optional.
func NewServer(cfg config.Config, renderCache *cache.Cache, uploader output.Sink) *Server {
	s := &Server{
		config:   cfg,
		cache:    renderCache,
		uploader: uploader,
		mux:      http.NewServeMux(),
	}

	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	return s
}

// Handler returns the server's routes wrapped in request logging
func (s *Server) Handler() http.Handler {
	return logRequests(s.mux)
}

// Start serves until the listener fails
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:              s.config.ServerAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	glog.Infof("Starting web server on %s", s.config.ServerAddress)
	return srv.ListenAndServe()
}

// RenderRequest holds the parsed parameters of a render or inspect request
type RenderRequest struct {
	Scene       string  // Scene id
	Width       int     // 0 = scene default
	Height      int     // 0 = scene default
	FieldOfView float64 // Radians, 0 = scene default
	MaxDepth    int
	Format      output.Format
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleRender renders a scene and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sc, err := s.loadScene(req)
	if err != nil {
		writeSceneError(w, err)
		return
	}

	key := cache.RenderKey{
		Scene:       req.Scene,
		Width:       sc.CameraConfig.Width,
		Height:      sc.CameraConfig.Height,
		FieldOfView: sc.CameraConfig.FieldOfView,
		MaxDepth:    req.MaxDepth,
		Format:      string(req.Format),
	}

	if s.cache != nil {
		data, ok, err := s.cache.Get(key)
		if err != nil {
			glog.Errorf("Render cache lookup failed: %v", err)
		} else if ok {
			glog.V(1).Infof("Render cache hit for %s %dx%d", req.Scene, key.Width, key.Height)
			writeImage(w, req.Format, data, "hit")
			return
		}
	}

	cam, err := sc.Camera()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid camera: "+err.Error())
		return
	}

	rend := renderer.NewRenderer(cam, renderer.Config{Workers: s.config.Workers, MaxDepth: req.MaxDepth})
	cv, stats, err := rend.Render(r.Context(), sc.World)
	if err != nil {
		// Usually the client went away
		glog.Warningf("Render of %s aborted: %v", req.Scene, err)
		writeError(w, http.StatusServiceUnavailable, "Render aborted")
		return
	}

	data, err := output.Encode(cv, req.Format)
	if err != nil {
		glog.Errorf("Encoding %s failed: %v", req.Scene, err)
		writeError(w, http.StatusInternalServerError, "Encoding failed")
		return
	}

	if s.cache != nil {
		if err := s.cache.Put(key, data); err != nil {
			glog.Errorf("Render cache store failed: %v", err)
		}
	}

	if s.uploader != nil {
		objectKey := output.Key(req.Scene, time.Now(), "", string(req.Format))
		location, err := s.uploader.Save(r.Context(), objectKey, data, req.Format.ContentType())
		if err != nil {
			glog.Errorf("Upload of %s failed: %v", objectKey, err)
		} else {
			w.Header().Set("X-Upload-Location", location)
		}
	}

	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	writeImage(w, req.Format, data, "miss")
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	defaultDepth := s.config.MaxDepth
	if defaultDepth == 0 {
		defaultDepth = renderer.MaxDepth
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, 1, MaxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 0, 1, MaxImageSize); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "depth", defaultDepth, 1, MaxDepthLimit); err != nil {
		return nil, err
	}

	fovDegrees, err := parseFloatParam(values, "fov", 0, 1, 179)
	if err != nil {
		return nil, err
	}
	req.FieldOfView = fovDegrees * math.Pi / 180

	format := values.Get("format")
	if format == "" {
		format = string(output.FormatPNG)
	}
	if req.Format, err = output.ParseFormat(format); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.MaxDepth > 10 {
		glog.Warningf("Render warning: large image with deep recursion may render slowly")
	}

	return req, nil
}

// loadScene builds the requested scene with size and fov overrides
func (s *Server) loadScene(req *RenderRequest) (*scene.Scene, error) {
	return scene.Load(req.Scene, scene.CameraConfig{
		Width:       req.Width,
		Height:      req.Height,
		FieldOfView: req.FieldOfView,
	})
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeImage(w http.ResponseWriter, format output.Format, data []byte, cacheStatus string) {
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Cache", cacheStatus)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		glog.V(1).Infof("Writing image response failed: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		glog.Errorf("Encoding JSON response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeSceneError(w http.ResponseWriter, err error) {
	if xerrors.Is(err, scene.ErrUnknownScene) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

// statusRecorder captures the status code for request logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		glog.V(1).Infof("%s %s %d %v", r.Method, r.URL.RequestURI(), rec.status, time.Since(started))
		if rec.status >= 500 {
			glog.Errorf("%s %s failed with %d", r.Method, r.URL.Path, rec.status)
		}
	})
}
