package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"spritegen/internal/cache"
	"spritegen/internal/config"
	"spritegen/internal/core"
	"spritegen/internal/presets"
	"spritegen/internal/render"
	"spritegen/internal/sprite"
	"spritegen/pkg/buildinfo"
	sgerrors "spritegen/pkg/errors"
)

// spriteRequest is the normalized form of query or body parameters.
type spriteRequest struct {
	seed   int64
	seeded bool
	scale  int
	opts   render.Options
}

type presetInfo struct {
	Name       string `json:"name"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	GridWidth  int    `json:"grid_width"`
	GridHeight int    `json:"grid_height"`
	MirrorX    bool   `json:"mirror_x"`
	MirrorY    bool   `json:"mirror_y"`
}

type customRequest struct {
	Width   int            `json:"width"`
	Height  int            `json:"height"`
	Cells   []int          `json:"cells"`
	MirrorX *bool          `json:"mirror_x"`
	MirrorY *bool          `json:"mirror_y"`
	Seed    *int64         `json:"seed"`
	Scale   int            `json:"scale"`
	Format  string         `json:"format"`
	Options map[string]any `json:"options"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	names := presets.Names()
	out := make([]presetInfo, 0, len(names))
	for _, name := range names {
		m, err := presets.Get(name)
		if err != nil {
			continue
		}
		size := m.GridSize()
		out = append(out, presetInfo{
			Name: name, Width: m.Width(), Height: m.Height(),
			GridWidth: size.W, GridHeight: size.H,
			MirrorX: m.MirrorX(), MirrorY: m.MirrorY(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePresetPNG(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	m, req, err := s.presetRequest(r, name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.servePNG(w, r.Context(), "preset:"+name, m, req)
}

func (s *Server) handlePresetDump(w http.ResponseWriter, r *http.Request) {
	m, req, err := s.presetRequest(r, chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.serveDump(w, m, req)
}

func (s *Server) handleCustom(w http.ResponseWriter, r *http.Request) {
	var body customRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		s.writeError(w, sgerrors.Wrap(sgerrors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}

	var maskOpts []sprite.MaskOption
	if body.MirrorX != nil {
		maskOpts = append(maskOpts, sprite.WithMirrorX(*body.MirrorX))
	}
	if body.MirrorY != nil {
		maskOpts = append(maskOpts, sprite.WithMirrorY(*body.MirrorY))
	}
	m, err := sprite.NewMask(body.Cells, body.Width, body.Height, maskOpts...)
	if err != nil {
		s.writeError(w, err)
		return
	}

	kv := make(map[string]string, len(body.Options))
	for k, v := range body.Options {
		kv[k] = fmt.Sprint(v)
	}
	scale := ""
	if body.Scale != 0 {
		scale = strconv.Itoa(body.Scale)
	}
	req, err := s.buildRequest(body.Seed, scale, kv)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if body.Format == "txt" {
		s.serveDump(w, m, req)
		return
	}
	fingerprint := fmt.Sprintf("custom:%dx%d:%t:%t:%v", m.Width(), m.Height(), m.MirrorX(), m.MirrorY(), m.Cells())
	s.servePNG(w, r.Context(), fingerprint, m, req)
}

func (s *Server) presetRequest(r *http.Request, name string) (*sprite.Mask, spriteRequest, error) {
	m, err := presets.Get(name)
	if err != nil {
		return nil, spriteRequest{}, err
	}
	q := r.URL.Query()
	var seed *int64
	if raw := q.Get("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, spriteRequest{}, sgerrors.Wrap(sgerrors.ErrCodeInvalidInput, err, "seed %q", raw)
		}
		seed = &parsed
	}
	kv := map[string]string{}
	for key := range q {
		if key == "seed" || key == "scale" {
			continue
		}
		kv[key] = q.Get(key)
	}
	req, err := s.buildRequest(seed, q.Get("scale"), kv)
	return m, req, err
}

func (s *Server) buildRequest(seed *int64, scale string, kv map[string]string) (spriteRequest, error) {
	req := spriteRequest{scale: 1, opts: s.base}
	if seed != nil {
		req.seed, req.seeded = *seed, true
	} else {
		req.seed = rand.Int64()
	}
	if scale != "" {
		n, err := strconv.Atoi(scale)
		if err != nil || n < 1 || n > s.maxScale {
			return req, sgerrors.New(sgerrors.ErrCodeInvalidInput, "scale must be an integer in [1,%d], got %q", s.maxScale, scale)
		}
		req.scale = n
	}
	if err := config.ApplyOverrides(&req.opts, kv); err != nil {
		return req, err
	}
	if err := req.opts.Validate(); err != nil {
		s.logger.Warn("clamping render options", "err", err)
	}
	req.opts = req.opts.Normalize()
	return req, nil
}

func (s *Server) servePNG(w http.ResponseWriter, ctx context.Context, fingerprint string, m *sprite.Mask, req spriteRequest) {
	key := cache.Key("png", fingerprint, req.seed, req.scale, req.opts)
	if req.seeded {
		data, hit, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("cache get failed", "err", err)
		}
		if hit {
			s.logger.Debug("cache hit", "key", key)
			writePNG(w, req.seed, data)
			return
		}
	}

	res, err := sprite.NewGenerator(req.opts).Generate(m, core.NewRNG(req.seed))
	if err != nil {
		s.writeError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, render.Resize(res.Buffer, req.scale)); err != nil {
		s.writeError(w, err)
		return
	}
	if req.seeded {
		if err := s.cache.Set(ctx, key, buf.Bytes(), s.ttl); err != nil {
			s.logger.Warn("cache set failed", "err", err)
		}
	}
	writePNG(w, req.seed, buf.Bytes())
}

func (s *Server) serveDump(w http.ResponseWriter, m *sprite.Mask, req spriteRequest) {
	grid, err := sprite.Resolve(m, core.NewRNG(req.seed))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Sprite-Seed", strconv.FormatInt(req.seed, 10))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(grid.String()))
}

func writePNG(w http.ResponseWriter, seed int64, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Sprite-Seed", strconv.FormatInt(seed, 10))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	code := sgerrors.GetCode(err)
	if code == "" {
		code = sgerrors.ErrCodeInternal
	}
	writeJSON(w, status, map[string]string{"code": string(code), "error": sgerrors.UserMessage(err)})
}

func statusFor(err error) int {
	switch sgerrors.GetCode(err) {
	case sgerrors.ErrCodeInvalidMask, sgerrors.ErrCodeInvalidOption,
		sgerrors.ErrCodeInvalidInput, sgerrors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case sgerrors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
