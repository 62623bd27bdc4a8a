package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/eugenenazirov/breakout/internal/audio"
	"github.com/eugenenazirov/breakout/internal/rules"
	"github.com/eugenenazirov/breakout/internal/tuning"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Tuning is the loaded tuning record together with how it was loaded.
type Tuning struct {
	Record tuning.Record
	Result tuning.Result
	Source string
}

// Handler serves the loaded tuning and the audio context over HTTP.
type Handler struct {
	tuning Tuning
	sound  *audio.Context

	clock    func() time.Time
	loadedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(t Tuning, sound *audio.Context, opts ...HandlerOption) *Handler {
	h := &Handler{
		tuning: t,
		sound:  sound,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.loadedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetTuning(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := tuningResponse{
		Values:   h.tuning.Record.Values(),
		Status:   h.tuning.Result.Status.String(),
		Applied:  h.tuning.Result.Applied,
		Fields:   tuning.FieldCount,
		Source:   h.tuning.Source,
		LoadedAt: h.loadedAt,
	}
	if h.tuning.Result.Err != nil {
		resp.Reason = h.tuning.Result.Err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDifficulty(w http.ResponseWriter, r *http.Request) {
	difficulty, err := rules.ParseDifficulty(r.PathValue("tier"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid difficulty", err.Error(), "Use one of easy, medium or hard")
		return
	}

	settings, err := rules.ForDifficulty(h.tuning.Record, difficulty)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := difficultyResponse{
		Difficulty:      settings.Difficulty.String(),
		ImpulseForce:    settings.ImpulseForce,
		MinSpawnSeconds: settings.MinSpawn.Seconds(),
		MaxSpawnSeconds: settings.MaxSpawn.Seconds(),
		BallLifeSeconds: rules.BallLifetime(h.tuning.Record).Seconds(),
		BallsPerGame:    h.tuning.Record.BallsPerGame(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePickBlock(w http.ResponseWriter, r *http.Request) {
	var req pickBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}
	if req.Roll == nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "roll is required")
		return
	}

	kind, err := rules.PickBlockKind(h.tuning.Record, *req.Roll)
	if err != nil {
		if errors.Is(err, rules.ErrInvalidRoll) {
			writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	points, err := rules.Points(h.tuning.Record, kind)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := pickBlockResponse{
		Kind:   kind.String(),
		Points: points,
	}
	if kind.IsEffect() {
		effect, err := rules.EffectFor(h.tuning.Record, kind)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		resp.Effect = &effectResponse{
			DurationSeconds: effect.Duration.Seconds(),
			Factor:          effect.Factor,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListClips(w http.ResponseWriter, r *http.Request) {
	_ = r
	clips := audio.Clips()
	names := make([]string, len(clips))
	for i, clip := range clips {
		names[i] = clip.String()
	}
	writeJSON(w, http.StatusOK, clipsResponse{
		Clips:       names,
		Initialized: h.sound.Initialized(),
	})
}

func (h *Handler) handlePlayClip(w http.ResponseWriter, r *http.Request) {
	var req playClipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	clip, err := audio.ParseClipName(req.Clip)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid clip", err.Error(), "GET /api/audio/clips lists the valid names")
		return
	}

	if err := h.sound.Play(clip); err != nil {
		switch {
		case errors.Is(err, audio.ErrNotInitialized):
			writeError(w, http.StatusServiceUnavailable, "Audio unavailable", err.Error())
		default:
			writeInternalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusAccepted, playClipResponse{Clip: clip.String()})
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type pickBlockRequest struct {
	Roll *float64 `json:"roll"`
}

type playClipRequest struct {
	Clip string `json:"clip"`
}

type tuningResponse struct {
	Values   tuning.Values `json:"values"`
	Status   string        `json:"status"`
	Applied  int           `json:"applied"`
	Fields   int           `json:"fields"`
	Source   string        `json:"source"`
	Reason   string        `json:"reason,omitempty"`
	LoadedAt time.Time     `json:"loadedAt"`
}

type difficultyResponse struct {
	Difficulty      string  `json:"difficulty"`
	ImpulseForce    float64 `json:"impulseForce"`
	MinSpawnSeconds float64 `json:"minSpawnSeconds"`
	MaxSpawnSeconds float64 `json:"maxSpawnSeconds"`
	BallLifeSeconds float64 `json:"ballLifeSeconds"`
	BallsPerGame    int     `json:"ballsPerGame"`
}

type pickBlockResponse struct {
	Kind   string          `json:"kind"`
	Points int             `json:"points"`
	Effect *effectResponse `json:"effect,omitempty"`
}

type effectResponse struct {
	DurationSeconds float64 `json:"durationSeconds"`
	Factor          float64 `json:"factor"`
}

type clipsResponse struct {
	Clips       []string `json:"clips"`
	Initialized bool     `json:"initialized"`
}

type playClipResponse struct {
	Clip string `json:"clip"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
