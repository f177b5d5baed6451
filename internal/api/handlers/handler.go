package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"dyvideostats/internal/models"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -destination=../../mocks/api_mock.go -package=mocks dyvideostats/internal/api/handlers VideoService

type VideoService interface {
	QueryVideos(ctx context.Context, req models.QueryVideosRequest) models.QueryResult
	GetVideoHistory(ctx context.Context, videoID string, from, to *time.Time) (models.VideoHistoryResponse, error)
}
type Logger interface {
	Errorf(format string, args ...any)
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
	Info(args ...any)
}
type Handler struct {
	service VideoService
	logger  Logger
}

func NewHandler(service VideoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// QueryVideos handles POST
// @Summary      Query Douyin video statistics
// @Description  Fetches statistics for the given videos of one account and returns them in the normalized envelope.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request body     models.QueryVideosRequest true "Credentials, account and video ids"
// @Success      200     {object} models.QueryResult
// @Failure      400     {object} models.QueryResult "Missing parameter or malformed body"
// @Failure      502     {object} models.QueryResult "Douyin request, token or payload failure"
// @Router       /api/v1/videos/query [post]
func (h *Handler) QueryVideos(w http.ResponseWriter, r *http.Request) {
	var req models.QueryVideosRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("QueryVideos: invalid request body: %v", err)
		h.sendJSON(w, http.StatusBadRequest, models.Failed(models.NewQueryError(models.ErrInput, models.LabelJSON, err)))
		return
	}

	result := h.service.QueryVideos(r.Context(), req)

	h.sendJSON(w, statusFor(result), result)
}

// GetVideoHistory handles GET
// @Summary      Video statistics history
// @Description  Lists the stored snapshots of one video, oldest first. Bounds are RFC3339 and inclusive.
// @Tags         videos
// @Produce      json
// @Param        video_id path     string true  "Douyin video id"
// @Param        from     query    string false "Lower bound (RFC3339)"
// @Param        to       query    string false "Upper bound (RFC3339)"
// @Success      200      {object} models.VideoHistoryResponse
// @Failure      400      {object} ErrorResponse "Invalid time bound"
// @Failure      404      {object} ErrorResponse "No snapshots stored"
// @Failure      500      {object} ErrorResponse "Internal server error"
// @Router       /api/v1/videos/{video_id}/history [get]
func (h *Handler) GetVideoHistory(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "video_id")
	if videoID == "" {
		h.sendError(w, http.StatusBadRequest, "video_id is required", models.MissingParam("video_id"))
		return
	}

	from, err := parseBound(r, "from")
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "Invalid from", err)
		return
	}
	to, err := parseBound(r, "to")
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "Invalid to", err)
		return
	}
	if from != nil && to != nil && to.Before(*from) {
		h.sendError(w, http.StatusBadRequest, "Invalid range", fmt.Errorf("to %s is before from %s", to, from))
		return
	}

	resp, err := h.service.GetVideoHistory(r.Context(), videoID, from, to)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, resp)
}

func parseBound(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &t, nil
}

// statusFor maps a query result onto the HTTP status of the response.
func statusFor(result models.QueryResult) int {
	if result.Success {
		return http.StatusOK
	}
	if errors.Is(result.Err(), models.ErrInput) {
		return http.StatusBadRequest
	}

	return http.StatusBadGateway
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		h.logger.Errorf("Failed to encode JSON response: %v", err)
	}
}

func (h *Handler) sendError(w http.ResponseWriter, status int, message string, err error) {
	h.logger.Errorf("%s: %v", message, err)
	resp := ErrorResponse{
		Error: message,
	}
	if err != nil {
		resp.Message = err.Error()
	}

	h.sendJSON(w, status, resp)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	var status int
	var message string

	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
		message = "Resource not found"

	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
		message = "Storage timeout"

	default:
		status = http.StatusInternalServerError
		message = "Internal server error"
	}

	h.sendError(w, status, message, err)
}
