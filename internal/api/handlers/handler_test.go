package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dyvideostats/internal/mocks"
	"dyvideostats/internal/models"
	"dyvideostats/internal/provider"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(svc VideoService) http.Handler {
	h := NewHandler(svc, zap.NewNop().Sugar())

	r := chi.NewRouter()
	r.Post("/videos/query", h.QueryVideos)
	r.Get("/videos/{video_id}/history", h.GetVideoHistory)
	return r
}

func TestHandler_QueryVideos_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		result     models.QueryResult
		wantStatus int
	}{
		{
			name:       "success",
			result:     models.Succeeded(provider.NewVideoStats([]provider.VideoStat{{VideoID: "v1"}}, "L1")),
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing parameter",
			result:     models.Failed(models.MissingParam("open_id")),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "vendor error",
			result:     models.Failed(models.NewQueryError(models.ErrVendor, models.LabelAPI, errors.New("bad token"))),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "transport error",
			result:     models.Failed(models.NewQueryError(models.ErrTransport, models.LabelNetwork, errors.New("timeout"))),
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockVideoService(ctrl)
			svc.EXPECT().
				QueryVideos(gomock.Any(), models.QueryVideosRequest{
					APIKey: "k", ClientSecret: "s", OpenID: "u", VideoIDs: []string{"v1"},
				}).
				Return(tt.result)

			body := `{"api_key":"k","client_secret":"s","open_id":"u","video_ids":["v1"]}`
			req := httptest.NewRequest(http.MethodPost, "/videos/query", strings.NewReader(body))
			rec := httptest.NewRecorder()

			newTestRouter(svc).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var got models.QueryResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.result.Success, got.Success)
			assert.Equal(t, tt.result.Error, got.Error)
		})
	}
}

func TestHandler_QueryVideos_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockVideoService(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/videos/query", strings.NewReader(`{"api_key":`))
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var got models.QueryResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Success)
	require.NotNil(t, got.Error)
	assert.True(t, strings.HasPrefix(*got.Error, "JSON解析错误: "))
}

func TestHandler_GetVideoHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)

	svc := mocks.NewMockVideoService(ctrl)
	svc.EXPECT().
		GetVideoHistory(gomock.Any(), "v1", &from, &to).
		Return(models.VideoHistoryResponse{
			VideoID:   "v1",
			Snapshots: []models.VideoSnapshot{{VideoID: "v1", Plays: 7}},
		}, nil)

	url := fmt.Sprintf("/videos/v1/history?from=%s&to=%s", from.Format(time.RFC3339), to.Format(time.RFC3339))
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.VideoHistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "v1", got.VideoID)
	require.Len(t, got.Snapshots, 1)
	assert.Equal(t, int64(7), got.Snapshots[0].Plays)
}

func TestHandler_GetVideoHistory_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		serviceErr error
		callsSvc   bool
		wantStatus int
	}{
		{name: "bad from", url: "/videos/v1/history?from=yesterday", wantStatus: http.StatusBadRequest},
		{name: "bad to", url: "/videos/v1/history?to=2026-13-01", wantStatus: http.StatusBadRequest},
		{
			name:       "inverted range",
			url:        "/videos/v1/history?from=2026-10-02T00:00:00Z&to=2026-10-01T00:00:00Z",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "nothing stored",
			url:        "/videos/v1/history",
			serviceErr: fmt.Errorf("video v1: %w", models.ErrNotFound),
			callsSvc:   true,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "storage failure",
			url:        "/videos/v1/history",
			serviceErr: errors.New("connection reset"),
			callsSvc:   true,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "storage timeout",
			url:        "/videos/v1/history",
			serviceErr: fmt.Errorf("query history: %w", context.DeadlineExceeded),
			callsSvc:   true,
			wantStatus: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockVideoService(ctrl)
			if tt.callsSvc {
				svc.EXPECT().
					GetVideoHistory(gomock.Any(), "v1", nil, nil).
					Return(models.VideoHistoryResponse{}, tt.serviceErr)
			}

			rec := httptest.NewRecorder()
			newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			require.Equal(t, tt.wantStatus, rec.Code)

			var got ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.NotEmpty(t, got.Error)
			assert.NotEmpty(t, got.Message)
		})
	}
}
