package models

import (
	"errors"
	"time"

	"dyvideostats/internal/provider"

	"github.com/google/uuid"
)

// REQUEST DTO
// comes from the plugin host or an HTTP client
type QueryVideosRequest struct {
	APIKey       string   `json:"api_key"       example:"your_client_key"`
	ClientSecret string   `json:"client_secret" example:"your_client_secret"`
	OpenID       string   `json:"open_id"       example:"_000abc"`
	VideoIDs     []string `json:"video_ids"`
}

// Validate checks the required fields in a fixed order and names the first missing one.
func (r *QueryVideosRequest) Validate() error {
	switch {
	case r.APIKey == "":
		return MissingParam("api_key")
	case r.ClientSecret == "":
		return MissingParam("client_secret")
	case r.OpenID == "":
		return MissingParam("open_id")
	case len(r.VideoIDs) == 0:
		return MissingParam("video_ids")
	}

	return nil
}

func (r *QueryVideosRequest) Credentials() provider.Credentials {
	return provider.Credentials{
		APIKey:       r.APIKey,
		ClientSecret: r.ClientSecret,
	}
}

// RESPONSE DTO
// Exactly one of Error and Data is set.
type QueryResult struct {
	Success bool                 `json:"success"`
	Error   *string              `json:"error"`
	Data    *provider.VideoStats `json:"data"`

	err error
}

func Succeeded(stats *provider.VideoStats) QueryResult {
	if stats == nil {
		stats = provider.NewVideoStats(nil, "")
	}

	return QueryResult{
		Success: true,
		Data:    stats,
	}
}

// Failed converts any error into the failure envelope. Errors outside the
// query taxonomy are reported as execution errors.
func Failed(err error) QueryResult {
	if err == nil {
		err = errors.New(UnknownVendor)
	}

	msg := err.Error()
	var qerr *QueryError
	if !errors.As(err, &qerr) {
		msg = LabelExecution + ": " + msg
	}

	return QueryResult{
		Error: &msg,
		err:   err,
	}
}

// Err returns the error a failed result was built from.
func (r QueryResult) Err() error {
	return r.err
}

// domain/db model
type VideoSnapshot struct {
	ID         uuid.UUID `db:"id"          json:"id"`
	OpenID     string    `db:"open_id"     json:"open_id"`
	VideoID    string    `db:"video_id"    json:"video_id"`
	Title      string    `db:"title"       json:"title"`
	Plays      int64     `db:"plays"       json:"plays"`
	Likes      int64     `db:"likes"       json:"likes"`
	Comments   int64     `db:"comments"    json:"comments"`
	Shares     int64     `db:"shares"      json:"shares"`
	Forwards   int64     `db:"forwards"    json:"forwards"`
	Downloads  int64     `db:"downloads"   json:"downloads"`
	LogID      string    `db:"log_id"      json:"log_id"`
	CapturedAt time.Time `db:"captured_at" json:"captured_at"`
}

// NewVideoSnapshot captures the counters of one video at capturedAt.
func NewVideoSnapshot(openID, logID string, v provider.VideoStat, capturedAt time.Time) VideoSnapshot {
	return VideoSnapshot{
		ID:         uuid.New(),
		OpenID:     openID,
		VideoID:    v.VideoID,
		Title:      v.Title,
		Plays:      v.Statistics.Plays,
		Likes:      v.Statistics.Likes,
		Comments:   v.Statistics.Comments,
		Shares:     v.Statistics.Shares,
		Forwards:   v.Statistics.Forwards,
		Downloads:  v.Statistics.Downloads,
		LogID:      logID,
		CapturedAt: capturedAt,
	}
}

type VideoHistoryResponse struct {
	VideoID   string          `json:"video_id"`
	Snapshots []VideoSnapshot `json:"snapshots"`
}
