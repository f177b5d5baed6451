package provider

import "context"

// Credentials identify the Douyin open platform application.
type Credentials struct {
	APIKey       string
	ClientSecret string
}

// Counters are the per-video engagement metrics. Keys follow the plugin output contract.
type Counters struct {
	Likes     int64 `json:"点赞数"`
	Downloads int64 `json:"下载数"`
	Plays     int64 `json:"播放数"`
	Shares    int64 `json:"分享数"`
	Forwards  int64 `json:"转发数"`
	Comments  int64 `json:"评论数"`
}

type VideoStat struct {
	VideoID     string   `json:"video_id"`
	Title       string   `json:"title"`
	CreateTime  int64    `json:"create_time"`
	VideoStatus int      `json:"video_status"`
	ShareURL    string   `json:"share_url"`
	Cover       string   `json:"cover"`
	IsTop       bool     `json:"is_top"`
	IsReviewed  bool     `json:"is_reviewed"`
	MediaType   int      `json:"media_type"`
	Statistics  Counters `json:"statistics"`
}

// VideoStats is the normalized payload of one query. Total always equals len(Videos).
type VideoStats struct {
	Total  int         `json:"total_videos"`
	Videos []VideoStat `json:"videos"`
	LogID  string      `json:"log_id"`
}

// NewVideoStats keeps Total in sync with the video list.
func NewVideoStats(videos []VideoStat, logID string) *VideoStats {
	if videos == nil {
		videos = []VideoStat{}
	}

	return &VideoStats{
		Total:  len(videos),
		Videos: videos,
		LogID:  logID,
	}
}

//go:generate mockgen -destination=../mocks/provider_mock.go -package=mocks dyvideostats/internal/provider DouyinProvider,TokenProvider

type DouyinProvider interface {
	QueryVideos(ctx context.Context, openID string, videoIDs []string) (*VideoStats, error)
}

// TokenProvider hands out access tokens for the account being queried.
type TokenProvider interface {
	AccessToken(ctx context.Context, openID string) (string, error)
}
