package douyinprovider

import (
	"encoding/json"
	"errors"
	"fmt"

	"dyvideostats/internal/models"
	"dyvideostats/internal/provider"
)

type queryRequest struct {
	ItemIDs []string `json:"item_ids"`
}

// queryResponse is the video_bc envelope. The payload stays raw until the
// vendor status has been checked.
type queryResponse struct {
	ErrNo  *int64          `json:"err_no"`
	ErrMsg *string         `json:"err_msg"`
	LogID  *string         `json:"log_id"`
	Data   json.RawMessage `json:"data"`
}

type payloadOuter struct {
	Data *payloadInner `json:"data"`
}

type payloadInner struct {
	List []*rawVideo `json:"list"`
}

type rawVideo struct {
	ItemID      *string        `json:"item_id"`
	Title       *string        `json:"title"`
	CreateTime  *int64         `json:"create_time"`
	VideoStatus *int           `json:"video_status"`
	ShareURL    *string        `json:"share_url"`
	Cover       *string        `json:"cover"`
	IsTop       *bool          `json:"is_top"`
	IsReviewed  *bool          `json:"is_reviewed"`
	MediaType   *int           `json:"media_type"`
	Statistics  *rawStatistics `json:"statistics"`
}

type rawStatistics struct {
	DiggCount     *int64 `json:"digg_count"`
	DownloadCount *int64 `json:"download_count"`
	PlayCount     *int64 `json:"play_count"`
	ShareCount    *int64 `json:"share_count"`
	ForwardCount  *int64 `json:"forward_count"`
	CommentCount  *int64 `json:"comment_count"`
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func (r queryResponse) GetErrNo() (int64, bool) {
	if r.ErrNo == nil {
		return 0, false
	}
	return *r.ErrNo, true
}

func (r queryResponse) GetErrMsg() string { return valueOr(r.ErrMsg, models.UnknownVendor) }
func (r queryResponse) GetLogID() string  { return valueOr(r.LogID, "") }

// vendorError rejects envelopes whose err_no is absent or non-zero.
func (r queryResponse) vendorError() error {
	code, ok := r.GetErrNo()
	if ok && code == 0 {
		return nil
	}

	qerr := models.NewQueryError(models.ErrVendor, models.LabelAPI, errors.New(r.GetErrMsg()))
	qerr.VendorCode = code

	return qerr
}

func (v *rawVideo) GetItemID() string {
	if v == nil {
		return ""
	}
	return valueOr(v.ItemID, "")
}

func (v *rawVideo) GetTitle() string {
	if v == nil {
		return ""
	}
	return valueOr(v.Title, "")
}

func (v *rawVideo) GetCreateTime() int64 {
	if v == nil {
		return 0
	}
	return valueOr(v.CreateTime, 0)
}

func (v *rawVideo) GetVideoStatus() int {
	if v == nil {
		return 0
	}
	return valueOr(v.VideoStatus, 0)
}

func (v *rawVideo) GetShareURL() string {
	if v == nil {
		return ""
	}
	return valueOr(v.ShareURL, "")
}

func (v *rawVideo) GetCover() string {
	if v == nil {
		return ""
	}
	return valueOr(v.Cover, "")
}

func (v *rawVideo) GetIsTop() bool {
	if v == nil {
		return false
	}
	return valueOr(v.IsTop, false)
}

func (v *rawVideo) GetIsReviewed() bool {
	if v == nil {
		return false
	}
	return valueOr(v.IsReviewed, false)
}

func (v *rawVideo) GetMediaType() int {
	if v == nil {
		return 0
	}
	return valueOr(v.MediaType, 0)
}

func (v *rawVideo) GetStatistics() *rawStatistics {
	if v == nil {
		return nil
	}
	return v.Statistics
}

// Each counter defaults to 0 on its own, including when statistics is absent.
func (s *rawStatistics) ToCounters() provider.Counters {
	if s == nil {
		return provider.Counters{}
	}

	return provider.Counters{
		Likes:     valueOr(s.DiggCount, 0),
		Downloads: valueOr(s.DownloadCount, 0),
		Plays:     valueOr(s.PlayCount, 0),
		Shares:    valueOr(s.ShareCount, 0),
		Forwards:  valueOr(s.ForwardCount, 0),
		Comments:  valueOr(s.CommentCount, 0),
	}
}

func (v *rawVideo) ToVideoStat() provider.VideoStat {
	return provider.VideoStat{
		VideoID:     v.GetItemID(),
		Title:       v.GetTitle(),
		CreateTime:  v.GetCreateTime(),
		VideoStatus: v.GetVideoStatus(),
		ShareURL:    v.GetShareURL(),
		Cover:       v.GetCover(),
		IsTop:       v.GetIsTop(),
		IsReviewed:  v.GetIsReviewed(),
		MediaType:   v.GetMediaType(),
		Statistics:  v.GetStatistics().ToCounters(),
	}
}

// ToProviderStats walks data.data.list. Missing or null levels yield an empty
// list; values of the wrong JSON type are reported as format errors.
func (r queryResponse) ToProviderStats() (stats *provider.VideoStats, err error) {
	defer func() {
		if p := recover(); p != nil {
			stats = nil
			err = models.NewQueryError(models.ErrFormat, models.LabelFormat, fmt.Errorf("panic while mapping videos: %v", p))
		}
	}()

	var outer payloadOuter
	if len(r.Data) > 0 {
		if err := json.Unmarshal(r.Data, &outer); err != nil {
			return nil, models.NewQueryError(models.ErrFormat, models.LabelFormat, err)
		}
	}

	var list []*rawVideo
	if outer.Data != nil {
		list = outer.Data.List
	}

	videos := make([]provider.VideoStat, 0, len(list))
	for _, v := range list {
		videos = append(videos, v.ToVideoStat())
	}

	return provider.NewVideoStats(videos, r.GetLogID()), nil
}
