package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"dyvideostats/internal/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryVideosRequest_Validate(t *testing.T) {
	full := QueryVideosRequest{APIKey: "k", ClientSecret: "s", OpenID: "u", VideoIDs: []string{"v"}}

	tests := []struct {
		name    string
		mutate  func(r *QueryVideosRequest)
		wantMsg string
	}{
		{name: "complete", mutate: func(*QueryVideosRequest) {}},
		{name: "no api key", mutate: func(r *QueryVideosRequest) { r.APIKey = "" }, wantMsg: "缺少必需参数: api_key"},
		{name: "no secret", mutate: func(r *QueryVideosRequest) { r.ClientSecret = "" }, wantMsg: "缺少必需参数: client_secret"},
		{name: "no open id", mutate: func(r *QueryVideosRequest) { r.OpenID = "" }, wantMsg: "缺少必需参数: open_id"},
		{name: "empty video ids", mutate: func(r *QueryVideosRequest) { r.VideoIDs = []string{} }, wantMsg: "缺少必需参数: video_ids"},
		{
			name:    "first missing field wins",
			mutate:  func(r *QueryVideosRequest) { r.OpenID, r.ClientSecret = "", "" },
			wantMsg: "缺少必需参数: client_secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := full
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.ErrorIs(t, err, ErrInput)
		})
	}
}

func TestQueryResult_SuccessEnvelope(t *testing.T) {
	stats := provider.NewVideoStats([]provider.VideoStat{{VideoID: "v1"}}, "L1")

	raw, err := json.Marshal(Succeeded(stats))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, true, got["success"])
	assert.Contains(t, got, "error")
	assert.Nil(t, got["error"])

	data, ok := got["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["total_videos"])
	assert.Equal(t, "L1", data["log_id"])
}

func TestQueryResult_SucceededWithNilStats(t *testing.T) {
	res := Succeeded(nil)

	require.NotNil(t, res.Data)
	assert.Equal(t, 0, res.Data.Total)
	assert.NotNil(t, res.Data.Videos)
}

func TestQueryResult_FailureEnvelope(t *testing.T) {
	res := Failed(NewQueryError(ErrTransport, LabelNetwork, errors.New("dial tcp: connection refused")))

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"网络请求错误: dial tcp: connection refused","data":null}`, string(raw))
	assert.ErrorIs(t, res.Err(), ErrTransport)
}

func TestFailed_PrefixesForeignErrors(t *testing.T) {
	res := Failed(errors.New("boom"))
	require.NotNil(t, res.Error)
	assert.Equal(t, "执行错误: boom", *res.Error)

	wrapped := Failed(fmt.Errorf("outer: %w", MissingParam("open_id")))
	assert.Equal(t, "outer: 缺少必需参数: open_id", *wrapped.Error)
	assert.ErrorIs(t, wrapped.Err(), ErrInput)
}

func TestQueryError_VendorCodeAndUnwrap(t *testing.T) {
	cause := errors.New("open_id无效")
	qerr := NewQueryError(ErrVendor, LabelAPI, cause)
	qerr.VendorCode = 2190008

	var target *QueryError
	require.True(t, errors.As(fmt.Errorf("wrap: %w", qerr), &target))
	assert.Equal(t, int64(2190008), target.VendorCode)
	assert.ErrorIs(t, qerr, cause)
	assert.NotErrorIs(t, qerr, ErrFormat)
	assert.Equal(t, LabelToken, NewQueryError(ErrToken, LabelToken, nil).Error())
}
