// Package plugin is the stdin/stdout boundary of the query: one JSON request
// in, one result envelope out.
package plugin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"dyvideostats/internal/models"
)

type Service interface {
	QueryVideos(ctx context.Context, req models.QueryVideosRequest) models.QueryResult
}

// Run reads one request from in, queries svc and writes the envelope to out.
// Request problems end up in the envelope; the returned error only reports a
// failed write.
func Run(ctx context.Context, in io.Reader, out io.Writer, svc Service) error {
	return WriteResult(out, handle(ctx, in, svc))
}

func handle(ctx context.Context, in io.Reader, svc Service) (result models.QueryResult) {
	defer func() {
		if p := recover(); p != nil {
			result = models.Failed(fmt.Errorf("panic: %v", p))
		}
	}()

	raw, err := io.ReadAll(in)
	if err != nil {
		return models.Failed(fmt.Errorf("read input: %w", err))
	}

	req, err := DecodeRequest(raw)
	if err != nil {
		return models.Failed(err)
	}

	return svc.QueryVideos(ctx, req)
}

// DecodeRequest parses the request object. Unknown fields are ignored.
func DecodeRequest(raw []byte) (models.QueryVideosRequest, error) {
	var req models.QueryVideosRequest
	if err := json.Unmarshal(bytes.TrimSpace(raw), &req); err != nil {
		return models.QueryVideosRequest{}, models.NewQueryError(models.ErrInput, models.LabelJSON, err)
	}

	return req, nil
}

// WriteResult writes the envelope indented by two spaces, keeping non-ASCII text as is.
func WriteResult(out io.Writer, result models.QueryResult) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}
