package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dyvideostats/internal/models"
	"dyvideostats/internal/provider"
)

//go:generate mockgen -destination=../mocks/service_mock.go -package=mocks dyvideostats/internal/service Repository,Transactor,Logger

type Repository interface {
	AppendSnapshots(ctx context.Context, snapshots []models.VideoSnapshot) error
	GetVideoHistory(ctx context.Context, videoID string, from, to *time.Time) ([]*models.VideoSnapshot, error)
}
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
type Logger interface {
	Errorf(format string, args ...any)
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
	Info(args ...any)
}

// ProviderFactory binds a Douyin client to the credentials of one request.
type ProviderFactory func(creds provider.Credentials) (provider.DouyinProvider, error)

type Service struct {
	newProvider ProviderFactory
	repo        Repository
	transactor  Transactor
	logger      Logger
	now         func() time.Time
}

// NewService wires the query flow. repo and transactor may be nil, which
// disables snapshot recording and history.
func NewService(newProvider ProviderFactory, repo Repository, transactor Transactor, logger Logger) *Service {
	return &Service{
		newProvider: newProvider,
		repo:        repo,
		transactor:  transactor,
		logger:      logger,
		now:         time.Now,
	}
}

// QueryVideos runs one query and always returns an envelope, never a panic.
func (s *Service) QueryVideos(ctx context.Context, req models.QueryVideosRequest) (result models.QueryResult) {
	defer func() {
		if p := recover(); p != nil {
			s.logger.Errorf("QueryVideos: recovered panic open_id=%s: %v", req.OpenID, p)
			result = models.Failed(models.NewQueryError(models.ErrFormat, models.LabelProcessing, fmt.Errorf("panic: %v", p)))
		}
	}()

	if err := req.Validate(); err != nil {
		s.logger.Warnf("QueryVideos: invalid request: %v", err)
		return models.Failed(err)
	}

	prov, err := s.newProvider(req.Credentials())
	if err != nil {
		s.logger.Errorf("QueryVideos: build provider: %v", err)
		return models.Failed(err)
	}

	stats, err := prov.QueryVideos(ctx, req.OpenID, req.VideoIDs)
	if err != nil {
		s.logger.Errorf("QueryVideos: provider error open_id=%s: %v", req.OpenID, err)
		return models.Failed(err)
	}

	s.recordSnapshots(ctx, req.OpenID, stats)

	return models.Succeeded(stats)
}

func (s *Service) GetVideoHistory(ctx context.Context, videoID string, from, to *time.Time) (models.VideoHistoryResponse, error) {
	if s.repo == nil {
		return models.VideoHistoryResponse{}, fmt.Errorf("snapshots disabled: %w", models.ErrNotFound)
	}

	points, err := s.repo.GetVideoHistory(ctx, videoID, from, to)
	if err != nil {
		s.logger.Errorf("Service: GetVideoHistory repo error: %v", err)
		return models.VideoHistoryResponse{}, err
	}
	if len(points) == 0 {
		return models.VideoHistoryResponse{}, fmt.Errorf("video %s: %w", videoID, models.ErrNotFound)
	}

	history := make([]models.VideoSnapshot, 0, len(points))
	for _, p := range points {
		history = append(history, *p)
	}

	return models.VideoHistoryResponse{
		VideoID:   videoID,
		Snapshots: history,
	}, nil
}

// recordSnapshots never changes the query result; failures are only logged.
func (s *Service) recordSnapshots(ctx context.Context, openID string, stats *provider.VideoStats) {
	if s.repo == nil || s.transactor == nil || stats == nil || len(stats.Videos) == 0 {
		return
	}

	capturedAt := s.now().UTC()
	snapshots := make([]models.VideoSnapshot, 0, len(stats.Videos))
	for _, v := range stats.Videos {
		snapshots = append(snapshots, models.NewVideoSnapshot(openID, stats.LogID, v, capturedAt))
	}

	err := s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.AppendSnapshots(txCtx, snapshots)
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.logger.Warnf("recordSnapshots: canceled for open_id=%s", openID)
			return
		}
		s.logger.Errorf("recordSnapshots: append %d snapshots for open_id=%s: %v", len(snapshots), openID, err)
		return
	}

	s.logger.Infof("recordSnapshots: stored %d snapshots log_id=%s", len(snapshots), stats.LogID)
}
