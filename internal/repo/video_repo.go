package repo

import (
	"context"
	"fmt"
	"time"

	"dyvideostats/internal/infrastructure/dbtx"
	"dyvideostats/internal/models"

	"github.com/jackc/pgx/v5"
)

const insertSnapshotSQL = `
INSERT INTO video_snapshots
	(id, open_id, video_id, title, plays, likes, comments, shares, forwards, downloads, log_id, captured_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const videoHistorySQL = `
SELECT id, open_id, video_id, title, plays, likes, comments, shares, forwards, downloads, log_id, captured_at
FROM video_snapshots
WHERE video_id = $1
	AND ($2::timestamptz IS NULL OR captured_at >= $2)
	AND ($3::timestamptz IS NULL OR captured_at <= $3)
ORDER BY captured_at`

// Logger is the interface for logging
type Logger interface {
	Errorf(format string, args ...any)
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
	Info(args ...any)
}

// Repository stores video snapshots in PostgreSQL
type Repository struct {
	db         dbtx.Querier
	logger     Logger
	timeoutSec int
}

// NewRepository creates a new repository instance
func NewRepository(db dbtx.Querier, logger Logger, timeoutSec int) *Repository {
	return &Repository{
		db:         db,
		logger:     logger,
		timeoutSec: timeoutSec,
	}
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeoutSec <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(r.timeoutSec)*time.Second)
}

// AppendSnapshots writes all snapshots in one batch, inside the caller's transaction if any.
func (r *Repository) AppendSnapshots(ctx context.Context, snapshots []models.VideoSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	batch := &pgx.Batch{}
	for _, s := range snapshots {
		batch.Queue(insertSnapshotSQL,
			s.ID, s.OpenID, s.VideoID, s.Title,
			s.Plays, s.Likes, s.Comments, s.Shares, s.Forwards, s.Downloads,
			s.LogID, s.CapturedAt,
		)
	}

	br := dbtx.QuerierFromContext(ctx, r.db).SendBatch(ctx, batch)
	for i := range snapshots {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			r.logger.Errorf("repo: insert snapshot video_id=%s: %v", snapshots[i].VideoID, err)
			return fmt.Errorf("insert snapshot %s: %w", snapshots[i].VideoID, err)
		}
	}

	if err := br.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	return nil
}

func (r *Repository) GetVideoHistory(ctx context.Context, videoID string, from, to *time.Time) ([]*models.VideoSnapshot, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := dbtx.QuerierFromContext(ctx, r.db).Query(ctx, videoHistorySQL, videoID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	points, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[models.VideoSnapshot])
	if err != nil {
		return nil, fmt.Errorf("scan history: %w", err)
	}

	return points, nil
}
