package db

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// StartCompletedTaskCleaner deletes tasks completed longer than the
// retention window ago, on the given interval.
func StartCompletedTaskCleaner(
	ctx context.Context,
	db *sql.DB,
	interval time.Duration,
	retention time.Duration,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().Add(-retention)
				res, err := db.ExecContext(ctx, `
                    DELETE FROM tasks
                     WHERE completed = true
                       AND completed_at < $1
                `, cutoff)
				if err != nil {
					log.Error("failed to clean completed tasks", zap.Error(err))
					continue
				}
				if rows, _ := res.RowsAffected(); rows > 0 {
					log.Info("cleaned completed tasks", zap.Int64("removed", rows))
				}
			}
		}
	}()
}
