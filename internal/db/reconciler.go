package db

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// StartRatingReconciler recomputes the denormalized rating counters on
// items from the opinions table with the given interval. The counters
// are maintained atomically on opinion create and delete, but can
// drift if rows are changed outside the API; the reconciler repairs
// such drift in the background.
func StartRatingReconciler(
	ctx context.Context,
	db *sql.DB,
	interval time.Duration,
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
				res, err := db.ExecContext(ctx, `
                    UPDATE items SET rating_count = agg.cnt, rating_sum = agg.total
                      FROM (SELECT item_id, COUNT(*) AS cnt, COALESCE(SUM(rating_value), 0) AS total
                              FROM opinions GROUP BY item_id) agg
                     WHERE items.id = agg.item_id
                       AND (items.rating_count <> agg.cnt OR items.rating_sum <> agg.total)
                `)
				if err != nil {
					log.Error("failed to reconcile item rating counters", zap.Error(err))
					continue
				}
				repaired, _ := res.RowsAffected()

				res, err = db.ExecContext(ctx, `
                    UPDATE items SET rating_count = 0, rating_sum = 0
                     WHERE (rating_count <> 0 OR rating_sum <> 0)
                       AND NOT EXISTS (SELECT 1 FROM opinions WHERE opinions.item_id = items.id)
                `)
				if err != nil {
					log.Error("failed to reset rating counters for unrated items", zap.Error(err))
					continue
				}
				if reset, _ := res.RowsAffected(); repaired+reset > 0 {
					log.Info("reconciled item rating counters",
						zap.Int64("repaired", repaired),
						zap.Int64("reset", reset))
				}
			}
		}
	}()
}
