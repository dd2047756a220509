package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DefaultOrderTTL is how long an order may stay in the new status before the
// purger considers it abandoned.
const DefaultOrderTTL = 72 * time.Hour

// PurgeStale deletes orders still in the new status past the TTL and returns
// their reserved units to stock. It reports how many orders were removed.
func (r *Repository) PurgeStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	cutoff := time.Now().UTC().Add(-olderThan)
	var purged int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var staleIDs []int
		err := tx.Model(&orderRecord{}).
			Where("status = ? AND created_at < ?", "new", cutoff).
			Pluck("id", &staleIDs).Error
		if err != nil {
			return err
		}
		if len(staleIDs) == 0 {
			return nil
		}
		err = tx.Exec(
			`UPDATE product_stocks ps
			 SET quantity = ps.quantity + oi.quantity
			 FROM order_items oi
			 WHERE oi.product_id = ps.product_id AND oi.order_id IN ?`,
			staleIDs,
		).Error
		if err != nil {
			return err
		}
		if err := tx.Delete(&orderItemRecord{}, "order_id IN ?", staleIDs).Error; err != nil {
			return err
		}
		if err := tx.Delete(&idempotencyRecord{}, "order_id IN ?", staleIDs).Error; err != nil {
			return err
		}
		result := tx.Delete(&orderRecord{}, staleIDs)
		if result.Error != nil {
			return result.Error
		}
		purged = result.RowsAffected
		return nil
	})
	return purged, err
}
