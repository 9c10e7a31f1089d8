package cron

import (
	"context"
	"formbuilder/metrics"
	"formbuilder/repository"
	"formbuilder/service"
	"log"
	"time"

	"gorm.io/gorm"
)

// OrphanSweep removes rows left behind by deletes that predate the cascading
// delete rules.
type OrphanSweep struct {
	formRepository *repository.FormRepository
	changes        *service.ChangeTracker
	interval       time.Duration
}

func NewOrphanSweep(db *gorm.DB, changes *service.ChangeTracker, interval time.Duration) *OrphanSweep {
	return &OrphanSweep{
		formRepository: repository.NewFormRepository(db),
		changes:        changes,
		interval:       interval,
	}
}

func (s *OrphanSweep) RunOnce() (*repository.OrphanCounts, error) {
	counts, err := s.formRepository.DeleteOrphans()
	if err != nil {
		return nil, err
	}
	metrics.OrphansRemovedTotal.WithLabelValues("question").Add(float64(counts.Questions))
	metrics.OrphansRemovedTotal.WithLabelValues("option").Add(float64(counts.Options))
	metrics.OrphansRemovedTotal.WithLabelValues("conditional").Add(float64(counts.Conditionals))
	if counts.Questions+counts.Options+counts.Conditionals > 0 {
		log.Printf("Removed %d orphaned questions, %d options and %d conditionals", counts.Questions, counts.Options, counts.Conditionals)
		s.changes.Flush()
	}
	return counts, nil
}

// Start runs the sweep immediately and then on every interval until ctx is
// done. A non-positive interval disables the sweep.
func (s *OrphanSweep) Start(ctx context.Context) {
	if s.interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			if _, err := s.RunOnce(); err != nil {
				log.Printf("Error sweeping orphans: %v", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
