package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

const purgeTimeout = time.Minute

// StartRetention schedules PurgeExpiredSnapshots on the given cron schedule.
// Callers stop the returned scheduler on shutdown.
func (s *Service) StartRetention(schedule string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
		defer cancel()
		if _, err := s.PurgeExpiredSnapshots(ctx); err != nil {
			s.log.Errorf("Snapshot retention failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid retention schedule %q: %w", schedule, err)
	}
	c.Start()
	s.log.Infof("Snapshot retention scheduled: %s (ttl %s)", schedule, s.config.SnapshotTTL)
	return c, nil
}
