// Package jobs wires scheduled background work.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/bloodlink/coordination-api/internal/core/ports"
)

// CampaignStatusJob rolls campaign statuses forward (upcoming → active
// → completed) based on each campaign's date. Runs at startup and then
// once a day shortly after midnight.
type CampaignStatusJob struct {
	service ports.CampaignService
	cron    *cron.Cron
	log     zerolog.Logger
}

func NewCampaignStatusJob(service ports.CampaignService, log zerolog.Logger) *CampaignStatusJob {
	return &CampaignStatusJob{service: service, cron: cron.New(), log: log}
}

// Start registers the schedule and launches the cron runner. The
// initial refresh runs inline so a restart never serves stale statuses
// for a whole day.
func (j *CampaignStatusJob) Start(ctx context.Context) error {
	j.refresh(ctx)

	if _, err := j.cron.AddFunc("5 0 * * *", func() { j.refresh(ctx) }); err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for a running refresh to finish.
func (j *CampaignStatusJob) Stop() {
	<-j.cron.Stop().Done()
}

func (j *CampaignStatusJob) refresh(ctx context.Context) {
	changed, err := j.service.RefreshStatuses(ctx, time.Now().UTC())
	if err != nil {
		j.log.Error().Err(err).Msg("campaign status refresh failed")
		return
	}
	if changed > 0 {
		j.log.Info().Int("changed", changed).Msg("campaign statuses refreshed")
	}
}
