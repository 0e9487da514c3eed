package queue

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/bloodlink/coordination-api/internal/api/metrics"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AlertDispatcher routes donor alerts to a fixed set of workers using
// consistent hashing on the donor email, so delivery happens off the
// SOS request path while alerts for the same donor stay ordered.
type AlertDispatcher struct {
	workers  []chan ports.DonorAlert
	notifier ports.Notifier
	log      zerolog.Logger
}

// NewAlertDispatcher creates an AlertDispatcher with numWorkers sharded
// workers. If numWorkers <= 0, defaultWorkers is used.
func NewAlertDispatcher(numWorkers int, notifier ports.Notifier, log zerolog.Logger) *AlertDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AlertDispatcher{
		workers:  make([]chan ports.DonorAlert, numWorkers),
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.DonorAlert, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *AlertDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an alert to the worker responsible for its donor.
// Non-blocking up to channelBuffer capacity.
func (d *AlertDispatcher) Enqueue(alert ports.DonorAlert) {
	d.workers[d.shardIndex(alert.DonorEmail)] <- alert
}

// shardIndex maps a donor email deterministically to a worker index.
func (d *AlertDispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *AlertDispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.DonorAlert) {
	for {
		select {
		case <-ctx.Done():
			return
		case alert, ok := <-ch:
			if !ok {
				return
			}
			subject := fmt.Sprintf("Urgent: %s blood needed in %s", alert.BloodGroup, alert.City)
			body := fmt.Sprintf("Hi %s, %s urgently needs %s blood in %s.", alert.DonorName, alert.RequesterName, alert.BloodGroup, alert.City)
			if alert.RequesterPhone != "" {
				body += fmt.Sprintf(" Contact: %s.", alert.RequesterPhone)
			}
			if err := d.notifier.Notify(ctx, alert.DonorEmail, subject, body); err != nil {
				metrics.AlertsDispatchedTotal.WithLabelValues("failed").Inc()
				d.log.Error().Err(err).
					Str("donor_email", alert.DonorEmail).
					Int("worker_id", id).
					Msg("donor alert delivery failed")
				continue
			}
			metrics.AlertsDispatchedTotal.WithLabelValues("delivered").Inc()
		}
	}
}
