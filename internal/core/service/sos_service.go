package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloodlink/coordination-api/internal/api/metrics"
	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

// AlertSink receives the alerts owed to matched donors. The dispatcher
// in infrastructure/queue implements it; delivery happens off the
// request path.
type AlertSink interface {
	Enqueue(alert ports.DonorAlert)
}

// SOSService stores emergency requests and fans out donor alerts.
// Matching is a linear filter over donors on blood group and city.
type SOSService struct {
	requests ports.SOSRepository
	accounts ports.AccountRepository
	deduper  ports.SOSDeduper // nil disables dedup
	alerts   AlertSink        // nil disables alert delivery
	log      zerolog.Logger
}

func NewSOSService(requests ports.SOSRepository, accounts ports.AccountRepository, deduper ports.SOSDeduper, alerts AlertSink, log zerolog.Logger) *SOSService {
	return &SOSService{requests: requests, accounts: accounts, deduper: deduper, alerts: alerts, log: log}
}

func (s *SOSService) Create(ctx context.Context, in ports.SOSInput) (*domain.SOSRequest, error) {
	if in.RequesterName == "" || in.Email == "" || in.BloodGroup == "" || in.City == "" {
		return nil, fmt.Errorf("%w: requesterName, email, bloodGroup and city are required", domain.ErrValidation)
	}

	if s.deduper != nil {
		dup, err := s.deduper.IsDuplicate(ctx, in)
		if err != nil {
			// Dedup is best-effort: a broken checker must not block an
			// emergency request.
			s.log.Warn().Err(err).Msg("sos dedup check failed, continuing")
		} else if dup {
			return nil, domain.ErrSOSDuplicate
		}
	}

	req := &domain.SOSRequest{
		RequesterName: in.RequesterName,
		Email:         in.Email,
		BloodGroup:    in.BloodGroup,
		City:          in.City,
		Phone:         in.Phone,
		Status:        domain.SOSPending,
		CreatedAt:     time.Now().UTC(),
	}

	donors, err := s.accounts.List(ctx, true)
	if err != nil {
		return nil, err
	}

	var matched []*domain.Account
	for _, d := range donors {
		if req.Matches(d) {
			matched = append(matched, d)
		}
	}
	req.MatchedDonors = len(matched)

	created, err := s.requests.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.alerts != nil {
		for _, d := range matched {
			s.alerts.Enqueue(ports.DonorAlert{
				DonorEmail:     d.Email,
				DonorName:      d.Name,
				BloodGroup:     req.BloodGroup,
				City:           req.City,
				RequesterName:  req.RequesterName,
				RequesterPhone: req.Phone,
			})
		}
	}

	if s.deduper != nil {
		if err := s.deduper.Mark(ctx, in); err != nil {
			s.log.Warn().Err(err).Msg("sos dedup mark failed")
		}
	}

	metrics.SOSRequestsTotal.WithLabelValues(req.BloodGroup).Inc()
	metrics.SOSMatchedDonors.Observe(float64(len(matched)))

	s.log.Info().
		Str("blood_group", req.BloodGroup).
		Str("city", req.City).
		Int("matched_donors", len(matched)).
		Msg("sos request created")

	return created, nil
}

func (s *SOSService) List(ctx context.Context) ([]*domain.SOSRequest, error) {
	return s.requests.List(ctx)
}
