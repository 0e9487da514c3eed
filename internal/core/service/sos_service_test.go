package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

type stubSOSRepo struct {
	requests []*domain.SOSRequest
}

func (r *stubSOSRepo) Create(_ context.Context, req *domain.SOSRequest) (*domain.SOSRequest, error) {
	clone := *req
	clone.ID = "sos-" + strconv.Itoa(len(r.requests)+1)
	r.requests = append(r.requests, &clone)
	return &clone, nil
}

func (r *stubSOSRepo) List(_ context.Context) ([]*domain.SOSRequest, error) {
	return r.requests, nil
}

type stubDeduper struct {
	duplicate bool
	checkErr  error
	marked    []ports.SOSInput
}

func (d *stubDeduper) IsDuplicate(_ context.Context, in ports.SOSInput) (bool, error) {
	return d.duplicate, d.checkErr
}

func (d *stubDeduper) Mark(_ context.Context, in ports.SOSInput) error {
	d.marked = append(d.marked, in)
	return nil
}

type stubAlertSink struct {
	alerts []ports.DonorAlert
}

func (s *stubAlertSink) Enqueue(alert ports.DonorAlert) {
	s.alerts = append(s.alerts, alert)
}

func seedDonor(t *testing.T, repo *stubAccountRepo, name, email, group, city string) {
	t.Helper()
	if _, err := repo.Create(context.Background(), &domain.Account{
		Name:       name,
		Email:      email,
		Role:       domain.RoleDonor,
		IsDonor:    true,
		BloodGroup: group,
		City:       city,
	}); err != nil {
		t.Fatalf("seed donor: %v", err)
	}
}

func validSOSInput() ports.SOSInput {
	return ports.SOSInput{
		RequesterName: "Asha",
		Email:         "asha@example.com",
		BloodGroup:    "O+",
		City:          "Mumbai",
		Phone:         "555-0101",
	}
}

func TestSOSService_Create_MatchesAndAlerts(t *testing.T) {
	accounts := newStubAccountRepo()
	seedDonor(t, accounts, "match-1", "m1@example.com", "O+", "Mumbai")
	seedDonor(t, accounts, "match-2", "m2@example.com", "O+", "Mumbai")
	seedDonor(t, accounts, "wrong-group", "wg@example.com", "A+", "Mumbai")
	seedDonor(t, accounts, "wrong-city", "wc@example.com", "O+", "Delhi")

	requests := &stubSOSRepo{}
	deduper := &stubDeduper{}
	sink := &stubAlertSink{}
	svc := NewSOSService(requests, accounts, deduper, sink, zerolog.Nop())

	created, err := svc.Create(context.Background(), validSOSInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.SOSPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
	if created.MatchedDonors != 2 {
		t.Fatalf("expected 2 matched donors, got %d", created.MatchedDonors)
	}
	if len(sink.alerts) != 2 {
		t.Fatalf("expected 2 alerts enqueued, got %d", len(sink.alerts))
	}
	for _, a := range sink.alerts {
		if a.BloodGroup != "O+" || a.City != "Mumbai" || a.RequesterName != "Asha" {
			t.Fatalf("unexpected alert payload: %+v", a)
		}
	}
	if len(deduper.marked) != 1 {
		t.Fatalf("expected dedup mark, got %d", len(deduper.marked))
	}
}

func TestSOSService_Create_NoMatchesStillStored(t *testing.T) {
	requests := &stubSOSRepo{}
	svc := NewSOSService(requests, newStubAccountRepo(), nil, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), validSOSInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.MatchedDonors != 0 {
		t.Fatalf("expected 0 matches, got %d", created.MatchedDonors)
	}
	if len(requests.requests) != 1 {
		t.Fatalf("request must be stored even without matches")
	}
}

func TestSOSService_Create_Duplicate(t *testing.T) {
	svc := NewSOSService(&stubSOSRepo{}, newStubAccountRepo(), &stubDeduper{duplicate: true}, nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), validSOSInput()); !errors.Is(err, domain.ErrSOSDuplicate) {
		t.Fatalf("expected ErrSOSDuplicate, got %v", err)
	}
}

func TestSOSService_Create_DedupFailureIsBestEffort(t *testing.T) {
	requests := &stubSOSRepo{}
	deduper := &stubDeduper{checkErr: errors.New("redis down")}
	svc := NewSOSService(requests, newStubAccountRepo(), deduper, nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), validSOSInput()); err != nil {
		t.Fatalf("a broken dedup check must not block the request: %v", err)
	}
	if len(requests.requests) != 1 {
		t.Fatalf("request must still be stored")
	}
}

func TestSOSService_Create_Validation(t *testing.T) {
	svc := NewSOSService(&stubSOSRepo{}, newStubAccountRepo(), nil, nil, zerolog.Nop())

	in := validSOSInput()
	in.BloodGroup = ""
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
