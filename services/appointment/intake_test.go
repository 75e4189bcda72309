package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"mentesana/models"
)

type fakeApptRepo struct {
	created    []models.Appointment
	failCreate bool
}

func (f *fakeApptRepo) Create(_ context.Context, appt models.Appointment) (*models.Appointment, error) {
	if f.failCreate {
		return nil, errors.New("store unreachable")
	}
	appt.ID = fmt.Sprintf("appt-%d", len(f.created)+1)
	appt.CreatedAt = time.Now()
	f.created = append(f.created, appt)
	return &appt, nil
}

func (f *fakeApptRepo) GetAll(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, len(f.created))
	copy(out, f.created)
	return out, nil
}

type fakeNotifier struct {
	sent []models.EmailMessage
	fail bool
}

func (f *fakeNotifier) Send(_ context.Context, msg models.EmailMessage) error {
	if f.fail {
		return errors.New("mail provider down")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func validInput() models.AppointmentInput {
	return models.AppointmentInput{
		Name:   "Ana Ruiz",
		Email:  "ana@example.com",
		Phone:  "+525512345678",
		Date:   "2030-01-15",
		Time:   "18:00",
		Reason: "ansiedad",
	}
}

func newService(repo *fakeApptRepo, notifier *fakeNotifier) *DefaultIntakeService {
	return &DefaultIntakeService{
		Repo:     repo,
		Notifier: notifier,
		NotifyTo: "consulta@example.com",
	}
}

func TestSubmitPersistsAndNotifies(t *testing.T) {
	repo := &fakeApptRepo{}
	notifier := &fakeNotifier{}
	svc := newService(repo, notifier)

	saved, notified, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if !notified {
		t.Error("expected notified=true")
	}
	if saved.ID == "" {
		t.Error("expected an assigned ID")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected exactly one persisted record, got %d", len(repo.created))
	}
	got := repo.created[0]
	want := validInput()
	if got.Name != want.Name || got.Email != want.Email || got.Phone != want.Phone ||
		got.Date != want.Date || got.Time != want.Time || got.Reason != want.Reason {
		t.Errorf("stored record does not match input: %+v", got)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.sent))
	}
	mail := notifier.sent[0]
	if mail.To != "consulta@example.com" {
		t.Errorf("notification went to %q, want operator address", mail.To)
	}
	if !strings.Contains(mail.Subject, "Ana Ruiz") {
		t.Errorf("subject %q should name the patient", mail.Subject)
	}
	if !strings.Contains(mail.HTML, "15 de enero de 2030") {
		t.Errorf("body should carry the human-readable date, got %q", mail.HTML)
	}
}

func TestSubmitDefaultsBlankReason(t *testing.T) {
	repo := &fakeApptRepo{}
	svc := newService(repo, &fakeNotifier{})

	input := validInput()
	input.Reason = "   "
	saved, _, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if saved.Reason != models.DefaultReason {
		t.Errorf("reason = %q, want %q", saved.Reason, models.DefaultReason)
	}
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.AppointmentInput)
		wantMsg string
	}{
		{"missing name", func(in *models.AppointmentInput) { in.Name = "" }, msgAllFieldsRequired},
		{"missing email", func(in *models.AppointmentInput) { in.Email = " " }, msgAllFieldsRequired},
		{"missing phone", func(in *models.AppointmentInput) { in.Phone = "" }, msgAllFieldsRequired},
		{"missing date", func(in *models.AppointmentInput) { in.Date = "" }, msgAllFieldsRequired},
		{"missing time", func(in *models.AppointmentInput) { in.Time = "" }, msgAllFieldsRequired},
		{"impossible phone", func(in *models.AppointmentInput) { in.Phone = "12345" }, msgInvalidPhone},
		{"phone too long", func(in *models.AppointmentInput) { in.Phone = "+5255123456789012345" }, msgInvalidPhone},
		{"bad date", func(in *models.AppointmentInput) { in.Date = "2030-02-30" }, msgInvalidDateTime},
		{"bad time", func(in *models.AppointmentInput) { in.Time = "25:99" }, msgInvalidDateTime},
		{"past date", func(in *models.AppointmentInput) { in.Date = "2020-01-15" }, msgPastDateTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeApptRepo{}
			notifier := &fakeNotifier{}
			svc := newService(repo, notifier)

			input := validInput()
			tt.mutate(&input)

			_, _, err := svc.Submit(context.Background(), input)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", verr.Message, tt.wantMsg)
			}
			if len(repo.created) != 0 {
				t.Errorf("rejected payload must not be persisted, found %d records", len(repo.created))
			}
			if len(notifier.sent) != 0 {
				t.Errorf("rejected payload must not be notified, found %d mails", len(notifier.sent))
			}
		})
	}
}

func TestSubmitNotificationFailureDoesNotRollBack(t *testing.T) {
	repo := &fakeApptRepo{}
	svc := newService(repo, &fakeNotifier{fail: true})

	saved, notified, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("notification failure must not fail the request, got %v", err)
	}
	if notified {
		t.Error("expected notified=false")
	}
	if saved == nil || len(repo.created) != 1 {
		t.Fatal("appointment must stay persisted when notification fails")
	}
}

func TestSubmitPersistenceFailure(t *testing.T) {
	repo := &fakeApptRepo{failCreate: true}
	notifier := &fakeNotifier{}
	svc := newService(repo, notifier)

	_, _, err := svc.Submit(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected error when the store rejects the write")
	}
	var verr ValidationError
	if errors.As(err, &verr) {
		t.Fatal("store failure must not surface as a validation error")
	}
	if len(notifier.sent) != 0 {
		t.Error("no notification should go out for a failed write")
	}
}

func TestSubmitTwiceCreatesDistinctRecords(t *testing.T) {
	repo := &fakeApptRepo{}
	svc := newService(repo, &fakeNotifier{})

	first, _, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	second, _, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("second Submit: %v", err)
	}

	// No dedup on purpose: the human scheduler resolves duplicates.
	if first.ID == second.ID {
		t.Error("identical payloads must still create distinct records")
	}
	if len(repo.created) != 2 {
		t.Errorf("expected 2 records, got %d", len(repo.created))
	}
}

func TestValidateInputAcceptsNearFuture(t *testing.T) {
	now := time.Date(2030, 1, 15, 17, 55, 0, 0, time.UTC)
	input := validInput()
	input.Date = "2030-01-15"
	input.Time = "18:00"
	if err := validateInput(input, now); err != nil {
		t.Errorf("a slot five minutes out must pass, got %v", err)
	}

	input.Time = "17:55"
	if err := validateInput(input, now); err == nil {
		t.Error("a slot at the current minute is not strictly in the future")
	}
}
