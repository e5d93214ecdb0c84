package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/scholarstream/scholarstream/internal/app/models"
	"github.com/scholarstream/scholarstream/internal/app/models/dto"
	"github.com/scholarstream/scholarstream/internal/app/repositories"
	"github.com/scholarstream/scholarstream/internal/pkg/apperrors"
	"github.com/scholarstream/scholarstream/internal/pkg/identity"
	"github.com/scholarstream/scholarstream/internal/pkg/payments"
)

type applicationKey struct {
	scholarshipID int64
	email         string
}

// fakeApplicationRepo is an in-memory stand-in for the applications table,
// including its unique (scholarship, user) constraint.
type fakeApplicationRepo struct {
	nextID int64
	byKey  map[applicationKey]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		nextID: 1,
		byKey:  make(map[applicationKey]*models.Application),
	}
}

func (f *fakeApplicationRepo) InsertPending(_ context.Context, a *models.Application) (int64, bool, error) {
	key := applicationKey{a.ScholarshipID, a.UserEmail}
	if existing, ok := f.byKey[key]; ok {
		return existing.ID, false, nil
	}
	stored := *a
	stored.ID = f.nextID
	f.nextID++
	f.byKey[key] = &stored
	return stored.ID, true, nil
}

func (f *fakeApplicationRepo) GetByScholarshipAndEmail(_ context.Context, scholarshipID int64, email string) (*models.Application, error) {
	a, ok := f.byKey[applicationKey{scholarshipID, email}]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeApplicationRepo) RecordPayment(_ context.Context, scholarshipID int64, email string, record models.PaymentRecord) error {
	a, ok := f.byKey[applicationKey{scholarshipID, email}]
	if !ok {
		return repositories.ErrNotFound
	}
	a.PaymentStatus = record.PaymentStatus
	a.ApplicationStatus = models.ApplicationSubmitted
	tid := record.TransactionID
	a.TransactionID = &tid
	amount := record.AmountPaid
	a.AmountPaid = &amount
	completed := record.CompletedAt
	a.CompletedAt = &completed
	return nil
}

func (f *fakeApplicationRepo) ListByEmail(_ context.Context, email string) ([]*models.Application, error) {
	var out []*models.Application
	for key, a := range f.byKey {
		if key.email == email {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListPaid(_ context.Context) ([]*models.Application, error) {
	var out []*models.Application
	for _, a := range f.byKey {
		if a.PaymentStatus == models.PaymentPaid {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListFeedbackByEmail(_ context.Context, email string) ([]*models.Application, error) {
	var out []*models.Application
	for key, a := range f.byKey {
		if key.email == email && a.Feedback != nil {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) SetFeedback(_ context.Context, id int64, feedback string) error {
	for _, a := range f.byKey {
		if a.ID == id {
			a.Feedback = &feedback
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeApplicationRepo) DeletePending(_ context.Context, scholarshipID int64, email string) error {
	key := applicationKey{scholarshipID, email}
	a, ok := f.byKey[key]
	if !ok || a.ApplicationStatus != models.ApplicationPending {
		return repositories.ErrNotFound
	}
	delete(f.byKey, key)
	return nil
}

// fakePaymentClient scripts processor responses and records requests.
type fakePaymentClient struct {
	lastCheckout payments.CheckoutParams
	session      *payments.CheckoutSession
	err          error
}

func (f *fakePaymentClient) CreateCheckoutSession(_ context.Context, params payments.CheckoutParams) (*payments.CheckoutSession, error) {
	f.lastCheckout = params
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

func (f *fakePaymentClient) GetCheckoutSession(_ context.Context, sessionID string) (*payments.CheckoutSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.session == nil || f.session.ID != sessionID {
		return nil, fmt.Errorf("no such session %s", sessionID)
	}
	return f.session, nil
}

func testIdentity() *identity.Identity {
	return &identity.Identity{
		UID:         "uid-1",
		Email:       "student@example.com",
		DisplayName: "Test Student",
	}
}

func checkoutRequest() dto.CheckoutSessionRequest {
	return dto.CheckoutSessionRequest{
		ScholarshipID:   42,
		ScholarshipName: "Global Excellence Scholarship",
		UniversityName:  "University of Oxford",
		ApplicationFees: 50,
	}
}

func newTestApplicationService(repo ApplicationRepository, client PaymentClient) ApplicationService {
	return NewApplicationService(repo, client, zerolog.Nop())
}

func TestSavePendingSessionIsIdempotent(t *testing.T) {
	repo := newFakeApplicationRepo()
	svc := newTestApplicationService(repo, &fakePaymentClient{})

	id1, created, err := svc.SavePendingSession(context.Background(), testIdentity(), checkoutRequest())
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if !created {
		t.Fatalf("expected first save to create an application")
	}

	id2, created, err := svc.SavePendingSession(context.Background(), testIdentity(), checkoutRequest())
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if created {
		t.Fatalf("expected second save to reuse the existing application")
	}
	if id1 != id2 {
		t.Fatalf("expected identical application IDs, got %d and %d", id1, id2)
	}
}

func TestCreateCheckoutSessionUsesMinorUnits(t *testing.T) {
	client := &fakePaymentClient{
		session: &payments.CheckoutSession{ID: "cs_1", URL: "https://checkout.example.com/cs_1"},
	}
	svc := newTestApplicationService(newFakeApplicationRepo(), client)

	url, err := svc.CreateCheckoutSession(context.Background(), testIdentity(), checkoutRequest())
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if url != "https://checkout.example.com/cs_1" {
		t.Fatalf("unexpected redirect URL %q", url)
	}
	if client.lastCheckout.AmountMinor != 5000 {
		t.Fatalf("expected amount 5000 minor units, got %d", client.lastCheckout.AmountMinor)
	}
	if client.lastCheckout.Metadata["scholarshipId"] != "42" {
		t.Fatalf("expected scholarship reference in metadata, got %v", client.lastCheckout.Metadata)
	}
	if client.lastCheckout.Metadata["userEmail"] != "student@example.com" {
		t.Fatalf("expected user email in metadata, got %v", client.lastCheckout.Metadata)
	}
}

func TestCreateCheckoutSessionRejectsNonPositiveFee(t *testing.T) {
	svc := newTestApplicationService(newFakeApplicationRepo(), &fakePaymentClient{})

	req := checkoutRequest()
	req.ApplicationFees = 0
	_, err := svc.CreateCheckoutSession(context.Background(), testIdentity(), req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateCheckoutSessionProcessorFailure(t *testing.T) {
	client := &fakePaymentClient{err: errors.New("connection refused")}
	svc := newTestApplicationService(newFakeApplicationRepo(), client)

	_, err := svc.CreateCheckoutSession(context.Background(), testIdentity(), checkoutRequest())
	if !errors.Is(err, apperrors.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func paidSession(scholarshipID int64, email string) *payments.CheckoutSession {
	return &payments.CheckoutSession{
		ID:            "cs_paid",
		PaymentStatus: payments.PaymentStatusPaid,
		PaymentIntent: "pi_123",
		AmountTotal:   5000,
		Metadata: map[string]string{
			"scholarshipId": fmt.Sprintf("%d", scholarshipID),
			"userEmail":     email,
		},
	}
}

func TestVerifyPaymentRecordsOutcome(t *testing.T) {
	repo := newFakeApplicationRepo()
	client := &fakePaymentClient{session: paidSession(42, "student@example.com")}
	svc := newTestApplicationService(repo, client)

	if _, _, err := svc.SavePendingSession(context.Background(), testIdentity(), checkoutRequest()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	application, err := svc.VerifyPayment(context.Background(), "cs_paid")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if application.PaymentStatus != models.PaymentPaid {
		t.Fatalf("expected paid status, got %s", application.PaymentStatus)
	}
	if application.ApplicationStatus != models.ApplicationSubmitted {
		t.Fatalf("expected submitted status, got %s", application.ApplicationStatus)
	}
	if application.TransactionID == nil || *application.TransactionID != "pi_123" {
		t.Fatalf("expected transaction pi_123, got %v", application.TransactionID)
	}
	if application.AmountPaid == nil || *application.AmountPaid != 50 {
		t.Fatalf("expected amount 50, got %v", application.AmountPaid)
	}
	if application.CompletedAt == nil || application.CompletedAt.After(time.Now()) {
		t.Fatalf("expected a completion timestamp in the past, got %v", application.CompletedAt)
	}
}

func TestVerifyPaymentIsRepeatable(t *testing.T) {
	repo := newFakeApplicationRepo()
	client := &fakePaymentClient{session: paidSession(42, "student@example.com")}
	svc := newTestApplicationService(repo, client)

	if _, _, err := svc.SavePendingSession(context.Background(), testIdentity(), checkoutRequest()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	first, err := svc.VerifyPayment(context.Background(), "cs_paid")
	if err != nil {
		t.Fatalf("first verify failed: %v", err)
	}
	second, err := svc.VerifyPayment(context.Background(), "cs_paid")
	if err != nil {
		t.Fatalf("second verify failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected the same application, got %d and %d", first.ID, second.ID)
	}
	if second.PaymentStatus != models.PaymentPaid || second.ApplicationStatus != models.ApplicationSubmitted {
		t.Fatalf("expected repeat verify to leave the record settled, got %s/%s", second.PaymentStatus, second.ApplicationStatus)
	}
}

func TestVerifyPaymentWithoutPendingApplication(t *testing.T) {
	client := &fakePaymentClient{session: paidSession(42, "student@example.com")}
	svc := newTestApplicationService(newFakeApplicationRepo(), client)

	_, err := svc.VerifyPayment(context.Background(), "cs_paid")
	if !errors.Is(err, apperrors.ErrApplicationNotFound) {
		t.Fatalf("expected application not found, got %v", err)
	}
}

func TestVerifyPaymentRejectsSessionWithoutMetadata(t *testing.T) {
	client := &fakePaymentClient{session: &payments.CheckoutSession{
		ID:            "cs_bare",
		PaymentStatus: payments.PaymentStatusPaid,
	}}
	svc := newTestApplicationService(newFakeApplicationRepo(), client)

	_, err := svc.VerifyPayment(context.Background(), "cs_bare")
	if !errors.Is(err, apperrors.ErrApplicationNotFound) {
		t.Fatalf("expected application not found, got %v", err)
	}
}

func TestVerifyPaymentEmptySessionID(t *testing.T) {
	svc := newTestApplicationService(newFakeApplicationRepo(), &fakePaymentClient{})

	_, err := svc.VerifyPayment(context.Background(), "  ")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestVerifyPaymentProcessorUnavailable(t *testing.T) {
	client := &fakePaymentClient{err: errors.New("timeout")}
	svc := newTestApplicationService(newFakeApplicationRepo(), client)

	_, err := svc.VerifyPayment(context.Background(), "cs_paid")
	if !errors.Is(err, apperrors.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestDeletePendingOnlyRemovesUnsubmitted(t *testing.T) {
	repo := newFakeApplicationRepo()
	client := &fakePaymentClient{session: paidSession(42, "student@example.com")}
	svc := newTestApplicationService(repo, client)

	if _, _, err := svc.SavePendingSession(context.Background(), testIdentity(), checkoutRequest()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := svc.VerifyPayment(context.Background(), "cs_paid"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	err := svc.DeletePending(context.Background(), testIdentity(), 42)
	if !errors.Is(err, apperrors.ErrApplicationNotDeletable) {
		t.Fatalf("expected submitted application to be undeletable, got %v", err)
	}
}

func TestDeletePendingRemovesOwnApplication(t *testing.T) {
	repo := newFakeApplicationRepo()
	svc := newTestApplicationService(repo, &fakePaymentClient{})

	if _, _, err := svc.SavePendingSession(context.Background(), testIdentity(), checkoutRequest()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := svc.DeletePending(context.Background(), testIdentity(), 42); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	history, err := svc.History(context.Background(), "student@example.com")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history after delete, got %d entries", len(history))
	}
}

func TestSetFeedbackUnknownApplication(t *testing.T) {
	svc := newTestApplicationService(newFakeApplicationRepo(), &fakePaymentClient{})

	err := svc.SetFeedback(context.Background(), 99, "looks good")
	if !errors.Is(err, apperrors.ErrApplicationNotFound) {
		t.Fatalf("expected application not found, got %v", err)
	}
}
