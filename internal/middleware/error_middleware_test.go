package middleware

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/scholarstream/scholarstream/internal/pkg/apperrors"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"not registered", apperrors.ErrNotRegistered, http.StatusForbidden},
		{"scholarship not found", apperrors.ErrScholarshipNotFound, http.StatusNotFound},
		{"application not found", apperrors.ErrApplicationNotFound, http.StatusNotFound},
		{"validation", fmt.Errorf("%w: fee must be positive", apperrors.ErrValidationFailed), http.StatusBadRequest},
		{"invalid role", apperrors.ErrInvalidRole, http.StatusBadRequest},
		{"duplicate", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"not deletable", apperrors.ErrApplicationNotDeletable, http.StatusNotFound},
		{"bad request with message", apperrors.NewBadRequestError("Query is required"), http.StatusBadRequest},
		{"forbidden with message", apperrors.NewForbiddenError("Forbidden: insufficient role"), http.StatusForbidden},
		{"upstream with message", apperrors.NewUpstreamError("processor timeout"), http.StatusBadGateway},
		{"upstream failure", fmt.Errorf("%w: connection refused", apperrors.ErrUpstream), http.StatusBadGateway},
		{"unknown", fmt.Errorf("some database failure"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := statusForError(tc.err)
			if status != tc.want {
				t.Fatalf("got %d, want %d", status, tc.want)
			}
		})
	}
}

// Deleting a submitted application answers exactly like deleting one that
// never existed, so callers learn nothing about other users' submissions.
func TestDeleteSubmittedAnswersNotFound(t *testing.T) {
	status, message := statusForError(apperrors.ErrApplicationNotDeletable)
	if status != http.StatusNotFound {
		t.Fatalf("got %d, want %d", status, http.StatusNotFound)
	}
	if message != "Application not found" {
		t.Fatalf("unexpected message %q", message)
	}
}

func TestStatusForErrorKeepsCustomMessages(t *testing.T) {
	_, message := statusForError(apperrors.NewBadRequestError("Query is required"))
	if message != "Query is required" {
		t.Fatalf("unexpected message %q", message)
	}

	_, message = statusForError(apperrors.NewForbiddenError("Forbidden: insufficient role"))
	if message != "Forbidden: insufficient role" {
		t.Fatalf("unexpected message %q", message)
	}
}

func TestStatusForErrorHidesInternalDetail(t *testing.T) {
	_, message := statusForError(fmt.Errorf("pq: connection refused on 10.0.0.5"))
	if message != "Internal Server Error" {
		t.Fatalf("internal detail leaked: %q", message)
	}
}
