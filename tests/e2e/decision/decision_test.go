//go:build e2e

package decision_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"booking-ops-portal/internal/domain/user"
	"booking-ops-portal/internal/handler/dto/response"
	"booking-ops-portal/internal/pkg/cookie"
	"booking-ops-portal/tests/common/authtest"
	"booking-ops-portal/tests/common/dbtest"
	"booking-ops-portal/tests/common/httptest"
	"booking-ops-portal/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	applicationURL     = "/api/applications/%s/%s"
	formResponseURL    = "/api/form-responses/%s/%s"
	bookingRequestURL  = "/api/booking-requests/%s/%s"
	applicationsURL    = "/api/applications"
	bookingRequestsURL = "/api/booking-requests"
	summaryURL         = "/api/decisions/summary"
)

type DecisionSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *DecisionSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *DecisionSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestDecisionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DecisionSuite))
}

type fixture struct {
	brandID       uuid.UUID
	djID          uuid.UUID
	opportunityID uuid.UUID
}

func (s *DecisionSuite) seed() fixture {
	t := s.T()
	brand := dbtest.CreateUserProfile(t, s.DB, string(user.RoleBrand), "", "brand@example.com")
	dj := dbtest.CreateUserProfile(t, s.DB, string(user.RoleDJ), "DJ Nova", "nova@example.com")
	opp := dbtest.CreateOpportunity(t, s.DB, brand, "Friday Night Residency")
	return fixture{brandID: brand, djID: dj, opportunityID: opp}
}

func (s *DecisionSuite) token(id uuid.UUID, role user.Role) string {
	return s.jwt.GenerateToken(s.T(), id, role)
}

var notificationOpts = cmpopts.IgnoreFields(dbtest.NotificationRow{}, "Message")

// =============================================================================
// TestApplicationDecisions
// =============================================================================

func (s *DecisionSuite) TestApplicationDecisions() {
	s.Run("Normal case: staff approval commits through the procedure and notifies the DJ", func() {
		t := s.T()
		f := s.seed()
		appID := dbtest.CreateApplication(t, s.DB, f.opportunityID, f.djID, "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(applicationURL, appID, "approve"), nil, s.token(uuid.New(), user.RoleStaff))

		var body response.DecisionResultResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "privileged", body.Strategy)
		require.Equal(t, "approved", body.Record.Status)
		require.NotNil(t, body.Record.DecidedAt)
		require.False(t, body.NoOp)
		require.Empty(t, body.Warnings)

		require.Equal(t, "approved", dbtest.RecordStatus(t, s.DB, "applications", appID))

		notes := dbtest.NotificationsFor(t, s.DB, f.djID)
		want := []dbtest.NotificationRow{{Title: "Application approved", Type: "application_approved", RelatedID: appID}}
		if diff := cmp.Diff(want, notes, notificationOpts); diff != "" {
			t.Errorf("notifications mismatch (-want +got):\n%s", diff)
		}
		require.Contains(t, notes[0].Message, `"Friday Night Residency"`)

		emails := s.Emails.Emails()
		require.Len(t, emails, 1)
		require.Equal(t, "nova@example.com", emails[0].Email)
		require.Equal(t, "DJ Nova", emails[0].RecipientName)
		require.Equal(t, "approved", emails[0].Status)
		require.Equal(t, "Friday Night Residency", emails[0].ResourceTitle)
		require.Equal(t, "Bearer test-email-key", emails[0].Authorization)
	})

	s.Run("Normal case: the organizing brand may reject", func() {
		t := s.T()
		f := s.seed()
		appID := dbtest.CreateApplication(t, s.DB, f.opportunityID, f.djID, "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(applicationURL, appID, "reject"), nil, s.token(f.brandID, user.RoleBrand))
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
		require.Equal(t, "rejected", dbtest.RecordStatus(t, s.DB, "applications", appID))
	})

	s.Run("Error case: another brand is denied and nothing changes", func() {
		t := s.T()
		f := s.seed()
		appID := dbtest.CreateApplication(t, s.DB, f.opportunityID, f.djID, "pending")
		otherBrand := dbtest.CreateUserProfile(t, s.DB, string(user.RoleBrand), "", "other@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(applicationURL, appID, "approve"), nil, s.token(otherBrand, user.RoleBrand))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "opportunities you organize")

		require.Equal(t, "pending", dbtest.RecordStatus(t, s.DB, "applications", appID))
		require.Empty(t, dbtest.NotificationsFor(t, s.DB, f.djID))
		require.Empty(t, s.Emails.Emails())
	})

	s.Run("Normal case: repeating the same decision is a no-op", func() {
		t := s.T()
		f := s.seed()
		appID := dbtest.CreateApplication(t, s.DB, f.opportunityID, f.djID, "pending")
		token := s.token(uuid.New(), user.RoleAdmin)
		url := fmt.Sprintf(applicationURL, appID, "approve")

		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token), http.StatusOK, nil)

		var body response.DecisionResultResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token), http.StatusOK, &body)
		require.True(t, body.NoOp)
		require.Len(t, dbtest.NotificationsFor(t, s.DB, f.djID), 1)
		require.Len(t, s.Emails.Emails(), 1)
	})

	s.Run("Error case: the opposite decision on a decided record conflicts", func() {
		t := s.T()
		f := s.seed()
		appID := dbtest.CreateApplication(t, s.DB, f.opportunityID, f.djID, "rejected")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(applicationURL, appID, "approve"), nil, s.token(uuid.New(), user.RoleStaff))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already been decided")
		require.Equal(t, "rejected", dbtest.RecordStatus(t, s.DB, "applications", appID))
	})

	s.Run("Error case: unknown record is 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(applicationURL, uuid.New(), "approve"), nil, s.token(uuid.New(), user.RoleStaff))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "no longer exists")
	})

	s.Run("Normal case: the access token cookie authenticates", func() {
		t := s.T()
		f := s.seed()
		appID := dbtest.CreateApplication(t, s.DB, f.opportunityID, f.djID, "pending")
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: s.token(uuid.New(), user.RoleStaff)}}

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, fmt.Sprintf(applicationURL, appID, "approve"), nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body response.DecisionResultResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, "approved", body.Record.Status)
	})

	s.Run("Error case: unauthenticated requests are rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(applicationURL, uuid.New(), "approve"), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})

	s.Run("Fallback case: a missing procedure degrades to the direct update", func() {
		t := s.T()
		f := s.seed()
		appID := dbtest.CreateApplication(t, s.DB, f.opportunityID, f.djID, "pending")

		ctx := context.Background()
		_, err := s.DB.Exec(ctx, "ALTER FUNCTION admin_update_application_status(uuid, text) RENAME TO admin_update_application_status_off")
		require.NoError(t, err)
		t.Cleanup(func() {
			_, _ = s.DB.Exec(context.Background(), "ALTER FUNCTION admin_update_application_status_off(uuid, text) RENAME TO admin_update_application_status")
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(applicationURL, appID, "approve"), nil, s.token(uuid.New(), user.RoleStaff))

		var body response.DecisionResultResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "direct", body.Strategy)
		require.NotNil(t, body.Record.DecidedAt)
		require.Equal(t, "approved", dbtest.RecordStatus(t, s.DB, "applications", appID))
		require.Len(t, dbtest.NotificationsFor(t, s.DB, f.djID), 1)
	})

	s.Run("Degraded case: a failing email function yields a warning, not an error", func() {
		t := s.T()
		f := s.seed()
		appID := dbtest.CreateApplication(t, s.DB, f.opportunityID, f.djID, "pending")
		s.Emails.SetFailing()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(applicationURL, appID, "approve"), nil, s.token(uuid.New(), user.RoleStaff))

		var body response.DecisionResultResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Len(t, body.Warnings, 1)
		require.Equal(t, "email_not_sent", body.Warnings[0].Kind)
		require.Equal(t, "approved", dbtest.RecordStatus(t, s.DB, "applications", appID))
	})
}

// =============================================================================
// TestFormResponseDecisions
// =============================================================================

func (s *DecisionSuite) TestFormResponseDecisions() {
	s.Run("Normal case: staff approves a form response", func() {
		t := s.T()
		f := s.seed()
		id := dbtest.CreateFormResponse(t, s.DB, f.opportunityID, f.djID, "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(formResponseURL, id, "approve"), nil, s.token(uuid.New(), user.RoleStaff))

		var body response.DecisionResultResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "form_response", body.Record.Kind)
		require.Equal(t, "approved", dbtest.RecordStatus(t, s.DB, "application_form_responses", id))
	})
}

// =============================================================================
// TestBookingRequestDecisions
// =============================================================================

func (s *DecisionSuite) TestBookingRequestDecisions() {
	s.Run("Normal case: the DJ declines with notes and the brand is told", func() {
		t := s.T()
		f := s.seed()
		id := dbtest.CreateBookingRequest(t, s.DB, f.brandID, f.djID, "Rooftop Launch Party", "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingRequestURL, id, "decline"),
			map[string]any{"notes": "  schedule conflict  "}, s.token(f.djID, user.RoleDJ))

		var body response.DecisionResultResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "declined", body.Record.Status)
		require.NotNil(t, body.Record.ResponseNotes)
		require.Equal(t, "schedule conflict", *body.Record.ResponseNotes)

		require.Empty(t, dbtest.NotificationsFor(t, s.DB, f.djID))
		notes := dbtest.NotificationsFor(t, s.DB, f.brandID)
		want := []dbtest.NotificationRow{{Title: "Booking request declined", Type: "booking_declined", RelatedID: id}}
		if diff := cmp.Diff(want, notes, notificationOpts); diff != "" {
			t.Errorf("notifications mismatch (-want +got):\n%s", diff)
		}
		require.Contains(t, notes[0].Message, "Note: schedule conflict")

		emails := s.Emails.Emails()
		require.Len(t, emails, 1)
		require.Equal(t, "brand@example.com", emails[0].Email)
		require.NotNil(t, emails[0].Notes)
		require.Equal(t, "schedule conflict", *emails[0].Notes)
	})

	s.Run("Normal case: accept without a body", func() {
		t := s.T()
		f := s.seed()
		id := dbtest.CreateBookingRequest(t, s.DB, f.brandID, f.djID, "Rooftop Launch Party", "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingRequestURL, id, "accept"), nil, s.token(f.djID, user.RoleDJ))
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
		require.Equal(t, "accepted", dbtest.RecordStatus(t, s.DB, "booking_requests", id))
	})

	s.Run("Error case: a cancelled request cannot be accepted", func() {
		t := s.T()
		f := s.seed()
		id := dbtest.CreateBookingRequest(t, s.DB, f.brandID, f.djID, "Rooftop Launch Party", "cancelled")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingRequestURL, id, "accept"), nil, s.token(f.djID, user.RoleDJ))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		require.Equal(t, "cancelled", dbtest.RecordStatus(t, s.DB, "booking_requests", id))
	})
}

// =============================================================================
// TestReadSide
// =============================================================================

func (s *DecisionSuite) TestReadSide() {
	s.Run("Normal case: a brand lists only what it organizes", func() {
		t := s.T()
		f := s.seed()
		mine := dbtest.CreateApplication(t, s.DB, f.opportunityID, f.djID, "pending")

		other := dbtest.CreateUserProfile(t, s.DB, string(user.RoleBrand), "", "other@example.com")
		otherOpp := dbtest.CreateOpportunity(t, s.DB, other, "Sunday Brunch")
		dbtest.CreateApplication(t, s.DB, otherOpp, f.djID, "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, applicationsURL, nil, s.token(f.brandID, user.RoleBrand))
		var body response.DecisionListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Len(t, body.Items, 1)
		require.Equal(t, mine.String(), body.Items[0].ID)
		require.Equal(t, "Friday Night Residency", body.Items[0].OpportunityTitle)
		require.Equal(t, "DJ Nova", body.Items[0].SubjectName)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, applicationsURL, nil, s.token(uuid.New(), user.RoleStaff))
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Len(t, body.Items, 2)
	})

	s.Run("Normal case: keyset pagination walks every record once", func() {
		t := s.T()
		f := s.seed()
		for range 5 {
			dbtest.CreateBookingRequest(t, s.DB, f.brandID, f.djID, "Rooftop Launch Party", "pending")
		}
		token := s.token(uuid.New(), user.RoleAdmin)

		seen := map[string]bool{}
		url := bookingRequestsURL + "?limit=2"
		for pages := 0; pages < 5; pages++ {
			var body response.DecisionListResponse
			httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token), http.StatusOK, &body)
			for _, it := range body.Items {
				require.False(t, seen[it.ID], "record %s listed twice", it.ID)
				seen[it.ID] = true
			}
			if body.NextCursor == "" {
				break
			}
			url = bookingRequestsURL + "?limit=2&after=" + body.NextCursor
		}
		require.Len(t, seen, 5)
	})

	s.Run("Normal case: the summary counts pending records per kind", func() {
		t := s.T()
		f := s.seed()
		dbtest.CreateApplication(t, s.DB, f.opportunityID, f.djID, "pending")
		dbtest.CreateApplication(t, s.DB, f.opportunityID, f.djID, "approved")
		dbtest.CreateFormResponse(t, s.DB, f.opportunityID, f.djID, "pending")
		dbtest.CreateBookingRequest(t, s.DB, f.brandID, f.djID, "Rooftop Launch Party", "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, summaryURL, nil, s.token(f.brandID, user.RoleBrand))
		var body response.PendingSummaryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, response.PendingSummaryResponse{Applications: 1, FormResponses: 1, BookingRequests: 1, Total: 3}, body)
	})
}
