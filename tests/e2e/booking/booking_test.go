//go:build e2e

package booking_test

import (
	"net/http"
	"testing"

	"booking-system/internal/domain/user"
	"booking-system/internal/handler/dto/response"
	"booking-system/tests/common/authtest"
	"booking-system/tests/common/builder"
	"booking-system/tests/common/dbtest"
	"booking-system/tests/common/httptest"
	"booking-system/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	availabilityURL = "/api/availability"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// =============================================================================
// TestCreateBooking - Booking creation API tests
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: member books a free slot", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "member@example.com", string(user.RoleMember))
		resourceID := dbtest.CreateTestResource(t, s.DB, "Conference Room A", 2000)
		token := authtest.LoginUser(t, s.Router, "member@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			WithDate("2030-06-15").
			WithTimes("09:00", "10:00").
			WithNotes("Team standup").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		expected := &response.BookingResponse{
			ResourceID:    resourceID,
			ResourceName:  "Conference Room A",
			UserEmail:     "member@example.com",
			Date:          "2030-06-15",
			StartTime:     "09:00",
			EndTime:       "10:00",
			Status:        "PENDING",
			Notes:         "Team standup",
			DurationHours: 1,
			TotalPrice:    20,
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "UserID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}

		// The new booking shows up in the owner's list
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code)
		var items []*response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &items))
		require.Len(t, items, 1)
		require.Equal(t, actual.ID, items[0].ID)
	})

	s.Run("Error case: overlapping slot is rejected with the blocking interval", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "alice@example.com", string(user.RoleMember))
		dbtest.CreateTestUser(t, s.DB, "bob@example.com", string(user.RoleMember))
		resourceID := dbtest.CreateTestResource(t, s.DB, "Conference Room B", 2000)

		aliceToken := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")
		bobToken := authtest.LoginUser(t, s.Router, "bob@example.com", "password123")

		aliceReq := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			WithDate("2030-06-15").
			WithTimes("09:00", "10:00").
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, aliceReq, aliceToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		bobReq := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			WithDate("2030-06-15").
			WithTimes("09:30", "10:30").
			BuildCreateRequestDTO()
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bobReq, bobToken)
		httptest.AssertErrorResponse(t, cw, http.StatusConflict, "09:00 - 10:00")
	})

	s.Run("Normal case: back-to-back slots do not conflict", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "alice@example.com", string(user.RoleMember))
		dbtest.CreateTestUser(t, s.DB, "bob@example.com", string(user.RoleMember))
		resourceID := dbtest.CreateTestResource(t, s.DB, "Conference Room C", 2000)

		aliceToken := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")
		bobToken := authtest.LoginUser(t, s.Router, "bob@example.com", "password123")

		first := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			WithDate("2030-06-15").
			WithTimes("09:00", "10:00").
			BuildCreateRequestDTO()
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, first, aliceToken)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		second := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			WithDate("2030-06-15").
			WithTimes("10:00", "11:00").
			BuildCreateRequestDTO()
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, second, bobToken)
		require.Equal(t, http.StatusCreated, w2.Code, w2.Body.String())
	})

	s.Run("Normal case: same interval on another date does not conflict", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "alice@example.com", string(user.RoleMember))
		resourceID := dbtest.CreateTestResource(t, s.DB, "Conference Room D", 2000)
		token := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")

		for _, date := range []string{"2030-06-15", "2030-06-16"} {
			reqBody := builder.NewBookingBuilder().
				WithResourceID(resourceID).
				WithDate(date).
				WithTimes("09:00", "10:00").
				BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}
	})

	s.Run("Error case: past date is rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "member@example.com", string(user.RoleMember))
		resourceID := dbtest.CreateTestResource(t, s.DB, "Conference Room E", 2000)
		token := authtest.LoginUser(t, s.Router, "member@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			WithDate("2020-01-01").
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "past date")
	})

	s.Run("Error case: unavailable resource is rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "member@example.com", string(user.RoleMember))
		resourceID := dbtest.CreateTestResource(t, s.DB, "Broken Projector", 500)
		dbtest.MarkResourceUnavailable(t, s.DB, resourceID)
		token := authtest.LoginUser(t, s.Router, "member@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "not available")
	})

	s.Run("Auth test: unauthorized when not logged in", func() {
		t := s.T()

		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestRescheduleBooking - Moving a booking to another slot
// =============================================================================

func (s *BookingSuite) TestRescheduleBooking() {
	s.Run("Normal case: time-only update keeps the original date", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "member@example.com", string(user.RoleMember))
		resourceID := dbtest.CreateTestResource(t, s.DB, "Conference Room A", 2000)
		token := authtest.LoginUser(t, s.Router, "member@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			WithDate("2030-06-15").
			WithTimes("09:00", "10:00").
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		updateURL := bookingsURL + "/" + created.ID.String()
		partial := map[string]string{"start_time": "13:00", "end_time": "14:30"}
		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, updateURL, partial, token)
		require.Equal(t, http.StatusOK, uw.Code, uw.Body.String())

		var updated response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, uw.Body, &updated))
		require.Equal(t, "2030-06-15", updated.Date)
		require.Equal(t, "13:00", updated.StartTime)
		require.Equal(t, "14:30", updated.EndTime)
		require.Equal(t, 1.5, updated.DurationHours)
		require.Equal(t, 30.0, updated.TotalPrice)
	})

	s.Run("Normal case: notes-only update keeps the slot", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "member@example.com", string(user.RoleMember))
		resourceID := dbtest.CreateTestResource(t, s.DB, "Conference Room A", 2000)
		token := authtest.LoginUser(t, s.Router, "member@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			WithDate("2030-06-15").
			WithTimes("09:00", "10:00").
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		updateURL := bookingsURL + "/" + created.ID.String()
		partial := map[string]string{"notes": "Bring the projector cable"}
		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, updateURL, partial, token)
		require.Equal(t, http.StatusOK, uw.Code, uw.Body.String())

		var updated response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, uw.Body, &updated))
		require.Equal(t, created.Date, updated.Date)
		require.Equal(t, created.StartTime, updated.StartTime)
		require.Equal(t, created.EndTime, updated.EndTime)
		require.Equal(t, "Bring the projector cable", updated.Notes)
	})

	s.Run("Error case: moving onto another booking is rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "alice@example.com", string(user.RoleMember))
		dbtest.CreateTestUser(t, s.DB, "bob@example.com", string(user.RoleMember))
		resourceID := dbtest.CreateTestResource(t, s.DB, "Conference Room A", 2000)

		aliceToken := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")
		bobToken := authtest.LoginUser(t, s.Router, "bob@example.com", "password123")

		aliceReq := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			WithDate("2030-06-15").
			WithTimes("09:00", "10:00").
			BuildCreateRequestDTO()
		aw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, aliceReq, aliceToken)
		require.Equal(t, http.StatusCreated, aw.Code, aw.Body.String())

		bobReq := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			WithDate("2030-06-15").
			WithTimes("11:00", "12:00").
			BuildCreateRequestDTO()
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bobReq, bobToken)
		require.Equal(t, http.StatusCreated, bw.Code, bw.Body.String())
		var bobBooking response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, bw.Body, &bobBooking))

		updateURL := bookingsURL + "/" + bobBooking.ID.String()
		partial := map[string]string{"start_time": "09:30", "end_time": "10:30"}
		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, updateURL, partial, bobToken)
		require.Equal(t, http.StatusConflict, uw.Code, uw.Body.String())
	})
}

// =============================================================================
// TestCancelAndRebook - Cancellation frees the slot for others
// =============================================================================

func (s *BookingSuite) TestCancelAndRebook() {
	s.Run("Normal case: cancelled slot can be booked again", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "alice@example.com", string(user.RoleMember))
		dbtest.CreateTestUser(t, s.DB, "bob@example.com", string(user.RoleMember))
		resourceID := dbtest.CreateTestResource(t, s.DB, "Conference Room A", 2000)

		aliceToken := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")
		bobToken := authtest.LoginUser(t, s.Router, "bob@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			WithDate("2030-06-15").
			WithTimes("09:00", "10:00").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, aliceToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		// Bob is blocked while Alice holds the slot
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, bobToken)
		require.Equal(t, http.StatusConflict, bw.Code)

		// Alice cancels
		cancelURL := bookingsURL + "/" + created.ID.String() + "/cancel"
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, aliceToken)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())
		var cancelled response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &cancelled))
		require.Equal(t, "CANCELLED", cancelled.Status)

		// The freed slot is Bob's for the taking
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, bobToken)
		require.Equal(t, http.StatusCreated, rw.Code, rw.Body.String())

		// Cancelling twice is rejected
		dw := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, aliceToken)
		require.Equal(t, http.StatusConflict, dw.Code)
	})

	s.Run("Error case: member cannot cancel someone else's booking", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "alice@example.com", string(user.RoleMember))
		dbtest.CreateTestUser(t, s.DB, "bob@example.com", string(user.RoleMember))
		resourceID := dbtest.CreateTestResource(t, s.DB, "Conference Room A", 2000)

		aliceToken := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")
		bobToken := authtest.LoginUser(t, s.Router, "bob@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, aliceToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		cancelURL := bookingsURL + "/" + created.ID.String() + "/cancel"
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, bobToken)
		require.Equal(t, http.StatusForbidden, cw.Code)
	})
}

// =============================================================================
// TestAdminStatusOverride - Admin-only direct status assignment
// =============================================================================

func (s *BookingSuite) TestAdminStatusOverride() {
	s.Run("Normal case: admin confirms and later completes a booking", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "member@example.com", string(user.RoleMember))
		dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
		resourceID := dbtest.CreateTestResource(t, s.DB, "Conference Room A", 2000)

		memberToken := authtest.LoginUser(t, s.Router, "member@example.com", "password123")
		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, memberToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		statusURL := bookingsURL + "/" + created.ID.String() + "/status"
		for _, status := range []string{"CONFIRMED", "COMPLETED"} {
			sw := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
				builder.NewBookingBuilder().BuildStatusRequestDTO(status), adminToken)
			require.Equal(t, http.StatusOK, sw.Code, sw.Body.String())

			var updated response.BookingResponse
			require.NoError(t, httptest.DecodeResponseBody(t, sw.Body, &updated))
			require.Equal(t, status, updated.Status)
		}
	})

	s.Run("Error case: member cannot set status directly", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "member@example.com", string(user.RoleMember))
		resourceID := dbtest.CreateTestResource(t, s.DB, "Conference Room A", 2000)
		memberToken := authtest.LoginUser(t, s.Router, "member@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, memberToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		statusURL := bookingsURL + "/" + created.ID.String() + "/status"
		sw := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			builder.NewBookingBuilder().BuildStatusRequestDTO("CONFIRMED"), memberToken)
		require.Equal(t, http.StatusForbidden, sw.Code)
	})
}

// =============================================================================
// TestAvailability - Day availability endpoint
// =============================================================================

func (s *BookingSuite) TestAvailability() {
	s.Run("Normal case: booked slots come back sorted by start time", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "member@example.com", string(user.RoleMember))
		resourceID := dbtest.CreateTestResource(t, s.DB, "Conference Room A", 2000)
		token := authtest.LoginUser(t, s.Router, "member@example.com", "password123")

		// Booked out of order on purpose
		for _, times := range [][2]string{{"14:00", "15:00"}, {"09:00", "10:30"}} {
			reqBody := builder.NewBookingBuilder().
				WithResourceID(resourceID).
				WithDate("2030-06-15").
				WithTimes(times[0], times[1]).
				BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		url := availabilityURL + "?resource_id=" + resourceID.String() + "&date=2030-06-15"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var view response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
		require.Equal(t, "2030-06-15", view.Date)
		require.True(t, view.IsAvailable)
		require.Len(t, view.BookedSlots, 2)
		require.Equal(t, response.BookedSlotResponse{StartTime: "09:00", EndTime: "10:30"}, view.BookedSlots[0])
		require.Equal(t, response.BookedSlotResponse{StartTime: "14:00", EndTime: "15:00"}, view.BookedSlots[1])
	})

	s.Run("Normal case: cancelled bookings do not appear", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "member@example.com", string(user.RoleMember))
		resourceID := dbtest.CreateTestResource(t, s.DB, "Conference Room A", 2000)
		token := authtest.LoginUser(t, s.Router, "member@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithResourceID(resourceID).
			WithDate("2030-06-15").
			WithTimes("09:00", "10:00").
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		cancelURL := bookingsURL + "/" + created.ID.String() + "/cancel"
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		require.Equal(t, http.StatusOK, cw.Code)

		url := availabilityURL + "?resource_id=" + resourceID.String() + "&date=2030-06-15"
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusOK, aw.Code)

		var view response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &view))
		require.Empty(t, view.BookedSlots)
	})

	s.Run("Error case: unknown resource", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "member@example.com", string(user.RoleMember))
		token := authtest.LoginUser(t, s.Router, "member@example.com", "password123")

		url := availabilityURL + "?resource_id=2f9a1ab0-0000-0000-0000-000000000000&date=2030-06-15"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
