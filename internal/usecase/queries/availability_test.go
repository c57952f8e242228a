//go:build unit

package queries_test

import (
	"context"
	"testing"

	"booking-system/internal/domain/booking"
	"booking-system/internal/pkg/errs"
	"booking-system/internal/usecase/queries"
	"booking-system/tests/common/builder"
	queriesmock "booking-system/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	ctx context.Context

	mockCtrl      *gomock.Controller
	mockResources *queriesmock.MockResourceQueries
	mockSlots     *queriesmock.MockActiveSlotReader
	queries       queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockResources = queriesmock.NewMockResourceQueries(s.mockCtrl)
	s.mockSlots = queriesmock.NewMockActiveSlotReader(s.mockCtrl)
	s.queries = queries.NewAvailabilityQueries(s.mockResources, s.mockSlots)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) TestGetDayAvailability() {
	const date = "2030-06-15"

	s.Run("success: busy slots come back sorted by start time", func() {
		res := builder.NewResourceBuilder()
		late := builder.NewBookingBuilder().WithResourceID(res.ID).WithTimes("14:00", "15:00").BuildSlotRecord()
		early := builder.NewBookingBuilder().WithResourceID(res.ID).WithTimes("09:00", "10:30").BuildSlotRecord()

		s.mockResources.EXPECT().GetByID(gomock.Any(), res.ID).
			Return(res.BuildView(), nil).Times(1)
		s.mockSlots.EXPECT().ActiveSlots(gomock.Any(), res.ID, gomock.Any()).
			Return([]booking.BookingSlot{late, early}, nil).Times(1)

		view, err := s.queries.GetDayAvailability(s.ctx, res.ID, date)
		s.Require().NoError(err)

		s.Equal(date, view.Date)
		s.True(view.IsAvailable)
		s.Equal(res.ID, view.Resource.ID)
		s.Require().Len(view.BusySlots, 2)
		s.Equal(queries.SlotView{StartTime: "09:00", EndTime: "10:30"}, view.BusySlots[0])
		s.Equal(queries.SlotView{StartTime: "14:00", EndTime: "15:00"}, view.BusySlots[1])
	})

	s.Run("success: no bookings yields empty busy list", func() {
		res := builder.NewResourceBuilder()

		s.mockResources.EXPECT().GetByID(gomock.Any(), res.ID).
			Return(res.BuildView(), nil).Times(1)
		s.mockSlots.EXPECT().ActiveSlots(gomock.Any(), res.ID, gomock.Any()).
			Return(nil, nil).Times(1)

		view, err := s.queries.GetDayAvailability(s.ctx, res.ID, date)
		s.Require().NoError(err)
		s.Empty(view.BusySlots)
	})

	s.Run("success: unavailable resource is reported as such", func() {
		res := builder.NewResourceBuilder().WithAvailability(false)

		s.mockResources.EXPECT().GetByID(gomock.Any(), res.ID).
			Return(res.BuildView(), nil).Times(1)
		s.mockSlots.EXPECT().ActiveSlots(gomock.Any(), res.ID, gomock.Any()).
			Return(nil, nil).Times(1)

		view, err := s.queries.GetDayAvailability(s.ctx, res.ID, date)
		s.Require().NoError(err)
		s.False(view.IsAvailable)
	})

	s.Run("error: malformed date", func() {
		res := builder.NewResourceBuilder()

		_, err := s.queries.GetDayAvailability(s.ctx, res.ID, "06/15/2030")
		s.ErrorIs(err, errs.ErrInvalidDate)
	})

	s.Run("error: resource lookup failure propagates", func() {
		res := builder.NewResourceBuilder()

		s.mockResources.EXPECT().GetByID(gomock.Any(), res.ID).
			Return(nil, errs.ErrResourceNotFound).Times(1)

		_, err := s.queries.GetDayAvailability(s.ctx, res.ID, date)
		s.ErrorIs(err, errs.ErrResourceNotFound)
	})

	s.Run("error: slot scan failure", func() {
		res := builder.NewResourceBuilder()

		s.mockResources.EXPECT().GetByID(gomock.Any(), res.ID).
			Return(res.BuildView(), nil).Times(1)
		s.mockSlots.EXPECT().ActiveSlots(gomock.Any(), res.ID, gomock.Any()).
			Return(nil, errs.New("connection reset")).Times(1)

		_, err := s.queries.GetDayAvailability(s.ctx, res.ID, date)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}
