//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"staybook/internal/domain/user"
	"staybook/internal/handler/api"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
	"staybook/tests/common/builder"
	"staybook/tests/common/httptest"
	commandsmock "staybook/tests/mock/commands"
	queriesmock "staybook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAvailabilityCommands
	mockQueries  *queriesmock.MockAvailabilityQueries
	principal    user.Principal
	propertyID   uuid.UUID
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAvailabilityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	h := api.NewAvailabilityHandler(s.mockCommands, s.mockQueries)

	s.principal = builder.NewOwnerBuilder().MustBuild()
	s.propertyID = uuid.New()

	auth := fakeAuth(&s.principal)
	s.router.GET("/properties/:id/availability", auth, h.Calendar)
	s.router.GET("/properties/:id/availability/check", auth, h.Check)
	s.router.PUT("/properties/:id/availability", auth, h.SetRange)
	s.router.PUT("/properties/:id/availability/:date", auth, h.SetDay)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) path(suffix string) string {
	return "/properties/" + s.propertyID.String() + "/availability" + suffix
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *AvailabilityHandlerTestSuite) TestCalendar() {
	s.Run("success: one entry per day", func() {
		s.mockQueries.EXPECT().
			Calendar(gomock.Any(), s.propertyID, day(2030, 6, 10), day(2030, 6, 13)).
			Return([]queries.DayView{
				{Date: "2030-06-10", State: "open"},
				{Date: "2030-06-11", State: "booked"},
				{Date: "2030-06-12", State: "blocked"},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("?start=2030-06-10&end=2030-06-13"), nil, testToken)

		var body resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.propertyID, body.PropertyID)
		s.Require().Len(body.Days, 3)
		s.Equal("booked", body.Days[1].State)
		s.Equal("blocked", body.Days[2].State)
	})

	bad := []struct {
		name  string
		query string
	}{
		{"missing end", "?start=2030-06-10"},
		{"missing start", "?end=2030-06-10"},
		{"malformed date", "?start=10-06-2030&end=2030-06-13"},
	}
	for _, tc := range bad {
		s.Run("error: 400 on "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path(tc.query), nil, testToken)
			httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
		})
	}

	s.Run("error: 404 for unknown property", func() {
		s.mockQueries.EXPECT().Calendar(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrPropertyNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("?start=2030-06-10&end=2030-06-13"), nil, testToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, string(errs.KindNotFound))
	})

	s.Run("error: 400 for malformed property id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/xyz/availability?start=2030-06-10&end=2030-06-13", nil, testToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})
}

func (s *AvailabilityHandlerTestSuite) TestCheck() {
	for _, free := range []bool{true, false} {
		s.Run("reports the query answer", func() {
			s.mockQueries.EXPECT().
				IsRangeFree(gomock.Any(), s.propertyID, day(2030, 6, 10), day(2030, 6, 14)).
				Return(free, nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/check?start=2030-06-10&end=2030-06-14"), nil, testToken)

			var body resdto.AvailabilityCheckResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal(free, body.Free)
			s.Equal("2030-06-10", body.Start)
			s.Equal("2030-06-14", body.End)
		})
	}
}

func (s *AvailabilityHandlerTestSuite) TestSetRange() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().
			SetRange(gomock.Any(), s.principal.ID(), s.propertyID, day(2030, 7, 1), day(2030, 7, 8), false).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.path(""),
			map[string]any{"start": "2030-07-01", "end": "2030-07-08", "isOpen": false}, testToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 when isOpen is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.path(""),
			map[string]any{"start": "2030-07-01", "end": "2030-07-08"}, testToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})

	s.Run("error: 403 for another owner's property", func() {
		s.mockCommands.EXPECT().SetRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), true).
			Return(commands.ErrNotPropertyOwner)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.path(""),
			map[string]any{"start": "2030-07-01", "end": "2030-07-08", "isOpen": true}, testToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, string(errs.KindForbidden))
	})
}

func (s *AvailabilityHandlerTestSuite) TestSetDay() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().
			SetDay(gomock.Any(), s.principal.ID(), s.propertyID, day(2030, 7, 4), true).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.path("/2030-07-04"),
			map[string]any{"isOpen": true}, testToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 for malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.path("/July-4"),
			map[string]any{"isOpen": true}, testToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})
}
