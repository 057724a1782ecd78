//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/user"
	"staybook/internal/handler/api"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
	"staybook/tests/common/builder"
	"staybook/tests/common/httptest"
	"staybook/tests/common/testutil"
	commandsmock "staybook/tests/mock/commands"
	queriesmock "staybook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockCheckout *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockBookingQueries
	principal    user.Principal
	bb           *builder.BookingBuilder
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCommands, s.mockCheckout, s.mockQueries)

	s.bb = builder.NewBookingBuilder()
	s.principal = builder.NewUserBuilder().With(func(u *builder.UserBuilder) { u.ID = s.bb.GuestID }).MustBuild()

	auth := fakeAuth(&s.principal)
	s.router.POST("/bookings", auth, h.Create)
	s.router.GET("/bookings", auth, h.ListMine)
	s.router.GET("/bookings/:id", auth, h.Get)
	s.router.POST("/bookings/:id/approve", auth, h.Approve)
	s.router.POST("/bookings/:id/decline", auth, h.Decline)
	s.router.POST("/bookings/:id/cancel", auth, h.Cancel)
	s.router.POST("/bookings/:id/checkout", auth, h.Checkout)
	s.router.GET("/owner/bookings", auth, h.ListOwned)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) view() *queries.BookingView {
	return &queries.BookingView{
		ID:                uuid.New(),
		PropertyID:        s.bb.PropertyID,
		PropertyTitle:     s.bb.PropertyTitle,
		GuestID:           s.bb.GuestID,
		OwnerID:           s.bb.OwnerID,
		CheckIn:           "2030-06-10",
		CheckOut:          "2030-06-14",
		Nights:            4,
		Guests:            2,
		TotalCents:        20000,
		Currency:          "usd",
		FulfillmentStatus: "pending",
		PaymentStatus:     "unpaid",
		CreatedAt:         s.bb.CreatedAt,
		UpdatedAt:         s.bb.CreatedAt,
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := s.bb.BuildCreateRequestDTO()
	bookingID := uuid.New()

	s.Run("success: 201 with Location and id", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), s.bb.GuestID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.CreateBookingInput) (*commands.CreateBookingResult, error) {
				s.Equal(s.bb.PropertyID, in.PropertyID)
				s.True(in.CheckIn.Equal(s.bb.CheckIn))
				s.True(in.CheckOut.Equal(s.bb.CheckOut))
				s.Equal(2, in.Guests)
				return &commands.CreateBookingResult{BookingID: bookingID}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testToken)

		var body resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(bookingID, body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + bookingID.String()})
	})

	invalid := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"missing propertyId", testutil.Field("propertyId", nil)},
		{"missing checkIn", testutil.Field("checkIn", nil)},
		{"missing checkOut", testutil.Field("checkOut", nil)},
		{"malformed checkIn", testutil.Field("checkIn", "10/06/2030")},
		{"impossible date", testutil.Field("checkOut", "2030-02-30")},
		{"zero guests", testutil.Field("guests", 0)},
		{"negative guests", testutil.Field("guests", -1)},
	}
	for _, tc := range invalid {
		s.Run("error: 400 on "+tc.name, func() {
			requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, testToken)
			httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
		})
	}

	usecaseErrors := []struct {
		name   string
		err    error
		status int
		kind   errs.Kind
	}{
		{"unknown property", commands.ErrPropertyNotFound, http.StatusNotFound, errs.KindNotFound},
		{"dates taken", commands.ErrRangeUnavailable, http.StatusConflict, errs.KindRangeUnavailable},
		{"own property", errs.Mark(booking.ErrSelfBooking, errs.ErrForbidden), http.StatusForbidden, errs.KindForbidden},
		{"too many guests", errs.Mark(booking.ErrInvalidGuestCount, errs.ErrValidation), http.StatusBadRequest, errs.KindValidation},
		{"store failure", errs.New("connection reset"), http.StatusInternalServerError, errs.KindInternal},
	}
	for _, tc := range usecaseErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testToken)
			httptest.AssertErrorKind(s.T(), rec, tc.status, string(tc.kind))
		})
	}

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		v := s.view()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.bb.GuestID, v.ID).Return(v, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+v.ID.String(), nil, testToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(v.ID, body.ID)
		s.Equal("Seaside Cottage", body.PropertyTitle)
		s.Equal(int64(20000), body.TotalCents)
		s.Equal("pending", body.FulfillmentStatus)
		s.Equal("unpaid", body.PaymentStatus)
	})

	s.Run("error: 403 for a stranger", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrBookingAccess)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+uuid.NewString(), nil, testToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, string(errs.KindForbidden))
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrBookingNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+uuid.NewString(), nil, testToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, string(errs.KindNotFound))
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, testToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("guest list passes the limit through", func() {
		s.mockQueries.EXPECT().ListByGuest(gomock.Any(), s.bb.GuestID, 20).Return([]*queries.BookingView{s.view(), s.view()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=20", nil, testToken)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("missing limit is left to the query default", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.bb.GuestID, 0).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/bookings", nil, testToken)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	for _, limit := range []string{"0", "201", "abc"} {
		s.Run("error: 400 for limit="+limit, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit="+limit, nil, testToken)
			httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
		})
	}
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *BookingHandlerTestSuite) TestTransitions() {
	id := uuid.New()

	s.Run("approve, decline and cancel return 204", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), s.bb.GuestID, id).Return(nil)
		s.mockCommands.EXPECT().Decline(gomock.Any(), s.bb.GuestID, id).Return(nil)
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.bb.GuestID, id).Return(nil)

		for _, action := range []string{"approve", "decline", "cancel"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/"+action, nil, testToken)
			s.Equal(http.StatusNoContent, rec.Code, action)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		kind   errs.Kind
	}{
		{"not the owner", commands.ErrNotBookingOwner, http.StatusForbidden, errs.KindForbidden},
		{"already cancelled", errs.Mark(booking.ErrInvalidTransition, errs.ErrInvalidState), http.StatusConflict, errs.KindInvalidState},
		{"unknown booking", commands.ErrBookingNotFound, http.StatusNotFound, errs.KindNotFound},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Approve(gomock.Any(), gomock.Any(), id).Return(tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/approve", nil, testToken)
			httptest.AssertErrorKind(s.T(), rec, tc.status, string(tc.kind))
		})
	}
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckout() {
	id := uuid.New()

	s.Run("success: 201 with session and split", func() {
		quote, err := booking.NewQuote(4000, 4, 4000, "usd", 1000)
		s.Require().NoError(err)
		s.mockCheckout.EXPECT().OpenSession(gomock.Any(), id, s.bb.GuestID).Return(&commands.CheckoutSession{
			BookingID:   id,
			SessionRef:  "cs_test_1",
			RedirectURL: "https://checkout.example/cs_test_1",
			Quote:       quote,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/checkout", nil, testToken)

		var body resdto.CheckoutSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("cs_test_1", body.SessionRef)
		s.Equal("https://checkout.example/cs_test_1", body.RedirectURL)
		s.Equal(int64(20000), body.TotalCents)
		s.Equal(int64(2000), body.PlatformFeeCents)
		s.Equal(int64(18000), body.OwnerPayoutCents)
	})

	cases := []struct {
		name   string
		err    error
		status int
		kind   errs.Kind
	}{
		{"owner not onboarded", commands.ErrPayoutNotReady, http.StatusUnprocessableEntity, errs.KindPayoutNotReady},
		{"dates lost", commands.ErrRangeConflict, http.StatusConflict, errs.KindRangeConflict},
		{"not pending", commands.ErrBookingNotPending, http.StatusConflict, errs.KindInvalidState},
		{"processor down", errs.WithCause(commands.ErrGatewayFailed, errs.New("timeout")), http.StatusBadGateway, errs.KindUpstream},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.mockCheckout.EXPECT().OpenSession(gomock.Any(), id, gomock.Any()).Return(nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/checkout", nil, testToken)
			httptest.AssertErrorKind(s.T(), rec, tc.status, string(tc.kind))
		})
	}
}
