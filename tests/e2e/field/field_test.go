//go:build e2e

package field_test

import (
	"net/http"
	"testing"
	"time"

	"field-reservation/internal/domain/user"
	"field-reservation/internal/handler/dto/request"
	"field-reservation/internal/handler/dto/response"
	"field-reservation/internal/pkg/errs"
	"field-reservation/tests/common/authtest"
	"field-reservation/tests/common/dbtest"
	"field-reservation/tests/common/httptest"
	"field-reservation/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const fieldsURL = "/api/fields"

type FieldAdminSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *FieldAdminSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestFieldAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(FieldAdminSuite))
}

func (s *FieldAdminSuite) adminToken(t *testing.T) string {
	return s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)
}

func (s *FieldAdminSuite) TestFieldLifecycle() {
	t := s.T()
	token := s.adminToken(t)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fieldsURL,
		request.CreateFieldRequest{Name: "Court N", Location: "East", HourlyPrice: "42.50"}, token)
	var created response.FieldResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.Equal(t, "active", created.Status)
	fieldURL := fieldsURL + "/" + created.ID.String()

	newPrice := "60.00"
	w = httptest.PerformRequest(t, s.Router, http.MethodPut, fieldURL,
		request.UpdateFieldRequest{HourlyPrice: &newPrice}, token)
	var updated response.FieldResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
	require.Equal(t, "60.00", updated.HourlyPrice)
	require.Equal(t, "Court N", updated.Name)
	require.Equal(t, "East", updated.Location)

	w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fieldURL, nil, token)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
	require.Equal(t, "inactive", updated.Status)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, fieldURL, nil, "")
	var fetched response.FieldResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
	require.Equal(t, "inactive", fetched.Status)
	require.Equal(t, "60.00", fetched.HourlyPrice)
}

func (s *FieldAdminSuite) TestBookedPriceSurvivesRepricing() {
	t := s.T()
	fieldID := dbtest.CreateTestField(t, s.DB, "Court P", 5000)
	date := time.Now().UTC().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	resID := dbtest.CreateTestReservation(t, s.DB, fieldID, uuid.New(), date, "09:00", 60, "pending")
	booked := dbtest.ReservationPriceCents(t, s.DB, resID)

	price := "80.00"
	w := httptest.PerformRequest(t, s.Router, http.MethodPut, fieldsURL+"/"+fieldID.String(),
		request.UpdateFieldRequest{HourlyPrice: &price}, s.adminToken(t))
	require.Equal(t, http.StatusOK, w.Code)

	require.Equal(t, "pending", dbtest.ReservationStatus(t, s.DB, resID))
	require.Equal(t, booked, dbtest.ReservationPriceCents(t, s.DB, resID))
}

func (s *FieldAdminSuite) TestAccessControl() {
	t := s.T()
	fieldID := dbtest.CreateTestField(t, s.DB, "Court Q", 5000)
	name := "Renamed"
	body := request.UpdateFieldRequest{Name: &name}

	userToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleUser)
	w := httptest.PerformRequest(t, s.Router, http.MethodPut, fieldsURL+"/"+fieldID.String(), body, userToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fieldsURL+"/"+fieldID.String(), nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodPut, fieldsURL+"/"+uuid.NewString(), body, s.adminToken(t))
	httptest.AssertErrorKind(t, w, http.StatusNotFound, errs.KindNotFound.String())
}
