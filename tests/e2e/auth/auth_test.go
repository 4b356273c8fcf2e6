//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotelbook/internal/domain/user"
	"hotelbook/internal/handler/dto/request"
	"hotelbook/internal/handler/dto/response"
	"hotelbook/tests/common/authtest"
	"hotelbook/tests/common/dbtest"
	"hotelbook/tests/common/httptest"
	"hotelbook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
	staffURL   = "/api/staff"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@grandazure.example", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "clerk@grandazure.example", string(user.RoleClerk))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@grandazure.example", string(user.RoleClerk))

	_, err := s.DB.Exec(s.T().Context(),
		"UPDATE users SET is_active = false WHERE email = 'inactive@grandazure.example'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials log in",
			email:          "admin@grandazure.example",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user is rejected",
			email:          "nobody@grandazure.example",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password is rejected",
			email:          "admin@grandazure.example",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive account is rejected",
			email:          "inactive@grandazure.example",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email is rejected",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password is rejected",
			email:          "admin@grandazure.example",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken)
				require.NotNil(t, loginRes.User)
				require.Equal(t, tt.email, loginRes.User.Email)

				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login was not updated")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("valid refresh cookie issues new tokens", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "clerk@grandazure.example", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		cookies := httptest.ExtractCookies(w)
		rw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		refreshed := httptest.ExtractCookie(rw, "access_token")
		require.NotNil(t, refreshed)
		require.NotEmpty(t, refreshed.Value)
	})

	s.Run("request without a refresh token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("deactivated account cannot refresh", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "clerk@grandazure.example", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		_, err := s.DB.Exec(t.Context(),
			"UPDATE users SET is_active = false WHERE email = 'clerk@grandazure.example'")
		require.NoError(t, err)

		cookies := httptest.ExtractCookies(w)
		rw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusForbidden, rw.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("authenticated staff can read their own account", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "admin@grandazure.example", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me response.CurrentUserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "admin@grandazure.example", me.User.Email)
		require.Equal(t, string(user.RoleAdmin), me.User.Role)
	})

	s.Run("request without a token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestStaffRegistration() {
	newStaff := request.RegisterStaffRequest{
		Email:       "nightshift@grandazure.example",
		Password:    "password123",
		DisplayName: "Night Shift",
		Role:        string(user.RoleClerk),
	}

	s.Run("admin can register staff who can then log in", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "admin@grandazure.example", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, staffURL, newStaff, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.StaffResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, newStaff.Email, created.User.Email)

		authtest.LoginUser(t, s.Router, newStaff.Email, newStaff.Password)
	})

	s.Run("duplicate email is rejected", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "admin@grandazure.example", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, staffURL, newStaff, token)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, staffURL, newStaff, token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("clerk is denied staff registration", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "clerk@grandazure.example", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, staffURL, newStaff, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("logout clears the session cookies", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@grandazure.example", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		lw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, httptest.ExtractCookies(w), "")
		require.Equal(t, http.StatusNoContent, lw.Code, lw.Body.String())

		access := httptest.ExtractCookie(lw, "access_token")
		require.NotNil(t, access)
		require.Empty(t, access.Value)
		require.Negative(t, access.MaxAge)
	})
}
