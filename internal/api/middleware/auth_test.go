package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/registrydesk/object-service/internal/core/domain"
)

type stubVerifier struct {
	identity *domain.Identity
	err      error
}

func (s *stubVerifier) Verify(token string) (*domain.Identity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.identity, nil
}

func runAuth(t *testing.T, verifier *stubVerifier, header string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/objects", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(verifier)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, c, handler(c)
}

func TestAuthMissingHeader(t *testing.T) {
	_, _, err := runAuth(t, &stubVerifier{}, "")

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthWrongScheme(t *testing.T) {
	_, _, err := runAuth(t, &stubVerifier{}, "Basic dXNlcjpwYXNz")

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthVerifyFailure(t *testing.T) {
	for _, verifyErr := range []error{
		domain.ErrTokenMalformed,
		domain.ErrTokenSignatureInvalid,
		domain.ErrTokenExpired,
	} {
		_, _, err := runAuth(t, &stubVerifier{err: verifyErr}, "Bearer whatever")

		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusUnauthorized {
			t.Errorf("%v: expected 401, got %v", verifyErr, err)
		}
	}
}

func TestAuthSuccessInjectsIdentity(t *testing.T) {
	verifier := &stubVerifier{identity: &domain.Identity{Subject: "u-1", Role: domain.RoleAdmin}}

	rec, c, err := runAuth(t, verifier, "Bearer good-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got, _ := c.Get(ContextKeySubject).(string); got != "u-1" {
		t.Errorf("subject = %q, want u-1", got)
	}
	if got, _ := c.Get(ContextKeyRole).(domain.Role); got != domain.RoleAdmin {
		t.Errorf("role = %q, want admin", got)
	}
}

func TestAuthSchemeCaseInsensitive(t *testing.T) {
	verifier := &stubVerifier{identity: &domain.Identity{Subject: "u-1", Role: domain.RoleUser}}

	rec, _, err := runAuth(t, verifier, "bearer good-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
