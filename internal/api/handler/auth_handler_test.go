package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sportshop/shop-system/internal/api/middleware"
	"github.com/sportshop/shop-system/internal/core/domain"
	"github.com/sportshop/shop-system/internal/infrastructure/render"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
	user        *domain.User
	credential  string
}

func (s *stubAuthService) Register(_ context.Context, username, password string) (*domain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &domain.User{ID: "1", Username: username}, nil
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.credential, s.user, nil
}

type stubSessions struct {
	created *domain.Session
	saved   *domain.Session
}

func (s *stubSessions) Create(_ context.Context, session *domain.Session) error {
	s.created = session
	return nil
}

func (s *stubSessions) Get(_ context.Context, id string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func (s *stubSessions) Save(_ context.Context, session *domain.Session) error {
	s.saved = session
	return nil
}

func (s *stubSessions) Delete(_ context.Context, id string) error { return nil }

type stubRecorder struct {
	mu     sync.Mutex
	events []domain.LoginEvent
}

func (r *stubRecorder) Record(event domain.LoginEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *stubRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func formRequest(t *testing.T, method, path string, form url.Values) (*httptest.ResponseRecorder, echo.Context, *echo.Echo) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec), e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubSessions{}, &stubRecorder{}, domain.DefaultCatalog(), render.NewJSONRenderer())

	rec, c, e := formRequest(t, http.MethodPost, "/register", url.Values{
		"username": {"alice"},
		"password": {"secret123"},
	})
	if err := h.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
}

func TestAuthHandler_Register_MissingField(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubSessions{}, &stubRecorder{}, domain.DefaultCatalog(), render.NewJSONRenderer())

	rec, c, e := formRequest(t, http.MethodPost, "/register", url.Values{
		"username": {"alice"},
	})
	if err := h.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/register" {
		t.Fatalf("expected redirect back to /register, got %q", loc)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists}, &stubSessions{}, &stubRecorder{}, domain.DefaultCatalog(), render.NewJSONRenderer())

	rec, c, e := formRequest(t, http.MethodPost, "/register", url.Values{
		"username": {"alice"},
		"password": {"secret123"},
	})
	if err := h.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/register" {
		t.Fatalf("expected redirect back to /register, got %q", loc)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	sessions := &stubSessions{}
	recorder := &stubRecorder{}
	svc := &stubAuthService{
		user:       &domain.User{ID: "1", Username: "alice"},
		credential: "signed-token",
	}
	h := NewAuthHandler(svc, sessions, recorder, domain.DefaultCatalog(), render.NewJSONRenderer())

	rec, c, e := formRequest(t, http.MethodPost, "/api/utilisateurs", url.Values{
		"username": {"alice"},
		"password": {"secret123"},
	})
	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if sessions.created == nil {
		t.Fatalf("login must create a session")
	}
	if sessions.created.Credential != "signed-token" {
		t.Fatalf("session must hold the issued credential")
	}
	if len(sessions.created.Cart) != 0 {
		t.Fatalf("fresh session must start with an empty cart")
	}
	if recorder.count() != 1 {
		t.Fatalf("expected one login event, got %d", recorder.count())
	}

	var sessionCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil || sessionCookie.Value != sessions.created.ID {
		t.Fatalf("session cookie not set to the session id")
	}
	if !strings.Contains(rec.Body.String(), "article") {
		t.Fatalf("login must answer with the catalog view, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	recorder := &stubRecorder{}
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials}, &stubSessions{}, recorder, domain.DefaultCatalog(), render.NewJSONRenderer())

	rec, c, e := formRequest(t, http.MethodPost, "/api/utilisateurs", url.Values{
		"username": {"alice"},
		"password": {"wrongpass"},
	})
	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
	if recorder.count() != 0 {
		t.Fatalf("failed login must not be recorded")
	}
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrUserNotFound}, &stubSessions{}, &stubRecorder{}, domain.DefaultCatalog(), render.NewJSONRenderer())

	rec, c, e := formRequest(t, http.MethodPost, "/api/utilisateurs", url.Values{
		"username": {"ghost"},
		"password": {"pass"},
	})
	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}

func TestAuthHandler_Index_PopsFlash(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubSessions{}, &stubRecorder{}, domain.DefaultCatalog(), render.NewJSONRenderer())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "shop_flash", Value: url.QueryEscape("Compte créé")})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Index(c); err != nil {
		t.Fatalf("index: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Compte créé") {
		t.Fatalf("flash message not rendered: %s", rec.Body.String())
	}
}
