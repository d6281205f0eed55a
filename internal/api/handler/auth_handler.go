package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sportshop/shop-system/internal/api/metrics"
	"github.com/sportshop/shop-system/internal/api/middleware"
	"github.com/sportshop/shop-system/internal/core/domain"
	"github.com/sportshop/shop-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionStore
	recorder    ports.LoginRecorder
	catalog     domain.Catalog
	render      ports.Renderer
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionStore, recorder ports.LoginRecorder, catalog domain.Catalog, render ports.Renderer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		recorder:    recorder,
		catalog:     catalog,
		render:      render,
	}
}

// Index renders the landing/login view.
//
// @Summary      Landing page
// @Tags         pages
// @Produce      json
// @Success      200  {object}  indexView
// @Router       / [get]
func (h *AuthHandler) Index(c echo.Context) error {
	return h.render.Render(c, http.StatusOK, "index", indexView{Flash: popFlash(c)})
}

// RegisterForm renders the registration form view.
//
// @Summary      Registration form
// @Tags         auth
// @Produce      json
// @Success      200  {object}  indexView
// @Router       /register [get]
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return h.render.Render(c, http.StatusOK, "register", indexView{Flash: popFlash(c)})
}

// Register creates a new account from the registration form. It never logs
// the new account in: the caller is sent back to the entry point.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Desired username"
// @Param        password  formData  string  true  "Password"
// @Success      303
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		setFlash(c, "Erreur remplissage")
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Username, req.Password); err != nil {
		switch err {
		case domain.ErrUserExists:
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			setFlash(c, "Nom d'utilisateur déjà pris")
			return c.Redirect(http.StatusSeeOther, "/register")
		case domain.ErrInvalidCredentials:
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
			setFlash(c, "Erreur remplissage")
			return c.Redirect(http.StatusSeeOther, "/register")
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	setFlash(c, "Compte créé — tu peux te connecter.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Login authenticates the form credentials, initializes the session with an
// empty cart, records the login event and admits the caller to the catalog
// view.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  articleView
// @Router       /api/utilisateurs [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		setFlash(c, "Nom et mot de passe requis")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	credential, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		// The failure messages stay distinct, matching the historical
		// behavior; see DESIGN.md on username enumeration.
		switch err {
		case domain.ErrUserNotFound:
			metrics.LoginsTotal.WithLabelValues("user_not_found").Inc()
			setFlash(c, "User not found. Crée un compte.")
			return c.Redirect(http.StatusSeeOther, "/")
		case domain.ErrInvalidCredentials:
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			setFlash(c, "Mot de passe incorrect")
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return err
	}

	session := &domain.Session{
		ID:         uuid.NewString(),
		Username:   user.Username,
		Credential: credential,
		Cart:       domain.Cart{},
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.sessions.Create(c.Request().Context(), session); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
	})

	h.recorder.Record(domain.LoginEvent{User: user.Username, Timestamp: time.Now().UTC()})
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return h.render.Render(c, http.StatusOK, "article", articleView{
		Name:     user.Username,
		Articles: h.catalog,
	})
}
