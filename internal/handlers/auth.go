package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/depositodopitty/pit/auth"
	"github.com/depositodopitty/pit/httpx"
	"github.com/depositodopitty/pit/internal/logger"
	"github.com/depositodopitty/pit/internal/middleware"
	"github.com/depositodopitty/pit/validation"
	"github.com/depositodopitty/pit/view"
)

// AuthHandler serves the login, register and logout endpoints.
type AuthHandler struct {
	auth auth.Authenticator
}

func NewAuthHandler(a auth.Authenticator) *AuthHandler {
	return &AuthHandler{auth: a}
}

func (h *AuthHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	if flash := middleware.PopFlash(w, r); flash != nil {
		data["Flash"] = flash
	}
	if err := view.RenderStatus(w, r, status, name, data); err != nil {
		logger.FromContext(r.Context()).Error().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// LoginForm shows the sign in page; signed in users go to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.IdentityFrom(r.Context()); ok {
		httpx.SeeOther(w, r, "/dashboard")
		return
	}
	h.render(w, r, http.StatusOK, "login.html", map[string]any{"Title": "login_title"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	v := validation.Violations{}
	validation.Required("email", email, v)
	validation.Required("password", password, v)
	if !v.Empty() {
		h.loginFailed(w, r, http.StatusBadRequest, email, v, "")
		return
	}

	id, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.loginFailed(w, r, http.StatusUnauthorized, email, nil, "login_failed")
			return
		}
		logger.FromContext(r.Context()).Error().Err(err).Msg("login failed")
		h.loginFailed(w, r, http.StatusBadGateway, email, nil, "login_unavailable")
		return
	}
	if err := auth.CreateSession(w, id); err != nil {
		logger.FromContext(r.Context()).Error().Err(err).Msg("create session")
		h.loginFailed(w, r, http.StatusInternalServerError, email, nil, "login_unavailable")
		return
	}
	logger.FromContext(r.Context()).Info().Str("email", id.Email).Msg("user signed in")

	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]string{"name": id.Name, "email": id.Email})
		return
	}
	middleware.Flash(w, r, "login_success")
	httpx.SeeOther(w, r, "/dashboard")
}

func (h *AuthHandler) loginFailed(w http.ResponseWriter, r *http.Request, status int, email string, v validation.Violations, code string) {
	if httpx.WantsJSON(r) {
		if code == "" {
			code = "validation_failed"
		}
		httpx.JSONError(w, status, code, v)
		return
	}
	h.render(w, r, status, "login.html", map[string]any{
		"Title":     "login_title",
		"Email":     email,
		"Errors":    v,
		"FormError": code,
	})
}

func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register.html", map[string]any{
		"Title": "register_title",
		"Form":  auth.Registration{},
	})
}

// Register creates an account and sends the user to the login page. The
// public form never chooses a role.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	reg := auth.Registration{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.ToLower(strings.TrimSpace(r.FormValue("email"))),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
		Password: r.FormValue("password"),
	}
	v := validation.Violations{}
	validation.Required("name", reg.Name, v)
	validation.MinLength("name", reg.Name, 2, v)
	validation.Required("email", reg.Email, v)
	validation.Email("email", reg.Email, v)
	validation.Required("password", reg.Password, v)
	validation.MinLength("password", reg.Password, 6, v)
	validation.Match("confirmPassword", reg.Password, r.FormValue("confirmPassword"), v)
	if !v.Empty() {
		h.registerFailed(w, r, http.StatusBadRequest, reg, v, "")
		return
	}

	if err := h.auth.Register(r.Context(), reg); err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			h.registerFailed(w, r, http.StatusConflict, reg, validation.Violations{"email": "email_taken"}, "")
			return
		}
		logger.FromContext(r.Context()).Error().Err(err).Msg("register failed")
		h.registerFailed(w, r, http.StatusBadGateway, reg, nil, "register_failed")
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, map[string]string{"name": reg.Name, "email": reg.Email})
		return
	}
	middleware.Flash(w, r, "register_success")
	httpx.SeeOther(w, r, "/login")
}

func (h *AuthHandler) registerFailed(w http.ResponseWriter, r *http.Request, status int, reg auth.Registration, v validation.Violations, code string) {
	if httpx.WantsJSON(r) {
		if code == "" {
			code = "validation_failed"
		}
		httpx.JSONError(w, status, code, v)
		return
	}
	reg.Password = ""
	h.render(w, r, status, "register.html", map[string]any{
		"Title":     "register_title",
		"Form":      reg,
		"Errors":    v,
		"FormError": code,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSession(w)
	middleware.Flash(w, r, "logout_success")
	httpx.SeeOther(w, r, "/login")
}
