package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mkazakov/go-blog/internal/logger"
	"github.com/mkazakov/go-blog/internal/service"
	"github.com/mkazakov/go-blog/internal/store"
	"github.com/mkazakov/go-blog/internal/utils"
)

// Canonical paths used as redirect targets. LoginPath is exported together
// with [Handler.RequireUser] so that other feature modules redirect to the
// same place.
const (
	RootPath  = "/"
	LoginPath = "/auth/login"
)

// Flash messages shown on validation and authentication failures. The exact
// wording is part of the application's observable contract.
const (
	msgUsernameRequired  = "Username is required."
	msgPasswordRequired  = "Password is required."
	msgIncorrectUsername = "Incorrect username."
	msgIncorrectPassword = "Incorrect password."
)

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, "Register with a username and password.", http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	_, err := h.services.AuthService.Register(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameRequired):
			utils.WriteText(w, msgUsernameRequired, http.StatusOK)
			return
		case errors.Is(err, service.ErrPasswordRequired):
			utils.WriteText(w, msgPasswordRequired, http.StatusOK)
			return
		case errors.Is(err, store.ErrUsernameTaken):
			utils.WriteText(w, fmt.Sprintf("User %s is already registered.", username), http.StatusOK)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, LoginPath, http.StatusFound)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, "Log in with your username and password.", http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	foundUser, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIncorrectUsername):
			utils.WriteText(w, msgIncorrectUsername, http.StatusOK)
			return
		case errors.Is(err, service.ErrIncorrectPassword):
			utils.WriteText(w, msgIncorrectPassword, http.StatusOK)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	// A fresh session replaces whatever identity the request carried before.
	if err := h.session.SaveUserID(w, r, foundUser.UserID); err != nil {
		log.Err(err).Msg("error saving session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	http.Redirect(w, r, RootPath, http.StatusFound)
}

// logout clears the session unconditionally. Logging out without a session
// is a no-op, not an error.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.session.Clear(w, r); err != nil {
		log.Err(err).Msg("error clearing session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, RootPath, http.StatusFound)
}

// index is the landing endpoint both login and logout redirect to. It
// reports the resolved identity, which makes the preload observable without
// a full page-rendering layer.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	if user, ok := currentUser(r); ok {
		utils.WriteText(w, fmt.Sprintf("Logged in as %s.", user.Username), http.StatusOK)
		return
	}

	utils.WriteText(w, "Welcome to go-blog.", http.StatusOK)
}
