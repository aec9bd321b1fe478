// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raphalinho91

package http

import (
	"net/http"

	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/utils"
	"github.com/Raphalinho91/user-accounts/models"
)

// signUp handles POST /users/signup and answers 201 with the public view of
// the new account.
func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AccountService.SignUp(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

// logIn handles POST /users/login. The issued token is returned in the body
// and set as an HTTP-only cookie living as long as the token itself.
func (h *Handler) logIn(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, err := h.services.AccountService.LogIn(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token.String(),
		Path:     "/",
		MaxAge:   int(h.tokenDuration.Seconds()),
		HttpOnly: true,
	})

	logger.FromRequest(r).Debug().Int64("user_id", user.UserID).Msg("user logged in")
	utils.WriteJSON(w, models.LoginResponse{PublicUser: user, Token: token.String()}, http.StatusOK)
}

// listUsers handles GET /users.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AccountService.FindAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// getUser handles GET /users/{id}.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AccountService.FindOne(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// updateUser handles PUT /users/{id}. A token found by [Handler.withToken]
// takes precedence over the one in the body.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateRequest
	if err = h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		token = req.Token
	}

	user, err := h.services.AccountService.Update(r.Context(), models.UpdateUser{
		UserID:   userID,
		Username: req.Username,
		Password: req.Password,
		Token:    token,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// deleteUser handles DELETE /users/{id} and answers 204.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, _ := utils.GetTokenFromContext(r.Context())
	if err = h.services.AccountService.Remove(r.Context(), models.RemoveUser{UserID: userID, Token: token}); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
