package ui

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/chat-client/v2/internal/auth"
)

// LoginHandler submits login credentials and stores the returned token.
type LoginHandler struct {
	service       auth.Service
	storage       Storage
	page          Page
	postLoginPath string

	inFlight atomic.Bool
}

func NewLoginHandler(service auth.Service, storage Storage, page Page, postLoginPath string) *LoginHandler {
	return &LoginHandler{
		service:       service,
		storage:       storage,
		page:          page,
		postLoginPath: postLoginPath,
	}
}

// Handle processes one submission of the login form. Submissions arriving
// while a previous one is still in flight are dropped.
func (h *LoginHandler) Handle(ctx context.Context, ev SubmitEvent, form Form) {
	ev.PreventDefault()

	if !h.inFlight.CompareAndSwap(false, true) {
		slog.Debug("login already in flight, ignoring submission")
		return
	}
	form.SetSubmitting(true)
	defer func() {
		form.SetSubmitting(false)
		h.inFlight.Store(false)
	}()

	creds := auth.Credentials{
		Username: form.Value(auth.FieldUsername),
		Password: form.Value(auth.FieldPassword),
	}

	resp, err := h.service.Login(ctx, creds)
	if err != nil {
		slog.Error("login request failed", "error", err)
		h.page.SetText(auth.LoginMessageID, auth.MsgError)
		return
	}

	if !resp.OK() {
		slog.Info("login rejected", "username", creds.Username, "status", resp.StatusCode)
		msg := resp.NonFieldErrors
		if msg == "" {
			msg = auth.MsgLoginFailed
		}
		h.page.SetText(auth.LoginMessageID, msg)
		return
	}

	if resp.Key == "" {
		slog.Warn("login succeeded without a token", "username", creds.Username, "status", resp.StatusCode)
		h.page.SetText(auth.LoginMessageID, auth.MsgLoginFailed)
		return
	}

	if err := h.storage.SetItem(auth.TokenKey, resp.Key); err != nil {
		slog.Error("failed to store token", "error", err)
		h.page.SetText(auth.LoginMessageID, auth.MsgError)
		return
	}

	slog.Info("login successful", "username", creds.Username)
	h.page.SetText(auth.LoginMessageID, auth.MsgLoginSuccess)
	h.page.Navigate(h.postLoginPath)
}
