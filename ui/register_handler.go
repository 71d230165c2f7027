package ui

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/chat-client/v2/internal/auth"
)

// RegisterHandler submits registration fields and stores the returned token.
// Unlike login it never redirects and does not look at the status code.
type RegisterHandler struct {
	service auth.Service
	storage Storage
	page    Page

	inFlight atomic.Bool
}

func NewRegisterHandler(service auth.Service, storage Storage, page Page) *RegisterHandler {
	return &RegisterHandler{service: service, storage: storage, page: page}
}

func (h *RegisterHandler) Handle(ctx context.Context, ev SubmitEvent, form Form) {
	ev.PreventDefault()

	if !h.inFlight.CompareAndSwap(false, true) {
		slog.Debug("registration already in flight, ignoring submission")
		return
	}
	form.SetSubmitting(true)
	defer func() {
		form.SetSubmitting(false)
		h.inFlight.Store(false)
	}()

	data := auth.RegistrationData{
		FirstName: form.Value(auth.FieldFirstName),
		LastName:  form.Value(auth.FieldLastName),
		Email:     form.Value(auth.FieldEmail),
		Password:  form.Value(auth.FieldPassword),
	}

	resp, err := h.service.Register(ctx, data)
	if err != nil {
		slog.Error("registration request failed", "error", err)
		h.page.SetText(auth.RegisterMessageID, auth.MsgRegisterFailed)
		return
	}

	if resp.Key == "" {
		slog.Info("registration failed", "email", data.Email, "status", resp.StatusCode)
		h.page.SetText(auth.RegisterMessageID, auth.MsgRegisterFailed)
		return
	}

	if err := h.storage.SetItem(auth.TokenKey, resp.Key); err != nil {
		slog.Error("failed to store token", "error", err)
		h.page.SetText(auth.RegisterMessageID, auth.MsgRegisterFailed)
		return
	}

	slog.Info("registration successful", "email", data.Email)
	h.page.SetText(auth.RegisterMessageID, auth.MsgRegisterSuccess)
}
