package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/chat-client/v2/internal/auth"
)

// RegisterWindow is the desktop registration form.
type RegisterWindow struct {
	Win fyne.Window

	entries        map[string]*widget.Entry
	statusLabel    *widget.Label
	registerButton *widget.Button

	handler *RegisterHandler
	windowRunner
}

func NewRegisterWindow(a fyne.App, service auth.Service, storage Storage) *RegisterWindow {
	w := &RegisterWindow{
		Win:          a.NewWindow("Register"),
		windowRunner: defaultRunner(),
	}
	w.handler = NewRegisterHandler(service, storage, w)

	fields := []struct {
		id, placeholder string
	}{
		{auth.FieldFirstName, "First name"},
		{auth.FieldLastName, "Last name"},
		{auth.FieldEmail, "Email"},
	}

	box := container.NewVBox(widget.NewLabel("Create an account"))
	w.entries = make(map[string]*widget.Entry, len(fields)+1)
	for _, f := range fields {
		entry := widget.NewEntry()
		entry.SetPlaceHolder(f.placeholder)
		w.entries[f.id] = entry
		box.Add(entry)
	}
	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder("Password")
	passwordEntry.OnSubmitted = func(string) { w.submit() }
	w.entries[auth.FieldPassword] = passwordEntry
	box.Add(passwordEntry)

	w.statusLabel = widget.NewLabel("")
	w.registerButton = widget.NewButton("Register", w.submit)
	box.Add(w.registerButton)
	box.Add(w.statusLabel)

	w.Win.SetContent(box)
	w.Win.Resize(fyne.NewSize(320, 300))
	w.Win.SetFixedSize(true)
	w.Win.CenterOnScreen()
	return w
}

func (w *RegisterWindow) submit() {
	data := auth.RegistrationData{
		FirstName: w.entries[auth.FieldFirstName].Text,
		LastName:  w.entries[auth.FieldLastName].Text,
		Email:     w.entries[auth.FieldEmail].Text,
		Password:  w.entries[auth.FieldPassword].Text,
	}
	if err := auth.Validate(data); err != nil {
		slog.Debug("registration form incomplete", "error", err)
		w.statusLabel.SetText("All fields are required and the email must be valid.")
		return
	}

	form := snapshotForm(w.entries, w.registerButton, w.onMain)
	w.runAsync(func() {
		w.handler.Handle(context.Background(), NoDefault, form)
	})
}

func (w *RegisterWindow) SetText(id, text string) {
	if id != auth.RegisterMessageID {
		return
	}
	w.onMain(func() { w.statusLabel.SetText(text) })
}

// Navigate is never called by registration.
func (w *RegisterWindow) Navigate(string) {}
