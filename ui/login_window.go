package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/chat-client/v2/internal/auth"
)

// LoginWindow is the desktop login form. A successful login closes it and
// hands the post-login path to onNavigate.
type LoginWindow struct {
	Win fyne.Window

	entries     map[string]*widget.Entry
	statusLabel *widget.Label
	loginButton *widget.Button

	handler    *LoginHandler
	onNavigate func(path string)
	windowRunner
}

// NewLoginWindow creates the login window. onRegister may be nil.
func NewLoginWindow(a fyne.App, service auth.Service, storage Storage, postLoginPath string, onNavigate func(path string), onRegister func()) *LoginWindow {
	w := &LoginWindow{
		Win:          a.NewWindow("Login"),
		onNavigate:   onNavigate,
		windowRunner: defaultRunner(),
	}
	w.handler = NewLoginHandler(service, storage, w, postLoginPath)

	usernameEntry := widget.NewEntry()
	usernameEntry.SetPlaceHolder("Username")

	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder("Password")
	passwordEntry.OnSubmitted = func(string) { w.submit() }

	w.entries = map[string]*widget.Entry{
		auth.FieldUsername: usernameEntry,
		auth.FieldPassword: passwordEntry,
	}
	w.statusLabel = widget.NewLabel("")
	w.loginButton = widget.NewButton("Login", w.submit)

	form := container.NewVBox(
		widget.NewLabel("Please Log In"),
		usernameEntry,
		passwordEntry,
		w.loginButton,
		w.statusLabel,
	)
	if onRegister != nil {
		form.Add(widget.NewButton("Create an account", onRegister))
	}

	w.Win.SetContent(form)
	w.Win.Resize(fyne.NewSize(300, 220))
	w.Win.SetFixedSize(true)
	w.Win.CenterOnScreen()
	return w
}

// submit runs on the UI goroutine when the button is tapped or Enter is pressed.
func (w *LoginWindow) submit() {
	creds := auth.Credentials{
		Username: w.entries[auth.FieldUsername].Text,
		Password: w.entries[auth.FieldPassword].Text,
	}
	if err := auth.Validate(creds); err != nil {
		slog.Debug("login form incomplete", "error", err)
		w.statusLabel.SetText("Username and password required.")
		return
	}

	form := snapshotForm(w.entries, w.loginButton, w.onMain)
	w.runAsync(func() {
		w.handler.Handle(context.Background(), NoDefault, form)
	})
}

func (w *LoginWindow) SetText(id, text string) {
	if id != auth.LoginMessageID {
		return
	}
	w.onMain(func() { w.statusLabel.SetText(text) })
}

func (w *LoginWindow) Navigate(path string) {
	w.onMain(func() {
		if w.onNavigate != nil {
			w.onNavigate(path)
		}
		w.Win.Close()
	})
}
