package ui

import (
	"errors"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/chat-client/v2/core"
	"github.com/chat-client/v2/internal/auth"
)

// HomeWindow is shown after login, in place of the post-login page.
type HomeWindow struct {
	Win fyne.Window

	pathLabel  *widget.Label
	tokenLabel *widget.Label
}

// TokenReader is the read side of the token store.
type TokenReader interface {
	GetItem(key string) (string, error)
}

func NewHomeWindow(a fyne.App, path string, tokens TokenReader) *HomeWindow {
	w := &HomeWindow{Win: a.NewWindow("Chat")}

	w.pathLabel = widget.NewLabel("Signed in. Home: " + path)
	w.tokenLabel = widget.NewLabel(tokenStatus(tokens))

	w.Win.SetContent(container.NewVBox(
		widget.NewLabelWithStyle("Welcome", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		w.pathLabel,
		w.tokenLabel,
		widget.NewButton("Quit", a.Quit),
	))
	w.Win.Resize(fyne.NewSize(360, 160))
	w.Win.CenterOnScreen()
	return w
}

func tokenStatus(tokens TokenReader) string {
	token, err := tokens.GetItem(auth.TokenKey)
	switch {
	case errors.Is(err, core.ErrNotFound):
		return "No token stored."
	case err != nil:
		slog.Error("failed to read token", "error", err)
		return "Token unavailable."
	default:
		return "Token stored: " + maskToken(token)
	}
}

// maskToken keeps the first four characters.
func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return token[:4] + "****"
}
