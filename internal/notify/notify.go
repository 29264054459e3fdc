// Package notify holds the ephemeral feedback state every page shares: a
// single-slot notification channel and an independent login-prompt channel.
package notify

import "strings"

// Severity of a notification. It only affects presentation.
type Severity int

const (
	Success Severity = iota
	Info
	Error
)

// Notification is the visible toast. At most one exists at a time.
type Notification struct {
	Message  string
	Severity Severity
	Visible  bool
}

// Center is the state machine behind the notification surface. It is not
// safe for concurrent use; the UI drives it from a single goroutine.
type Center struct {
	current Notification
	prompt  bool
}

func NewCenter() *Center {
	return &Center{}
}

// Show replaces whatever is currently visible. There is no queue: the newest
// notification wins.
func (c *Center) Show(message string, sev Severity) {
	c.current = Notification{Message: message, Severity: sev, Visible: true}
}

// Dismiss hides the current notification.
func (c *Center) Dismiss() {
	c.current.Visible = false
}

// Current returns the notification slot, visible or not.
func (c *Center) Current() Notification {
	return c.current
}

// ShowPrompt opens the sign-in interstitial. It coexists with any visible
// notification; the two channels never interact.
func (c *Center) ShowPrompt() {
	c.prompt = true
}

// DismissPrompt closes the interstitial, whether by explicit dismissal or by
// the user heading into the auth flow.
func (c *Center) DismissPrompt() {
	c.prompt = false
}

// PromptVisible reports whether the sign-in interstitial is open.
func (c *Center) PromptVisible() bool {
	return c.prompt
}

// WishlistSeverity classifies a wishlist-add response message. A duplicate
// add is a successful call the backend reports with an "Already..." message,
// rendered as informational rather than an error.
func WishlistSeverity(message string) Severity {
	if strings.Contains(strings.ToLower(message), "already") {
		return Info
	}
	return Success
}
