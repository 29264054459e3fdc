package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartbuyr/storefront/internal/user"
)

type authMode int

const (
	authSignIn authMode = iota
	authSignUp
)

var (
	signInLabels = []string{"Username", "Password"}
	signUpLabels = []string{"Username", "Email", "Password", "First name", "Last name"}
)

// authPage is the combined sign-in / sign-up form. Submitting issues one
// backend call; the root model installs the session on success.
type authPage struct {
	mode    authMode
	inputs  []textinput.Model
	focus   int
	failure string
}

func newAuthPage() authPage {
	p := authPage{mode: authSignIn}
	p.reset()
	return p
}

func (p *authPage) reset() {
	labels := signInLabels
	if p.mode == authSignUp {
		labels = signUpLabels
	}
	p.inputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 64
		ti.Width = 32
		if label == "Password" {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		p.inputs[i] = ti
	}
	p.focus = 0
	p.failure = ""
	p.inputs[0].Focus()
}

func (p *authPage) setFocus(i int) tea.Cmd {
	if i < 0 {
		i = len(p.inputs) - 1
	}
	if i >= len(p.inputs) {
		i = 0
	}
	p.inputs[p.focus].Blur()
	p.focus = i
	p.inputs[p.focus].Focus()
	return textinput.Blink
}

func (p *authPage) handleKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return m.goTo(pageHome)
	case "ctrl+n":
		if p.mode == authSignIn {
			p.mode = authSignUp
		} else {
			p.mode = authSignIn
		}
		p.reset()
		return textinput.Blink
	case "tab", "down":
		return p.setFocus(p.focus + 1)
	case "shift+tab", "up":
		return p.setFocus(p.focus - 1)
	case "enter":
		if p.focus < len(p.inputs)-1 {
			return p.setFocus(p.focus + 1)
		}
		return p.submit(m)
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return cmd
}

func (p *authPage) submit(m *Model) tea.Cmd {
	for _, in := range p.inputs {
		if strings.TrimSpace(in.Value()) == "" {
			p.failure = "All fields are required"
			return nil
		}
	}
	p.failure = ""
	if p.mode == authSignIn {
		return m.signInCmd(p.inputs[0].Value(), p.inputs[1].Value())
	}
	return m.signUpCmd(user.SignUpFields{
		Username:  p.inputs[0].Value(),
		Email:     p.inputs[1].Value(),
		Password:  p.inputs[2].Value(),
		FirstName: p.inputs[3].Value(),
		LastName:  p.inputs[4].Value(),
	})
}

func (p *authPage) view(m *Model) string {
	title := "Sign in"
	other := "need an account? ctrl+n to sign up"
	if p.mode == authSignUp {
		title = "Create your account"
		other = "already registered? ctrl+n to sign in"
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title) + "\n\n")
	for _, in := range p.inputs {
		b.WriteString(m.styles.Input.Render(in.View()) + "\n")
	}
	if p.failure != "" {
		b.WriteString("\n" + m.styles.NotifyErr.Render(p.failure) + "\n")
	}
	b.WriteString("\n" + m.styles.Help.Render("tab next field  enter submit  "+other+"  esc cancel"))
	return b.String()
}
