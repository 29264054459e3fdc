package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/smartbuyr/storefront/internal/notify"
	"github.com/smartbuyr/storefront/internal/user"
)

var addressLabels = []string{"Full name", "Street", "City", "State", "ZIP", "Phone"}

// profilePage shows the signed-in user and manages the delivery address. The
// address lives on this device only and survives sign-out.
type profilePage struct {
	address *user.Address
	inputs  []textinput.Model
	focus   int
	editing bool
}

func newProfilePage() profilePage {
	p := profilePage{}
	p.inputs = make([]textinput.Model, len(addressLabels))
	for i, label := range addressLabels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 64
		ti.Width = 32
		p.inputs[i] = ti
	}
	return p
}

func (p *profilePage) enter(m *Model) tea.Cmd {
	addr, err := m.svc.Sessions.LoadAddress()
	if err != nil {
		m.log.Warn("could not load saved address", zap.Error(err))
	} else {
		p.address = addr
	}
	p.editing = false
	return nil
}

func (p *profilePage) capturing() bool {
	return p.editing
}

func (p *profilePage) startEditing() tea.Cmd {
	values := make([]string, len(addressLabels))
	if p.address != nil {
		values = []string{p.address.Name, p.address.Street, p.address.City,
			p.address.State, p.address.Zip, p.address.Phone}
	}
	for i := range p.inputs {
		p.inputs[i].SetValue(values[i])
		p.inputs[i].Blur()
	}
	p.focus = 0
	p.inputs[0].Focus()
	p.editing = true
	return textinput.Blink
}

func (p *profilePage) setFocus(i int) tea.Cmd {
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

func (p *profilePage) handleKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	if !p.editing {
		switch msg.String() {
		case "e":
			return p.startEditing()
		case "d":
			if p.address == nil {
				return nil
			}
			if err := m.svc.Sessions.ClearAddress(); err != nil {
				m.log.Warn("could not delete saved address", zap.Error(err))
				m.notices.Show("Failed to delete address", notify.Error)
				return nil
			}
			p.address = nil
			m.notices.Show("Address deleted", notify.Success)
		}
		return nil
	}

	switch msg.String() {
	case "esc":
		p.editing = false
		return nil
	case "tab", "down":
		return p.setFocus(p.focus + 1)
	case "shift+tab", "up":
		return p.setFocus(p.focus - 1)
	case "enter":
		if p.focus < len(p.inputs)-1 {
			return p.setFocus(p.focus + 1)
		}
		p.save(m)
		return nil
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return cmd
}

func (p *profilePage) save(m *Model) {
	addr := user.Address{
		Name:   strings.TrimSpace(p.inputs[0].Value()),
		Street: strings.TrimSpace(p.inputs[1].Value()),
		City:   strings.TrimSpace(p.inputs[2].Value()),
		State:  strings.TrimSpace(p.inputs[3].Value()),
		Zip:    strings.TrimSpace(p.inputs[4].Value()),
		Phone:  strings.TrimSpace(p.inputs[5].Value()),
	}
	if err := m.svc.Sessions.SaveAddress(addr); err != nil {
		m.log.Warn("could not save address", zap.Error(err))
		m.notices.Show("Failed to save address", notify.Error)
		return
	}
	p.address = &addr
	p.editing = false
	m.notices.Show("Address saved", notify.Success)
}

func (p *profilePage) view(m *Model) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("My account") + "\n\n")

	if m.session != nil {
		u := m.session.User
		b.WriteString(m.styles.Header.Render(u.DisplayName()) + "\n")
		b.WriteString(m.styles.Subtle.Render("@"+u.Username+"  ·  "+u.Email) + "\n\n")
	}

	b.WriteString(m.styles.Title.Render("Delivery address") + "\n")
	if p.editing {
		b.WriteString("\n")
		for _, in := range p.inputs {
			b.WriteString(m.styles.Input.Render(in.View()) + "\n")
		}
		b.WriteString("\n" + m.styles.Help.Render("tab next field  enter save  esc cancel"))
		return b.String()
	}

	if p.address == nil {
		b.WriteString(m.styles.Subtle.Render("No address saved") + "\n\n")
		b.WriteString(m.styles.Help.Render("e add address"))
		return b.String()
	}

	a := p.address
	b.WriteString(a.Name + "\n" + a.Street + "\n" +
		a.City + ", " + a.State + " " + a.Zip + "\n" + a.Phone + "\n\n")
	b.WriteString(m.styles.Help.Render("e edit address  d delete address"))
	return b.String()
}
