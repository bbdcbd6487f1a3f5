package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// unlockModel asks for the master password the user key is derived from.
type unlockModel struct {
	input    textinput.Model
	userID   string
	errMsg   string
	password string
	quit     bool
}

func newUnlockModel(userID string) unlockModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "master password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	return unlockModel{input: passwordInput, userID: userID}
}

func (m unlockModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m unlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyCtrlC, key.Matches(keyMsg, keys.esc):
			m.quit = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			pass := m.input.Value()
			if strings.TrimSpace(pass) == "" {
				m.errMsg = "Мастер-пароль обязателен"
				return m, nil
			}
			m.errMsg = ""
			m.password = pass
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m unlockModel) View() string {
	var b strings.Builder
	b.WriteString("Пользователь: ")
	b.WriteString(fitText(m.userID, 40))
	b.WriteString("\n\nМастер-пароль [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return appStyle.Render(renderPage(titleStyle.Render("РАЗБЛОКИРОВКА"), strings.TrimRight(b.String(), "\n"),
		helpStyle.Render("enter: подтвердить │ esc: выход")))
}
