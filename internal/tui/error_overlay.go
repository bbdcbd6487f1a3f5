package tui

type errorOverlayModel struct {
	summary string
	detail  string
}

func (m errorOverlayModel) View() string {
	content := "Ошибка\n\n" + m.summary
	if m.detail != "" && m.detail != m.summary {
		content += "\n\n" + fitText(m.detail, 400)
	}
	content += "\n\nc скопировать │ enter / esc закрыть"
	return overlayBoxStyle.Render(content)
}
