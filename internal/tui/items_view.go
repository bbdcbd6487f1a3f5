package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-sync/models"
)

func itemStateText(state models.ItemState) string {
	switch state {
	case models.ItemStateActive:
		return "активна"
	case models.ItemStateTrashed:
		return "в корзине"
	}
	return "?"
}

// itemsView lists the cached items of the opened share. Content stays
// encrypted, so only metadata is shown.
func (m statusModel) itemsView() string {
	title := titleStyle.Render("ЗАПИСИ ХРАНИЛИЩА " + fitText(m.openShare, 26))
	help := helpStyle.Render("s/r: перечитать │ esc: назад")

	var b strings.Builder
	switch {
	case m.itemsErr != nil:
		b.WriteString(errorStyle.Render("Ошибка: " + humanizeSyncError(m.itemsErr)))
	case m.shareView == nil:
		b.WriteString("Загрузка записей...")
	case len(m.shareView) == 0:
		b.WriteString("Нет записей")
	default:
		b.WriteString("Запись                     │ Ревизия │ Состояние │ Изменена\n")
		b.WriteString("───────────────────────────┼─────────┼───────────┼────────────────────\n")
		for _, item := range m.shareView {
			modified := "-"
			if item.ModifiedAt != nil {
				modified = item.ModifiedAt.Format("02.01.2006 15:04:05")
			}
			b.WriteString(fmt.Sprintf("%-26s │ %7d │ %-9s │ %s\n",
				fitText(item.ItemID, 26), item.Revision, itemStateText(item.State), modified))
		}
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), help)
}
