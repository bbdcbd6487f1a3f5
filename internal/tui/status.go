package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/eventloop"
	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// statusModel is the main screen: loop state, last outcome and the cached
// share directory with item counts.
type statusModel struct {
	ctx    context.Context
	loop   SyncLoop
	shares service.ShareService
	items  service.ItemService
	userID string
	info   models.AppBuildInfo
	now    func() time.Time

	spinner    spinner.Model
	looping    bool
	passing    bool
	refreshing bool

	rows    []shareRow
	idx     int
	loading bool

	status   string
	errMsg   string
	lastErr  error
	lastSync time.Time

	showError bool
	showInfo  bool

	// items of the share opened with enter
	openShare string
	shareView []models.Item
	itemsErr  error
}

func newStatusModel(ctx context.Context, loop SyncLoop, shares service.ShareService, items service.ItemService, userID string, info models.AppBuildInfo) statusModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return statusModel{
		ctx:     ctx,
		loop:    loop,
		shares:  shares,
		items:   items,
		userID:  userID,
		info:    info,
		now:     time.Now,
		spinner: s,
		loading: true,
	}
}

func (m statusModel) Init() tea.Cmd {
	return m.cmdLoadShares()
}

func (m statusModel) busy() bool {
	return m.passing || m.refreshing
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loopEventMsg:
		return m.updateLoopEvent(msg.event)
	case stopRefreshingMsg:
		m.refreshing = false
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case sharesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка загрузки хранилищ: %s", humanizeSyncError(msg.err))
			return m, nil
		}
		m.rows = msg.rows
		if m.idx >= len(m.rows) {
			m.idx = len(m.rows) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case itemsLoadedMsg:
		if msg.shareID != m.openShare {
			return m, nil
		}
		m.shareView, m.itemsErr = msg.items, msg.err
		if m.itemsErr == nil && m.shareView == nil {
			m.shareView = []models.Item{}
		}
		return m, nil
	case copiedMsg:
		m.status = "Скопировано"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m statusModel) updateLoopEvent(event eventloop.Event) (tea.Model, tea.Cmd) {
	switch ev := event.(type) {
	case eventloop.LoopStarted:
		m.looping = true
		m.status = "Автосинхронизация запущена"
	case eventloop.LoopStopped:
		m.looping = false
		m.passing = false
		m.status = "Автосинхронизация остановлена"
	case eventloop.PassBegan:
		wasBusy := m.busy()
		m.passing = true
		m.status = "Синхронизация..."
		if !wasBusy {
			return m, m.spinner.Tick
		}
	case eventloop.PassSkipped:
		m.status = skipReasonText(ev.Reason)
	case eventloop.PassFinished:
		m.passing = false
		m.lastSync = m.now()
		m.lastErr = nil
		m.showError = false
		m.errMsg = ""
		m.status = "Синхронизация завершена"
		if ev.HasNewEvents {
			m.status = "Синхронизация завершена, получены изменения"
		}
		m.loading = true
		if m.openShare != "" {
			return m, tea.Batch(m.cmdLoadShares(), m.cmdLoadItems(m.openShare))
		}
		return m, m.cmdLoadShares()
	case eventloop.PassFailed:
		m.passing = false
		m.lastErr = ev.Err
		m.errMsg = humanizeSyncError(ev.Err)
		m.status = "Возникла ошибка"
	}

	return m, nil
}

func (m statusModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showInfo {
		if key.Matches(msg, keys.esc, keys.enter) {
			m.showInfo = false
		}
		return m, nil
	}

	if m.openShare != "" {
		switch {
		case key.Matches(msg, keys.esc):
			m.openShare = ""
			m.shareView, m.itemsErr = nil, nil
		case key.Matches(msg, keys.sync):
			return m, m.cmdLoadItems(m.openShare)
		}
		return m, nil
	}

	if m.showError {
		switch {
		case key.Matches(msg, keys.esc, keys.enter):
			m.showError = false
		case key.Matches(msg, keys.copy):
			return m, cmdCopyToClipboard(m.lastErr.Error())
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.sync):
		if m.refreshing {
			return m, nil
		}
		wasBusy := m.busy()
		m.refreshing = true
		m.errMsg = ""
		m.status = "Обновление..."
		if wasBusy {
			return m, m.cmdForceSync()
		}
		return m, tea.Batch(m.spinner.Tick, m.cmdForceSync())
	case key.Matches(msg, keys.copy):
		if m.lastErr == nil {
			m.status = "Нечего копировать"
			return m, nil
		}
		return m, cmdCopyToClipboard(m.lastErr.Error())
	case key.Matches(msg, keys.errView):
		if m.lastErr == nil {
			m.status = "Ошибок нет"
			return m, nil
		}
		m.showError = true
	case key.Matches(msg, keys.info):
		m.showInfo = true
	case key.Matches(msg, keys.enter):
		if len(m.rows) == 0 {
			return m, nil
		}
		m.openShare = m.rows[m.idx].shareID
		m.shareView, m.itemsErr = nil, nil
		return m, m.cmdLoadItems(m.openShare)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	}

	return m, nil
}

func (m statusModel) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.info))
	}
	if m.openShare != "" {
		return appStyle.Render(m.itemsView())
	}
	if m.showError {
		return appStyle.Render(errorOverlayModel{summary: m.errMsg, detail: m.lastErr.Error()}.View())
	}

	var b strings.Builder

	if m.busy() {
		b.WriteString(m.spinner.View())
		b.WriteString(" Синхронизация...\n")
	} else {
		b.WriteString("Ожидание\n")
	}

	b.WriteString("Автосинхронизация: ")
	if m.looping {
		b.WriteString("включена\n")
	} else {
		b.WriteString("выключена\n")
	}

	b.WriteString("Последняя синхронизация: ")
	if m.lastSync.IsZero() {
		b.WriteString("-\n")
	} else {
		b.WriteString(m.lastSync.Format("02.01.2006 15:04:05"))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.sharesView())

	page := renderPage(titleStyle.Render("СИНХРОНИЗАЦИЯ"), strings.TrimRight(b.String(), "\n"),
		helpStyle.Render("s/r: обновить │ enter: записи │ e: ошибка │ c: копировать ошибку │ i: о программе"))
	return appStyle.Render(page)
}

func (m statusModel) sharesView() string {
	if m.loading && len(m.rows) == 0 {
		return "Загрузка хранилищ..."
	}
	if len(m.rows) == 0 {
		return "Нет хранилищ"
	}

	var b strings.Builder
	b.WriteString("  Хранилище                 │ Записей │ Доступ\n")
	b.WriteString("  ──────────────────────────┼─────────┼──────────────────\n")
	for i, row := range m.rows {
		count := fmt.Sprintf("%d", row.itemCount)
		if row.countError {
			count = "?"
		}

		access := "участник"
		if row.owner {
			access = "владелец"
		}
		if row.shared {
			access += ", общий"
		}

		line := fmt.Sprintf("%-26s │ %7s │ %s", fitText(row.shareID, 26), count, access)
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m statusModel) cmdForceSync() tea.Cmd {
	loop := m.loop
	return func() tea.Msg {
		loop.ForceSync()
		return nil
	}
}

func (m statusModel) cmdLoadShares() tea.Cmd {
	ctx := m.ctx
	shareSvc := m.shares
	itemSvc := m.items
	userID := m.userID

	return func() tea.Msg {
		shares, err := shareSvc.GetShares(ctx, userID, false)
		if err != nil {
			return sharesLoadedMsg{err: err}
		}

		rows := make([]shareRow, 0, len(shares))
		for _, s := range shares {
			row := shareRow{
				shareID: s.ShareID,
				owner:   s.Owner,
				shared:  s.Shared,
			}
			n, countErr := itemSvc.CountItems(ctx, s.ShareID)
			if countErr != nil {
				row.countError = true
			} else {
				row.itemCount = n
			}
			rows = append(rows, row)
		}

		return sharesLoadedMsg{rows: rows}
	}
}

func (m statusModel) cmdLoadItems(shareID string) tea.Cmd {
	ctx := m.ctx
	itemSvc := m.items

	return func() tea.Msg {
		items, err := itemSvc.GetItems(ctx, shareID)
		return itemsLoadedMsg{shareID: shareID, items: items, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
