package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-bill-desk/internal/app"
	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/internal/service"
	"github.com/MKhiriev/go-bill-desk/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusCatalog focusArea = iota
	focusQuantity
	focusNewName
	focusNewPrice

	focusAreas = 4
)

const defaultQuantity = "1"

type deskModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	focus    focusArea
	catalog  catalogModel
	quantity textinput.Model
	newItem  newItemFormModel
	spinner  spinner.Model

	exporting bool
	savedPath string
	status    string

	showError    bool
	errorOverlay errorOverlayModel
	showAbout    bool
}

func newDeskModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) deskModel {
	quantity := textinput.New()
	quantity.Width = 6
	quantity.CharLimit = 9
	quantity.SetValue(defaultQuantity)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return deskModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		logger:    log,
		focus:     focusCatalog,
		catalog:   newCatalogModel(),
		quantity:  quantity,
		newItem:   newNewItemFormModel(),
		spinner:   s,
	}
}

func (m deskModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadCatalog())
}

func (m deskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay = errorOverlayModel{}
			}
			return m, nil
		}
		if m.showAbout {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) {
				m.showAbout = false
			}
			return m, nil
		}
		return m.updateKeys(msg)

	case catalogLoadedMsg:
		m.catalog.loading = false
		if msg.err != nil {
			// the previous list stays on screen
			cmd := m.notify(service.NewResult(msg.err, ""))
			return m, cmd
		}
		m.catalog = m.catalog.setItems(msg.items)
		return m, nil

	case itemAddedMsg:
		m.newItem.submitting = false
		res := service.NewResult(msg.err, msg.message)
		if !res.OK() {
			cmd := m.notify(res)
			return m, cmd
		}
		m.newItem = m.newItem.reset()
		m.catalog.loading = true
		cmd := m.notify(res)
		return m, tea.Batch(cmd, m.cmdLoadCatalog(), m.spinner.Tick)

	case exportDoneMsg:
		m.exporting = false
		res := service.NewResult(msg.err, app.MsgBillSaved+" "+msg.path)
		if res.OK() {
			m.savedPath = msg.path
		}
		cmd := m.notify(res)
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("copy to clipboard")
			cmd := m.notify(service.Result{Kind: service.ResultServer, Message: msg.err.Error(), Err: msg.err})
			return m, cmd
		}
		cmd := m.notify(service.NewResult(nil, "Path copied to clipboard."))
		return m, cmd

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m deskModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		return m.setFocus((m.focus + 1) % focusAreas), nil
	case key.Matches(msg, keys.backtab):
		return m.setFocus((m.focus + focusAreas - 1) % focusAreas), nil
	case key.Matches(msg, keys.about):
		m.showAbout = true
		return m, nil
	case key.Matches(msg, keys.export):
		return m.startExport()
	case key.Matches(msg, keys.reset):
		m.services.BillService.Reset()
		cmd := m.notify(service.NewResult(nil, app.MsgBillCleared))
		return m, cmd
	case key.Matches(msg, keys.reload):
		m.catalog.loading = true
		return m, tea.Batch(m.cmdLoadCatalog(), m.spinner.Tick)
	case key.Matches(msg, keys.copy):
		if m.savedPath == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.savedPath)
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusCatalog:
		switch {
		case key.Matches(msg, keys.up):
			m.catalog = m.catalog.moveUp()
		case key.Matches(msg, keys.down):
			m.catalog = m.catalog.moveDown()
		case key.Matches(msg, keys.enter):
			return m.addToBill()
		}
	case focusQuantity:
		if key.Matches(msg, keys.enter) {
			return m.addToBill()
		}
		m.quantity, cmd = m.quantity.Update(msg)
	case focusNewName, focusNewPrice:
		if key.Matches(msg, keys.enter) {
			return m.submitNewItem()
		}
		idx := m.newItemIndex()
		m.newItem.inputs[idx], cmd = m.newItem.inputs[idx].Update(msg)
	}
	return m, cmd
}

// addToBill runs inside Update, which is the only place the bill changes.
func (m deskModel) addToBill() (tea.Model, tea.Cmd) {
	err := m.services.BillService.AddToBill(m.ctx, m.catalog.selected(), models.QuantityInput{
		Quantity: m.quantity.Value(),
	})

	res := service.NewResult(err, app.MsgItemAddedToBill)
	if res.OK() {
		m.quantity.SetValue(defaultQuantity)
	}
	cmd := m.notify(res)
	return m, cmd
}

func (m deskModel) submitNewItem() (tea.Model, tea.Cmd) {
	if m.newItem.submitting {
		return m, nil
	}
	m.newItem.submitting = true
	return m, tea.Batch(m.cmdAddItem(m.newItem.toInput()), m.spinner.Tick)
}

func (m deskModel) startExport() (tea.Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}
	m.exporting = true
	return m, tea.Batch(m.cmdExport(m.services.BillService.Lines()), m.spinner.Tick)
}

func (m deskModel) setFocus(f focusArea) deskModel {
	m.quantity.Blur()
	for i := range m.newItem.inputs {
		m.newItem.inputs[i].Blur()
	}

	m.focus = f
	switch f {
	case focusQuantity:
		m.quantity.Focus()
	case focusNewName, focusNewPrice:
		m.newItem.inputs[m.newItemIndex()].Focus()
	}
	return m
}

func (m deskModel) newItemIndex() int {
	if m.focus == focusNewPrice {
		return newItemPrice
	}
	return newItemName
}

func (m deskModel) busy() bool {
	return m.exporting || m.catalog.loading || m.newItem.submitting
}

// notify shows res: failures in the overlay, successes in the status line.
func (m *deskModel) notify(res service.Result) tea.Cmd {
	if !res.OK() {
		m.showError = true
		m.errorOverlay = errorOverlayModel{kind: res.Kind, message: res.Message}
		return nil
	}
	m.status = res.Message
	return cmdClearStatus()
}

func (m deskModel) View() string {
	if m.showError {
		return appStyle.Render(m.errorOverlay.View())
	}
	if m.showAbout {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder

	b.WriteString(sectionStyle.Render("Items"))
	b.WriteString("\n")
	b.WriteString(m.catalog.View(m.focus == focusCatalog))
	b.WriteString("\n")
	b.WriteString(label("Quantity: ", m.focus == focusQuantity))
	b.WriteString(m.quantity.View())
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Bill"))
	b.WriteString("\n")
	b.WriteString(renderBillTable(m.services.BillService.View()))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("New item"))
	b.WriteString("\n")
	b.WriteString(label("Name:  ", m.focus == focusNewName))
	b.WriteString(m.newItem.inputs[newItemName].View())
	b.WriteString("\n")
	b.WriteString(label("Price: ", m.focus == focusNewPrice))
	b.WriteString(m.newItem.inputs[newItemPrice].View())
	b.WriteString("\n")

	switch {
	case m.exporting:
		b.WriteString("\n" + m.spinner.View() + " Generating PDF...\n")
	case m.newItem.submitting:
		b.WriteString("\n" + m.spinner.View() + " Adding item...\n")
	case m.catalog.loading && len(m.catalog.items) > 0:
		b.WriteString("\n" + m.spinner.View() + " Refreshing items...\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	hotKeys := "tab: next field  enter: add  ctrl+e: export PDF  ctrl+r: clear bill  ctrl+l: reload items  f1: about"
	if m.savedPath != "" {
		hotKeys += "  ctrl+y: copy path"
	}
	return appStyle.Render(renderPage("BILL DESK", b.String(), hotKeys))
}
