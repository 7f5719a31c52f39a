package tui

import "github.com/MKhiriev/go-bill-desk/internal/service"

type errorOverlayModel struct {
	kind    service.ResultKind
	message string
}

func (m errorOverlayModel) title() string {
	switch m.kind {
	case service.ResultValidation:
		return "Check your input"
	case service.ResultNetwork:
		return "Network error"
	default:
		return "Error"
	}
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render(m.title()) + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc close")
	return overlayBoxStyle.Render(content)
}
