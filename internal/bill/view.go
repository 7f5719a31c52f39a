package bill

import "strconv"

// Row is one displayed bill line.
type Row struct {
	Name      string
	UnitPrice string
	Quantity  string
	LineTotal string
}

// View is the display projection of a [Session].
type View struct {
	Rows       []Row
	GrandTotal string
}

// View projects the session into display rows in first-add order. It is a
// pure function of the session state.
func (s *Session) View() View {
	rows := make([]Row, 0, len(s.lines))
	for _, l := range s.lines {
		rows = append(rows, Row{
			Name:      l.Name,
			UnitPrice: FormatMoney(l.Price),
			Quantity:  strconv.Itoa(l.Quantity),
			LineTotal: FormatMoney(l.Total),
		})
	}

	return View{
		Rows:       rows,
		GrandTotal: FormatMoney(s.grandTotal),
	}
}
