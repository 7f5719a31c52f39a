package tui

import (
	"github.com/MKhiriev/go-bill-desk/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	newItemName = iota
	newItemPrice
)

type newItemFormModel struct {
	inputs     []textinput.Model
	submitting bool
}

func newNewItemFormModel() newItemFormModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 30
	}
	inputs[newItemName].Placeholder = "Item name"
	inputs[newItemName].CharLimit = 100
	inputs[newItemPrice].Placeholder = "0.00"
	inputs[newItemPrice].CharLimit = 20

	return newItemFormModel{inputs: inputs}
}

func (m newItemFormModel) toInput() models.NewItemInput {
	return models.NewItemInput{
		Name:  m.inputs[newItemName].Value(),
		Price: m.inputs[newItemPrice].Value(),
	}
}

// reset clears both fields. Focus is left as is.
func (m newItemFormModel) reset() newItemFormModel {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	return m
}
