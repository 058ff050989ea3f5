package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuModel_Navigation(t *testing.T) {
	m := NewMenuModel()

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, menuRegister, m.idx)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: "register"}, cmd())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	assert.Equal(t, menuLogin, m.idx)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: "login"}, cmd())
}

func TestMenuModel_RegisterNotice(t *testing.T) {
	m := NewMenuModel()

	m.Update(RegisterSuccessNotice{Username: "alice"})
	assert.Contains(t, m.View(), "alice")
}

func TestRegisterModel_Validation(t *testing.T) {
	m := NewRegisterModel(context.Background(), nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Все поля обязательны", m.errMsg)

	m.inputs[registerName].SetValue("alice")
	m.inputs[registerPassword].SetValue("secret")
	m.inputs[registerRepeat].SetValue("secrets")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Пароли не совпадают", m.errMsg)
}
