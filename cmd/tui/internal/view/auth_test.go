package view

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/api"
)

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func TestAuthLoginSubmitsTypedCredentials(t *testing.T) {
	var got credentials

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"token":"tok-1"}`))
	}))
	defer srv.Close()

	var m tea.Model = NewAuthModel(api.New(srv.URL, time.Second))
	m = runCmds(t, m, m.Init())

	m = press(t, m,
		typed("ada@example.com"), enter(),
		typed("hunter2"), enter(),
	)

	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "hunter2", got.Password)

	// The email read at submit seeds the synthesized user when the server
	// sends no user payload.
	assert.Equal(t, "ada@example.com", m.(AuthModel).formEmail)
}

func TestAuthRegisterSubmitsTypedCredentials(t *testing.T) {
	var got credentials

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"account created"}`))
	}))
	defer srv.Close()

	var m tea.Model = NewAuthModel(api.New(srv.URL, time.Second))
	m = runCmds(t, m, m.Init())

	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyCtrlR},
		typed("Ada"), enter(),
		typed("ada@example.com"), enter(),
		typed("hunter2"), enter(),
	)

	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "hunter2", got.Password)

	am := m.(AuthModel)
	assert.Equal(t, authStateLogin, am.state)
	assert.Contains(t, am.status, "Log in")
}

func TestAuthLoginFailureReopensForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid email or password"}`))
	}))
	defer srv.Close()

	var m tea.Model = NewAuthModel(api.New(srv.URL, time.Second))
	m = runCmds(t, m, m.Init())

	m = press(t, m,
		typed("ada@example.com"), enter(),
		typed("nope"), enter(),
	)

	am := m.(AuthModel)
	assert.False(t, am.loading)
	assert.NotNil(t, am.form)
	assert.Contains(t, am.status, "invalid email or password")
}
