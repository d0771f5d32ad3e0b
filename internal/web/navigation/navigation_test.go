package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	p := NewPage("Feedback", "Dashboard", "dashboard")

	assert.Equal(t, "Feedback", p.AppTitle)
	assert.Equal(t, "Dashboard", p.PageTitle)
	assert.Equal(t, "dashboard", p.ActivePage)
	assert.False(t, p.Admin)
	assert.NotNil(t, p.Breadcrumbs)
	assert.Empty(t, p.Breadcrumbs)
}

func TestPage_AddCrumb(t *testing.T) {
	p := NewPage("Feedback", "Dashboard", "dashboard").
		AddCrumb("Home", "/").
		AddCrumb("Admin", "/admin-dashboard").
		AddCrumb("Dashboard", "/admin-dashboard")

	assert.Len(t, p.Breadcrumbs, 3)
	assert.Equal(t, Crumb{Title: "Home", URL: "/"}, p.Breadcrumbs[0])
	assert.False(t, p.Breadcrumbs[1].Active)
	assert.True(t, p.Breadcrumbs[2].Active, "last crumb is active")
}

func TestPage_IsActive(t *testing.T) {
	p := NewPage("Feedback", "Login", "login")

	assert.True(t, p.IsActive("login"))
	assert.False(t, p.IsActive("dashboard"))
}

func TestPage_AsAdmin(t *testing.T) {
	assert.True(t, NewPage("", "", "").AsAdmin().Admin)
}

func TestPage_Title(t *testing.T) {
	tests := []struct {
		app, page, want string
	}{
		{app: "Feedback", page: "Login", want: "Login - Feedback"},
		{app: "Feedback", page: "", want: "Feedback"},
		{app: "", page: "Login", want: "Login"},
		{app: "", page: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewPage(tt.app, tt.page, "").Title())
	}
}
