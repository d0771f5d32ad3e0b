// Package auth provides the route guard for admin pages.
//
// RequireAdmin loads the session of the request and asks the auth service
// whether it belongs to the logged in administrator. Anonymous requests are
// redirected to the login page, nothing of the guarded handler runs.
//
// Usage:
//
//	guard := authmw.RequireAdmin(sessions, authService)
//	app.Get("/admin-dashboard", guard, dashboardHandler)
package auth
