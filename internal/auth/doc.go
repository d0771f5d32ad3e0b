// Package auth checks the administrator credential and tracks the
// authenticated flag of an admin session.
//
// There is exactly one administrator. The username and the password hash are
// read from the configuration; the plaintext password is never stored.
// Hashes created with HashPassword use argon2id, bcrypt hashes are accepted
// as well so existing credentials keep working.
//
// Example usage:
//
//	authService, err := auth.NewService(cfg.Admin.Username, cfg.Admin.PasswordHash)
//
//	ok, err := authService.Login(sess, username, password)
//	if !ok {
//	    // show auth.ErrInvalidCredentials
//	}
//
//	if err := authService.RequireAdmin(sess); errors.Is(err, auth.ErrRedirectToLogin) {
//	    // redirect to the login page
//	}
package auth
