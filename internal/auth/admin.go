package auth

// Admin holds the configured admin identity. There is exactly one
// admin account, configured at process start.
type Admin struct {
	User     string
	PassHash string
}

// Check reports whether the submitted credentials match. The user is
// compared by plain equality, the password against the bcrypt hash.
// Callers must answer both mismatches identically so a response never
// reveals which field was wrong.
func (a Admin) Check(user string, pass string) bool {
	if user != a.User {
		return false
	}
	return CheckPasswordHash(pass, a.PassHash)
}
