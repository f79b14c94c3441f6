package domain

// Session is the server-side per-browser state established at login and
// cleared at logout. It is the authorization token for every role-gated
// operation.
type Session struct {
	Name  string `json:"lead_name"`
	Email string `json:"email"`
	Phone string `json:"phone_number"`
	Role  Role   `json:"role"`
}
