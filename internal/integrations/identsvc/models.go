package identsvc

import "github.com/vetacasa/VetACasa-BookingService/internal/domain"

// Usuario is the authenticated caller as resolved by the identity service.
type Usuario struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Role   string `json:"role"` // admin | vet | cliente
}

// IsAdmin reports whether the user holds the admin role.
func (u *Usuario) IsAdmin() bool {
	return u.Role == domain.RoleAdmin
}

// IsVet reports whether the user holds the vet role.
func (u *Usuario) IsVet() bool {
	return u.Role == domain.RoleVet
}

// IsStaff reports whether the user may use the admin console at all.
func (u *Usuario) IsStaff() bool {
	return u.IsAdmin() || u.IsVet()
}

// CanActForVet reports whether the user may operate on the given
// veterinarian's data: admins may act for anyone, a vet only for itself.
func (u *Usuario) CanActForVet(veterinarioID string) bool {
	if u.IsAdmin() {
		return true
	}
	return u.IsVet() && u.ID == veterinarioID
}

// Logger is the narrow logging interface the client depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
