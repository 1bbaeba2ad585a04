package constants

import "fmt"

// ==========================
// ✅ Role tiers
// ==========================
// Urutan privilege: Abu < Ijo < Ultra < Raden
const (
	RoleAbu   = "Abu"   // read-only
	RoleIjo   = "Ijo"   // pencatat (boleh input)
	RoleUltra = "Ultra" // pengelola
	RoleRaden = "Raden" // administrator
)

// Template pesan error role
const (
	ErrOnlyIjoCanAccess   = "❌ Hanya Ijo ke atas yang boleh mengakses fitur %s."
	ErrOnlyUltraCanAccess = "❌ Hanya Ultra atau Raden yang boleh mengakses fitur %s."
	ErrOnlyRadenCanAccess = "❌ Hanya Raden yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorIjo(feature string) string {
	return fmt.Sprintf(ErrOnlyIjoCanAccess, feature)
}

func RoleErrorUltra(feature string) string {
	return fmt.Sprintf(ErrOnlyUltraCanAccess, feature)
}

func RoleErrorRaden(feature string) string {
	return fmt.Sprintf(ErrOnlyRadenCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAbu,
		RoleIjo,
		RoleUltra,
		RoleRaden,
	}

	IjoAndAbove = []string{
		RoleIjo,
		RoleUltra,
		RoleRaden,
	}

	UltraAndAbove = []string{
		RoleUltra,
		RoleRaden,
	}

	RadenOnly = []string{
		RoleRaden,
	}
)
