package models

// Sectors lists the activity sectors a user or course can belong to
var Sectors = []string{
	"education",
	"commerce",
	"sante",
	"artisanat",
	"eglise",
	"association",
	"entreprise",
	"freelance",
	"agriculture",
	"cyber_imprimerie",
	"etudiant",
}

// IsValidSector reports whether s is a known sector value
func IsValidSector(s string) bool {
	for _, sector := range Sectors {
		if s == sector {
			return true
		}
	}
	return false
}
