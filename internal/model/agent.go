package model

// Agent is a verified listing agent shown in the directory.
type Agent struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	WhatsApp    string   `json:"whatsapp"`
	Avatar      string   `json:"avatar"`
	Verified    bool     `json:"verified"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Company     string   `json:"company"`
	License     string   `json:"license"`
	Specialties []string `json:"specialties"`
	Bio         string   `json:"bio"`
}

// HasSpecialty reports exact membership in the agent's specialties.
func (a Agent) HasSpecialty(s string) bool {
	for _, sp := range a.Specialties {
		if sp == s {
			return true
		}
	}
	return false
}
