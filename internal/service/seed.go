package service

import "kenyareal/internal/model"

// AdminEmail identifies the seeded administrator. Init restores it if missing.
const AdminEmail = "admin@kenyareal.co.ke"

// DefaultAvatar is assigned to every account created by signup.
const DefaultAvatar = "https://images.pexels.com/photos/2182970/pexels-photo-2182970.jpeg?auto=compress&cs=tinysrgb&w=150"

// SeedAccounts returns a fresh copy of the demo accounts with plaintext passwords.
func SeedAccounts() []model.StoredAccount {
	return []model.StoredAccount{
		{
			Account: model.Account{
				ID:              "1",
				Name:            "John Buyer",
				Email:           "buyer@example.com",
				Phone:           "+254722123456",
				Avatar:          DefaultAvatar,
				Role:            model.RoleBuyer,
				SavedProperties: []string{"1", "2"},
				Preferences: model.Preferences{
					MaxPrice:       5000000,
					MinBedrooms:    2,
					PreferredAreas: []string{"Kilimani", "Westlands"},
					PropertyTypes:  []string{"apartment", "house"},
				},
			},
			Password: "password123",
		},
		{
			Account: model.Account{
				ID:              "2",
				Name:            "Sarah Agent",
				Email:           "agent@example.com",
				Phone:           "+254733987654",
				Avatar:          "https://images.pexels.com/photos/3785079/pexels-photo-3785079.jpeg?auto=compress&cs=tinysrgb&w=150",
				Role:            model.RoleAgent,
				SavedProperties: []string{},
				Preferences:     emptyPreferences(),
			},
			Password: "password123",
		},
		seedAdmin(),
	}
}

func seedAdmin() model.StoredAccount {
	return model.StoredAccount{
		Account: model.Account{
			ID:              "3",
			Name:            "Admin User",
			Email:           AdminEmail,
			Phone:           "+254700123456",
			Avatar:          DefaultAvatar,
			Role:            model.RoleAdmin,
			SavedProperties: []string{},
			Preferences:     emptyPreferences(),
		},
		Password: "admin123",
	}
}

func emptyPreferences() model.Preferences {
	return model.Preferences{PreferredAreas: []string{}, PropertyTypes: []string{}}
}

func hasAdmin(accounts []model.StoredAccount) bool {
	for _, a := range accounts {
		if a.Role == model.RoleAdmin && a.Email == AdminEmail {
			return true
		}
	}
	return false
}
