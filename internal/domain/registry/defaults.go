package registry

// DefaultTeams is the built-in registry used when nothing has been
// persisted yet, or when the persisted registry cannot be decoded.
func DefaultTeams() []Team {
	return []Team{
		{
			ID:   "technical-support",
			Name: "Technical Support",
			Employees: []Employee{
				{ID: "vuqar", Name: "Vuqar", TeamID: "technical-support"},
				{ID: "sanan", Name: "Sanan", TeamID: "technical-support"},
				{ID: "teymur", Name: "Teymur", TeamID: "technical-support"},
				{ID: "murad", Name: "Murad", TeamID: "technical-support"},
				{ID: "anvar", Name: "Anvar", TeamID: "technical-support"},
			},
		},
		{
			ID:   "operation-support",
			Name: "Operation Support",
			Employees: []Employee{
				{ID: "kamran", Name: "Kamran", TeamID: "operation-support"},
				{ID: "kamran2", Name: "Kamran2", TeamID: "operation-support"},
				{ID: "islam", Name: "Islam", TeamID: "operation-support"},
				{ID: "ugur", Name: "Ugur", TeamID: "operation-support"},
				{ID: "najmeddin", Name: "Najmeddin", TeamID: "operation-support"},
			},
		},
		{
			ID:   "call-centre",
			Name: "Call Centre",
			Employees: []Employee{
				{ID: "cc1", Name: "Мария", TeamID: "call-centre"},
				{ID: "cc2", Name: "Игорь", TeamID: "call-centre"},
				{ID: "cc3", Name: "Ольга", TeamID: "call-centre"},
				{ID: "cc4", Name: "Павел", TeamID: "call-centre"},
			},
		},
		{
			ID:   "finance",
			Name: "Finance",
			Employees: []Employee{
				{ID: "seidaga", Name: "Seidaga", TeamID: "finance"},
				{ID: "khazratali", Name: "Khazratali", TeamID: "finance"},
				{ID: "ismail", Name: "Ismail", TeamID: "finance"},
				{ID: "agahalil", Name: "Agahalil", TeamID: "finance"},
				{ID: "ismail2", Name: "Ismail2", TeamID: "finance"},
			},
		},
	}
}
