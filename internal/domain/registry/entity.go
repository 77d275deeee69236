package registry

// Team groups employees. The JSON tags follow the persisted
// admin_teams layout.
type Team struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Employees []Employee `json:"employees"`
}

// Employee belongs to exactly one team; TeamID is a back-reference.
// CustomPIN, when set, overrides the derived default PIN.
type Employee struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	TeamID    string  `json:"teamId"`
	CustomPIN *string `json:"customPin,omitempty"`
}
