package domain

// CareerPath is the progression info the backend returns for a role.
// It is fetched fresh on every submission and replaced wholesale.
type CareerPath struct {
	CurrentRole    string   `json:"current_role"`
	NextRoles      []string `json:"next_roles"`
	RequiredSkills []string `json:"required_skills"`
}
