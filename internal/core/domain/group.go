package domain

// Group is a named collection of contacts, the unit of addressing for
// campaign sends.
type Group struct {
	ID          int     `json:"id_grupo"`
	Name        string  `json:"nome_grupo"`
	Description *string `json:"descricao_grupo,omitempty"`
}

// GroupCreate is the creation payload.
type GroupCreate struct {
	Name string `json:"nome_grupo"`
}

// GroupUpdate is a partial update.
type GroupUpdate struct {
	Name        *string `json:"nome_grupo,omitempty"`
	Description *string `json:"descricao_grupo,omitempty"`
}

// LinkContacts is the body of the bulk link endpoint.
type LinkContacts struct {
	ContactIDs []int `json:"id_contactos"`
}
