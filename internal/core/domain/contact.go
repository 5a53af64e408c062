package domain

// Contact is an addressable recipient. Group membership is not embedded
// here; it is queried per group through the link endpoints.
type Contact struct {
	ID             int     `json:"id_contacto"`
	FirstName      string  `json:"nome"`
	LastName       *string `json:"sobrenome,omitempty"`
	Phone          string  `json:"telefone"`
	Mobile         *string `json:"movel,omitempty"`
	Email          *string `json:"email,omitempty"`
	PersonType     *string `json:"tipo_pessoa,omitempty"`
	Designation    *string `json:"designacao,omitempty"`
	TaxID          *string `json:"nif,omitempty"`
	Location       *string `json:"localizacao,omitempty"`
	DesiredAmount  *string `json:"montante_desejado,omitempty"`
	ActivitySector *string `json:"sector_actividade,omitempty"`
	ProjectNotes   *string `json:"descricao_projecto,omitempty"`
	CreatedAt      string  `json:"data_criacao"`
}

// ContactCreate is the creation payload. Name and phone are the only
// required fields.
type ContactCreate struct {
	FirstName      string  `json:"nome"`
	Phone          string  `json:"telefone"`
	LastName       *string `json:"sobrenome,omitempty"`
	Mobile         *string `json:"movel,omitempty"`
	Email          *string `json:"email,omitempty"`
	PersonType     *string `json:"tipo_pessoa,omitempty"`
	Designation    *string `json:"designacao,omitempty"`
	TaxID          *string `json:"nif,omitempty"`
	Location       *string `json:"localizacao,omitempty"`
	DesiredAmount  *string `json:"montante_desejado,omitempty"`
	ActivitySector *string `json:"sector_actividade,omitempty"`
	ProjectNotes   *string `json:"descricao_projecto,omitempty"`
}

// ContactUpdate is a partial update; nil fields are left untouched by the
// backend.
type ContactUpdate struct {
	FirstName      *string `json:"nome,omitempty"`
	LastName       *string `json:"sobrenome,omitempty"`
	Phone          *string `json:"telefone,omitempty"`
	Mobile         *string `json:"movel,omitempty"`
	Email          *string `json:"email,omitempty"`
	PersonType     *string `json:"tipo_pessoa,omitempty"`
	Designation    *string `json:"designacao,omitempty"`
	TaxID          *string `json:"nif,omitempty"`
	Location       *string `json:"localizacao,omitempty"`
	DesiredAmount  *string `json:"montante_desejado,omitempty"`
	ActivitySector *string `json:"sector_actividade,omitempty"`
	ProjectNotes   *string `json:"descricao_projecto,omitempty"`
}
