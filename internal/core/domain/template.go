package domain

// Template is a reusable message body. The category travels as a plain
// string in payloads, not as a foreign key.
type Template struct {
	ID           int     `json:"id_template"`
	Name         string  `json:"nome_template"`
	Body         *string `json:"descricao,omitempty"`
	Category     *string `json:"categoria,omitempty"`
	CategoryID   *int    `json:"id_categoria,omitempty"`
	CategoryName *string `json:"categoria_nome,omitempty"`
	CreatedAt    *string `json:"data_criacao,omitempty"`
}

// TemplateCreate is the creation payload.
type TemplateCreate struct {
	Name     string `json:"nome"`
	Body     string `json:"descricao"`
	Category string `json:"categoria"`
}

// TemplateUpdate is a partial update.
type TemplateUpdate struct {
	Name     *string `json:"nome,omitempty"`
	Body     *string `json:"descricao,omitempty"`
	Category *string `json:"categoria,omitempty"`
}

// TemplateCategory tags templates for filtering in the console.
type TemplateCategory struct {
	ID        int     `json:"id_categoria"`
	Name      string  `json:"nome_categoria"`
	CreatedAt *string `json:"data_criacao,omitempty"`
}

// TemplateCategoryPayload is used for both create and update.
type TemplateCategoryPayload struct {
	Name string `json:"nome_categoria"`
}
