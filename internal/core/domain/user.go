package domain

// User is the backend's view of a console account. Optional profile
// fields come back as null and are modelled as pointers.
type User struct {
	ID           int     `json:"id_utilizador"`
	Username     string  `json:"utilizador"`
	FullName     *string `json:"nome_completo,omitempty"`
	Email        string  `json:"email"`
	Phone        *string `json:"telefone,omitempty"`
	Company      *string `json:"empresa,omitempty"`
	Active       int     `json:"activo"`
	PermissionID int     `json:"id_permissao"`
	Permission   *string `json:"permissao_nome,omitempty"`
	LastLogin    *string `json:"last_login,omitempty"`
	CreatedAt    *string `json:"data_criacao,omitempty"`
}

// Permission is an access group a user belongs to.
type Permission struct {
	ID   int    `json:"id_permissao"`
	Name string `json:"nome_grupo"`
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserCreate is the payload for registering or creating an account.
type UserCreate struct {
	Username     string  `json:"utilizador"`
	Password     string  `json:"password"`
	FullName     *string `json:"nome_completo,omitempty"`
	Email        string  `json:"email"`
	Phone        *string `json:"telefone,omitempty"`
	Company      *string `json:"empresa,omitempty"`
	Active       *int    `json:"activo,omitempty"`
	PermissionID int     `json:"id_permissao"`
}

// ProfileUpdate carries the editable fields of the caller's own profile.
type ProfileUpdate struct {
	FullName *string `json:"nome_completo,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"telefone,omitempty"`
	Company  *string `json:"empresa,omitempty"`
}

// PasswordChange carries the current and the replacement password.
type PasswordChange struct {
	Current string `json:"password_actual"`
	New     string `json:"password_nova"`
}
