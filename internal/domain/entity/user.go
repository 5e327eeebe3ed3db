package entity

import "time"

// User usuario del sistema. Referencia a Role (RBAC) y a un estado de la
// categoría "user".
type User struct {
	ID           string
	Email        string // único
	PasswordHash string
	Name         string
	RoleID       string
	StatusID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role rol con un conjunto de permisos (muchos a muchos, sin atributos en la arista).
type Role struct {
	ID        string
	Name      string // único
	CreatedAt time.Time
}

// Permission permiso individual asignable a roles.
type Permission struct {
	ID          string
	Name        string // único
	Description string
	CreatedAt   time.Time
}
