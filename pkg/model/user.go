package model

// Conventional user roles. New users are created with RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
