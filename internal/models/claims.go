package models

import "github.com/golang-jwt/jwt/v5"

// Roles accepted on service tokens.
const (
	RoleAdmin   = "admin"
	RoleService = "service"
)

// ServiceClaims are the JWT claims carried by service-to-service tokens.
// Tokens are issued by the platform identity service; this application
// only verifies them.
type ServiceClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (c *ServiceClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
