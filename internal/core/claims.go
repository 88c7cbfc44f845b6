package core

import "github.com/golang-jwt/jwt/v4"

type Claims struct {
	Account string `json:"account"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}
