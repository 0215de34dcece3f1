package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are carried by seller session tokens.
type Claims struct {
	SellerID  string `json:"seller_id"`
	StoreName string `json:"store_name"`
	jwt.RegisteredClaims
}
