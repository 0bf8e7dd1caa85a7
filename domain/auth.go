package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/shery8595/fhe-auction-sub000/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"` // name data for backward compatibility
	jwt.StandardClaims
}

// AuthUsecase implements wallet-signature login. A caller fetches a one-time
// nonce, signs the message template rendered with it and trades the
// signature for a bearer token.
type AuthUsecase interface {
	GetNonce(ctx ctx.Ctx, address Address) (string, error)
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
