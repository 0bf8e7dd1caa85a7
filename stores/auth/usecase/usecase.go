package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/ethereum"
	"github.com/shery8595/fhe-auction-sub000/base/log"
	"github.com/shery8595/fhe-auction-sub000/domain"
	"github.com/shery8595/fhe-auction-sub000/domain/keys"
	"github.com/shery8595/fhe-auction-sub000/service/redis"
)

const nonceTTL = 10 * time.Minute

type AuthUseCaseCfg struct {
	JwtSecret          string
	SigningMsgTemplate string
	Redis              redis.Service
}

type impl struct {
	jwtSecret          []byte
	signingMsgTemplate string
	redis              redis.Service
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	return &impl{
		jwtSecret:          []byte(cfg.JwtSecret),
		signingMsgTemplate: cfg.SigningMsgTemplate,
		redis:              cfg.Redis,
	}
}

func nonceKey(address domain.Address) string {
	return keys.RedisKey(keys.PfxAuthNonce, address.ToLowerStr())
}

func (im *impl) GetNonce(c ctx.Ctx, address domain.Address) (string, error) {
	if address.IsEmpty() {
		return "", domain.ErrInvalidAddress
	}

	nonce := uuid.NewString()
	if err := im.redis.Set(c, nonceKey(address), []byte(nonce), nonceTTL); err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("failed to redis.Set")
		return "", err
	}
	return nonce, nil
}

func (im *impl) SignToken(c ctx.Ctx, address domain.Address, signature string) (string, error) {
	nonce, err := im.redis.Get(c, nonceKey(address))
	if err == redis.ErrNotFound {
		return "", domain.ErrInvalidSignature
	} else if err != nil {
		return "", err
	}

	msg := fmt.Sprintf(im.signingMsgTemplate, string(nonce))
	valid, err := ethereum.ValidateMsgSignature([]byte(msg), signature, address.ToLowerStr())
	if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Warn("failed to ethereum.ValidateMsgSignature")
		return "", domain.ErrInvalidSignature
	}
	if !valid {
		return "", domain.ErrInvalidSignature
	}

	// nonce is single use
	if err := im.redis.Del(c, nonceKey(address)); err != nil {
		c.WithField("err", err).Warn("failed to redis.Del")
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(c ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}

	return "", domain.ErrInvalidSignature
}
