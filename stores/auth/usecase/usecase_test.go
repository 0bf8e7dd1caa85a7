package usecase

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/ethereum"
	"github.com/shery8595/fhe-auction-sub000/domain"
	"github.com/shery8595/fhe-auction-sub000/service/redis"
	mRedis "github.com/shery8595/fhe-auction-sub000/service/redis/mocks"
)

const msgTemplate = "Welcome, sign this one-time code to log in: %s"

func TestSignAndParseToken(t *testing.T) {
	req := require.New(t)
	_ctx := ctx.Background()

	priv, pub, err := ethereum.GenerateKey()
	req.NoError(err)
	address := domain.Address(crypto.PubkeyToAddress(*pub).Hex()).ToLower()

	nonce := "one-time-nonce"
	msg := fmt.Sprintf(msgTemplate, nonce)
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), priv)
	req.NoError(err)

	mockRedis := new(mRedis.Service)
	mockRedis.On("Get", mock.Anything, "authNonce:"+address.ToLowerStr()).Return([]byte(nonce), nil)
	mockRedis.On("Del", mock.Anything, "authNonce:"+address.ToLowerStr()).Return(nil)

	u := New(&AuthUseCaseCfg{
		JwtSecret:          "jwt-secret",
		SigningMsgTemplate: msgTemplate,
		Redis:              mockRedis,
	})

	tkn, err := u.SignToken(_ctx, address, hexutil.Encode(sig))
	req.NoError(err)
	req.NotEmpty(tkn)

	ads, err := u.ParseToken(_ctx, tkn)
	req.NoError(err)
	req.Equal(address.ToLowerStr(), ads)

	mockRedis.AssertCalled(t, "Del", mock.Anything, "authNonce:"+address.ToLowerStr())
}

func TestSignTokenRejectsWrongSigner(t *testing.T) {
	req := require.New(t)
	_ctx := ctx.Background()

	priv, _, err := ethereum.GenerateKey()
	req.NoError(err)
	_, otherPub, err := ethereum.GenerateKey()
	req.NoError(err)
	address := domain.Address(crypto.PubkeyToAddress(*otherPub).Hex()).ToLower()

	nonce := "one-time-nonce"
	msg := fmt.Sprintf(msgTemplate, nonce)
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), priv)
	req.NoError(err)

	mockRedis := new(mRedis.Service)
	mockRedis.On("Get", mock.Anything, mock.Anything).Return([]byte(nonce), nil)

	u := New(&AuthUseCaseCfg{
		JwtSecret:          "jwt-secret",
		SigningMsgTemplate: msgTemplate,
		Redis:              mockRedis,
	})

	_, err = u.SignToken(_ctx, address, hexutil.Encode(sig))
	req.ErrorIs(err, domain.ErrInvalidSignature)
}

func TestSignTokenRequiresNonce(t *testing.T) {
	req := require.New(t)
	_ctx := ctx.Background()

	mockRedis := new(mRedis.Service)
	mockRedis.On("Get", mock.Anything, mock.Anything).Return(nil, redis.ErrNotFound)

	u := New(&AuthUseCaseCfg{
		JwtSecret:          "jwt-secret",
		SigningMsgTemplate: msgTemplate,
		Redis:              mockRedis,
	})

	_, err := u.SignToken(_ctx, "0xce4468e7ce84aceb74363f4ea64e5a038176f369", "0x1234")
	req.ErrorIs(err, domain.ErrInvalidSignature)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	req := require.New(t)
	_ctx := ctx.Background()

	mockRedis := new(mRedis.Service)
	issuer := New(&AuthUseCaseCfg{JwtSecret: "secret-a", SigningMsgTemplate: msgTemplate, Redis: mockRedis})
	parser := New(&AuthUseCaseCfg{JwtSecret: "secret-b", SigningMsgTemplate: msgTemplate, Redis: mockRedis})

	priv, pub, err := ethereum.GenerateKey()
	req.NoError(err)
	address := domain.Address(crypto.PubkeyToAddress(*pub).Hex()).ToLower()

	nonce := "one-time-nonce"
	msg := fmt.Sprintf(msgTemplate, nonce)
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), priv)
	req.NoError(err)

	mockRedis.On("Get", mock.Anything, mock.Anything).Return([]byte(nonce), nil)
	mockRedis.On("Del", mock.Anything, mock.Anything).Return(nil)

	tkn, err := issuer.SignToken(_ctx, address, hexutil.Encode(sig))
	req.NoError(err)

	_, err = parser.ParseToken(_ctx, tkn)
	req.Error(err)
}
