package custody

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	bCtx "github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/log"
	"github.com/shery8595/fhe-auction-sub000/domain"
)

const (
	bearerKey = "x-api-key"
)

type client struct {
	client   http.Client
	endpoint string
	timeout  time.Duration
	apikey   string
}

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:   cfg.HttpClient,
		endpoint: cfg.Endpoint,
		timeout:  cfg.Timeout,
		apikey:   cfg.Apikey,
	}
}

type deployAuctionReq struct {
	Seller          domain.Address   `json:"seller"`
	DurationMinutes int64            `json:"durationMinutes"`
	MinimumBid      domain.WeiAmount `json:"minimumBid"`
}

type deployAuctionResp struct {
	Address domain.Address `json:"address"`
}

func (c *client) DeployAuction(ctx bCtx.Ctx, seller domain.Address, durationMinutes int64, minimumBid domain.WeiAmount) (domain.Address, error) {
	url := fmt.Sprintf("%s/escrows", c.endpoint)
	body, err := c.post(ctx, url, &deployAuctionReq{
		Seller:          seller,
		DurationMinutes: durationMinutes,
		MinimumBid:      minimumBid,
	})
	if err != nil {
		ctx.WithFields(log.Fields{"seller": seller, "err": err}).Error("deploy auction failed")
		return "", err
	}

	res := deployAuctionResp{}
	if err := json.Unmarshal(body, &res); err != nil {
		ctx.WithFields(log.Fields{"body": string(body), "err": err}).Error("json.Unmarshal failed")
		return "", err
	}
	return res.Address.ToLower(), nil
}

type holdsNftResp struct {
	Holds bool `json:"holds"`
}

func (c *client) HoldsNFT(ctx bCtx.Ctx, contract domain.Address, tokenId domain.TokenId, holder domain.Address) (bool, error) {
	url := fmt.Sprintf("%s/nfts/%s/%s/holder/%s", c.endpoint, contract.ToLowerStr(), tokenId, holder.ToLowerStr())
	body, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{"contract": contract, "tokenId": tokenId, "err": err}).Error("holds nft query failed")
		return false, err
	}

	res := holdsNftResp{}
	if err := json.Unmarshal(body, &res); err != nil {
		ctx.WithFields(log.Fields{"body": string(body), "err": err}).Error("json.Unmarshal failed")
		return false, err
	}
	return res.Holds, nil
}

type transferNativeReq struct {
	From   domain.Address   `json:"from"`
	To     domain.Address   `json:"to"`
	Amount domain.WeiAmount `json:"amount"`
}

func (c *client) TransferNative(ctx bCtx.Ctx, from, to domain.Address, amount domain.WeiAmount) error {
	url := fmt.Sprintf("%s/transfers/native", c.endpoint)
	if _, err := c.post(ctx, url, &transferNativeReq{From: from, To: to, Amount: amount}); err != nil {
		ctx.WithFields(log.Fields{"from": from, "to": to, "amount": amount, "err": err}).Error("native transfer failed")
		return err
	}
	return nil
}

type transferNftReq struct {
	Contract domain.Address `json:"contract"`
	TokenId  domain.TokenId `json:"tokenId"`
	From     domain.Address `json:"from"`
	To       domain.Address `json:"to"`
}

func (c *client) TransferNFT(ctx bCtx.Ctx, contract domain.Address, tokenId domain.TokenId, from, to domain.Address) error {
	url := fmt.Sprintf("%s/transfers/nft", c.endpoint)
	if _, err := c.post(ctx, url, &transferNftReq{Contract: contract, TokenId: tokenId, From: from, To: to}); err != nil {
		ctx.WithFields(log.Fields{"contract": contract, "tokenId": tokenId, "to": to, "err": err}).Error("nft transfer failed")
		return err
	}
	return nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("NewRequestWithContext failed")
		return nil, err
	}
	return c.send(ctx, req)
}

func (c *client) post(ctx bCtx.Ctx, url string, payload interface{}) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	data, err := json.Marshal(payload)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("json.Marshal failed")
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(data))
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(ctx, req)
}

func (c *client) send(ctx bCtx.Ctx, req *http.Request) ([]byte, error) {
	req.Header.Set(bearerKey, c.apikey)
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{"url": req.URL.String(), "err": err}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{"url": req.URL.String(), "statusCode": resp.StatusCode}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{"url": req.URL.String(), "err": err}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}
