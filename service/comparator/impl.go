package comparator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	bCtx "github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/log"
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

type foldBidReq struct {
	AuctionId             string `json:"auctionId"`
	WinnerIndexHandle     string `json:"winnerIndexHandle"`
	WinningBidHandle      string `json:"winningBidHandle"`
	BidderIndex           int    `json:"bidderIndex"`
	EncryptedAmountHandle string `json:"encryptedAmountHandle"`
}

func (c *client) FoldBid(ctx bCtx.Ctx, auctionId string, winnerIndexHandle, winningBidHandle string, bidderIndex int, encryptedAmountHandle string) (*FoldResult, error) {
	url := fmt.Sprintf("%s/fold", c.endpoint)
	body, err := c.post(ctx, url, &foldBidReq{
		AuctionId:             auctionId,
		WinnerIndexHandle:     winnerIndexHandle,
		WinningBidHandle:      winningBidHandle,
		BidderIndex:           bidderIndex,
		EncryptedAmountHandle: encryptedAmountHandle,
	})
	if err != nil {
		ctx.WithFields(log.Fields{"auctionId": auctionId, "err": err}).Error("fold bid failed")
		return nil, err
	}

	res := &FoldResult{}
	if err := json.Unmarshal(body, res); err != nil {
		ctx.WithFields(log.Fields{"body": string(body), "err": err}).Error("json.Unmarshal failed")
		return nil, err
	}
	return res, nil
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
	req.Header.Set(bearerKey, c.apikey)
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{"url": url, "statusCode": resp.StatusCode}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}
