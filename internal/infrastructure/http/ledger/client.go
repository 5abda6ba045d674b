package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/KishoreVB70/icp-marketplace/internal/config"
	domain "github.com/KishoreVB70/icp-marketplace/internal/domain/ledger"
	"github.com/KishoreVB70/icp-marketplace/pkg/logger"
)

// Client talks to the external token ledger service. Every failure comes
// back as a *ledger.TransferError; the call is made exactly once, with the
// client timeout as the only bound.
type Client struct {
	httpClient *http.Client
	cfg        config.LedgerConfig
	log        logger.Logger
}

func NewClient(cfg config.LedgerConfig, log logger.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

type transferResponse struct {
	BlockIndex uint64 `json:"block_index"`
	Error      string `json:"error"`
}

// Transfer executes one allowance transfer from buyer to seller. The ledger
// has already been approved to spend on the buyer's behalf; this draws down
// that allowance.
func (c *Client) Transfer(ctx context.Context, from, to string, amount uint64) (*domain.Receipt, error) {
	if from == "" || to == "" {
		return nil, domain.NewTransferError("transfer source and destination are required")
	}

	base, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, domain.NewTransferError("invalid ledger base url: %v", err)
	}
	u := *base
	u.Path = base.Path + "/transfers"

	body, err := json.Marshal(transferRequest{From: from, To: to, Amount: amount})
	if err != nil {
		return nil, domain.NewTransferError("encode transfer request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewTransferError("build transfer request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Info("initiating allowance transfer",
		logger.String("to", to),
		logger.Uint64("amount", amount),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewTransferError("call ledger: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewTransferError("read ledger response: %v", err)
	}

	var parsed transferResponse
	if len(raw) > 0 {
		// Tolerate non-JSON error bodies; status handling below covers them.
		_ = json.Unmarshal(raw, &parsed)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := parsed.Error
		if msg == "" {
			msg = fmt.Sprintf("ledger status %d", resp.StatusCode)
		}
		c.log.Warn("allowance transfer rejected",
			logger.Int("status", resp.StatusCode),
			logger.String("reason", msg),
		)
		return nil, &domain.TransferError{Message: msg}
	}

	c.log.Info("allowance transfer settled", logger.Uint64("block_index", parsed.BlockIndex))

	return &domain.Receipt{BlockIndex: parsed.BlockIndex}, nil
}
