package utils

import (
	"finacademy/config"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// VerifyPayment checks a gateway payment reference against the amount due.
// With no gateway configured the check passes, which keeps local development
// and free-cart flows working.
func VerifyPayment(paymentRef string, amount float64) (bool, error) {
	if config.AppConfig.PaymentApiURL == "" {
		return true, nil
	}

	var result struct {
		Status string  `json:"status"`
		Amount float64 `json:"amount"`
	}

	base := strings.TrimSuffix(config.AppConfig.PaymentApiURL, "/")

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("x-api-key", config.AppConfig.PaymentApiKey).
		SetResult(&result).
		Get(base + "/payments/" + url.PathEscape(paymentRef))
	if err != nil {
		return false, fmt.Errorf("payment lookup failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return false, fmt.Errorf("payment lookup failed: %s", resp.Status())
	}

	if result.Status != "captured" {
		return false, nil
	}
	// Allow for float drift on the gateway side
	if result.Amount+0.01 < amount {
		return false, nil
	}
	return true, nil
}
