package utils

import (
	"fmt"
	"tchadskills/config"
	"tchadskills/models"
	"time"

	"github.com/go-resty/resty/v2"
)

// CollectionResponse is the payload the mobile-money aggregator returns for
// collection requests and status checks.
type CollectionResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// MobileMoneyClient talks to the mobile-money aggregator API for
// Moov Money, Airtel Money and Tigo Cash collections.
type MobileMoneyClient struct {
	client *resty.Client
}

func NewMobileMoneyClient() *MobileMoneyClient {
	client := resty.New().
		SetBaseURL(config.AppConfig.MobileMoneyApiURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &MobileMoneyClient{client: client}
}

func (m *MobileMoneyClient) apiKeyFor(method string) (string, error) {
	switch method {
	case models.MethodMoovMoney:
		return config.AppConfig.MoovMoneyApiKey, nil
	case models.MethodAirtelMoney:
		return config.AppConfig.AirtelMoneyApiKey, nil
	case models.MethodTigoCash:
		return config.AppConfig.TigoCashApiKey, nil
	default:
		return "", fmt.Errorf("unsupported payment method: %s", method)
	}
}

// InitiateCollection asks the provider to debit the subscriber's phone.
// The provider resolves asynchronously; the returned status is almost
// always pending.
func (m *MobileMoneyClient) InitiateCollection(method, phone string, amount float64, currency, transactionID string) (*CollectionResponse, error) {
	apiKey, err := m.apiKeyFor(method)
	if err != nil {
		return nil, err
	}

	var result CollectionResponse
	resp, err := m.client.R().
		SetAuthToken(apiKey).
		SetBody(map[string]interface{}{
			"provider":     method,
			"phone_number": phone,
			"amount":       amount,
			"currency":     currency,
			"external_id":  transactionID,
		}).
		SetResult(&result).
		Post("/collections")
	if err != nil {
		return nil, fmt.Errorf("mobile money request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("mobile money API error (%d): %s", resp.StatusCode(), resp.String())
	}

	return &result, nil
}

// CheckStatus polls the provider for the current state of a collection.
// The raw body is returned so callers can persist it for audit.
func (m *MobileMoneyClient) CheckStatus(method, transactionID string) (*CollectionResponse, []byte, error) {
	apiKey, err := m.apiKeyFor(method)
	if err != nil {
		return nil, nil, err
	}

	var result CollectionResponse
	resp, err := m.client.R().
		SetAuthToken(apiKey).
		SetResult(&result).
		Get("/collections/" + transactionID)
	if err != nil {
		return nil, nil, fmt.Errorf("mobile money status check failed: %w", err)
	}
	if resp.IsError() {
		return nil, nil, fmt.Errorf("mobile money API error (%d): %s", resp.StatusCode(), resp.String())
	}

	return &result, resp.Body(), nil
}

// MapProviderStatus translates the aggregator's status vocabulary into ours.
func MapProviderStatus(providerStatus string) string {
	switch providerStatus {
	case "SUCCESSFUL", "COMPLETED":
		return models.PaymentStatusCompleted
	case "FAILED", "REJECTED", "EXPIRED":
		return models.PaymentStatusFailed
	default:
		return models.PaymentStatusPending
	}
}
