// Package addresscheck provides the client for the external address
// verification service. The service answers one question per address: does it
// exist, and is it well formed.
package addresscheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// ServiceName identifies the verification service in remote-service failures.
const ServiceName = "AddressVerification"

type checkRequest struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	AddressLine4 string `json:"addressLine4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
}

// Client implements AddressChecker against the verification service's HTTP
// API. The service's two domain rejections map to the port's sentinel errors;
// transport trouble and unexpected statuses surface as RemoteServiceError.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Check submits the address for verification.
func (c *Client) Check(ctx context.Context, address order.UnvalidatedAddress) (order.CheckedAddress, error) {
	body, err := json.Marshal(checkRequest{
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		AddressLine3: address.AddressLine3,
		AddressLine4: address.AddressLine4,
		City:         address.City,
		ZipCode:      address.ZipCode,
	})
	if err != nil {
		return order.CheckedAddress{}, err
	}

	endpoint := c.baseURL + "/check"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return order.CheckedAddress{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return order.CheckedAddress{}, c.remoteFailure(endpoint, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return order.NewCheckedAddress(address), nil
	case http.StatusUnprocessableEntity:
		return order.CheckedAddress{}, ports.ErrAddressInvalidFormat
	case http.StatusNotFound:
		return order.CheckedAddress{}, ports.ErrAddressNotFound
	default:
		return order.CheckedAddress{}, c.remoteFailure(endpoint,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
}

func (c *Client) remoteFailure(endpoint string, cause error) error {
	return order.NewRemoteServiceError(order.ServiceInfo{
		Name:     ServiceName,
		Endpoint: endpoint,
	}, cause)
}
