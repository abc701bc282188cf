package shiprocket

import (
	"nexye/internal/core/ports"
)

// Gateway implements ports.CarrierGateway over the Client. Every call
// authenticates through the TokenProvider first, so an expired token
// costs one extra login rather than a failed order.
type Gateway struct {
	client *Client
	tokens ports.TokenProvider
}

// NewGateway creates the gateway.
func NewGateway(client *Client, tokens ports.TokenProvider) *Gateway {
	return &Gateway{
		client: client,
		tokens: tokens,
	}
}
