package monzo

import (
	"context"

	"github.com/pkg/errors"
)

// pingService implements the PingService interface
type pingService struct {
	client *Client
}

// WhoAmI calls the identity endpoint with the configured credential
func (s *pingService) WhoAmI(ctx context.Context) (*Identity, error) {
	var result Identity

	if err := s.client.get(ctx, "/ping/whoami", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to verify identity")
	}

	return &result, nil
}
