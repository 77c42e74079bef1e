package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"irentstuff-transactions/internal/domain"
	"irentstuff-transactions/internal/logger"
)

// ItemsGateway reads and mutates the availability flag the items service
// keeps per item. Availability writes are authorized with the same bearer
// credential as the request that triggered them.
type ItemsGateway interface {
	GetItem(ctx context.Context, itemID int32) (*domain.Item, error)
	UpdateAvailability(ctx context.Context, token string, itemID int32, availability domain.Availability) error
}

type itemsGateway struct {
	baseURL string
	client  *http.Client
}

func NewItemsGateway(baseURL string) ItemsGateway {
	return &itemsGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *itemsGateway) GetItem(ctx context.Context, itemID int32) (*domain.Item, error) {
	url := fmt.Sprintf("%s/items/%d", g.baseURL, itemID)
	logger.ExternalServiceCall("items", "GetItem", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		logger.ExternalServiceResult("items", "GetItem", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("items service returned status %d: %s", resp.StatusCode, body)
		logger.ExternalServiceResult("items", "GetItem", err)
		return nil, err
	}

	item := &domain.Item{ID: itemID}
	if err := json.NewDecoder(resp.Body).Decode(item); err != nil {
		return nil, err
	}
	logger.ExternalServiceResult("items", "GetItem", nil, "availability", item.Availability)
	return item, nil
}

func (g *itemsGateway) UpdateAvailability(ctx context.Context, token string, itemID int32, availability domain.Availability) error {
	url := fmt.Sprintf("%s/items/%d", g.baseURL, itemID)
	logger.ExternalServiceCall("items", "UpdateAvailability", "url", url, "availability", availability)

	payload, err := json.Marshal(map[string]domain.Availability{"availability": availability})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.ExternalServiceResult("items", "UpdateAvailability", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("items service returned status %d: %s", resp.StatusCode, body)
		logger.ExternalServiceResult("items", "UpdateAvailability", err)
		return err
	}
	logger.ExternalServiceResult("items", "UpdateAvailability", nil)
	return nil
}
