package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"PriceScout/internal/model"
)

// RESTProvider implements Provider against the price-comparison REST API.
type RESTProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTProvider creates a new provider with optional proxy support.
func NewRESTProvider(baseURL, apiKey, proxyURL string) *RESTProvider {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RESTProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (p *RESTProvider) Name() string { return "rest" }

func (p *RESTProvider) FetchUpdates(productID string) ([]model.RawObservation, error) {
	endpoint := fmt.Sprintf("%s/api/v1/products/%s/updates", p.BaseURL, url.PathEscape(productID))
	var updates []model.RawObservation
	if err := p.getJSON(endpoint, &updates); err != nil {
		return nil, fmt.Errorf("fetch updates: %w", err)
	}
	return updates, nil
}

func (p *RESTProvider) FetchOffers(productID string) ([]model.OfferEntry, error) {
	endpoint := fmt.Sprintf("%s/api/v1/products/%s/offers", p.BaseURL, url.PathEscape(productID))
	var offers []model.OfferEntry
	if err := p.getJSON(endpoint, &offers); err != nil {
		return nil, fmt.Errorf("fetch offers: %w", err)
	}
	return offers, nil
}

func (p *RESTProvider) getJSON(endpoint string, out any) error {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return err
	}
	if p.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.APIKey)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
