package provider

import "PriceScout/internal/model"

// Provider defines the interface to the external fetch collaborator. It
// delivers raw price update records and the current per-retailer offer list
// for one product; everything beyond that (retries, auth flows) lives on the
// other side of this interface.
type Provider interface {
	FetchUpdates(productID string) ([]model.RawObservation, error)
	FetchOffers(productID string) ([]model.OfferEntry, error)
	Name() string
}

// MockProvider returns controllable fixed data for development and testing.
type MockProvider struct {
	Updates []model.RawObservation
	Offers  []model.OfferEntry
	Err     error
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) FetchUpdates(_ string) ([]model.RawObservation, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Updates, nil
}

func (m *MockProvider) FetchOffers(_ string) ([]model.OfferEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Offers, nil
}
