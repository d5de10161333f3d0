package provider

import (
	"encoding/json"
	"fmt"
	"os"

	"PriceScout/internal/model"
)

// FileProvider replays a fetch payload from a JSON file. Useful for demos
// and for reprocessing a captured response offline.
type FileProvider struct {
	Path string
}

type filePayload struct {
	Updates []model.RawObservation `json:"updates"`
	Offers  []model.OfferEntry     `json:"offers"`
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

func (p *FileProvider) Name() string { return "file" }

func (p *FileProvider) FetchUpdates(_ string) ([]model.RawObservation, error) {
	payload, err := p.load()
	if err != nil {
		return nil, err
	}
	return payload.Updates, nil
}

func (p *FileProvider) FetchOffers(_ string) ([]model.OfferEntry, error) {
	payload, err := p.load()
	if err != nil {
		return nil, err
	}
	return payload.Offers, nil
}

func (p *FileProvider) load() (*filePayload, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	var payload filePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}
	return &payload, nil
}
