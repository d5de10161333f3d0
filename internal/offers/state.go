package offers

import (
	"encoding/json"
	"os"

	"PriceScout/internal/model"
)

// LoadEntries reads the offer list from a JSON file. Returns an empty list
// if the file doesn't exist.
func LoadEntries(filePath string) ([]model.OfferEntry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var entries []model.OfferEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SaveEntries writes the offer list to a JSON file.
func SaveEntries(filePath string, entries []model.OfferEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
