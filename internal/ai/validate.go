package ai

import (
	"encoding/json"
	"fmt"

	"bananadb/internal/domain"
)

// ParseListings parses a provider's raw reply as JSON, requires a top-level
// "listings" array, and filters it down to well-formed listing records:
// make and model must be strings, year, mileage and price must be numbers.
// All other fields are optional and passed through unchecked. Output order
// matches the order of appearance in the reply.
func ParseListings(raw string) ([]domain.ParsedCarListing, error) {
	var envelope struct {
		Listings json.RawMessage `json:"listings"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	// A JSON null unmarshals into a nil slice without error, so it has to
	// be rejected alongside an absent key.
	if len(envelope.Listings) == 0 || string(envelope.Listings) == "null" {
		return nil, fmt.Errorf("%w: response does not contain a listings array", ErrMalformedResponse)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(envelope.Listings, &entries); err != nil {
		return nil, fmt.Errorf("%w: listings is not an array", ErrMalformedResponse)
	}

	valid := make([]domain.ParsedCarListing, 0, len(entries))
	for _, entry := range entries {
		var probe map[string]interface{}
		if err := json.Unmarshal(entry, &probe); err != nil {
			continue
		}
		if !isString(probe["make"]) || !isString(probe["model"]) {
			continue
		}
		if !isNumber(probe["year"]) || !isNumber(probe["mileage"]) || !isNumber(probe["price"]) {
			continue
		}
		var listing domain.ParsedCarListing
		if err := json.Unmarshal(entry, &listing); err != nil {
			continue
		}
		valid = append(valid, listing)
	}

	if len(valid) == 0 {
		return nil, ErrNoValidListings
	}
	return valid, nil
}

func isString(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

func isNumber(v interface{}) bool {
	_, ok := v.(float64)
	return ok
}
