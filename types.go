package eolfetch

import "encoding/json"

// ProductResult pairs a product slug with its fetched release cycles.
// Cycles are kept as raw JSON and passed through to output unmodified.
type ProductResult struct {
	Product string
	Cycles  []json.RawMessage
}

// ProductSummary contains basic information about a catalog entry.
type ProductSummary struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// productListResponse represents the envelope returned by the products
// listing endpoint.
type productListResponse struct {
	SchemaVersion string           `json:"schema_version"`
	Result        []ProductSummary `json:"result"`
	Total         int              `json:"total"`
}
