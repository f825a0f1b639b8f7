package domain

// Country is seeded reference data; addresses reference it by ID.
type Country struct {
	ID      int64  `json:"id"`
	ISOCode string `json:"isoCode"`
	Name    string `json:"name"`
}
