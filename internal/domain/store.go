package domain

// Store is a retail store suggestion for finding healthier alternatives.
// Which fields are populated depends on the backend: the generative backend
// fills the description fields, the directory backend fills Address.
type Store struct {
	Name                string `json:"name"`
	Description         string `json:"description,omitempty"`
	HealthyAlternatives string `json:"healthyAlternatives,omitempty"`
	SpecialFeatures     string `json:"specialFeatures,omitempty"`
	Address             string `json:"address,omitempty"`
}

// StoreLookupResult carries the outcome of a deadline-bounded store search.
// TimedOut distinguishes deadline expiry from a generic backend failure so
// the presentation layer can word the two differently.
type StoreLookupResult struct {
	Stores   []Store `json:"stores"`
	TimedOut bool    `json:"timedOut"`
}
