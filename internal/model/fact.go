package model

// Fact is a deduplicated, confidence-scored record of one atomic truth.
// Payload holds the display fields of the highest-confidence contributor,
// Confidence the max over all contributors, Sources the provenance union.
type Fact[T any] struct {
	Key        string   `json:"key"`
	Payload    T        `json:"payload"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources"`
}

// Phone is a reverse-lookup phone record.
type Phone struct {
	Number     string   `json:"number"`
	Display    string   `json:"display,omitempty"`
	Type       string   `json:"type,omitempty"`
	Carrier    string   `json:"carrier,omitempty"`
	Location   string   `json:"location,omitempty"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources,omitempty"`
	LastSeen   string   `json:"last_seen,omitempty"`
}

// Email is a discovered email address.
type Email struct {
	Address    string   `json:"address"`
	Normalized string   `json:"normalized,omitempty"`
	Type       string   `json:"type,omitempty"`
	Domain     string   `json:"domain,omitempty"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources,omitempty"`
	LastSeen   string   `json:"last_seen,omitempty"`
}

// Address is a postal address record.
type Address struct {
	Street     string   `json:"street,omitempty"`
	City       string   `json:"city,omitempty"`
	State      string   `json:"state,omitempty"`
	PostalCode string   `json:"postal_code,omitempty"`
	Country    string   `json:"country,omitempty"`
	Role       string   `json:"role,omitempty"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources,omitempty"`
}

// Job is a single raw employment entry before company-level consolidation.
type Job struct {
	Company    string  `json:"company"`
	Title      string  `json:"title,omitempty"`
	StartDate  string  `json:"start_date,omitempty"`
	EndDate    string  `json:"end_date,omitempty"`
	Location   string  `json:"location,omitempty"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source,omitempty"`
}

// Position is one role held at a company.
type Position struct {
	Title      string  `json:"title"`
	StartDate  string  `json:"start_date,omitempty"`
	EndDate    string  `json:"end_date,omitempty"`
	Location   string  `json:"location,omitempty"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source,omitempty"`
}

// Employment consolidates every position held at one company. Positions are
// ordered newest first; LatestTitle mirrors the first entry for display.
type Employment struct {
	Company     string     `json:"company"`
	Positions   []Position `json:"positions"`
	LatestTitle string     `json:"latest_title,omitempty"`
}

// Relative is a family or household connection.
type Relative struct {
	Name         string   `json:"name"`
	Relationship string   `json:"relationship,omitempty"`
	Confidence   float64  `json:"confidence"`
	Sources      []string `json:"sources,omitempty"`
}

// Property is a real-estate record.
type Property struct {
	Address        string   `json:"address"`
	City           string   `json:"city,omitempty"`
	State          string   `json:"state,omitempty"`
	PostalCode     string   `json:"postal_code,omitempty"`
	PurchaseYear   int      `json:"purchase_year,omitempty"`
	BuiltYear      int      `json:"built_year,omitempty"`
	EstimatedValue string   `json:"estimated_value,omitempty"`
	Bedrooms       int      `json:"bedrooms,omitempty"`
	Bathrooms      int      `json:"bathrooms,omitempty"`
	SquareFeet     int      `json:"square_feet,omitempty"`
	PropertyType   string   `json:"property_type,omitempty"`
	Confidence     float64  `json:"confidence"`
	Sources        []string `json:"sources,omitempty"`
}

// LeakedCredential is one raw breach entry before per-source rollup.
type LeakedCredential struct {
	LeakSource         string `json:"leak_source"`
	Email              string `json:"email,omitempty"`
	LeakDate           string `json:"leak_date,omitempty"`
	PlaintextAvailable bool   `json:"plaintext_available,omitempty"`
}

// LeakSource rolls up every credential leaked by one breach. Unlike the other
// fact types these are cumulative: counts sum and emails union across entries.
type LeakSource struct {
	Source       string   `json:"source"`
	Count        int      `json:"count"`
	Emails       []string `json:"emails,omitempty"`
	LatestLeak   string   `json:"latest_leak,omitempty"`
	HasPlaintext bool     `json:"has_plaintext"`
}

// Coordinate is a geographic point attributed to the platform it came from.
type Coordinate struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Source string  `json:"source,omitempty"`
}
