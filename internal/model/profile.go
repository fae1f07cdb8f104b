package model

// Meta describes one reconciliation run.
type Meta struct {
	InvestigationID  string  `json:"investigation_id"`
	Query            string  `json:"query,omitempty"`
	DurationSeconds  float64 `json:"duration_seconds,omitempty"`
	DataSourcesCount int     `json:"data_sources_count"`
	ConfidenceScore  float64 `json:"confidence_score"`
}

// Completeness measures how many fact categories carry at least one record.
type Completeness struct {
	Percentage  int             `json:"percentage"`
	Fields      map[string]bool `json:"fields"`
	FilledCount int             `json:"filled_count"`
	TotalCount  int             `json:"total_count"`
}

// GeoSummary aggregates every coordinate discovered across platforms.
// Primary prefers the phone-lookup provider's pin when one exists.
type GeoSummary struct {
	Primary *Coordinate  `json:"primary,omitempty"`
	All     []Coordinate `json:"all,omitempty"`
	Center  *Coordinate  `json:"center,omitempty"`
	Bounds  *Bounds      `json:"bounds,omitempty"`
}

// Bounds is a lat/lon bounding box over a coordinate set.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Demographics carries the loose identity attributes providers report.
type Demographics struct {
	Genders    []string `json:"genders,omitempty"`
	BirthDates []string `json:"birth_dates,omitempty"`
	BirthYears []string `json:"birth_years,omitempty"`
	Ages       []string `json:"ages,omitempty"`
	Languages  []string `json:"languages,omitempty"`
}

// Digital is the subject's digital footprint outside platform accounts.
type Digital struct {
	IPs  []string `json:"ips,omitempty"`
	URLs []string `json:"urls,omitempty"`
}

// UnifiedProfile is the dossier: every canonical fact bucket for one query.
// Buckets are sorted descending by confidence; ties keep first-seen order.
type UnifiedProfile struct {
	Meta         Meta               `json:"meta"`
	PrimaryName  string             `json:"primary_name,omitempty"`
	Names        []string           `json:"names,omitempty"`
	Phones       []Fact[Phone]      `json:"phones,omitempty"`
	Emails       []Fact[Email]      `json:"emails,omitempty"`
	Addresses    []Fact[Address]    `json:"addresses,omitempty"`
	Employment   []Fact[Employment] `json:"employment,omitempty"`
	Relatives    []Fact[Relative]   `json:"relatives,omitempty"`
	Properties   []Fact[Property]   `json:"properties,omitempty"`
	Leaks        []Fact[LeakSource] `json:"leaks,omitempty"`
	Demographics Demographics       `json:"demographics,omitempty"`
	Carriers     []string           `json:"carriers,omitempty"`
	Digital      Digital            `json:"digital,omitempty"`
	Geo          GeoSummary         `json:"geo,omitempty"`
	Completeness Completeness       `json:"completeness"`
}

// PlatformBuckets partitions displayable platforms for card-grid rendering.
type PlatformBuckets struct {
	Found    []*Platform `json:"found"`
	Errors   []*Platform `json:"errors"`
	NotFound []*Platform `json:"not_found"`
}

// Dossier is the full output of one reconciliation run.
type Dossier struct {
	Profile   *UnifiedProfile `json:"profile,omitempty"`
	Platforms PlatformBuckets `json:"platforms"`
}
