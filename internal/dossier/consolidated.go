package dossier

import (
	"strconv"
	"strings"

	"github.com/sells-group/dossier-cli/internal/extract"
	"github.com/sells-group/dossier-cli/internal/model"
	"github.com/sells-group/dossier-cli/internal/normalize"
)

// SourceInvestigate is the second resume-style provider. Like the
// consolidated lookup it feeds the unified profile, not the card list.
const SourceInvestigate = "investigate_api"

// facts accumulates raw fact entries harvested from the resume-style
// providers before per-category deduplication.
type facts struct {
	PrimaryName string
	Names       []string
	Phones      []model.Phone
	Emails      []model.Email
	Addresses   []model.Address
	Jobs        []model.Job
	Relatives   []model.Relative
	Properties  []model.Property
	Credentials []model.LeakedCredential
	Genders     []string
	BirthDates  []string
	BirthYears  []string
	Ages        []string
	Languages   []string
	Carriers    []string
	IPs         []string
	URLs        []string
	Coordinates []model.Coordinate

	InvestigationID  string
	DurationSeconds  float64
	DataSourcesCount int
	ConfidenceScore  float64
}

// harvest pulls facts out of one resume-style provider result. The payload
// comes in two shapes: the consolidated lookup format and the investigation
// API's processed format; a payload carrying both is read as consolidated.
func (f *facts) harvest(result model.RawResult) {
	root, ok := normalize.Object(result.Data)
	if !ok {
		return
	}
	data := root
	if inner, ok := root["data"].(map[string]any); ok {
		data = inner
	}

	f.InvestigationID = firstNonEmpty(f.InvestigationID, str(data["investigation_id"]))
	if v, ok := toFloat(data["duration_seconds"]); ok {
		f.DurationSeconds = v
	}
	if v, ok := toFloat(data["data_sources_count"]); ok {
		f.DataSourcesCount = int(v)
	}

	processed, hasProcessed := data["processed"].(map[string]any)
	_, hasConsolidated := data["consolidated"].(map[string]any)
	if hasProcessed && !hasConsolidated {
		f.harvestProcessed(processed, data)
		return
	}
	f.harvestConsolidated(data)
}

func (f *facts) harvestConsolidated(data map[string]any) {
	consolidated, _ := data["consolidated"].(map[string]any)
	primary, _ := data["primary"].(map[string]any)

	f.Names = append(f.Names, strSlice(dig(consolidated, "names", "full_names"))...)
	f.Names = append(f.Names, strSlice(data["names"])...)
	f.Names = append(f.Names, strSlice(data["name_variants"])...)
	if n := str(primary["caller_id_name"]); n != "" {
		f.Names = append(f.Names, n)
	}

	for _, number := range strSlice(dig(consolidated, "contact", "phones")) {
		f.Phones = append(f.Phones, model.Phone{
			Number:  number,
			Display: number,
			Sources: []string{"external_lookup"},
		})
	}
	for _, number := range strSlice(dig(data, "contact", "phones")) {
		f.Phones = append(f.Phones, model.Phone{
			Number:  number,
			Display: number,
			Sources: []string{"external_lookup"},
		})
	}

	for _, address := range strSlice(dig(consolidated, "contact", "emails")) {
		f.Emails = append(f.Emails, model.Email{Address: address, Sources: []string{"external_lookup"}})
	}
	for _, address := range strSlice(dig(data, "contact", "emails")) {
		f.Emails = append(f.Emails, model.Email{Address: address, Sources: []string{"external_lookup"}})
	}

	for _, obj := range objSlice(dig(consolidated, "address", "addresses"), dig(data, "address", "addresses")) {
		f.Addresses = append(f.Addresses, model.Address{
			Street:     firstNonEmpty(str(obj["address"]), str(obj["street"])),
			City:       str(obj["city"]),
			State:      str(obj["state"]),
			PostalCode: firstNonEmpty(str(obj["postcode"]), str(obj["postal_code"])),
			Sources:    []string{"external_lookup"},
		})
	}

	for _, obj := range objSlice(dig(consolidated, "employment", "records"), dig(data, "employment", "records")) {
		f.Jobs = append(f.Jobs, model.Job{
			Company:   str(obj["company"]),
			Title:     str(obj["title"]),
			StartDate: str(obj["start_date"]),
			Location:  firstNonEmpty(str(obj["region"]), str(obj["location"])),
			Source:    "external_lookup",
		})
	}

	for _, v := range append(anySlice(consolidated["relatives"]), anySlice(data["relatives"])...) {
		name := str(v)
		if name == "" {
			if obj, ok := v.(map[string]any); ok {
				name = str(obj["name"])
			}
		}
		if name != "" {
			f.Relatives = append(f.Relatives, model.Relative{Name: name, Sources: []string{"external_lookup"}})
		}
	}

	f.Genders = append(f.Genders, strSlice(dig(consolidated, "demographics", "genders"))...)
	f.Genders = append(f.Genders, strSlice(dig(data, "demographics", "genders"))...)
	f.BirthDates = append(f.BirthDates, strSlice(dig(consolidated, "demographics", "birth_dates"))...)
	f.BirthDates = append(f.BirthDates, strSlice(dig(data, "demographics", "birth_dates"))...)
	f.BirthYears = append(f.BirthYears, strSlice(dig(consolidated, "demographics", "birth_years"))...)
	f.BirthYears = append(f.BirthYears, strSlice(dig(data, "demographics", "birth_years"))...)
	f.Ages = append(f.Ages, strSlice(dig(data, "demographics", "ages"))...)

	if carrier := str(primary["carrier"]); carrier != "" {
		f.Carriers = append(f.Carriers, carrier)
	}
	f.Carriers = append(f.Carriers, strSlice(data["carriers"])...)

	for _, obj := range objSlice(dig(consolidated, "location", "coordinates"), dig(data, "location", "coordinates")) {
		if c, ok := extract.Coords(obj); ok {
			c.Source = "external_lookup"
			f.Coordinates = append(f.Coordinates, c)
		}
	}

	f.harvestSources(data["sources"])
	f.harvestRegistrations(data["account_registrations"])

	if v, ok := toFloat(data["confidence_score"]); ok {
		f.ConfidenceScore = v
	}
}

func (f *facts) harvestProcessed(processed, data map[string]any) {
	identity, _ := processed["identity"].(map[string]any)

	if n := str(identity["primary_name"]); n != "" {
		f.PrimaryName = n
		f.Names = append(f.Names, n)
	}
	f.Names = append(f.Names, strSlice(identity["name_variants"])...)

	if g := str(identity["gender"]); g != "" {
		f.Genders = append(f.Genders, g)
	}
	if bd := str(identity["birthdate"]); bd != "" {
		f.BirthDates = append(f.BirthDates, bd)
		if year, _, ok := strings.Cut(bd, "-"); ok {
			f.BirthYears = append(f.BirthYears, year)
		}
	}
	if age, ok := toFloat(identity["age"]); ok && age > 0 {
		f.Ages = append(f.Ages, strconv.Itoa(int(age)))
	}
	f.Languages = append(f.Languages, strSlice(identity["languages"])...)
	if v, ok := toFloat(identity["confidence_score"]); ok {
		f.ConfidenceScore = v
	}

	if carrier := str(dig(processed, "contacts", "phones", "primary", "carrier")); carrier != "" {
		f.Carriers = append(f.Carriers, carrier)
	}
	for _, v := range anySlice(dig(processed, "contacts", "phones", "all")) {
		switch entry := v.(type) {
		case string:
			f.Phones = append(f.Phones, model.Phone{Number: entry, Display: entry})
		case map[string]any:
			number := firstNonEmpty(str(entry["number"]), str(entry["display"]), str(entry["number_e164"]))
			if number == "" {
				continue
			}
			conf, _ := toFloat(entry["confidence"])
			phone := model.Phone{
				Number:     number,
				Display:    firstNonEmpty(str(entry["display"]), number),
				Type:       str(entry["type"]),
				Carrier:    str(entry["carrier"]),
				Location:   str(entry["location"]),
				Confidence: conf,
				Sources:    sourceList(entry["source"]),
				LastSeen:   str(entry["last_seen"]),
			}
			f.Phones = append(f.Phones, phone)
			if phone.Carrier != "" {
				f.Carriers = append(f.Carriers, phone.Carrier)
			}
		}
	}

	for _, v := range anySlice(dig(processed, "contacts", "emails", "all")) {
		switch entry := v.(type) {
		case string:
			f.Emails = append(f.Emails, model.Email{Address: entry})
		case map[string]any:
			address := firstNonEmpty(str(entry["address"]), str(entry["normalized"]))
			if address == "" {
				continue
			}
			conf, _ := toFloat(entry["confidence"])
			f.Emails = append(f.Emails, model.Email{
				Address:    address,
				Normalized: str(entry["normalized"]),
				Type:       str(entry["type"]),
				Domain:     str(entry["domain"]),
				Confidence: conf,
				Sources:    sourceList(entry["source"]),
				LastSeen:   str(entry["last_seen"]),
			})
		}
	}

	for _, obj := range objSlice(dig(processed, "geographic", "addresses")) {
		conf, _ := toFloat(obj["confidence"])
		f.Addresses = append(f.Addresses, model.Address{
			Street:     firstNonEmpty(str(obj["street"]), str(obj["address"])),
			City:       str(obj["city"]),
			State:      str(obj["state"]),
			PostalCode: firstNonEmpty(str(obj["postal_code"]), str(obj["postcode"])),
			Country:    str(obj["country"]),
			Role:       str(obj["role"]),
			Confidence: conf,
			Sources:    sourceList(obj["source"]),
		})
	}

	if geolocation, ok := dig(processed, "geographic", "geolocation").(map[string]any); ok {
		if c, found := extract.Coords(geolocation); found {
			c.Source = SourceInvestigate
			f.Coordinates = append(f.Coordinates, c)
		}
	}

	for _, record := range objSlice(dig(processed, "professional", "employment")) {
		company := str(record["company"])
		positions := objSlice(record["positions"])
		if len(positions) == 0 {
			if title := str(record["latest_position"]); title != "" {
				f.Jobs = append(f.Jobs, model.Job{Company: company, Title: title, Source: SourceInvestigate})
			}
			continue
		}
		for _, pos := range positions {
			conf, _ := toFloat(pos["confidence"])
			f.Jobs = append(f.Jobs, model.Job{
				Company:    company,
				Title:      str(pos["title"]),
				StartDate:  str(pos["start_date"]),
				EndDate:    str(pos["end_date"]),
				Location:   str(pos["location"]),
				Confidence: conf,
				Source:     firstNonEmpty(str(pos["source"]), SourceInvestigate),
			})
		}
	}

	for _, v := range anySlice(dig(processed, "network", "relatives")) {
		switch entry := v.(type) {
		case string:
			if entry != "" {
				f.Relatives = append(f.Relatives, model.Relative{Name: entry})
			}
		case map[string]any:
			name := str(entry["name"])
			if name == "" {
				continue
			}
			conf, _ := toFloat(entry["confidence"])
			f.Relatives = append(f.Relatives, model.Relative{
				Name:         name,
				Relationship: str(entry["relationship"]),
				Confidence:   conf,
				Sources:      sourceList(entry["sources"]),
			})
		}
	}

	for _, obj := range objSlice(dig(processed, "financial", "properties")) {
		conf, _ := toFloat(obj["confidence"])
		f.Properties = append(f.Properties, model.Property{
			Address:        str(obj["address"]),
			City:           str(obj["city"]),
			State:          str(obj["state"]),
			PostalCode:     firstNonEmpty(str(obj["postal_code"]), str(obj["postcode"])),
			PurchaseYear:   toInt(obj["purchase_year"]),
			BuiltYear:      toInt(obj["built_year"]),
			EstimatedValue: str(obj["estimated_value"]),
			Bedrooms:       toInt(obj["bedrooms"]),
			Bathrooms:      toInt(obj["bathrooms"]),
			SquareFeet:     toInt(obj["square_feet"]),
			PropertyType:   str(obj["property_type"]),
			Confidence:     conf,
			Sources:        sourceList(obj["sources"]),
		})
	}

	creds := dig(processed, "security", "leaked_credentials")
	if _, ok := creds.([]any); !ok {
		creds = dig(data, "person_profile", "leaked_credentials")
	}
	for _, obj := range objSlice(creds) {
		f.Credentials = append(f.Credentials, model.LeakedCredential{
			LeakSource:         str(obj["leak_source"]),
			Email:              str(obj["email"]),
			LeakDate:           str(obj["leak_date"]),
			PlaintextAvailable: normalize.Bool(obj["plaintext_available"]),
		})
	}

	f.harvestRegistrations(dig(data, "person_profile", "account_registrations"))
}

// harvestSources walks the loose per-source record dump for digital-footprint
// fields. Sources hold either a record array directly or a map of database
// name to record array.
func (f *facts) harvestSources(v any) {
	sources, ok := v.(map[string]any)
	if !ok {
		return
	}
	for _, sourceData := range sources {
		switch value := sourceData.(type) {
		case []any:
			f.harvestRecords(value)
		case map[string]any:
			for _, dbRecords := range value {
				if arr, ok := dbRecords.([]any); ok {
					f.harvestRecords(arr)
				}
			}
		}
	}
}

func (f *facts) harvestRecords(records []any) {
	for _, obj := range objSlice(records) {
		if ip := str(obj["IP"]); ip != "" {
			f.IPs = append(f.IPs, ip)
		}
		if url := str(obj["Url"]); url != "" {
			f.URLs = append(f.URLs, url)
		}
		if site := str(obj["Site"]); site != "" {
			f.URLs = append(f.URLs, site)
		}
	}
}

func (f *facts) harvestRegistrations(v any) {
	for _, obj := range objSlice(v) {
		if ip := str(obj["ip_address"]); ip != "" {
			f.IPs = append(f.IPs, ip)
		}
		if url := str(obj["website"]); url != "" {
			f.URLs = append(f.URLs, url)
		}
	}
}

// dig walks nested objects along path, returning nil when any hop is missing
// or not an object.
func dig(obj map[string]any, path ...string) any {
	var current any = obj
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[key]
	}
	return current
}

func str(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func anySlice(v any) []any {
	arr, _ := v.([]any)
	return arr
}

func strSlice(v any) []string {
	var out []string
	for _, item := range anySlice(v) {
		if s := str(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// objSlice flattens any number of []any values into their object elements.
func objSlice(vs ...any) []map[string]any {
	var out []map[string]any
	for _, v := range vs {
		for _, item := range anySlice(v) {
			if obj, ok := item.(map[string]any); ok {
				out = append(out, obj)
			}
		}
	}
	return out
}

// sourceList accepts the provider's source field, which is sometimes a string
// and sometimes an array.
func sourceList(v any) []string {
	if s := str(v); s != "" {
		return []string{s}
	}
	return strSlice(v)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toInt(v any) int {
	f, ok := toFloat(v)
	if !ok {
		return 0
	}
	return int(f)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
