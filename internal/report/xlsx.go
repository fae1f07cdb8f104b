// Package report renders an assembled dossier into an analyst spreadsheet.
package report

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/dossier-cli/internal/model"
)

// WriteXLSX writes one workbook per dossier: a profile summary sheet plus one
// sheet per populated fact category and a platform coverage sheet.
func WriteXLSX(d *model.Dossier, path string) error {
	if d == nil || d.Profile == nil {
		return eris.New("report: nil dossier")
	}

	f := xlsx.NewFile()

	if err := addProfileSheet(f, d.Profile); err != nil {
		return err
	}
	if err := addFactSheets(f, d.Profile); err != nil {
		return err
	}
	if err := addPlatformSheet(f, d.Platforms); err != nil {
		return err
	}

	return eris.Wrapf(f.Save(path), "report: save %s", path)
}

func addProfileSheet(f *xlsx.File, p *model.UnifiedProfile) error {
	sheet, err := f.AddSheet("Profile")
	if err != nil {
		return eris.Wrap(err, "report: add profile sheet")
	}

	addPair := func(key, value string) {
		row := sheet.AddRow()
		row.AddCell().Value = key
		row.AddCell().Value = value
	}

	addPair("Investigation", p.Meta.InvestigationID)
	addPair("Query", p.Meta.Query)
	addPair("Primary name", p.PrimaryName)
	addPair("Name variants", strings.Join(p.Names, ", "))
	addPair("Carriers", strings.Join(p.Carriers, ", "))
	addPair("Genders", strings.Join(p.Demographics.Genders, ", "))
	addPair("Birth dates", strings.Join(p.Demographics.BirthDates, ", "))
	addPair("Ages", strings.Join(p.Demographics.Ages, ", "))
	addPair("IPs", strings.Join(p.Digital.IPs, ", "))
	addPair("URLs", strings.Join(p.Digital.URLs, ", "))
	addPair("Data sources", strconv.Itoa(p.Meta.DataSourcesCount))
	addPair("Completeness", strconv.Itoa(p.Completeness.Percentage)+"%")
	addPair("Confidence", strconv.FormatFloat(p.Meta.ConfidenceScore, 'f', 2, 64))

	if p.Geo.Primary != nil {
		addPair("Primary location",
			strconv.FormatFloat(p.Geo.Primary.Lat, 'f', 5, 64)+", "+
				strconv.FormatFloat(p.Geo.Primary.Lon, 'f', 5, 64))
	}

	return nil
}

func addFactSheets(f *xlsx.File, p *model.UnifiedProfile) error {
	if len(p.Phones) > 0 {
		sheet, err := addHeaderSheet(f, "Phones", "Number", "Carrier", "Type", "Confidence", "Sources")
		if err != nil {
			return err
		}
		for _, fact := range p.Phones {
			row := sheet.AddRow()
			row.AddCell().Value = fact.Payload.Number
			row.AddCell().Value = fact.Payload.Carrier
			row.AddCell().Value = fact.Payload.Type
			row.AddCell().SetFloat(fact.Confidence)
			row.AddCell().Value = strings.Join(fact.Sources, ", ")
		}
	}

	if len(p.Emails) > 0 {
		sheet, err := addHeaderSheet(f, "Emails", "Address", "Domain", "Confidence", "Sources")
		if err != nil {
			return err
		}
		for _, fact := range p.Emails {
			row := sheet.AddRow()
			row.AddCell().Value = fact.Payload.Address
			row.AddCell().Value = fact.Payload.Domain
			row.AddCell().SetFloat(fact.Confidence)
			row.AddCell().Value = strings.Join(fact.Sources, ", ")
		}
	}

	if len(p.Addresses) > 0 {
		sheet, err := addHeaderSheet(f, "Addresses", "Street", "City", "State", "Postal code", "Confidence", "Sources")
		if err != nil {
			return err
		}
		for _, fact := range p.Addresses {
			row := sheet.AddRow()
			row.AddCell().Value = fact.Payload.Street
			row.AddCell().Value = fact.Payload.City
			row.AddCell().Value = fact.Payload.State
			row.AddCell().Value = fact.Payload.PostalCode
			row.AddCell().SetFloat(fact.Confidence)
			row.AddCell().Value = strings.Join(fact.Sources, ", ")
		}
	}

	if len(p.Employment) > 0 {
		sheet, err := addHeaderSheet(f, "Employment", "Company", "Title", "Start", "End", "Source")
		if err != nil {
			return err
		}
		for _, fact := range p.Employment {
			for _, pos := range fact.Payload.Positions {
				row := sheet.AddRow()
				row.AddCell().Value = fact.Payload.Company
				row.AddCell().Value = pos.Title
				row.AddCell().Value = pos.StartDate
				row.AddCell().Value = pos.EndDate
				row.AddCell().Value = pos.Source
			}
		}
	}

	if len(p.Relatives) > 0 {
		sheet, err := addHeaderSheet(f, "Relatives", "Name", "Relationship", "Confidence")
		if err != nil {
			return err
		}
		for _, fact := range p.Relatives {
			row := sheet.AddRow()
			row.AddCell().Value = fact.Payload.Name
			row.AddCell().Value = fact.Payload.Relationship
			row.AddCell().SetFloat(fact.Confidence)
		}
	}

	if len(p.Leaks) > 0 {
		sheet, err := addHeaderSheet(f, "Leaks", "Source", "Records", "Latest leak", "Plaintext", "Affected emails")
		if err != nil {
			return err
		}
		for _, fact := range p.Leaks {
			row := sheet.AddRow()
			row.AddCell().Value = fact.Payload.Source
			row.AddCell().SetInt(fact.Payload.Count)
			row.AddCell().Value = fact.Payload.LatestLeak
			row.AddCell().SetBool(fact.Payload.HasPlaintext)
			row.AddCell().Value = strings.Join(fact.Payload.Emails, ", ")
		}
	}

	return nil
}

func addPlatformSheet(f *xlsx.File, buckets model.PlatformBuckets) error {
	sheet, err := addHeaderSheet(f, "Platforms", "Platform", "Source", "Status", "Error")
	if err != nil {
		return err
	}

	write := func(platforms []*model.Platform) {
		for _, p := range platforms {
			row := sheet.AddRow()
			name := p.PlatformName
			if name == "" {
				name = p.Module
			}
			row.AddCell().Value = name
			row.AddCell().Value = p.Source
			row.AddCell().Value = string(p.Status)
			row.AddCell().Value = p.Error
		}
	}
	write(buckets.Found)
	write(buckets.Errors)
	write(buckets.NotFound)

	return nil
}

func addHeaderSheet(f *xlsx.File, name string, headers ...string) (*xlsx.Sheet, error) {
	sheet, err := f.AddSheet(name)
	if err != nil {
		return nil, eris.Wrapf(err, "report: add sheet %s", name)
	}
	header := sheet.AddRow()
	for _, h := range headers {
		header.AddCell().Value = h
	}
	return sheet, nil
}
