package model

import "time"

// Investigation is one stored reconciliation run: the raw batch that went in
// and the dossier that came out.
type Investigation struct {
	ID        string      `json:"id"`
	Query     string      `json:"query,omitempty"`
	Results   []RawResult `json:"results,omitempty"`
	Dossier   *Dossier    `json:"dossier,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
