package models

// Artifact is a generated download (xlsx workbook or csv file) cached in
// Redis until its TTL expires.
type Artifact struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// DownloadLink points a client at a cached artifact.
type DownloadLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ChannelReport is the per-channel slice of a report response: the
// enriched order rows plus their category summary.
type ChannelReport struct {
	Orders  Table `json:"orders"`
	Summary Table `json:"summary"`
}

// ReportResponse is the JSON body returned by the report endpoint.
type ReportResponse struct {
	Status    string         `json:"status"` // ok, no_matching_orders
	Website   *ChannelReport `json:"website,omitempty"`
	Office    *ChannelReport `json:"office,omitempty"`
	Warnings  []string       `json:"warnings,omitempty"`
	Downloads []DownloadLink `json:"downloads,omitempty"`
}

// SourcesResponse lists the distinct normalized order-source labels of an
// uploaded ledger, for the explicit-subset filter UI.
type SourcesResponse struct {
	Sources []string `json:"sources"`
}

// Report response status values.
const (
	StatusOK         = "ok"
	StatusNoMatching = "no_matching_orders"
)
