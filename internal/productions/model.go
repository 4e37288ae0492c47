package productions

import "time"

// Format names the artifact format a production is delivered in.
type Format string

const (
	FormatPDF    Format = "PDF"
	FormatTIFF   Format = "TIFF"
	FormatNative Format = "Native"
)

// LoadFileFormat selects the load file layout emitted with a production.
type LoadFileFormat string

const (
	LoadFileDAT LoadFileFormat = "DAT"
	LoadFileOPT LoadFileFormat = "OPT"
	LoadFileCSV LoadFileFormat = "CSV"
)

// IncludeFlags are the four independent inclusion toggles of a production.
type IncludeFlags struct {
	Text     bool `json:"text"`
	Images   bool `json:"images"`
	Metadata bool `json:"metadata"`
	Native   bool `json:"native"`
}

// ProductionSet is an immutable export configuration. There is no update
// path: a set is created once per assembly request.
type ProductionSet struct {
	ID             string         `json:"productionSetId"`
	Name           string         `json:"name"`
	BatesPrefix    string         `json:"batesPrefix"`
	BatesStart     int64          `json:"batesStart"`
	Format         Format         `json:"format"`
	Include        IncludeFlags   `json:"include"`
	LoadFileFormat LoadFileFormat `json:"loadFileFormat"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// ProductionDocumentLink binds one document into a set under exactly one
// bates number. BatesSequence is the numeric suffix, kept separately so the
// next disjoint range for a prefix can be computed without parsing.
type ProductionDocumentLink struct {
	ID              string    `json:"-"`
	ProductionSetID string    `json:"productionSetId"`
	DocumentID      string    `json:"documentId"`
	BatesNumber     string    `json:"batesNumber"`
	BatesSequence   int64     `json:"-"`
	CreatedAt       time.Time `json:"-"`
}
