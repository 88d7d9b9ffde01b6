package models

// ItemOutcome records the result of processing a single cart item during
// fulfillment: either the number of bytes written to the archive, or the
// reason the item was skipped.
type ItemOutcome struct {
	ItemID     int64  `json:"itemId"`
	DesignName string `json:"designName"`
	EntryName  string `json:"entryName,omitempty"`
	Bytes      int    `json:"bytes,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Succeeded reports whether the item made it into the archive.
func (o ItemOutcome) Succeeded() bool {
	return o.Error == ""
}

// FulfillmentResult summarizes one fulfillment run. Outcomes are in cart
// order; SuccessCount is the number of archive entries written.
type FulfillmentResult struct {
	Outcomes     []ItemOutcome `json:"outcomes"`
	SuccessCount int           `json:"successCount"`
	ArchiveName  string        `json:"archiveName"`
}

// Progress describes one step of a fulfillment run. Fraction always reaches
// 1.0 regardless of per-item failures.
type Progress struct {
	Index      int     `json:"index"` // 1-based
	Total      int     `json:"total"`
	DesignName string  `json:"designName"`
	Fraction   float64 `json:"fraction"`
}
