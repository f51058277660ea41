package domain

import "time"

type AssetStatus string

const (
	AssetStatusAvailable AssetStatus = "AVAILABLE"
	AssetStatusIssued    AssetStatus = "ISSUED"
)

// AssetCodeLength is the fixed length of the human-entered asset code
// (the value encoded in the QR label on the physical item).
const AssetCodeLength = 4

type Asset struct {
	ID        int32       `json:"id"`
	Code      string      `json:"code"`
	Title     string      `json:"title"`
	Category  string      `json:"category"` // normalized to uppercase at creation
	Status    AssetStatus `json:"status"`
	CreatedOn time.Time   `json:"created_on"`
}
