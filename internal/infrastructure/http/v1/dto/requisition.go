package dto

// SetManualOrderRequest edits one requisition line.
type SetManualOrderRequest struct {
	Code  string `json:"code" binding:"required"`
	LotNo string `json:"lotNo" binding:"required"`
	Qty   int64  `json:"qty"`
}

// ApplySuggestionRequest bulk-fills lines from a suggestion column.
type ApplySuggestionRequest struct {
	Multiplier string `json:"multiplier" binding:"required"`
}

// ToggleSelectedRequest flips one line's selection.
type ToggleSelectedRequest struct {
	Code  string `json:"code" binding:"required"`
	LotNo string `json:"lotNo" binding:"required"`
}

// SelectAllRequest sets selection uniformly.
type SelectAllRequest struct {
	Selected bool `json:"selected"`
}

// FinalizeRequest closes a session into a document.
type FinalizeRequest struct {
	RequesterID string `json:"requesterId" binding:"required"`
}
