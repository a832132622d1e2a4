package services

// Outstanding-document checklist identifiers (待補資料). The checklist on a
// case holds a subset of these with set semantics.
const (
	CheckPhotoBefore      = "photoBefore"
	CheckPhotoDuring      = "photoDuring"
	CheckPhotoAfter       = "photoAfter"
	CheckQuotation        = "quotation"
	CheckWarranty         = "warranty"
	CheckInvoice          = "invoice"
	CheckBankCopy         = "bankCopy"
	CheckSatisfactionForm = "satisfactionForm"
)

// ChecklistItem pairs a checklist identifier with its display label.
type ChecklistItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ChecklistItems is the fixed vocabulary, in display order.
var ChecklistItems = []ChecklistItem{
	{CheckPhotoBefore, "維修前照片"},
	{CheckPhotoDuring, "維修中照片"},
	{CheckPhotoAfter, "維修後照片"},
	{CheckQuotation, "報價單"},
	{CheckWarranty, "保固書"},
	{CheckInvoice, "發票"},
	{CheckBankCopy, "存摺影本"},
	{CheckSatisfactionForm, "滿意度調查表"},
}

// ChecklistLabel returns the display label for an identifier, or the
// identifier itself when it is not part of the vocabulary.
func ChecklistLabel(id string) string {
	for _, item := range ChecklistItems {
		if item.ID == id {
			return item.Label
		}
	}
	return id
}

// ValidChecklistID reports whether id belongs to the fixed vocabulary.
func ValidChecklistID(id string) bool {
	for _, item := range ChecklistItems {
		if item.ID == id {
			return true
		}
	}
	return false
}

// NormalizeChecklist drops unknown identifiers and duplicates while keeping
// first-occurrence order.
func NormalizeChecklist(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if ValidChecklistID(id) && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
