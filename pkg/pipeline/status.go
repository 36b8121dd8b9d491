package pipeline

import "strings"

// Status is an order's position in the production pipeline. The values are
// the exact strings the backend stores; comparison is always done on the
// normalized form via Parse.
type Status string

const (
	StatusPending            Status = "pending"
	StatusBriefUploaded      Status = "brief uploaded"
	StatusQuotationUploaded  Status = "quotation uploaded"
	StatusWaitingFor3D       Status = "waiting for 3d"
	StatusDesignPhase        Status = "design phase"
	StatusProvaUploaded      Status = "prova uploaded"
	StatusApproved           Status = "approved"
	StatusProductionUploaded Status = "production files uploaded"
	StatusImagesUploaded     Status = "images uploaded"
	StatusInvoiceUploaded    Status = "invoice uploaded"

	// Manager-review holding states. Orders sit here until the design
	// manager approves (forward) or sends back for edits (the only
	// backward edges in the pipeline).
	Status3DReview         Status = "3d file done - sent to design manager"
	StatusProvaReview      Status = "prova file done - sent to design manager"
	StatusProductionReview Status = "production file done - sent to design manager"

	// StatusUnknown is what Parse returns for anything it does not
	// recognize. Unknown statuses render as display-only rows: no upload
	// slot, no actions, never an error.
	StatusUnknown Status = ""
)

// Parse normalizes a raw status string from the backend. Matching is
// case-insensitive and ignores surrounding whitespace.
func Parse(raw string) Status {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if s.IsValid() {
		return s
	}
	return StatusUnknown
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusBriefUploaded, StatusQuotationUploaded,
		StatusWaitingFor3D, StatusDesignPhase, StatusProvaUploaded,
		StatusApproved, StatusProductionUploaded, StatusImagesUploaded,
		StatusInvoiceUploaded,
		Status3DReview, StatusProvaReview, StatusProductionReview:
		return true
	default:
		return false
	}
}

// IsHolding reports whether the order is parked with the design manager.
func (s Status) IsHolding() bool {
	switch s {
	case Status3DReview, StatusProvaReview, StatusProductionReview:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusInvoiceUploaded
}

func (s Status) String() string {
	return string(s)
}

// Initial is the status the backend assigns to a freshly created order.
func Initial() Status {
	return StatusPending
}

// MainLine returns the forward pipeline in order, without the holding
// states. Used by list screens for their filter tabs.
func MainLine() []Status {
	return []Status{
		StatusPending,
		StatusBriefUploaded,
		StatusQuotationUploaded,
		StatusWaitingFor3D,
		StatusDesignPhase,
		StatusProvaUploaded,
		StatusApproved,
		StatusProductionUploaded,
		StatusImagesUploaded,
		StatusInvoiceUploaded,
	}
}

// HoldingStatuses returns the three manager-review states, in pipeline order.
func HoldingStatuses() []Status {
	return []Status{Status3DReview, StatusProvaReview, StatusProductionReview}
}
