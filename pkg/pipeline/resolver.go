package pipeline

import "strings"

// FileField names one of an order's file slots, as the backend's
// upload_order_file.php expects it in the "field" form value.
type FileField string

const (
	FieldBrief       FileField = "brief_file"
	FieldQuotation   FileField = "quotation_file"
	FieldD3          FileField = "d3_file"
	FieldProva       FileField = "prova_file"
	FieldProduction  FileField = "production_file"
	FieldFinalImages FileField = "final_images"
	FieldInvoice     FileField = "invoice_file"
)

// Action is a review decision on a holding status.
type Action string

const (
	ActionApprove   Action = "approve"
	ActionNeedsEdit Action = "needs_edit"
)

func (f FileField) String() string {
	return string(f)
}

// ParseField validates a raw field name from a request.
func ParseField(raw string) (FileField, bool) {
	f := FileField(strings.ToLower(strings.TrimSpace(raw)))
	switch f {
	case FieldBrief, FieldQuotation, FieldD3, FieldProva,
		FieldProduction, FieldFinalImages, FieldInvoice:
		return f, true
	default:
		return "", false
	}
}

// ExpectedField returns the file slot a designer is expected to fill next
// for the given status. Statuses outside the four editable design stages
// are display-only and resolve to ("", false), including anything Parse
// could not recognize.
//
// "waiting for 3d" maps to d3_file; the pipeline treats the 3D model as the
// next deliverable both there and right after the quotation.
func ExpectedField(s Status) (FileField, bool) {
	switch s {
	case StatusQuotationUploaded, StatusWaitingFor3D:
		return FieldD3, true
	case StatusDesignPhase:
		return FieldProva, true
	case StatusApproved:
		return FieldProduction, true
	default:
		return "", false
	}
}

// ReviewActions lists the legal design-manager decisions for a status.
// Only the three holding statuses have any; the resolver never performs
// the transition itself, the backend does.
func ReviewActions(s Status) []Action {
	if !s.IsHolding() {
		return nil
	}
	return []Action{ActionApprove, ActionNeedsEdit}
}

// ApproveTarget is the main-line status the backend moves an order to when
// a holding status is approved.
func ApproveTarget(s Status) (Status, bool) {
	switch s {
	case Status3DReview:
		return StatusDesignPhase, true
	case StatusProvaReview:
		return StatusProvaUploaded, true
	case StatusProductionReview:
		return StatusProductionUploaded, true
	default:
		return StatusUnknown, false
	}
}

// NeedsEditTarget is the design stage an order returns to when the manager
// sends it back. Each holding status has exactly one predecessor; the
// previously uploaded file stays on the order.
func NeedsEditTarget(s Status) (Status, bool) {
	switch s {
	case Status3DReview:
		return StatusWaitingFor3D, true
	case StatusProvaReview:
		return StatusDesignPhase, true
	case StatusProductionReview:
		return StatusApproved, true
	default:
		return StatusUnknown, false
	}
}

// NextAfterUpload is the status the backend reports after a successful
// upload of the given field. Display guidance only: the console always
// takes the status from the server response, whatever it says.
func NextAfterUpload(f FileField) (Status, bool) {
	switch f {
	case FieldBrief:
		return StatusBriefUploaded, true
	case FieldQuotation:
		return StatusQuotationUploaded, true
	case FieldD3:
		return Status3DReview, true
	case FieldProva:
		return StatusProvaReview, true
	case FieldProduction:
		return StatusProductionReview, true
	case FieldFinalImages:
		return StatusImagesUploaded, true
	case FieldInvoice:
		return StatusInvoiceUploaded, true
	default:
		return StatusUnknown, false
	}
}

// CanApproveProva reports whether the one-step prova approval applies. It
// is a separate operation from the design-manager review loop: any
// authenticated operator may take it, and it moves the order straight to
// "approved" via approve_prova.php.
func CanApproveProva(s Status) bool {
	return s == StatusProvaUploaded
}

// DesignerStages are the four tabs of the designer team screen, each an
// editable stage with an upload slot.
func DesignerStages() []Status {
	return []Status{
		StatusQuotationUploaded,
		StatusWaitingFor3D,
		StatusDesignPhase,
		StatusApproved,
	}
}
