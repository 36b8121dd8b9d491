package models

// Order mirrors a row from get_orders_by_status.php. File fields hold
// server-relative paths when present; the backend owns all of them and the
// console never mutates an order except through the upload/review endpoints.
type Order struct {
	OrderID            FlexInt  `json:"order_id"`
	ClientID           FlexInt  `json:"client_id"`
	ClientName         string   `json:"client_name,omitempty"`
	Status             string   `json:"status"`
	BriefFile          string   `json:"brief_file,omitempty"`
	QuotationFile      string   `json:"quotation_file,omitempty"`
	D3File             string   `json:"d3_file,omitempty"`
	ProvaFile          string   `json:"prova_file,omitempty"`
	ProductionFile     string   `json:"production_file,omitempty"`
	FinalImages        string   `json:"final_images,omitempty"`
	InvoiceFile        string   `json:"invoice_file,omitempty"`
	Has3D              FlexBool `json:"has_3d"`
	DesignerAssignedTo string   `json:"designer_assigned_to,omitempty"`
	CreatedBy          string   `json:"created_by,omitempty"`
	CreatedAt          string   `json:"created_at,omitempty"`
}

// Designer is one entry from get_designers.php.
type Designer struct {
	Username string `json:"username"`
	Fullname string `json:"fullname,omitempty"`
}
