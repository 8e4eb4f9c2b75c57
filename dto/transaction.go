package dto

// TransactionRequest là DTO cho yêu cầu tạo giao dịch.
type TransactionRequest struct {
	UID      string     `json:"uid" binding:"required"`
	Folio    string     `json:"folio"`
	Concept  string     `json:"concept" binding:"required"`
	Date     string     `json:"date" binding:"required"`
	Category []string   `json:"category"`
	Amount   int64      `json:"amount" binding:"required"`
	Tax      int64      `json:"tax"`
	Subtotal int64      `json:"subtotal"`
	FiscalID string     `json:"uuid"`
	Rfc      string     `json:"rfc"`
	Company  string     `json:"company"`
	Invoices []FileData `json:"invoices"`
}

// TransactionFilter lọc giao dịch theo khoảng ngày và danh mục (giao nhau).
type TransactionFilter struct {
	UID      string   `form:"uid"`
	Category []string `form:"category"`
	DateRangeQuery
}
