package dto

// ExpenseRequest là DTO cho yêu cầu tạo chi tiêu thẻ.
type ExpenseRequest struct {
	UID         string `json:"uid" binding:"required"`
	Folio       string `json:"folio"`
	Concept     string `json:"concept" binding:"required"`
	CardDateOut string `json:"cardDateOut" binding:"required"`
	CardDateIn  string `json:"cardDateIn" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
	Tax         int64  `json:"tax"`
	Subtotal    int64  `json:"subtotal"`
	FiscalID    string `json:"uuid"`
	Rfc         string `json:"rfc"`
	Company     string `json:"company"`
}

// ExpenseFilter là tham số lọc danh sách chi tiêu.
type ExpenseFilter struct {
	UID string `form:"uid"`
	DateRangeQuery
}
