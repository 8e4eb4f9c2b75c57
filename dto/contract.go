package dto

// ContractRequest là DTO cho yêu cầu tạo hoặc cập nhật hợp đồng khách hàng.
type ContractRequest struct {
	Client        string `json:"client" binding:"required"`
	Amount        int64  `json:"amount" binding:"required"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Indeterminate bool   `json:"indeterminate"`
}

// ContractFilter là tham số lọc hợp đồng: hợp đồng vô thời hạn luôn khớp.
type ContractFilter struct {
	Client string `form:"client"`
	DateRangeQuery
}
