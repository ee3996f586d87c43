package invoice

type CreateInvoiceRequest struct {
	Client           string  `json:"client" binding:"required"`
	Industry         string  `json:"industry"`
	TotalHoursBilled float64 `json:"totalHoursBilled" binding:"gte=0"`
	AmountBilledBAM  float64 `json:"amountBilledBAM" binding:"required,gt=0"`
	InvoiceStatus    string  `json:"invoiceStatus"`
}

type UpdateInvoiceRequest struct {
	Client           string  `json:"client" binding:"required"`
	Industry         string  `json:"industry"`
	TotalHoursBilled float64 `json:"totalHoursBilled" binding:"gte=0"`
	AmountBilledBAM  float64 `json:"amountBilledBAM" binding:"required,gt=0"`
	InvoiceStatus    string  `json:"invoiceStatus" binding:"required"`
}

type InvoiceResponse struct {
	ID               string  `json:"id"`
	InvoiceNumber    string  `json:"invoiceNumber"`
	Client           string  `json:"client"`
	Industry         string  `json:"industry"`
	TotalHoursBilled float64 `json:"totalHoursBilled"`
	AmountBilledBAM  float64 `json:"amountBilledBAM"`
	InvoiceStatus    string  `json:"invoiceStatus"`
	StatusLabel      string  `json:"statusLabel"`
	StatusColor      string  `json:"statusColor"`
}
