package domain

const RecentPaymentsLimit = 5

type DashboardStats struct {
	TotalProducts     int64           `json:"totalProducts"`
	Categories        []Category      `json:"categories"`
	TotalValue        Money           `json:"totalValue"`
	TotalItemsInStock int64           `json:"totalItemsInStock"`
	RecentPayments    []PaymentView   `json:"recentPayments"`
}
