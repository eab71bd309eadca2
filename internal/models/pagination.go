package models

type ListResponse struct {
	Data  any `json:"data"`
	Total int `json:"total"`
}

type DashboardStats struct {
	Products     int `json:"products"`
	Distributors int `json:"distributors"`
	Customers    int `json:"customers"`
	Couriers     int `json:"couriers"`
	Sales        int `json:"sales"`
}
