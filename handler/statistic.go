package handler

import (
	"case_empire/constants"
	"case_empire/database"
	"case_empire/helper"
	"case_empire/model"
	"case_empire/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

type MonthlyRevenue struct {
	Month   string  `json:"month"` // "2026-08"
	Revenue float64 `json:"revenue"`
}

type DashboardStats struct {
	Customers int64 `json:"customers"`
	Products  int64 `json:"products"`
	Orders    int64 `json:"orders"`
	Invoices  int64 `json:"invoices"`

	TotalStock     int64   `json:"totalStock"`
	InventoryValue float64 `json:"inventoryValue"`
	LowStockCount  int64   `json:"lowStockCount"`

	InvoiceTotal    float64 `json:"invoiceTotal"`
	PendingInvoices int64   `json:"pendingInvoices"`
	RevenueGrowth   float64 `json:"revenueGrowth"` // % so với tháng trước

	MonthlyRevenue []MonthlyRevenue `json:"monthlyRevenue"`
}

func GetDashboardStats(c *fiber.Ctx) error {
	var stats DashboardStats
	if helper.CacheGetJSON("stats", &stats) {
		return utils.SuccessResponse(c, fiber.StatusOK, stats)
	}

	db := database.DB

	db.Model(&model.Customer{}).Count(&stats.Customers)
	db.Model(&model.Product{}).Count(&stats.Products)
	db.Model(&model.Order{}).Count(&stats.Orders)
	db.Model(&model.Invoice{}).Count(&stats.Invoices)

	db.Raw(`SELECT COALESCE(SUM(stock), 0) FROM products`).Scan(&stats.TotalStock)
	db.Raw(`SELECT COALESCE(SUM(stock * price), 0) FROM products`).Scan(&stats.InventoryValue)
	db.Model(&model.Product{}).Where("stock < min_stock").Count(&stats.LowStockCount)

	db.Raw(`SELECT COALESCE(SUM(amount), 0) FROM invoices`).Scan(&stats.InvoiceTotal)
	db.Model(&model.Invoice{}).Where("status = ?", constants.INVOICE_PENDING).Count(&stats.PendingInvoices)

	// Doanh thu 6 tháng gần nhất theo hoá đơn
	rows := []MonthlyRevenue{}
	db.Raw(`
        SELECT to_char(date, 'YYYY-MM') AS month, COALESCE(SUM(amount), 0) AS revenue
        FROM invoices
        WHERE date >= ?
        GROUP BY to_char(date, 'YYYY-MM')
        ORDER BY month
    `, time.Now().AddDate(0, -6, 0).Format("2006-01-02")).Scan(&rows)
	stats.MonthlyRevenue = rows

	// Tăng trưởng: tháng này so với tháng trước
	thisMonth := time.Now().Format("2006-01")
	lastMonth := time.Now().AddDate(0, -1, 0).Format("2006-01")
	var current, previous float64
	for _, r := range rows {
		if r.Month == thisMonth {
			current = r.Revenue
		}
		if r.Month == lastMonth {
			previous = r.Revenue
		}
	}
	stats.RevenueGrowth = utils.CalculateGrowth(current, previous)

	helper.CacheSetJSON("stats", stats, 10*time.Minute)
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
