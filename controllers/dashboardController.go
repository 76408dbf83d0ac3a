package controllers

import (
	"net/http"
	"time"

	"github.com/autocare-store/autocare-api/initializers"
	"github.com/autocare-store/autocare-api/models"
	"github.com/gin-gonic/gin"
)

// percentChange treats a zero baseline as 0% rather than an undefined
// ratio.
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// salesAverages derives per-order averages, 0 when there are no orders.
func salesAverages(totalRevenue, totalItems, totalOrders int64) (averageSaleValue, averageItemsPerSale float64) {
	if totalOrders == 0 {
		return 0, 0
	}
	return float64(totalRevenue) / float64(totalOrders), float64(totalItems) / float64(totalOrders)
}

// startOfMonth truncates a time to midnight on the first of its month.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

type paidWindow struct {
	Revenue      int64
	Transactions int64
}

func paidOrdersBetween(from, to time.Time) (paidWindow, error) {
	var window paidWindow

	query := initializers.DB.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentPaid).
		Where("created_at >= ?", from)
	if !to.IsZero() {
		query = query.Where("created_at < ?", to)
	}

	err := query.
		Select("COALESCE(SUM(total_price), 0) as revenue, COUNT(*) as transactions").
		Scan(&window).Error
	return window, err
}

// GetDashboardStats reports month-over-month revenue and transaction
// movement plus catalog and customer totals.
func GetDashboardStats(ctx *gin.Context) {
	now := time.Now()
	startOfCurrentMonth := startOfMonth(now)
	startOfLastMonth := startOfMonth(startOfCurrentMonth.AddDate(0, 0, -1))

	current, err := paidOrdersBetween(startOfCurrentMonth, time.Time{})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to aggregate current month", err)
		return
	}

	last, err := paidOrdersBetween(startOfLastMonth, startOfCurrentMonth)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to aggregate last month", err)
		return
	}

	var totalProducts, totalCustomers int64
	initializers.DB.Model(&models.Product{}).Count(&totalProducts)
	initializers.DB.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&totalCustomers)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"totalProducts":     totalProducts,
		"totalCustomers":    totalCustomers,
		"totalRevenue":      current.Revenue,
		"totalTransactions": current.Transactions,
		"revenueChange":     percentChange(float64(current.Revenue), float64(last.Revenue)),
		"transactionChange": percentChange(float64(current.Transactions), float64(last.Transactions)),
	})
}

// GetSalesStats aggregates over paid orders for the sales dashboard.
func GetSalesStats(ctx *gin.Context) {
	var totals struct {
		Revenue int64
		Orders  int64
	}
	err := initializers.DB.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(total_price), 0) as revenue, COUNT(*) as orders").
		Scan(&totals).Error
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to aggregate sales", err)
		return
	}

	var totalItems int64
	err = initializers.DB.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.payment_status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(order_items.quantity), 0)").
		Scan(&totalItems).Error
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to aggregate sold items", err)
		return
	}

	averageSaleValue, averageItemsPerSale := salesAverages(totals.Revenue, totalItems, totals.Orders)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"totalRevenue":        totals.Revenue,
		"totalOrders":         totals.Orders,
		"totalItems":          totalItems,
		"averageSaleValue":    averageSaleValue,
		"averageItemsPerSale": averageItemsPerSale,
	})
}
