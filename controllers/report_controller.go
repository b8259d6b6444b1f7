package controllers

import (
	"net/http"
	"strconv"
	"time"

	"go-postgres-carbooks/config"
	"go-postgres-carbooks/service"

	"github.com/gin-gonic/gin"
)

func ReportVehicles(c *gin.Context) {
	f := service.VehicleReportFilter{
		Query:  c.Query("q"),
		Status: c.Query("status"),
		SortBy: c.Query("sort"),
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "50"))
	f.YearFrom, _ = strconv.Atoi(c.Query("year_from"))
	f.YearTo, _ = strconv.Atoi(c.Query("year_to"))

	rows, total, err := service.NewService(config.DB).VehicleReport(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not build report", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "page": f.Page, "data": rows})
}

func ReportSales(c *gin.Context) {
	now := time.Now()
	from := now.AddDate(0, -1, 0)
	to := now.AddDate(0, 0, 1)

	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = t.AddDate(0, 0, 1) // inclusive end date
		}
	}

	rows, err := service.NewService(config.DB).SalesReport(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not build report", "error": err.Error()})
		return
	}

	var totalProfit float64
	for _, r := range rows {
		totalProfit += r.ProfitLKR
	}
	c.JSON(http.StatusOK, gin.H{"total_sold": len(rows), "total_profit": totalProfit, "data": rows})
}

func ReportMonthlyProfit(c *gin.Context) {
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))

	rows, err := service.NewService(config.DB).MonthlyProfit(c.Request.Context(), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not build report", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "data": rows})
}
