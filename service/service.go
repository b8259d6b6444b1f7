package service

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ===== Report DTOs =====

type VehicleReportRow struct {
	ID              uint    `json:"id"`
	ChassisNo       string  `json:"chassis_no"`
	Maker           string  `json:"maker"`
	Model           string  `json:"model"`
	ManufactureYear int     `json:"manufacture_year"`
	Status          string  `json:"status"`
	CIFTotalJPY     float64 `json:"cif_total_jpy"`
	JapanTotalLKR   float64 `json:"japan_total_lkr"`
	FinalTotalLKR   float64 `json:"final_total_lkr"`
	TotalAdvance    float64 `json:"total_advance"`
	InvoiceNo       string  `json:"invoice_no"`
}

type VehicleReportFilter struct {
	Query    string // matched against chassis/maker/model
	Status   string
	YearFrom int
	YearTo   int
	Page     int    // 1-based
	PageSize int    // default 50
	SortBy   string // "chassis","-chassis","year","-year","total","-total"
}

type SalesReportRow struct {
	ChassisNo    string    `json:"chassis_no"`
	Maker        string    `json:"maker"`
	Model        string    `json:"model"`
	SoldPrice    float64   `json:"sold_price"`
	SoldCurrency string    `json:"sold_currency"`
	ProfitLKR    float64   `json:"profit_lkr"`
	SoldDate     time.Time `json:"sold_date"`
	CustomerName string    `json:"customer_name"`
}

type MonthlyProfitRow struct {
	Month        string  `json:"month"` // YYYY-MM
	VehiclesSold int64   `json:"vehicles_sold"`
	TotalProfit  float64 `json:"total_profit"`
	TotalSales   float64 `json:"total_sales"`
}

// ===== Service =====

type Service interface {
	VehicleReport(ctx context.Context, f VehicleReportFilter) ([]VehicleReportRow, int64, error)
	SalesReport(ctx context.Context, from, to time.Time) ([]SalesReportRow, error)
	MonthlyProfit(ctx context.Context, year int) ([]MonthlyProfitRow, error)
}

type service struct{ db *gorm.DB }

func NewService(db *gorm.DB) Service { return &service{db: db} }

// ===== Implementations =====

func (s *service) VehicleReport(ctx context.Context, f VehicleReportFilter) ([]VehicleReportRow, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 || f.PageSize > 500 {
		f.PageSize = 50
	}

	q := s.db.WithContext(ctx).
		Table("vehicles").
		Select(`
			vehicles.id,
			vehicles.chassis_no,
			vehicles.maker,
			vehicles.model,
			vehicles.manufacture_year,
			vehicles.status,
			vehicles.cif_total_jpy,
			vehicles.japan_total_lkr,
			vehicles.final_total_lkr,
			COALESCE(ap.total_advance, 0) AS total_advance,
			vehicles.invoice_no
		`).
		Joins(`LEFT JOIN (
			SELECT chassis_no, SUM(amount) AS total_advance
			FROM advance_payments GROUP BY chassis_no
		) ap ON ap.chassis_no = vehicles.chassis_no`)

	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where(`vehicles.chassis_no ILIKE ? OR vehicles.maker ILIKE ? OR vehicles.model ILIKE ?`, like, like, like)
	}
	if f.Status != "" {
		q = q.Where("vehicles.status = ?", f.Status)
	}
	if f.YearFrom > 0 {
		q = q.Where("vehicles.manufacture_year >= ?", f.YearFrom)
	}
	if f.YearTo > 0 {
		q = q.Where("vehicles.manufacture_year <= ?", f.YearTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.SortBy {
	case "chassis":
		q = q.Order("vehicles.chassis_no ASC")
	case "-chassis":
		q = q.Order("vehicles.chassis_no DESC")
	case "year":
		q = q.Order("vehicles.manufacture_year ASC")
	case "-year":
		q = q.Order("vehicles.manufacture_year DESC")
	case "total":
		q = q.Order("vehicles.final_total_lkr ASC")
	case "-total":
		q = q.Order("vehicles.final_total_lkr DESC")
	default:
		q = q.Order("vehicles.id DESC")
	}

	offset := (f.Page - 1) * f.PageSize
	var rows []VehicleReportRow
	if err := q.Offset(offset).Limit(f.PageSize).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *service) SalesReport(ctx context.Context, from, to time.Time) ([]SalesReportRow, error) {
	var rows []SalesReportRow
	err := s.db.WithContext(ctx).
		Table("sales").
		Select(`
			sales.chassis_no,
			v.maker,
			v.model,
			sales.sold_price,
			sales.sold_currency,
			sales.profit_lkr,
			sales.sold_date,
			sales.customer_name
		`).
		Joins("INNER JOIN vehicles v ON v.chassis_no = sales.chassis_no").
		Where("sales.sold_date >= ? AND sales.sold_date < ?", from, to).
		Order("sales.sold_date ASC").
		Scan(&rows).Error
	return rows, err
}

func (s *service) MonthlyProfit(ctx context.Context, year int) ([]MonthlyProfitRow, error) {
	var rows []MonthlyProfitRow
	err := s.db.WithContext(ctx).
		Table("sales").
		Select(`
			to_char(sold_date, 'YYYY-MM') AS month,
			COUNT(id)                     AS vehicles_sold,
			SUM(profit_lkr)               AS total_profit,
			SUM(CASE WHEN sold_currency = 'LKR'
			         THEN sold_price
			         ELSE sold_price * conversion_rate END) AS total_sales
		`).
		Where("EXTRACT(YEAR FROM sold_date) = ?", year).
		Group("to_char(sold_date, 'YYYY-MM')").
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}
