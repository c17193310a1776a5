package services

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/terraincognita07/mesflow/internal/models"
)

const (
	MonthlySeriesLength = 12
	monthLabelLayout    = "Jan 2006"
)

type DashboardOrderReader interface {
	List() ([]models.ManufacturingOrder, error)
	ListPlacedDates(from time.Time, to time.Time) ([]time.Time, error)
}

type DashboardSummary struct {
	TotalOrders int
	InProgress  int
	Completed   int
	Delayed     int
}

// MonthlySeries is the orders-per-month chart data. Labels[i] names the
// month counted in Values[i].
type MonthlySeries struct {
	Labels []string
	Values []float64
}

type DashboardService struct {
	orders   DashboardOrderReader
	location *time.Location
}

func NewDashboardService(orders DashboardOrderReader, location *time.Location) *DashboardService {
	if location == nil {
		location = time.UTC
	}
	return &DashboardService{orders: orders, location: location}
}

func (service *DashboardService) Summary(now time.Time) (DashboardSummary, []models.ManufacturingOrder, error) {
	orders, err := service.orders.List()
	if err != nil {
		return DashboardSummary{}, nil, fmt.Errorf("list orders: %w", err)
	}
	return BuildDashboardSummary(orders, DateAtLocation(now, service.location)), orders, nil
}

func BuildDashboardSummary(orders []models.ManufacturingOrder, today time.Time) DashboardSummary {
	return DashboardSummary{
		TotalOrders: len(orders),
		InProgress: lo.CountBy(orders, func(order models.ManufacturingOrder) bool {
			return order.Status == models.OrderStatusInProgress
		}),
		Completed: lo.CountBy(orders, func(order models.ManufacturingOrder) bool {
			return order.Status == models.OrderStatusDone
		}),
		Delayed: lo.CountBy(orders, func(order models.ManufacturingOrder) bool {
			return order.IsDelayed(today)
		}),
	}
}

// MonthlyOrders counts orders by placed month over the last
// MonthlySeriesLength months ending with the month containing now.
func (service *DashboardService) MonthlyOrders(now time.Time) (MonthlySeries, error) {
	months := monthWindow(DateAtLocation(now, service.location), MonthlySeriesLength)
	from := months[0]
	to := months[len(months)-1].AddDate(0, 1, 0)

	dates, err := service.orders.ListPlacedDates(from, to)
	if err != nil {
		return MonthlySeries{}, fmt.Errorf("list placed dates: %w", err)
	}
	return BuildMonthlySeries(months, dates), nil
}

// BuildMonthlySeries buckets dates into months. Dates outside the months
// are ignored; empty months count as zero.
func BuildMonthlySeries(months []time.Time, dates []time.Time) MonthlySeries {
	byMonth := lo.GroupBy(dates, monthKey)

	series := MonthlySeries{
		Labels: make([]string, 0, len(months)),
		Values: make([]float64, 0, len(months)),
	}
	for _, month := range months {
		series.Labels = append(series.Labels, month.Format(monthLabelLayout))
		series.Values = append(series.Values, float64(len(byMonth[monthKey(month)])))
	}
	return series
}

func monthWindow(today time.Time, length int) []time.Time {
	current := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	months := make([]time.Time, length)
	for index := 0; index < length; index++ {
		months[index] = current.AddDate(0, index-length+1, 0)
	}
	return months
}

func monthKey(value time.Time) string {
	return value.UTC().Format("2006-01")
}
