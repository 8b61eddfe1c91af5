package domain

// DashboardResponse agrupa as tabelas de todos os gráficos para uma seleção de filtros
type DashboardResponse struct {
	DatasetID                string             `json:"dataset_id"`
	Filters                  SalesFilters       `json:"filters"`
	TopProducts              []CategoryTotal    `json:"top_products"`
	SalesOverTime            []DailySales       `json:"sales_over_time"`
	TopHolidays              []HolidaySales     `json:"top_holidays"`
	WeekdayDistribution      WeekdayAggregate   `json:"weekday_distribution"`
	MonthWeekdayDistribution MonthWeekdayMatrix `json:"month_weekday_distribution"`
}
