package domain

import "time"

// Weekdays na ordem da semana de calendário, de segunda a domingo
var Weekdays = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

// Months na ordem do calendário
var Months = []string{
	time.January.String(),
	time.February.String(),
	time.March.String(),
	time.April.String(),
	time.May.String(),
	time.June.String(),
	time.July.String(),
	time.August.String(),
	time.September.String(),
	time.October.String(),
	time.November.String(),
	time.December.String(),
}

// WeekdaySales é uma linha de vendas diárias com o dia da semana e o mês já derivados
type WeekdaySales struct {
	Date    time.Time `json:"date"`
	Weekday string    `json:"weekday"`
	Month   string    `json:"month"`
	Sales   float64   `json:"sales"`
}

type WeekdayMean struct {
	Weekday string  `json:"weekday"`
	Sales   float64 `json:"sales"`
}

// WeekdayAggregate sempre tem 7 entradas, de Monday a Sunday
type WeekdayAggregate []WeekdayMean

// Sales retorna a média do dia da semana informado, ou 0 quando ausente
func (a WeekdayAggregate) Sales(weekday string) float64 {
	for _, entry := range a {
		if entry.Weekday == weekday {
			return entry.Sales
		}
	}
	return 0
}

type MonthWeekdayRow struct {
	Month    string           `json:"month"`
	Weekdays WeekdayAggregate `json:"weekdays"`
}

// MonthWeekdayMatrix tem uma linha por mês com vendas, em ordem de calendário
type MonthWeekdayMatrix []MonthWeekdayRow
