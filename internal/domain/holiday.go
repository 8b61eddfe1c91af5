package domain

import "time"

type HolidayLocale string

const (
	HolidayLocaleNational HolidayLocale = "National"
	HolidayLocaleRegional HolidayLocale = "Regional"
	HolidayLocaleLocal    HolidayLocale = "Local"
)

// HolidayRecord representa uma linha da tabela de feriados e eventos
type HolidayRecord struct {
	Date        time.Time     `json:"date"`
	Type        string        `json:"type"`
	Locale      HolidayLocale `json:"locale"`
	LocaleName  string        `json:"locale_name"` // Estado ou cidade, sem significado para National
	Description string        `json:"description"`
	Transferred bool          `json:"transferred"`
}

// HolidaySales é a média de vendas nos dias que antecedem um feriado
type HolidaySales struct {
	Description string  `json:"description"`
	SalesBefore float64 `json:"sales_before"`
}
