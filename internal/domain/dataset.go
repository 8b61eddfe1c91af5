package domain

import "time"

// Dataset é um snapshot imutável das duas tabelas carregadas na inicialização
type Dataset struct {
	ID       string          `json:"id"`
	Source   string          `json:"source"`
	LoadedAt time.Time       `json:"loaded_at"`
	Sales    []SalesRecord   `json:"-"`
	Holidays []HolidayRecord `json:"-"`
}

// DatasetInfo é o resumo do snapshot exposto pela API
type DatasetInfo struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	LoadedAt    time.Time `json:"loaded_at"`
	SalesRows   int       `json:"sales_rows"`
	HolidayRows int       `json:"holiday_rows"`
	Stores      int       `json:"stores"`
	Range       DataRange `json:"range"`
}
