// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// SalesRecord representa uma linha da tabela de vendas (data, loja, família de produto)
type SalesRecord struct {
	Date     time.Time `json:"date"`
	StoreNbr string    `json:"store_nbr"`
	Family   string    `json:"family"`
	Sales    float64   `json:"sales"`
}

// DailySales é o total de vendas de um dia somando todas as lojas e famílias
type DailySales struct {
	Date  time.Time `json:"date"`
	Sales float64   `json:"sales"`
}

// CategoryTotal é uma linha do ranking de categorias (top N)
type CategoryTotal struct {
	Category string  `json:"category"`
	Sales    float64 `json:"sales"`
}

// SalesFilters são os filtros aplicados pela camada de apresentação antes da agregação
type SalesFilters struct {
	StoreNbr  string     `json:"store_nbr,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// DataRange descreve o intervalo de datas coberto pela tabela de vendas
type DataRange struct {
	MinDate *time.Time `json:"min_date"`
	MaxDate *time.Time `json:"max_date"`
}
