package domain

import "errors"

var (
	// ErrInvalidDate indica uma data fora do formato YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidWindow indica uma janela com número de dias negativo
	ErrInvalidWindow = errors.New("invalid window length")
	// ErrDatasetNotLoaded indica consulta antes da primeira carga do dataset
	ErrDatasetNotLoaded = errors.New("dataset not loaded")
	// ErrUnknownSource indica um DATA_SOURCE não suportado
	ErrUnknownSource = errors.New("unknown data source")
)
