package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultLimit      = 10
	defaultWindowDays = 10
)

// paramError indica um parâmetro de query ausente ou mal formatado
type paramError struct {
	code  string
	param string
	err   error
}

func (e *paramError) Error() string {
	return fmt.Sprintf("parâmetro %s: %v", e.param, e.err)
}

func (e *paramError) Unwrap() error {
	return e.err
}

// parseFilters lê store, start_date e end_date da query
func parseFilters(r *http.Request) (domain.SalesFilters, error) {
	query := r.URL.Query()

	startDate, err := dateParam(r, "start_date")
	if err != nil {
		return domain.SalesFilters{}, err
	}

	endDate, err := dateParam(r, "end_date")
	if err != nil {
		return domain.SalesFilters{}, err
	}

	return domain.SalesFilters{
		StoreNbr:  query.Get("store"),
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

func dateParam(r *http.Request, name string) (*time.Time, error) {
	date, err := utils.ParseDate(r.URL.Query().Get(name))
	if err != nil {
		return nil, &paramError{
			code:  apiErrors.ErrInvalidFormat,
			param: name,
			err:   pkgerrors.Wrap(domain.ErrInvalidDate, err.Error()),
		}
	}
	return date, nil
}

// requiredParam retorna o valor do parâmetro ou erro VAL_002 quando ausente
func requiredParam(r *http.Request, name string) (string, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return "", &paramError{
			code:  apiErrors.ErrMissingRequiredData,
			param: name,
			err:   errors.New("obrigatório"),
		}
	}
	return value, nil
}

// intParam lê um inteiro não negativo, usando defaultValue quando ausente
func intParam(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &paramError{code: apiErrors.ErrInvalidFormat, param: name, err: err}
	}
	if value < 0 {
		return 0, &paramError{code: apiErrors.ErrInvalidFormat, param: name, err: errors.New("deve ser maior ou igual a zero")}
	}

	return value, nil
}

// writeError converte o erro no envelope padrão da API
func writeError(w http.ResponseWriter, logger log.Logger, err error, message string) {
	var pErr *paramError
	switch {
	case errors.As(err, &pErr):
		apiErrors.WriteError(w, pErr.code, pErr.Error(), map[string]string{"param": pErr.param})
		return
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidWindow):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return
	case errors.Is(err, domain.ErrDatasetNotLoaded):
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotLoaded, "Dataset ainda não carregado", nil)
		return
	}

	logger.WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
	}
}
