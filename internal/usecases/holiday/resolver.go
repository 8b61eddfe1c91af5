// Package holiday resolve se uma data é um feriado observado em uma localidade
package holiday

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// Ordem de prioridade quando mais de um feriado cai na mesma data
var localePriority = []domain.HolidayLocale{
	domain.HolidayLocaleNational,
	domain.HolidayLocaleRegional,
	domain.HolidayLocaleLocal,
}

// Marcadores de pontes, traslados e dias de recuperação na descrição
var shiftMarkers = []string{"-", "+", "Puente", "Traslado", "Recupero"}

// Resolve retorna a descrição do feriado observado em date (YYYY-MM-DD) para a
// cidade/estado informados, ou "" quando não há feriado.
func Resolve(holidays []domain.HolidayRecord, date string, city string, state string) (string, error) {
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return "", errors.Wrapf(domain.ErrInvalidDate, "holiday: %q", date)
	}

	return ResolveDate(holidays, day, city, state), nil
}

// ResolveDate aplica a regra de localidade a todas as linhas da data.
// Feriados transferidos não são observados na data nominal. Entre as linhas
// válidas vence National, depois Regional (estado) e por fim Local (cidade);
// dentro da mesma localidade vale a ordem da tabela.
func ResolveDate(holidays []domain.HolidayRecord, date time.Time, city string, state string) string {
	matches := make(map[domain.HolidayLocale]string, len(localePriority))

	for _, h := range holidays {
		if !utils.EqualDate(h.Date, date) || h.Transferred {
			continue
		}

		if _, seen := matches[h.Locale]; seen {
			continue
		}

		if observedIn(h, city, state) {
			matches[h.Locale] = h.Description
		}
	}

	for _, locale := range localePriority {
		if description, ok := matches[locale]; ok {
			return description
		}
	}

	return ""
}

func observedIn(h domain.HolidayRecord, city string, state string) bool {
	switch h.Locale {
	case domain.HolidayLocaleNational:
		return true
	case domain.HolidayLocaleRegional:
		return h.LocaleName == state
	case domain.HolidayLocaleLocal:
		return h.LocaleName == city
	default:
		return false
	}
}

// IsBridgeOrShift indica descrições de pontes, traslados, recuperações ou
// deslocamentos relativos (ex: "Navidad-1", "Primer dia del ano+1")
func IsBridgeOrShift(description string) bool {
	for _, marker := range shiftMarkers {
		if strings.Contains(description, marker) {
			return true
		}
	}
	return false
}
