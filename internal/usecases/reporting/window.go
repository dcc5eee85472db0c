package reporting

import (
	"time"

	"github.com/vfg2006/order-reports-api/internal/domain"
)

// Intervalos custom maiores que isso são silenciosamente encurtados,
// preservando a data inicial pedida
const maxCustomRangeDays = 62

// PlanWindow converte um modo de relatório e um fuso IANA nos limites UTC
// [start, end) da janela e na lista ordenada de dias de calendário local que
// ela cobre. Função pura, sem I/O: o instante de referência é recebido como
// argumento.
//
// Toda a aritmética de dias é feita em datas de calendário no fuso local,
// nunca somando múltiplos fixos de 24h: uma transição de horário de verão
// dentro da janela muda a duração UTC daquele único dia em ±1h, mas cada
// bucket continua representando exatamente um dia de calendário.
func PlanWindow(now time.Time, mode domain.Mode, timezone string, custom *domain.CustomRange) (*domain.ReportWindow, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, NewReportError(ErrUnknownTimezone, "INVALID_TIMEZONE", timezone)
	}

	localNow := now.In(loc)
	todayY, todayM, todayD := localNow.Date()

	var startLocal, endLocal time.Time

	switch mode {
	case domain.ModeWeek:
		// Últimos 7 dias de calendário, incluindo hoje
		startLocal = localMidnight(todayY, todayM, todayD-6, loc)
		endLocal = localMidnight(todayY, todayM, todayD+1, loc)

	case domain.ModeMonth:
		// Últimos 30 dias de calendário, incluindo hoje
		startLocal = localMidnight(todayY, todayM, todayD-29, loc)
		endLocal = localMidnight(todayY, todayM, todayD+1, loc)

	case domain.ModeCustom:
		if custom == nil || custom.StartDate == "" || custom.EndDate == "" {
			return nil, ErrMissingRange
		}

		startDate, err := time.Parse(time.DateOnly, custom.StartDate)
		if err != nil {
			return nil, NewReportError(ErrInvalidDate, "INVALID_DATE", custom.StartDate)
		}

		endDate, err := time.Parse(time.DateOnly, custom.EndDate)
		if err != nil {
			return nil, NewReportError(ErrInvalidDate, "INVALID_DATE", custom.EndDate)
		}

		if endDate.Before(startDate) {
			return nil, NewReportError(ErrInvalidRange, "INVALID_RANGE", custom.StartDate+" > "+custom.EndDate)
		}

		// Contagem inclusiva de dias feita em UTC, onde não há transições;
		// estouro é encurtado em silêncio, sem erro
		if span := int(endDate.Sub(startDate).Hours()/24) + 1; span > maxCustomRangeDays {
			endDate = startDate.AddDate(0, 0, maxCustomRangeDays-1)
		}

		sy, sm, sd := startDate.Date()
		ey, em, ed := endDate.Date()
		startLocal = localMidnight(sy, sm, sd, loc)
		endLocal = localMidnight(ey, em, ed+1, loc)

	default:
		return nil, NewReportError(ErrInvalidMode, "INVALID_MODE", string(mode))
	}

	buckets := enumerateBuckets(mode, startLocal, endLocal, loc)

	return &domain.ReportWindow{
		StartUTC: startLocal.UTC(),
		EndUTC:   endLocal.UTC(),
		Timezone: timezone,
		Buckets:  buckets,
	}, nil
}

// enumerateBuckets percorre os dias de calendário local de startLocal
// (inclusive) até endLocal (exclusive), um dia por vez
func enumerateBuckets(mode domain.Mode, startLocal, endLocal time.Time, loc *time.Location) []domain.DayBucket {
	buckets := make([]domain.DayBucket, 0, 8)

	for cur := startLocal; cur.Before(endLocal); cur = nextLocalDay(cur, loc) {
		buckets = append(buckets, domain.DayBucket{
			DateKey: cur.Format(time.DateOnly),
			Label:   bucketLabel(mode, cur),
		})
	}

	return buckets
}

// bucketLabel formata o rótulo de exibição do dia: nome do dia da semana no
// modo week, "Jan 02" nos demais
func bucketLabel(mode domain.Mode, day time.Time) string {
	if mode == domain.ModeWeek {
		return day.Weekday().String()
	}
	return day.Format("Jan 02")
}

// localMidnight constrói a meia-noite local de uma data de calendário. Se a
// meia-noite não existir naquele dia (virada de horário de verão), o instante
// é normalizado para a primeira hora válida do dia
func localMidnight(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// nextLocalDay avança um dia de calendário e reancora na meia-noite local
func nextLocalDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return localMidnight(y, m, d+1, loc)
}
