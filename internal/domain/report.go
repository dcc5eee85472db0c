package domain

import "time"

// Mode define o período do relatório
type Mode string

const (
	ModeWeek   Mode = "week"
	ModeMonth  Mode = "month"
	ModeCustom Mode = "custom"
)

// Valid indica se o modo é um dos três literais aceitos
func (m Mode) Valid() bool {
	return m == ModeWeek || m == ModeMonth || m == ModeCustom
}

// CustomRange é o intervalo solicitado no modo custom (datas "YYYY-MM-DD")
type CustomRange struct {
	StartDate string
	EndDate   string
}

// DayBucket é um dia do calendário local dentro da janela
type DayBucket struct {
	DateKey string
	Label   string
}

// ReportWindow é a janela de relatório já resolvida: instantes UTC
// [StartUTC, EndUTC) e a lista ordenada, sem lacunas, de dias locais cobertos
type ReportWindow struct {
	SiteID   string
	StartUTC time.Time
	EndUTC   time.Time
	Timezone string
	Buckets  []DayBucket
}

// Days retorna a quantidade de dias de calendário cobertos pela janela
func (w *ReportWindow) Days() int {
	return len(w.Buckets)
}

// DayAggregate é o agregado de um único dia de calendário local
type DayAggregate struct {
	DateKey             string
	OrderCount          int
	RevenueCents        int64
	UniqueCustomerCount int
}

// WindowTotals são os totais da janela inteira. As contagens de únicos são
// calculadas em um único conjunto sobre toda a janela, nunca somando os
// distintos por dia (um cliente que pede em dois dias conta uma vez aqui)
type WindowTotals struct {
	OrderCount          int
	RevenueCents        int64
	UniqueCustomerCount int
	UniqueMenuItemCount int
}

// WindowPayload expõe os limites da janela no envelope de resposta
type WindowPayload struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TotalsPayload é o bloco de totais do dashboard, com receita já em moeda
type TotalsPayload struct {
	Orders    int     `json:"orders"`
	Revenue   float64 `json:"revenue"`
	Customers int     `json:"customers"`
	Items     int     `json:"items"`
}

// DashboardReport é a resposta completa do dashboard: séries alinhadas 1:1
// com os buckets da janela
type DashboardReport struct {
	Site      *Site         `json:"site"`
	Mode      Mode          `json:"mode"`
	Timezone  string        `json:"tz"`
	Window    WindowPayload `json:"window"`
	Labels    []string      `json:"labels"`
	Orders    []int         `json:"orders"`
	Revenue   []float64     `json:"revenue"`
	Customers []int         `json:"customers"`
	Totals    TotalsPayload `json:"totals"`
}

// OrderListReport é a resposta dos endpoints de listagem crua de pedidos
type OrderListReport struct {
	Site     *Site         `json:"site"`
	Mode     Mode          `json:"mode"`
	Timezone string        `json:"tz"`
	Window   WindowPayload `json:"window"`
	Count    int           `json:"count"`
	Orders   []*Order      `json:"orders"`
}
