package client

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/livpay-api/internal/domain/entity"
)

// Stats es la proyección derivada del historial: solo cuentan las transacciones
// con estado Success. No es estado mutable: se recalcula ante cada cambio.
type Stats struct {
	TotalRecharges int
	TotalSpent     decimal.Decimal
	ThisMonth      decimal.Decimal
	Cashback       decimal.Decimal // floor(2% del total gastado)
	LastRecharge   string          // fecha (YYYY-MM-DD) de la última exitosa, vacío si no hay
}

// MonthAmount es el monto acumulado de un mes calendario.
type MonthAmount struct {
	Month  string // nombre corto: Jan, Feb, ...
	Amount decimal.Decimal
}

var cashbackRate = decimal.NewFromFloat(0.02)

// DeriveStats calcula las estadísticas sobre la lista dada con "ahora" explícito.
func DeriveStats(txns []entity.Transaction, now time.Time) Stats {
	stats := Stats{
		TotalSpent: decimal.Zero,
		ThisMonth:  decimal.Zero,
		Cashback:   decimal.Zero,
	}
	var last time.Time
	for _, t := range txns {
		if t.Status != entity.TxnStatusSuccess {
			continue
		}
		stats.TotalRecharges++
		stats.TotalSpent = stats.TotalSpent.Add(t.Amount)
		if t.Date.Year() == now.Year() && t.Date.Month() == now.Month() {
			stats.ThisMonth = stats.ThisMonth.Add(t.Amount)
		}
		if t.Date.After(last) {
			last = t.Date
		}
	}
	stats.Cashback = stats.TotalSpent.Mul(cashbackRate).Floor()
	if !last.IsZero() {
		stats.LastRecharge = last.Format("2006-01-02")
	}
	return stats
}

// DeriveMonthlyBreakdown agrupa montos exitosos por mes calendario y devuelve los
// últimos `months` meses terminando en el actual, en orden cronológico. Los meses
// sin actividad aparecen con monto cero.
func DeriveMonthlyBreakdown(txns []entity.Transaction, now time.Time, months int) []MonthAmount {
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	out := make([]MonthAmount, 0, months)
	index := make(map[string]int, months)
	for i := months - 1; i >= 0; i-- {
		m := anchor.AddDate(0, -i, 0)
		index[m.Format("2006-01")] = len(out)
		out = append(out, MonthAmount{Month: m.Format("Jan"), Amount: decimal.Zero})
	}
	for _, t := range txns {
		if t.Status != entity.TxnStatusSuccess {
			continue
		}
		if i, ok := index[t.Date.Format("2006-01")]; ok {
			out[i].Amount = out[i].Amount.Add(t.Amount)
		}
	}
	return out
}

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount formatea un monto en rupias con separador de miles, para recibos
// y para el dashboard.
func FormatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return amountPrinter.Sprintf("₹%.2f", f)
}

// Receipt arma la línea de recibo de una transacción.
func Receipt(t entity.Transaction) string {
	return t.ID + " · " + t.Type + " · " + t.Operator + " · " + FormatAmount(t.Amount) + " · " + t.Status
}
