package client

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/livpay-api/internal/domain/entity"
)

// "ahora" fijo para que los cortes de mes sean deterministas.
var fixedNow = time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

func txn(id string, amount int64, status string, date time.Time) entity.Transaction {
	return entity.Transaction{
		ID: id, Type: entity.TxnTypeMobileRecharge, Operator: "Airtel",
		Amount: decimal.NewFromInt(amount), Status: status, Date: date,
	}
}

func TestDeriveStats_ListaVacia(t *testing.T) {
	stats := DeriveStats(nil, fixedNow)
	assert.Zero(t, stats.TotalRecharges)
	assert.True(t, stats.TotalSpent.IsZero())
	assert.True(t, stats.ThisMonth.IsZero())
	assert.True(t, stats.Cashback.IsZero())
	assert.Empty(t, stats.LastRecharge)
}

func TestDeriveStats_UnaExitosaEsteMes(t *testing.T) {
	stats := DeriveStats([]entity.Transaction{
		txn("TXN001", 1000, entity.TxnStatusSuccess, fixedNow.AddDate(0, 0, -1)),
	}, fixedNow)

	assert.Equal(t, 1, stats.TotalRecharges)
	assert.True(t, decimal.NewFromInt(1000).Equal(stats.TotalSpent))
	assert.True(t, decimal.NewFromInt(1000).Equal(stats.ThisMonth))
	assert.True(t, decimal.NewFromInt(20).Equal(stats.Cashback), "dos por ciento de 1000")
	assert.Equal(t, "2026-08-14", stats.LastRecharge)
}

// Las fallidas no cuentan para ningún agregado.
func TestDeriveStats_IgnoraFallidas(t *testing.T) {
	stats := DeriveStats([]entity.Transaction{
		txn("TXN001", 299, entity.TxnStatusSuccess, fixedNow.AddDate(0, 0, -2)),
		txn("TXN002", 9999, entity.TxnStatusFailed, fixedNow.AddDate(0, 0, -1)),
	}, fixedNow)

	assert.Equal(t, 1, stats.TotalRecharges)
	assert.True(t, decimal.NewFromInt(299).Equal(stats.TotalSpent))
	assert.Equal(t, "2026-08-13", stats.LastRecharge, "la fallida no mueve la última recarga")
}

// El cashback es piso, nunca redondeo: 2% de 299 es 5.98 y paga 5.
func TestDeriveStats_CashbackPiso(t *testing.T) {
	stats := DeriveStats([]entity.Transaction{
		txn("TXN001", 299, entity.TxnStatusSuccess, fixedNow),
	}, fixedNow)
	assert.True(t, decimal.NewFromInt(5).Equal(stats.Cashback))
}

// Lo gastado el mes pasado suma al total pero no a ThisMonth.
func TestDeriveStats_MesAnteriorNoCuentaParaEsteMes(t *testing.T) {
	stats := DeriveStats([]entity.Transaction{
		txn("TXN001", 500, entity.TxnStatusSuccess, fixedNow.AddDate(0, -1, 0)),
		txn("TXN002", 200, entity.TxnStatusSuccess, fixedNow),
	}, fixedNow)

	assert.True(t, decimal.NewFromInt(700).Equal(stats.TotalSpent))
	assert.True(t, decimal.NewFromInt(200).Equal(stats.ThisMonth))
}

// Cinco meses terminando en el actual, cronológicos, con ceros para los vacíos.
func TestDeriveMonthlyBreakdown(t *testing.T) {
	txns := []entity.Transaction{
		txn("TXN001", 100, entity.TxnStatusSuccess, fixedNow),                                      // Ago
		txn("TXN002", 50, entity.TxnStatusSuccess, time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC)),  // Jun
		txn("TXN003", 999, entity.TxnStatusSuccess, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)), // fuera de ventana
		txn("TXN004", 777, entity.TxnStatusFailed, fixedNow),                                       // fallida
	}
	out := DeriveMonthlyBreakdown(txns, fixedNow, 5)

	require.Len(t, out, 5)
	labels := make([]string, 0, 5)
	for _, m := range out {
		labels = append(labels, m.Month)
	}
	assert.Equal(t, []string{"Apr", "May", "Jun", "Jul", "Aug"}, labels)

	assert.True(t, out[0].Amount.IsZero())
	assert.True(t, decimal.NewFromInt(50).Equal(out[2].Amount))
	assert.True(t, out[3].Amount.IsZero())
	assert.True(t, decimal.NewFromInt(100).Equal(out[4].Amount))
}

// El historial demo produce números estables con "ahora" fijo.
func TestDeriveStats_SobreElSeed(t *testing.T) {
	stats := DeriveStats(seedTransactions(fixedNow), fixedNow)

	assert.Equal(t, 4, stats.TotalRecharges, "TXN003 está fallida")
	assert.True(t, decimal.NewFromInt(4098).Equal(stats.TotalSpent), "299+499+2450+850")
	assert.True(t, decimal.NewFromInt(798).Equal(stats.ThisMonth), "solo las de hace 2 y 3 días")
	assert.True(t, decimal.NewFromInt(81).Equal(stats.Cashback), "floor(81.96)")
	assert.Equal(t, "2026-08-13", stats.LastRecharge)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₹2,450.00", FormatAmount(decimal.NewFromInt(2450)))
	assert.Equal(t, "₹0.00", FormatAmount(decimal.Zero))
	assert.Equal(t, "₹199.50", FormatAmount(decimal.NewFromFloat(199.5)))
}

func TestReceipt(t *testing.T) {
	line := Receipt(txn("TXN001", 299, entity.TxnStatusSuccess, fixedNow))
	assert.Contains(t, line, "TXN001")
	assert.Contains(t, line, "Airtel")
	assert.Contains(t, line, "₹299.00")
	assert.Contains(t, line, entity.TxnStatusSuccess)
}
