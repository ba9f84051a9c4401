package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados posibles de una transacción.
const (
	TxnStatusSuccess = "Success"
	TxnStatusFailed  = "Failed"
	TxnStatusPending = "Pending"
)

// Tipos de transacción del demo de recargas.
const (
	TxnTypeMobileRecharge  = "Mobile Recharge"
	TxnTypeDTHRecharge     = "DTH Recharge"
	TxnTypeElectricityBill = "Electricity Bill"
	TxnTypeWaterBill       = "Water Bill"
)

// Transaction es un registro de recarga o pago de factura de la sesión del cliente.
// La lista de la sesión es append-only y se ordena de más reciente a más antigua.
type Transaction struct {
	ID       string // "TXN" + contador con ceros a la izquierda
	Type     string
	Number   string // número de móvil, cliente DTH o cuenta del servicio
	Operator string
	Amount   decimal.Decimal
	Status   string // ver constantes TxnStatus*
	Date     time.Time
	Method   string // UPI, Debit Card, Net Banking, ...
}
