package client

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/livpay-api/internal/application/dto"
	"github.com/jhoicas/livpay-api/internal/domain/entity"
)

// RegisterOutcome distingue "registrado y con sesión activa" de "registrado pero
// el auto-login falló": el llamador no debe asumir sesión por un registro exitoso.
type RegisterOutcome int

const (
	RegisteredOnly RegisterOutcome = iota + 1
	RegisteredAndAuthenticated
)

// ErrAuthInFlight: ya hay una llamada de auth en curso; la UI debe deshabilitar
// el doble envío en vez de encolar.
var ErrAuthInFlight = errors.New("auth request already in flight")

// SessionStore es el estado de sesión del cliente: token y usuario en memoria,
// espejados en un único documento persistido, más las colecciones derivadas
// (catálogo cacheado y transacciones del demo).
type SessionStore struct {
	mu      sync.Mutex
	api     *Client
	storage SessionStorage

	token        string
	user         *dto.UserResponse
	products     []dto.ProductResponse
	transactions []entity.Transaction
	txnSeq       int
	inFlight     bool

	now func() time.Time // inyectable en tests
}

// NewSessionStore construye el store con las transacciones demo de arranque.
func NewSessionStore(api *Client, storage SessionStorage) *SessionStore {
	s := &SessionStore{api: api, storage: storage, now: time.Now}
	s.transactions = seedTransactions(s.now())
	s.txnSeq = len(s.transactions)
	return s
}

// Restore repone la sesión persistida al arranque. Si hay token sin usuario se
// consulta el perfil; cualquier fallo o perfil incompleto purga todo (fail-closed).
func (s *SessionStore) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.storage.Load()
	if err != nil || sess == nil || sess.Token == "" {
		s.purgeLocked()
		return err
	}

	if completeUser(sess.User) {
		s.token = sess.Token
		s.user = sess.User
		return nil
	}

	profile, err := s.api.FetchProfile(sess.Token)
	if err != nil {
		s.purgeLocked()
		return fmt.Errorf("restore session: %w", err)
	}
	user := &dto.UserResponse{
		ID:       profile.ID,
		Username: profile.Username,
		Email:    profile.Email,
		Phone:    profile.Phone,
		Role:     profile.Role,
	}
	if !completeUser(user) {
		s.purgeLocked()
		return fmt.Errorf("restore session: incomplete profile")
	}
	s.adoptLocked(sess.Token, user)
	return nil
}

// Login delega en el backend y persiste token + usuario como una unidad.
func (s *SessionStore) Login(identifier, password string) error {
	if err := s.beginAuth(); err != nil {
		return err
	}
	defer s.endAuth()
	return s.doLogin(identifier, password)
}

// Register registra y luego intenta el auto-login con las mismas credenciales.
// El resultado es explícito: RegisteredAndAuthenticated o RegisteredOnly cuando
// el login secundario falla (el registro sigue siendo exitoso).
func (s *SessionStore) Register(in dto.RegisterRequest) (RegisterOutcome, error) {
	if err := s.beginAuth(); err != nil {
		return 0, err
	}
	defer s.endAuth()

	if _, err := s.api.Register(in); err != nil {
		return 0, err
	}
	if err := s.doLogin(in.Username, in.Password); err != nil {
		return RegisteredOnly, nil
	}
	return RegisteredAndAuthenticated, nil
}

func (s *SessionStore) doLogin(identifier, password string) error {
	out, err := s.api.Login(identifier, password)
	if err != nil {
		return err
	}

	user := &out.User
	if !completeUser(user) {
		// Respuesta sin usuario: el perfil es el fallback
		profile, err := s.api.FetchProfile(out.Token)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		user = &dto.UserResponse{
			ID:       profile.ID,
			Username: profile.Username,
			Email:    profile.Email,
			Phone:    profile.Phone,
			Role:     profile.Role,
		}
	}

	s.mu.Lock()
	s.adoptLocked(out.Token, user)
	s.mu.Unlock()

	// Refresco del catálogo: mejor esfuerzo, no afecta el login
	_ = s.RefreshProducts()
	return nil
}

// Logout purga token, usuario y colecciones derivadas; es idempotente.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
}

// IsAuthenticated se recalcula en cada llamada, nunca se cachea: una sesión
// parcial (token sin usuario, o usuario sin id/username) no está autenticada.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && completeUser(s.user)
}

// Token devuelve el token actual (vacío si no hay sesión).
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User devuelve el usuario actual o nil.
func (s *SessionStore) User() *dto.UserResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

// RefreshProducts recarga el catálogo cacheado con el token vigente.
func (s *SessionStore) RefreshProducts() error {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	if token == "" {
		return nil
	}
	out, err := s.api.FetchProducts(token)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.products = out.Products
	s.mu.Unlock()
	return nil
}

// Products devuelve el catálogo cacheado.
func (s *SessionStore) Products() []dto.ProductResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]dto.ProductResponse, len(s.products))
	copy(out, s.products)
	return out
}

// AddTransaction agrega un registro con id secuencial TXN###, fecha actual y
// estado Success forzado, al frente de la lista (más reciente primero).
func (s *SessionStore) AddTransaction(t entity.Transaction) entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txnSeq++
	t.ID = fmt.Sprintf("TXN%03d", s.txnSeq)
	t.Date = s.now()
	t.Status = entity.TxnStatusSuccess
	s.transactions = append([]entity.Transaction{t}, s.transactions...)
	return t
}

// Transactions devuelve una copia de la lista, más reciente primero.
func (s *SessionStore) Transactions() []entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Recent devuelve las últimas limit transacciones.
func (s *SessionStore) Recent(limit int) []entity.Transaction {
	all := s.Transactions()
	if limit < len(all) {
		all = all[:limit]
	}
	return all
}

// Stats es una proyección pura sobre la lista actual; se recalcula siempre.
func (s *SessionStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DeriveStats(s.transactions, s.now())
}

// MonthlyBreakdown agrupa los montos exitosos por mes calendario: los últimos 5
// meses terminando en el actual, en orden cronológico, con ceros incluidos.
func (s *SessionStore) MonthlyBreakdown() []MonthAmount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DeriveMonthlyBreakdown(s.transactions, s.now(), 5)
}

// beginAuth reclama el único slot de auth en vuelo.
func (s *SessionStore) beginAuth() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return ErrAuthInFlight
	}
	s.inFlight = true
	return nil
}

func (s *SessionStore) endAuth() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// adoptLocked fija token+usuario y los persiste como un solo documento.
func (s *SessionStore) adoptLocked(token string, user *dto.UserResponse) {
	s.token = token
	s.user = user
	_ = s.storage.Save(&Session{Token: token, User: user})
}

// purgeLocked limpia memoria y almacenamiento en un solo paso.
func (s *SessionStore) purgeLocked() {
	s.token = ""
	s.user = nil
	s.products = nil
	_ = s.storage.Clear()
}

func completeUser(u *dto.UserResponse) bool {
	return u != nil && u.ID != "" && u.Username != ""
}

// seedTransactions arma el historial demo con el que arranca toda sesión.
func seedTransactions(now time.Time) []entity.Transaction {
	return []entity.Transaction{
		{
			ID: "TXN001", Type: entity.TxnTypeMobileRecharge, Number: "9876543210",
			Operator: "Airtel", Amount: decimal.NewFromInt(299),
			Status: entity.TxnStatusSuccess, Date: now.AddDate(0, 0, -2), Method: "UPI",
		},
		{
			ID: "TXN002", Type: entity.TxnTypeDTHRecharge, Number: "1234567890",
			Operator: "Tata Sky", Amount: decimal.NewFromInt(499),
			Status: entity.TxnStatusSuccess, Date: now.AddDate(0, 0, -3), Method: "Debit Card",
		},
		{
			ID: "TXN003", Type: entity.TxnTypeMobileRecharge, Number: "9876543210",
			Operator: "Jio", Amount: decimal.NewFromInt(199),
			Status: entity.TxnStatusFailed, Date: now.AddDate(0, 0, -4), Method: "UPI",
		},
		{
			ID: "TXN004", Type: entity.TxnTypeElectricityBill, Number: "EB123456789",
			Operator: "BESCOM", Amount: decimal.NewFromInt(2450),
			Status: entity.TxnStatusSuccess, Date: now.AddDate(0, -1, 0), Method: "Net Banking",
		},
		{
			ID: "TXN005", Type: entity.TxnTypeWaterBill, Number: "WB987654321",
			Operator: "Bangalore Water Supply", Amount: decimal.NewFromInt(850),
			Status: entity.TxnStatusSuccess, Date: now.AddDate(0, -2, 0), Method: "Credit Card",
		},
	}
}
