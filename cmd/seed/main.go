// Seed de datos demo: crea el usuario demo, un administrador y un catálogo
// inicial de planes. Es idempotente: si el usuario demo ya existe no hace nada.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/livpay-api/internal/domain/entity"
	"github.com/jhoicas/livpay-api/internal/infrastructure/postgres"
	"github.com/jhoicas/livpay-api/pkg/config"
	"github.com/jhoicas/livpay-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Bootstrap(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de base de datos")
	}

	userRepo := postgres.NewUserRepository(pool)

	existing, err := userRepo.GetByUsername("demo")
	if err != nil {
		log.Fatal().Err(err).Msg("verificar usuario demo")
	}
	if existing != nil {
		log.Info().Msg("el usuario demo ya existe, nada que hacer")
		return
	}

	users := []struct {
		username, email, phone, password, role string
	}{
		{"demo", "demo@test.com", "9876543210", "Demo@12345", entity.RoleUser},
		{"admin", "admin@livpay.com", "9000000001", "Admin@12345", entity.RoleAdmin},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de password")
		}
		now := time.Now()
		err = userRepo.Create(&entity.User{
			ID:           uuid.New().String(),
			Username:     u.username,
			Email:        u.email,
			Phone:        u.phone,
			PasswordHash: string(hash),
			Role:         u.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("username", u.username).Msg("crear usuario")
		}
		log.Info().Str("username", u.username).Str("role", u.role).Msg("usuario creado")
	}

	productRepo := postgres.NewProductRepository(pool)
	plans := []struct {
		name  string
		price int64
	}{
		{"Unlimited 5G Plan - 84 Days", 719},
		{"Truly Unlimited - 28 Days", 299},
		{"Data Booster 2GB/Day - 28 Days", 249},
		{"DTH HD Pack - Monthly", 499},
		{"International Roaming Pack - 10 Days", 1099},
	}
	for _, p := range plans {
		now := time.Now()
		err := productRepo.Create(&entity.Product{
			ID:        uuid.New().String(),
			Name:      p.name,
			Price:     decimal.NewFromInt(p.price),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("name", p.name).Msg("crear producto")
		}
	}
	log.Info().Int("products", len(plans)).Msg("catálogo demo creado")
}
