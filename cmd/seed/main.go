package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"salonbooking/internal/config"
	"salonbooking/internal/database"
	"salonbooking/internal/domain"
	"salonbooking/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl := logger.New(cfg.AppEnv)
	defer func() { _ = zl.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, zl.Named("db"))
	if err != nil {
		zl.Fatal("DB connection failed", zap.Error(err))
	}
	database.SetMigrationLogger(zap.NewStdLog(zl.Named("migrate")))
	if err := database.Migrate(context.Background(), db); err != nil {
		zl.Fatal("migrate failed", zap.Error(err))
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	zl.Info("cleaning old data")
	for _, table := range []string{"notifications", "appointments", "stylists", "services", "customers", "businesses"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			zl.Fatal("cleanup failed", zap.String("table", table), zap.Error(err))
		}
	}

	now := time.Now().UTC()

	// ================== BUSINESS ==================
	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	biz := domain.Business{
		ID:           uuid.NewString(),
		Name:         "Glow Hair Studio",
		Email:        "owner@glow.example",
		Phone:        "+1 555 0100",
		Address:      "12 Market Street",
		PasswordHash: string(ownerHash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	must(zl, db.Create(&biz).Error)
	zl.Info("business created", zap.String("email", biz.Email), zap.String("password", "owner123"), zap.String("id", biz.ID))

	// ================== SERVICES ==================
	services := []domain.SalonService{
		{Name: "Haircut", Description: "Wash, cut and style", Price: 35, Duration: 45},
		{Name: "Colour", Description: "Full head colour", Price: 90, Duration: 120},
		{Name: "Blow-dry", Description: "Wash and blow-dry", Price: 25, Duration: 30},
		{Name: "Beard trim", Description: "Shape and line-up", Price: 15, Duration: 20},
	}
	for i := range services {
		services[i].ID = uuid.NewString()
		services[i].BusinessID = biz.ID
		services[i].CreatedAt = now
		services[i].UpdatedAt = now
	}
	must(zl, db.Create(&services).Error)

	// ================== STYLISTS ==================
	stylists := []domain.Stylist{
		{Name: "Mia Chen", Specialization: "Colour", Email: "mia@glow.example"},
		{Name: "Leo Park", Specialization: "Cuts", Email: "leo@glow.example"},
		{Name: "Sara Diaz", Specialization: "Styling", Email: "sara@glow.example"},
	}
	for i := range stylists {
		stylists[i].ID = uuid.NewString()
		stylists[i].BusinessID = biz.ID
		stylists[i].IsActive = true
		stylists[i].CreatedAt = now
		stylists[i].UpdatedAt = now
	}
	must(zl, db.Create(&stylists).Error)

	// ================== CUSTOMERS ==================
	customerHash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
	customers := make([]domain.Customer, 0, 3)
	for i, name := range []string{"Ann Lee", "Ben Ortiz", "Cara Singh"} {
		c := domain.Customer{
			ID:         uuid.NewString(),
			BusinessID: biz.ID,
			Name:       name,
			Email:      fmt.Sprintf("client%d@example.com", i+1),
			Phone:      fmt.Sprintf("+1 555 01%02d", i+10),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if i == 0 {
			c.PasswordHash = string(customerHash)
		}
		customers = append(customers, c)
	}
	must(zl, db.Create(&customers).Error)

	// ================== APPOINTMENTS ==================
	statuses := []domain.AppointmentStatus{
		domain.AppointmentPending,
		domain.AppointmentConfirmed,
		domain.AppointmentCompleted,
		domain.AppointmentCancelled,
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, cfg.Location)
	count := 0
	for d := -3; d <= 7; d++ {
		for slot := 0; slot < 3; slot++ {
			svc := services[(d+slot+10)%len(services)]
			st := stylists[(slot+d+10)%len(stylists)]
			status := statuses[(d+slot+10)%len(statuses)]
			if d > 0 && status == domain.AppointmentCompleted {
				status = domain.AppointmentConfirmed
			}
			stylistID := st.ID
			a := domain.Appointment{
				ID:              uuid.NewString(),
				BusinessID:      biz.ID,
				CustomerID:      customers[(slot+d+10)%len(customers)].ID,
				ServiceID:       svc.ID,
				ServiceName:     svc.Name,
				StylistID:       &stylistID,
				AppointmentDate: day.AddDate(0, 0, d).Add(time.Duration(slot*2) * time.Hour).UTC(),
				Status:          status,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			must(zl, db.Omit("Customer", "Service", "Stylist", "Business").Create(&a).Error)
			count++
		}
	}

	zl.Info("seed completed",
		zap.Int("services", len(services)),
		zap.Int("stylists", len(stylists)),
		zap.Int("customers", len(customers)),
		zap.Int("appointments", count),
	)
	zl.Info("customer login", zap.String("email", customers[0].Email), zap.String("password", "client123"))
}

func must(zl *zap.Logger, err error) {
	if err != nil {
		zl.Fatal("seed failed", zap.Error(err))
	}
}
