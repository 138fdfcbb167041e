package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resort-backend/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "resort_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}
	DB = db

	// parent -> child order
	if err := DB.AutoMigrate(
		&models.User{},
		&models.PaymentMethod{},
		&models.RoomGroup{},
		&models.Room{},
		&models.Reservation{},
		&models.Assignment{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase backfills the minimum records a fresh install needs. Every
// block is idempotent.
func SeedDatabase() {
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				FullName: "Admin User",
				Username: "admin@resort.local",
				Password: string(hash),
				Role:     "owner",
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var pmCount int64
	DB.Model(&models.PaymentMethod{}).Count(&pmCount)
	if pmCount == 0 {
		methods := []models.PaymentMethod{
			{Name: "Cash", Code: "CASH"},
			{Name: "Credit Card", Code: "CARD"},
			{Name: "Bank Transfer", Code: "TRANSFER"},
		}
		if err := DB.Create(&methods).Error; err != nil {
			log.Printf("warning: failed to seed payment methods: %v", err)
		} else {
			log.Println("Payment methods seeded")
		}
	}

	var groupCount int64
	DB.Model(&models.RoomGroup{}).Count(&groupCount)
	if groupCount == 0 {
		groups := []models.RoomGroup{
			{Name: "Main Building", Description: "Standard rooms in the main building"},
			{Name: "Garden Villas", Description: "Detached villas around the garden"},
		}
		if err := DB.Create(&groups).Error; err != nil {
			log.Printf("warning: failed to seed room groups: %v", err)
			return
		}

		rooms := []models.Room{
			{RoomGroupID: groups[0].ID, RoomNumber: "101", Status: models.RoomStatusNormal, Floor: "1", MaxOccupancy: 2},
			{RoomGroupID: groups[0].ID, RoomNumber: "102", Status: models.RoomStatusNormal, Floor: "1", MaxOccupancy: 2},
			{RoomGroupID: groups[0].ID, RoomNumber: "201", Status: models.RoomStatusNormal, Floor: "2", MaxOccupancy: 3},
			{RoomGroupID: groups[1].ID, RoomNumber: "V1", Status: models.RoomStatusNormal, MaxOccupancy: 4},
			{RoomGroupID: groups[1].ID, RoomNumber: "V2", Status: models.RoomStatusConstruction, MaxOccupancy: 4},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Room groups and rooms seeded")
		}
	}
}
