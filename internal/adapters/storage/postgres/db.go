// Package postgres implementa los repositorios sobre Postgres vía gorm
// (driver pgx por debajo). Cada recurso tiene su row model con tags de
// columna y conversión explícita hacia la entidad del dominio.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open abre una conexión pool a Postgres.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// defaults razonables para MVP (ajustable luego)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// AutoMigrate crea o ajusta las tablas de los cinco recursos. Se corre
// solo cuando DB_AUTO_MIGRATE está activo.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&petModel{},
		&clinicModel{},
		&vetModel{},
		&appointmentModel{},
		&messageModel{},
	)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
