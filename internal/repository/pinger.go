package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type dbPinger struct {
	db *gorm.DB
}

func NewPinger(db *gorm.DB) Pinger {
	return &dbPinger{db: db}
}

func (p *dbPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
