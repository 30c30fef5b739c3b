package testutil

import (
	"context"
	"time"

	"github.com/spacepet-lab/client/config"
	"github.com/spacepet-lab/client/internal/entity"
	"github.com/spacepet-lab/client/pkg/logger"
	"github.com/spacepet-lab/client/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env: "testing",
		Backend: config.BackendConfigs{
			URLs:           []string{"http://localhost:3000/api"},
			IdentityHeader: "x-line-user-id",
			RequestTimeout: time.Minute,
		},
		Session: config.SessionConfigs{StorePath: ":memory:"},
		Quest: config.QuestConfigs{
			DefaultLimit: 20,
			MaxLimit:     50,
		},
		Chain: config.ChainConfigs{Chain: "kaia"},
	}

	ctx := xcontext.WithConfigs(context.Background(), cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger("ERROR"))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}
