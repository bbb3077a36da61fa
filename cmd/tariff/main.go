package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/freightdesk/tariff/internal/clock"
	"github.com/freightdesk/tariff/internal/config"
	"github.com/freightdesk/tariff/internal/logger"
	"github.com/freightdesk/tariff/internal/migration"
	"github.com/freightdesk/tariff/internal/server"
	"github.com/freightdesk/tariff/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		// HTTP surface plus the pricing domain modules it wires in
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
