package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/pompabon/internal/clock"
	"github.com/smallbiznis/pompabon/internal/migration"
	"github.com/smallbiznis/pompabon/internal/observability"
	"github.com/smallbiznis/pompabon/internal/server"
	"github.com/smallbiznis/pompabon/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		// HTTP surface plus every domain module it composes
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
