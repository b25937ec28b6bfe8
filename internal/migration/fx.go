package migration

import (
	draftdomain "github.com/smallbiznis/pompabon/internal/draft/domain"
	printjobdomain "github.com/smallbiznis/pompabon/internal/printjob/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module creates the two persisted tables on startup so the service is
// usable out of the box on a fresh kiosk install.
var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB) error {
		return conn.AutoMigrate(
			&draftdomain.Record{},
			&printjobdomain.PrintJob{},
		)
	}),
)
