package container

import (
	"go.uber.org/zap"

	"github.com/mEdHaT33/Arkan/internal/config"
	"github.com/mEdHaT33/Arkan/internal/finance"
	"github.com/mEdHaT33/Arkan/internal/imports"
	"github.com/mEdHaT33/Arkan/internal/orders"
	"github.com/mEdHaT33/Arkan/internal/parties"
	"github.com/mEdHaT33/Arkan/internal/receipts"
	"github.com/mEdHaT33/Arkan/internal/remote"
	"github.com/mEdHaT33/Arkan/internal/session"
	"github.com/mEdHaT33/Arkan/internal/users"
	"github.com/mEdHaT33/Arkan/internal/warehouse"
	"github.com/mEdHaT33/Arkan/pkg/auditlog"
)

type Container struct {
	Remote           *remote.Client
	AuditLog         *auditlog.AuditLog
	SessionHandler   *session.SessionHandler
	OrdersHandler    *orders.OrdersHandler
	PartiesHandler   *parties.PartiesHandler
	FinanceHandler   *finance.FinanceHandler
	ReceiptsHandler  *receipts.ReceiptsHandler
	WarehouseHandler *warehouse.WarehouseHandler
	ImportsHandler   *imports.ImportsHandler
	UsersHandler     *users.UsersHandler
}

func NewAppContainer(cfg config.Config, log *zap.Logger) *Container {
	client := remote.NewClient(cfg.RemoteBaseURL, cfg.RemoteTimeout, log)
	auditLog := auditlog.NewAuditLog(log)

	sessionHandler := session.NewHandler(remote.NewAuthService(client), log)
	ordersHandler := orders.NewHandler(remote.NewOrdersService(client), auditLog)
	partiesHandler := parties.NewHandler(remote.NewPartiesService(client), auditLog)
	financeHandler := finance.NewHandler(remote.NewFinanceService(client), auditLog)
	receiptsHandler := receipts.NewHandler(remote.NewReceiptsService(client), auditLog)
	warehouseHandler := warehouse.NewHandler(remote.NewWarehouseService(client), auditLog)
	importsHandler := imports.NewHandler(remote.NewImportsService(client), auditLog)
	usersHandler := users.NewHandler(remote.NewUsersService(client), auditLog)

	return &Container{
		Remote:           client,
		AuditLog:         auditLog,
		SessionHandler:   sessionHandler,
		OrdersHandler:    ordersHandler,
		PartiesHandler:   partiesHandler,
		FinanceHandler:   financeHandler,
		ReceiptsHandler:  receiptsHandler,
		WarehouseHandler: warehouseHandler,
		ImportsHandler:   importsHandler,
		UsersHandler:     usersHandler,
	}
}
