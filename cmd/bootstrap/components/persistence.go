package components

import (
	"courtbook/internal/infra/db"
	"courtbook/internal/infra/gateway"
	"courtbook/internal/infra/notifier"
	"courtbook/internal/infra/readstore"
	"courtbook/internal/infra/uow"
	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
			fx.As(new(queries.ReservationOwnership)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotViewRepo)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentViewRepo)),
		),
		notifier.NewStoreNotifier,
		NewGateway,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewGateway(cfg config.Config) commands.Gateway {
	return gateway.NewSimulatedGateway(cfg.Gateway)
}
