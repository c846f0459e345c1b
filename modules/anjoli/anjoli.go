package anjoli

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/core"
	"github.com/durgadao/anjoli-custody/core/worker"
	"github.com/durgadao/anjoli-custody/internal/config"
	"github.com/durgadao/anjoli-custody/internal/postgres"
	anjoliapi "github.com/durgadao/anjoli-custody/modules/anjoli/api"
	anjoliconfig "github.com/durgadao/anjoli-custody/modules/anjoli/config"
	anjolidatagateway "github.com/durgadao/anjoli-custody/modules/anjoli/datagateway"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	anjolimemory "github.com/durgadao/anjoli-custody/modules/anjoli/repository/memory"
	anjolipostgres "github.com/durgadao/anjoli-custody/modules/anjoli/repository/postgres"
	anjoliusecase "github.com/durgadao/anjoli-custody/modules/anjoli/usecase"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/reportingclient"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
)

func New(injector do.Injector) (core.Worker, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	reportingClient := do.MustInvoke[*reportingclient.ReportingClient](injector)
	registerer := do.MustInvoke[prometheus.Registerer](injector)

	var anjoliDg anjolidatagateway.AnjoliDataGateway
	var cleanupFuncs []func(context.Context) error
	switch strings.ToLower(conf.Modules.Anjoli.Datastore) {
	case "postgresql", anjoliconfig.DatastorePostgres, "pg":
		pg, err := postgres.NewPool(ctx, conf.Modules.Anjoli.Postgres)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "Invalid Postgres configuration for anjoli")
			}
			return nil, errors.Wrap(err, "can't create Postgres connection pool")
		}
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			pg.Close()
			return nil
		})
		anjoliDg = anjolipostgres.NewRepository(pg)
	case anjoliconfig.DatastoreMemory:
		logger.WarnContext(ctx, "Using in-memory datastore, contract state and ledger are lost on shutdown")
		anjoliDg = anjolimemory.NewRepository()
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q datastore for anjoli is not supported", conf.Modules.Anjoli.Datastore)
	}

	opts := []anjoliusecase.Option{anjoliusecase.WithRegisterer(registerer)}
	if reportingClient != nil {
		opts = append(opts, anjoliusecase.WithReporter(newContractReporter(reportingClient, conf.Network)))
	}
	anjoliUsecase, err := anjoliusecase.New(anjoliDg, entity.Address(conf.Modules.Anjoli.AppAddress), opts...)
	if err != nil {
		if errors.Is(err, errs.InvalidArgument) {
			return nil, errors.Wrap(err, "invalid anjoli configuration, modules.anjoli.app_address is required")
		}
		return nil, errors.Wrap(err, "can't create anjoli usecase")
	}

	// Mount API
	apiHandlers := lo.Uniq(conf.Modules.Anjoli.APIHandlers)
	for _, handler := range apiHandlers {
		switch handler {
		case "http":
			httpServer := do.MustInvoke[*fiber.App](injector)
			anjoliHTTPHandler := anjoliapi.NewHTTPHandler(conf.Network, anjoliUsecase)
			if err := anjoliHTTPHandler.Mount(httpServer); err != nil {
				return nil, errors.Wrap(err, "can't mount Anjoli API")
			}
			logger.InfoContext(ctx, "Mounted HTTP handler")
		default:
			return nil, errors.Wrapf(errs.Unsupported, "%q API handler is not supported", handler)
		}
	}

	processor := NewProcessor(anjoliUsecase, reportingClient, conf.Network, conf.Modules.Anjoli.AutoInitialize, cleanupFuncs)
	return worker.New(processor, conf.Modules.Anjoli.ReportInterval), nil
}
