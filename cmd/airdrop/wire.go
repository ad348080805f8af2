package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gabapcia/airdrop/internal/addressbook"
	"github.com/gabapcia/airdrop/internal/config"
	"github.com/gabapcia/airdrop/internal/distribution"
	"github.com/gabapcia/airdrop/internal/eligibility"
	"github.com/gabapcia/airdrop/internal/handlers/cli"
	"github.com/gabapcia/airdrop/internal/infra/allowlist"
	"github.com/gabapcia/airdrop/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/airdrop/internal/infra/notify/telegram"
	"github.com/gabapcia/airdrop/internal/infra/storage/file"
	"github.com/gabapcia/airdrop/internal/infra/storage/redis"
	"github.com/gabapcia/airdrop/internal/pkg/logger"
	"github.com/gabapcia/airdrop/internal/pkg/random"
	"github.com/gabapcia/airdrop/internal/pkg/resilience/retry"
	transporthttp "github.com/gabapcia/airdrop/internal/pkg/transport/http"
	"github.com/gabapcia/airdrop/internal/planner"
	"github.com/gabapcia/airdrop/internal/scheduler"
)

type storage struct {
	store       addressbook.Store
	checkpoints addressbook.CheckpointStorage
	locker      addressbook.Locker
	close       func()
}

func buildStorage(ctx context.Context, cfg config.Config) (storage, error) {
	if cfg.StoreBackend == config.BackendRedis {
		rc, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return storage{}, fmt.Errorf("failed to connect to redis: %w", err)
		}

		return storage{
			store:       rc,
			checkpoints: rc,
			locker:      rc.NewLocker(cfg.RedisLockTTL),
			close:       func() { _ = rc.Close() },
		}, nil
	}

	return storage{
		store: file.NewClient(cfg.DataDir,
			file.WithListFile(addressbook.SentList, cfg.SentFile),
			file.WithListFile(addressbook.PendingList, cfg.PendingFile),
		),
		checkpoints: file.NewCheckpoint(cfg.DataDir, cfg.CheckpointFile),
		locker:      file.NewLocker(filepath.Join(cfg.DataDir, cfg.LockFile)),
		close:       func() {},
	}, nil
}

// build wires every component from cfg. The returned func releases
// connections and must be called once the command returns.
func build(ctx context.Context, cfg config.Config) (cli.Services, func(), error) {
	st, err := buildStorage(ctx, cfg)
	if err != nil {
		return cli.Services{}, nil, err
	}

	// Allow-list downloads are idempotent and retried; RPC and Bot API calls
	// are not, since a resent transaction or message would be duplicated.
	var (
		fetchHTTP = transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.HTTPTimeout),
			transporthttp.WithLogger(logger.NewLeveled(ctx)),
		).StandardClient()
		singleShotHTTP = transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.HTTPTimeout),
			transporthttp.WithRetryMax(0),
		).StandardClient()
	)

	ledger, err := ethereum.NewClient(ctx, cfg.RPCURL, cfg.PrivateKey, cfg.TokenAddress, cfg.ChainID,
		ethereum.WithHTTPClient(singleShotHTTP),
	)
	if err != nil {
		st.close()
		return cli.Services{}, nil, fmt.Errorf("failed to create ledger client: %w", err)
	}

	notifier := telegram.NewClient(singleShotHTTP, cfg.TelegramBotToken, cfg.TelegramChatID,
		telegram.WithAPIURL(cfg.TelegramAPIURL),
		telegram.WithRateLimit(cfg.NotifyRate),
		telegram.WithRetry(retry.New(
			retry.WithAttempts(cfg.NotifyAttempts),
			retry.WithDelay(cfg.NotifyRetryDelay),
			retry.WithMaxDelay(4*cfg.NotifyRetryDelay),
		)),
	)

	rnd := random.New(cfg.RandomSeed)

	engine, err := distribution.New(
		ledger,
		eligibility.New(allowlist.NewClient(fetchHTTP, cfg.AllowlistURL), st.store),
		planner.New(cfg.DailyCapMin, cfg.DailyCapMax, rnd),
		st.store,
		distribution.Settings{
			Amount:               cfg.Amount(),
			GasReserve:           cfg.GasReserveAmount(),
			Confirmations:        cfg.Confirmations,
			ConfirmationTimeout:  cfg.ConfirmationTimeout,
			PreTransferDelayMin:  cfg.PreTransferDelayMin,
			PreTransferDelayMax:  cfg.PreTransferDelayMax,
			PostTransferDelayMin: cfg.PostTransferDelayMin,
			PostTransferDelayMax: cfg.PostTransferDelayMax,
			ExplorerTxURL:        cfg.ExplorerTxURL,
		},
		distribution.WithNotifier(notifier),
		distribution.WithRandom(rnd),
	)
	if err != nil {
		ledger.Close()
		st.close()
		return cli.Services{}, nil, err
	}

	schedule, err := scheduler.ParseSchedule(cfg.Schedule)
	if err != nil {
		ledger.Close()
		st.close()
		return cli.Services{}, nil, err
	}

	sched := scheduler.New(engine, schedule,
		scheduler.WithCheckpointStorage(st.checkpoints),
		scheduler.WithSkipIfDoneToday(cfg.SkipIfDoneToday),
		scheduler.WithStartJitter(cfg.StartJitterMax),
		scheduler.WithNotifier(notifier),
		scheduler.WithRandom(rnd),
	)

	svc := cli.Services{
		Scheduler:   sched,
		Locker:      st.locker,
		Store:       st.store,
		Checkpoints: st.checkpoints,
		OnStart: func(ctx context.Context) error {
			logger.Info(ctx, "starting airdrop",
				"config.chain_id", cfg.ChainID,
				"config.token", cfg.TokenAddress,
				"config.wallet", ledger.Address().Hex(),
				"config.store", cfg.StoreBackend,
				"config.schedule", cfg.Schedule,
				"config.telegram", notifier.Enabled(),
			)

			if !notifier.Enabled() {
				logger.Warn(ctx, "telegram notifications disabled: bot token or chat id missing")
				return nil
			}

			if err := notifier.Verify(ctx); err != nil {
				logger.Warn(ctx, "telegram verification failed", "error", err)
			}

			return nil
		},
	}

	return svc, func() {
		ledger.Close()
		st.close()
	}, nil
}
