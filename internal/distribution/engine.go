// Package distribution runs one airdrop cycle: it checks the wallet, resolves
// and plans the recipients, then sends the transfers one at a time with
// randomized pacing, persisting progress after every outcome.
package distribution

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"time"

	"github.com/gabapcia/airdrop/internal/addressbook"
	"github.com/gabapcia/airdrop/internal/eligibility"
	"github.com/gabapcia/airdrop/internal/pkg/logger"
	"github.com/gabapcia/airdrop/internal/pkg/random"
	"github.com/gabapcia/airdrop/internal/pkg/x/chflow"
	"github.com/gabapcia/airdrop/internal/planner"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// notifyTimeout bounds notifications sent after the cycle context is done.
const notifyTimeout = 30 * time.Second

// Settings are the tunables of a cycle. Amounts are human units.
type Settings struct {
	Amount               decimal.Decimal // tokens per recipient
	GasReserve           decimal.Decimal // minimum native balance to start a cycle
	Confirmations        uint64
	ConfirmationTimeout  time.Duration // zero waits for as long as ctx allows
	PreTransferDelayMin  time.Duration
	PreTransferDelayMax  time.Duration
	PostTransferDelayMin time.Duration
	PostTransferDelayMax time.Duration
	ExplorerTxURL        string // prefix joined with the hash; empty disables links
}

type Engine interface {
	RunCycle(ctx context.Context) (CycleReport, error)
}

type engine struct {
	ledger   Ledger
	resolver eligibility.Resolver
	planner  planner.Planner
	store    addressbook.Store
	settings Settings

	notifier Notifier
	clock    clockwork.Clock
	rand     random.Source
	newID    func() string
	onPhase  func(Phase)

	tracer  trace.Tracer
	metrics *engineMetrics
}

var _ Engine = (*engine)(nil)

// RunCycle executes one distribution cycle.
//
// Return values:
//   - nil when the cycle completed or was skipped (see CycleReport.Skipped)
//   - an error wrapping ErrBalance or eligibility.ErrStore when it aborted
//   - ctx.Err() when it was interrupted; already persisted progress is kept
func (e *engine) RunCycle(ctx context.Context) (CycleReport, error) {
	report := CycleReport{
		ID:        e.newID(),
		StartedAt: e.clock.Now(),
	}

	ctx = logger.Derive(ctx, "cycle.id", report.ID)
	ctx, span := e.tracer.Start(ctx, "distribution.cycle", trace.WithAttributes(attribute.String("cycle.id", report.ID)))
	defer span.End()

	logger.Info(ctx, "distribution cycle started")

	c := newCycle(e.store, report, e.onPhase)
	err := e.run(ctx, c)

	report = c.report
	report.FinishedAt = e.clock.Now()

	var outcome string
	switch {
	case report.Interrupted:
		outcome = cycleOutcomeInterrupted
	case err != nil:
		outcome = cycleOutcomeAborted
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		logger.Error(ctx, "distribution cycle aborted", "error", err)
		e.notify(ctx, msgCycleError(err))
	case report.Skipped != SkipNone:
		outcome = cycleOutcomeSkipped
	default:
		outcome = cycleOutcomeCompleted
	}

	e.metrics.incrementCycles(ctx, outcome)
	logger.Info(ctx, "distribution cycle finished",
		"cycle.outcome", outcome,
		"cycle.attempted", report.Attempted(),
		"cycle.succeeded", report.Succeeded,
		"cycle.failed", report.Failed,
		"cycle.duration", report.FinishedAt.Sub(report.StartedAt),
	)

	return report, err
}

func (e *engine) run(ctx context.Context, c *cycle) error {
	defer c.enter(ctx, PhaseIdle)

	c.enter(ctx, PhasePlanning)
	snapshot, perRecipient, err := e.plan(ctx, c)
	if err != nil {
		if ctx.Err() != nil {
			return e.interrupt(ctx, c)
		}
		return err
	}

	if c.report.Skipped != SkipNone {
		return nil
	}

	c.enter(ctx, PhaseSelecting)
	batch := selectBatch(e.rand, snapshot.Recipients, c.report.Plan.Size)
	c.report.Selected = batch
	c.load(snapshot)
	if err := c.begin(ctx, batch); err != nil {
		return err
	}

	for i, recipient := range batch {
		n := i + 1
		ctx := logger.Derive(ctx, "transfer.seq", n, "transfer.recipient", recipient.String())

		c.enter(ctx, PhasePacingDelay)
		delay := random.DurationBetween(e.rand, e.settings.PreTransferDelayMin, e.settings.PreTransferDelayMax)
		logger.Info(ctx, "waiting before transfer", "transfer.delay", delay)
		if err := chflow.Sleep(ctx, e.clock, delay); err != nil {
			return e.interrupt(ctx, c)
		}

		c.enter(ctx, PhaseSending)
		record := e.transfer(ctx, recipient, perRecipient)
		if record.Err != nil && ctx.Err() != nil {
			return e.interrupt(ctx, c)
		}

		c.enter(ctx, PhaseRecording)
		if record.Succeeded() {
			if err := c.recordSuccess(ctx, record); err != nil {
				return err
			}

			logger.Info(ctx, "transfer succeeded", "transfer.tx_hash", record.TxHash)
			e.notify(ctx, msgTransferSucceeded(n, record, e.settings.Amount, c.report.Token, e.settings.ExplorerTxURL))

			delay := random.DurationBetween(e.rand, e.settings.PostTransferDelayMin, e.settings.PostTransferDelayMax)
			logger.Debug(ctx, "waiting after transfer", "transfer.delay", delay)
			if err := chflow.Sleep(ctx, e.clock, delay); err != nil {
				return e.interrupt(ctx, c)
			}
		} else {
			if err := c.recordFailure(ctx, record); err != nil {
				return err
			}

			logger.Warn(ctx, "transfer failed", "error", record.Err)
			e.notify(ctx, msgTransferFailed(n, record))
		}
	}

	c.enter(ctx, PhaseFinalizing)
	if err := c.finalize(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "distribution finished", "cycle.succeeded", c.report.Succeeded, "cycle.failed", c.report.Failed)
	e.notify(ctx, msgSummary(c.report))

	return nil
}

// plan runs the Planning phase. It returns the resolved snapshot and the
// per-recipient amount in base units, or marks the report as skipped.
func (e *engine) plan(ctx context.Context, c *cycle) (eligibility.Snapshot, *big.Int, error) {
	if err := e.ledger.Ping(ctx); err != nil {
		return eligibility.Snapshot{}, nil, fmt.Errorf("%w: network unreachable: %w", ErrBalance, err)
	}

	decimals, err := e.ledger.TokenDecimals(ctx)
	if err != nil {
		return eligibility.Snapshot{}, nil, fmt.Errorf("%w: token decimals: %w", ErrBalance, err)
	}

	token := e.tokenMetadata(ctx, decimals)
	c.report.Token = token

	native, err := e.ledger.NativeBalance(ctx)
	if err != nil {
		return eligibility.Snapshot{}, nil, fmt.Errorf("%w: native balance: %w", ErrBalance, err)
	}

	tokenBalance, err := e.ledger.TokenBalance(ctx)
	if err != nil {
		return eligibility.Snapshot{}, nil, fmt.Errorf("%w: token balance: %w", ErrBalance, err)
	}

	c.report.NativeBalance = native
	c.report.TokenBalance = tokenBalance

	logger.Info(ctx, "wallet balance",
		"wallet.native", formatUnits(native, nativeDecimals),
		"wallet.token", formatUnits(tokenBalance, decimals),
	)
	e.notify(ctx, msgBalances(token, native, tokenBalance))

	snapshot, err := e.resolver.Resolve(ctx)
	if err != nil {
		if !errors.Is(err, eligibility.ErrFetch) || ctx.Err() != nil {
			return eligibility.Snapshot{}, nil, err
		}

		logger.Warn(ctx, "eligible addresses unavailable", "error", err)
		snapshot = eligibility.Snapshot{}
	}

	c.report.Eligible = len(snapshot.Eligible)
	c.report.Recipients = len(snapshot.Recipients)

	if len(snapshot.Eligible) == 0 {
		c.report.Skipped = SkipNoEligible
		logger.Warn(ctx, "no eligible addresses found")
		e.notify(ctx, msgNoEligible())
		return snapshot, nil, nil
	}

	perRecipient := toBaseUnits(e.settings.Amount, int32(decimals))
	plan := e.planner.Plan(planner.Input{
		RecipientCount: len(snapshot.Recipients),
		NativeBalance:  native,
		TokenBalance:   tokenBalance,
		PerRecipient:   perRecipient,
		GasReserve:     toBaseUnits(e.settings.GasReserve, nativeDecimals),
	})
	c.report.Plan = plan

	switch plan.Reason {
	case planner.ReasonLowGas:
		c.report.Skipped = SkipLowGas
		logger.Warn(ctx, "native balance below gas reserve")
		e.notify(ctx, msgLowGas())
		return snapshot, nil, nil
	case planner.ReasonLowToken:
		c.report.Skipped = SkipLowToken
		logger.Warn(ctx, "token balance below amount per recipient")
		e.notify(ctx, msgLowToken(token))
		return snapshot, nil, nil
	case planner.ReasonZeroAmount:
		c.report.Skipped = SkipZeroAmount
		logger.Error(ctx, "amount per recipient is zero in token base units", "amount", e.settings.Amount.String())
		e.notify(ctx, msgZeroAmount(token))
		return snapshot, nil, nil
	case planner.ReasonNoRecipients:
		c.report.Skipped = SkipAllSent
		logger.Info(ctx, "every eligible address already received tokens")
		e.notify(ctx, msgAllSent())
		return snapshot, nil, nil
	}

	logger.Info(ctx, "batch planned",
		"plan.recipients", len(snapshot.Recipients),
		"plan.size", plan.Size,
		"plan.cap", plan.Cap,
		"plan.affordable", plan.Affordable.String(),
	)
	e.notify(ctx, msgRecipients(len(snapshot.Recipients)))
	e.notify(ctx, msgPlan(plan.Size, e.settings.Amount, token))

	return snapshot, perRecipient, nil
}

// tokenMetadata reads name and symbol on a best effort basis.
func (e *engine) tokenMetadata(ctx context.Context, decimals uint8) Token {
	token := Token{Name: "Unknown Token", Decimals: decimals}

	name, err := e.ledger.TokenName(ctx)
	if err != nil {
		logger.Warn(ctx, "could not read token name", "error", err)
		return token
	}

	symbol, err := e.ledger.TokenSymbol(ctx)
	if err != nil {
		logger.Warn(ctx, "could not read token symbol", "error", err)
		return token
	}

	token.Name, token.Symbol = name, symbol

	logger.Info(ctx, "token detected", "token.name", name, "token.symbol", symbol, "token.decimals", decimals)
	e.notify(ctx, msgTokenDetected(token))

	return token
}

// selectBatch takes the first size recipients and shuffles only that prefix,
// so selection follows eligibility order while execution order is random.
func selectBatch(src random.Source, recipients []addressbook.Address, size int) []addressbook.Address {
	size = max(0, min(size, len(recipients)))

	batch := slices.Clone(recipients[:size])
	random.Shuffle(src, batch)

	return batch
}

// transfer submits one transfer and waits for its confirmations.
func (e *engine) transfer(ctx context.Context, to addressbook.Address, amount *big.Int) TransferRecord {
	ctx, span := e.tracer.Start(ctx, "distribution.transfer", trace.WithAttributes(attribute.String("transfer.recipient", to.String())))
	defer span.End()

	record := TransferRecord{
		Recipient: to,
		Amount:    amount,
	}

	logger.Info(ctx, "sending transfer", "transfer.amount", amount.String())

	record.TxHash, record.Err = e.submitAndWait(ctx, to, amount)
	record.Timestamp = e.clock.Now()

	if record.Err != nil {
		span.RecordError(record.Err)
		span.SetStatus(codes.Error, record.Err.Error())
		e.metrics.incrementTransfers(ctx, transferOutcomeFailed)
	} else {
		span.SetAttributes(attribute.String("transfer.tx_hash", record.TxHash))
		e.metrics.incrementTransfers(ctx, transferOutcomeSucceeded)
	}

	return record
}

func (e *engine) submitAndWait(ctx context.Context, to addressbook.Address, amount *big.Int) (string, error) {
	pending, err := e.ledger.Transfer(ctx, to, amount)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	hash := pending.Hash()
	logger.Debug(ctx, "transfer submitted", "transfer.tx_hash", hash, "transfer.confirmations", e.settings.Confirmations)

	waitCtx := ctx
	if e.settings.ConfirmationTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, e.settings.ConfirmationTimeout)
		defer cancel()
	}

	if err := pending.Wait(waitCtx, e.settings.Confirmations); err != nil {
		return hash, fmt.Errorf("%w: %s: %w", ErrTransfer, hash, err)
	}

	return hash, nil
}

// interrupt stops the cycle without Finalizing, keeping what was already
// persisted as the recovery point.
func (e *engine) interrupt(ctx context.Context, c *cycle) error {
	c.report.Interrupted = true

	logger.Warn(ctx, "distribution interrupted",
		"cycle.succeeded", c.report.Succeeded,
		"cycle.failed", c.report.Failed,
		"cycle.not_attempted", c.report.NotAttempted(),
	)
	e.notify(ctx, msgInterrupted(c.report))

	return ctx.Err()
}

// notify sends text to the operator chat. Failures are logged and dropped.
func (e *engine) notify(ctx context.Context, text string) {
	if ctx.Err() != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()
	}

	if err := e.notifier.Notify(ctx, text); err != nil {
		logger.Warn(ctx, "notification dropped", "error", err)
	}
}

type config struct {
	notifier Notifier
	clock    clockwork.Clock
	rand     random.Source
	newID    func() string
	onPhase  func(Phase)
}

type Option func(*config)

// WithNotifier mirrors cycle events to n. Without it the engine only logs.
func WithNotifier(n Notifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithRandom sets the source used for pacing delays and shuffling.
func WithRandom(src random.Source) Option {
	return func(c *config) {
		c.rand = src
	}
}

// WithPhaseObserver calls f on every state transition.
func WithPhaseObserver(f func(Phase)) Option {
	return func(c *config) {
		c.onPhase = f
	}
}

func newCycleID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// New builds an Engine. It fails only if the metric instruments cannot be
// registered.
func New(ledger Ledger, resolver eligibility.Resolver, batchPlanner planner.Planner, store addressbook.Store, settings Settings, opts ...Option) (*engine, error) {
	cfg := config{
		notifier: nopNotifier{},
		clock:    clockwork.NewRealClock(),
		rand:     random.New(0),
		newID:    newCycleID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	metrics, err := newEngineMetrics()
	if err != nil {
		return nil, err
	}

	return &engine{
		ledger:   ledger,
		resolver: resolver,
		planner:  batchPlanner,
		store:    store,
		settings: settings,
		notifier: cfg.notifier,
		clock:    cfg.clock,
		rand:     cfg.rand,
		newID:    cfg.newID,
		onPhase:  cfg.onPhase,
		tracer:   otel.Tracer(instrumentationName),
		metrics:  metrics,
	}, nil
}
