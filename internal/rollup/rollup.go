// Package rollup loads fundings with their related collections and runs
// them through the stats engine.
package rollup

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"mca/internal/config"
	"mca/pkg/calendar"
	"mca/pkg/domain"
	"mca/pkg/logger"
	"mca/pkg/schedule"
	"mca/pkg/serrors"
	"mca/pkg/stats"
	"mca/pkg/storage"
)

const instrumentation = "mca/internal/rollup"

// Options configure how figures are computed.
type Options struct {
	// Calendar generates the expected installments of payback plans.
	Calendar *calendar.Calendar
	// Now returns the as-of time of computed figures. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(_ *config.Config, cal *calendar.Calendar) Options {
	return Options{Calendar: cal, Now: time.Now}
}

type rollup struct {
	options  Options
	storage  storage.Storage
	tracer   trace.Tracer
	computed metric.Int64Counter
}

// New creates a Rollup backed by the provided storage.
func New(storage storage.Storage, options Options) Rollup {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Calendar == nil {
		options.Calendar = calendar.New()
	}

	computed, err := otel.Meter(instrumentation).Int64Counter("mca.rollup.fundings_computed",
		metric.WithDescription("Fundings evaluated by the stats engine."))
	if err != nil {
		otel.Handle(err)
		computed = noop.Int64Counter{}
	}

	return &rollup{
		options:  options,
		storage:  storage,
		tracer:   otel.Tracer(instrumentation),
		computed: computed,
	}
}

func (r *rollup) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return r.tracer.Start(ctx, "rollup."+name, trace.WithAttributes(attrs...))
}

func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (r *rollup) FundingStats(ctx context.Context, fundingID domain.FundingID) (res *stats.FundingStats, err error) {
	ctx, span := r.start(ctx, "FundingStats", attribute.String("funding.id", fundingID.String()))
	defer func() { end(span, err) }()

	f, err := r.storage.FundingByID(ctx, fundingID)
	if err != nil {
		return nil, fmt.Errorf("could not get funding: %w", err)
	}
	if f == nil {
		return nil, serrors.With(serrors.ErrNotFound, "funding not found")
	}

	all, err := r.compute(ctx, "funding", []domain.Funding{*f})
	if err != nil {
		return nil, err
	}

	return &all[0], nil
}

func (r *rollup) CachedFundingStats(ctx context.Context, fundingID domain.FundingID) (*stats.FundingStats, error) {
	res, err := r.storage.FundingStats(ctx, fundingID)
	if err != nil {
		return nil, fmt.Errorf("could not get cached funding stats: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no stats cached for funding")
	}

	return res, nil
}

func (r *rollup) ApplicationStats(ctx context.Context,
	applicationID domain.ApplicationID) (res *stats.Totals, err error) {
	ctx, span := r.start(ctx, "ApplicationStats", attribute.String("application.id", applicationID.String()))
	defer func() { end(span, err) }()

	app, err := r.storage.ApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("could not get application: %w", err)
	}
	if app == nil {
		return nil, serrors.With(serrors.ErrNotFound, "application not found")
	}

	return r.totals(ctx, "application", storage.FundingFilter{ApplicationID: &applicationID})
}

func (r *rollup) MerchantStats(ctx context.Context, merchantID domain.MerchantID) (res *stats.Totals, err error) {
	ctx, span := r.start(ctx, "MerchantStats", attribute.String("merchant.id", merchantID.String()))
	defer func() { end(span, err) }()

	return r.totals(ctx, "merchant", storage.FundingFilter{MerchantID: &merchantID})
}

func (r *rollup) FunderStats(ctx context.Context, funderID domain.PartyID) (res *stats.Totals, err error) {
	ctx, span := r.start(ctx, "FunderStats", attribute.String("funder.id", funderID.String()))
	defer func() { end(span, err) }()

	return r.totals(ctx, "funder", storage.FundingFilter{FunderID: &funderID})
}

func (r *rollup) SyndicatorStats(ctx context.Context,
	syndicatorID domain.PartyID) (res *stats.SyndicatorStats, err error) {
	ctx, span := r.start(ctx, "SyndicatorStats", attribute.String("syndicator.id", syndicatorID.String()))
	defer func() { end(span, err) }()

	syndications, err := r.storage.SyndicationsBySyndicator(ctx, syndicatorID)
	if err != nil {
		return nil, fmt.Errorf("could not get syndications: %w", err)
	}
	offers, err := r.storage.SyndicationOffersBySyndicator(ctx, syndicatorID)
	if err != nil {
		return nil, fmt.Errorf("could not get syndication offers: %w", err)
	}

	in := stats.SyndicatorInput{
		SyndicatorID:   syndicatorID,
		Syndications:   syndications,
		Offers:         offers,
		PaybackAmounts: make(map[domain.FundingID]decimal.Decimal, len(syndications)),
	}

	seen := make(map[domain.FundingID]struct{}, len(syndications))
	var fundingIDs []domain.FundingID
	for _, syn := range syndications {
		if _, ok := seen[syn.FundingID]; !ok {
			seen[syn.FundingID] = struct{}{}
			fundingIDs = append(fundingIDs, syn.FundingID)
		}
	}

	if len(fundingIDs) > 0 {
		fundings, err := r.storage.Fundings(ctx, storage.FundingFilter{IDs: fundingIDs})
		if err != nil {
			return nil, fmt.Errorf("could not get fundings: %w", err)
		}
		for _, f := range fundings {
			in.PaybackAmounts[f.ID] = f.PaybackAmount
		}

		in.Payouts, err = r.storage.IntentsByFundings(ctx, fundingIDs...)
		if err != nil {
			return nil, fmt.Errorf("could not get intents: %w", err)
		}
	}

	s := stats.Syndicator(in, r.options.Now())

	return &s, nil
}

func (r *rollup) Refresh(ctx context.Context, fundingID domain.FundingID) (*stats.FundingStats, error) {
	s, err := r.FundingStats(ctx, fundingID)
	if err != nil {
		return nil, err
	}

	if err := r.storage.SaveFundingStats(ctx, *s); err != nil {
		return nil, fmt.Errorf("could not save funding stats: %w", err)
	}
	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "funding stats refreshed",
			zap.Stringer("funding_id", fundingID),
			zap.Stringer("balance", s.BalanceAmount),
			zap.Any("stats", s))
	}

	return s, nil
}

func (r *rollup) totals(ctx context.Context, rollupName string, filter storage.FundingFilter) (*stats.Totals, error) {
	fundings, err := r.storage.Fundings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not get fundings: %w", err)
	}

	all, err := r.compute(ctx, rollupName, fundings)
	if err != nil {
		return nil, err
	}
	t := stats.Aggregate(all)

	return &t, nil
}

// compute loads the related collections of fundings in batches and returns
// their figures in the same order.
func (r *rollup) compute(ctx context.Context, rollupName string, fundings []domain.Funding) ([]stats.FundingStats, error) {
	if len(fundings) == 0 {
		return nil, nil
	}

	ids := make([]domain.FundingID, len(fundings))
	inputs := make([]stats.FundingInput, len(fundings))
	byID := make(map[domain.FundingID]*stats.FundingInput, len(fundings))
	for i, f := range fundings {
		ids[i] = f.ID
		inputs[i].Funding = f
		byID[f.ID] = &inputs[i]
	}

	fees, err := r.storage.FeesByFundings(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get fees: %w", err)
	}
	attach(byID, fees, func(v domain.Fee) domain.FundingID { return v.FundingID },
		func(in *stats.FundingInput, v domain.Fee) { in.Fees = append(in.Fees, v) })

	expenses, err := r.storage.ExpensesByFundings(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get expenses: %w", err)
	}
	attach(byID, expenses, func(v domain.Expense) domain.FundingID { return v.FundingID },
		func(in *stats.FundingInput, v domain.Expense) { in.Expenses = append(in.Expenses, v) })

	intents, err := r.storage.IntentsByFundings(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get intents: %w", err)
	}
	attach(byID, intents, func(v domain.Intent) domain.FundingID { return v.FundingID },
		func(in *stats.FundingInput, v domain.Intent) { in.Intents = append(in.Intents, v) })

	syndications, err := r.storage.SyndicationsByFundings(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get syndications: %w", err)
	}
	attach(byID, syndications, func(v domain.Syndication) domain.FundingID { return v.FundingID },
		func(in *stats.FundingInput, v domain.Syndication) { in.Syndications = append(in.Syndications, v) })

	paybacks, err := r.storage.PaybacksByFundings(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get paybacks: %w", err)
	}
	attach(byID, paybacks, func(v domain.Payback) domain.FundingID { return v.FundingID },
		func(in *stats.FundingInput, v domain.Payback) { in.Paybacks = append(in.Paybacks, v) })

	plans, err := r.storage.PaybackPlansByFundings(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get payback plans: %w", err)
	}
	for _, p := range plans {
		in, ok := byID[p.FundingID]
		if !ok || p.Status == domain.PaybackPlanStatusStopped {
			continue
		}

		installments, err := schedule.Build(schedule.FromPaybackPlan(p), schedule.CalendarFor(r.options.Calendar, p))
		if err != nil {
			// a plan that no longer builds only loses its expected figures
			logger.Warn(ctx, "could not build payback plan schedule",
				zap.Stringer("plan_id", p.ID), zap.Error(err))

			continue
		}
		in.Installments = append(in.Installments, installments...)
	}

	asOf := r.options.Now()
	out := make([]stats.FundingStats, len(inputs))
	for i, in := range inputs {
		out[i] = stats.Funding(in, asOf)
	}
	r.computed.Add(ctx, int64(len(out)), metric.WithAttributes(attribute.String("rollup", rollupName)))

	return out, nil
}

func attach[T any](byID map[domain.FundingID]*stats.FundingInput,
	items []T,
	fundingID func(T) domain.FundingID,
	add func(*stats.FundingInput, T)) {
	for _, item := range items {
		if in, ok := byID[fundingID(item)]; ok {
			add(in, item)
		}
	}
}
