package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mca/internal/config"
	"mca/internal/payback"
	"mca/pkg/domain"
	"mca/pkg/logger"
	"mca/pkg/schedule"
)

// planFlags are the plan parameters accepted by `schedule preview`.
type planFlags struct {
	frequency    string
	start        string
	total        string
	payment      string
	count        int
	dayOfWeek    int
	dayOfMonth   int
	convention   string
	skipWeekends bool
}

func (f planFlags) plan() (domain.PaybackPlan, error) {
	start, err := time.Parse(time.DateOnly, f.start)
	if err != nil {
		return domain.PaybackPlan{}, fmt.Errorf("invalid start date %q: %w", f.start, err)
	}
	total, err := optionalDecimal(f.total)
	if err != nil {
		return domain.PaybackPlan{}, fmt.Errorf("invalid total: %w", err)
	}
	payment, err := optionalDecimal(f.payment)
	if err != nil {
		return domain.PaybackPlan{}, fmt.Errorf("invalid payment: %w", err)
	}

	plan := domain.PaybackPlan{
		Frequency:     domain.Frequency(f.frequency),
		StartDate:     start,
		TotalAmount:   total,
		PaymentAmount: payment,
		PaymentCount:  f.count,
		Convention:    domain.Convention(f.convention),
		SkipWeekends:  f.skipWeekends,
	}
	if f.dayOfWeek >= 0 {
		wd := time.Weekday(f.dayOfWeek)
		plan.DayOfWeek = &wd
	}
	if f.dayOfMonth > 0 {
		dom := f.dayOfMonth
		plan.DayOfMonth = &dom
	}

	return plan, nil
}

func optionalDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(s) //nolint: wrapcheck
}

func (f *planFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.frequency, "frequency", string(domain.FrequencyDaily),
		"daily, weekly, biweekly or monthly")
	cmd.Flags().StringVar(&f.start, "start", time.Now().Format(time.DateOnly), "First collection date")
	cmd.Flags().StringVar(&f.total, "total", "", "Total amount to collect, defaults to the funding's payback amount")
	cmd.Flags().StringVar(&f.payment, "payment", "", "Amount of each installment")
	cmd.Flags().IntVar(&f.count, "count", 0, "Number of equal installments, when no payment is given")
	cmd.Flags().IntVar(&f.dayOfWeek, "day-of-week", -1, "Weekday anchor of weekly plans, 0 is Sunday")
	cmd.Flags().IntVar(&f.dayOfMonth, "day-of-month", 0, "Day anchor of monthly plans")
	cmd.Flags().StringVar(&f.convention, "convention", "",
		"following, preceding or modified_following; defaults to the configured convention")
	cmd.Flags().BoolVar(&f.skipWeekends, "skip-weekends", true, "Never collect on Saturdays and Sundays")
}

func parseUUID[T ~[16]byte](s string) (T, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return T{}, fmt.Errorf("invalid id %q: %w", s, err)
	}

	return T(id), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(v) //nolint: wrapcheck
}

func toInstallments(paybacks []domain.Payback) []schedule.Installment {
	installments := make([]schedule.Installment, len(paybacks))
	for i, p := range paybacks {
		installments[i] = schedule.Installment{Seq: p.Seq, Date: p.DueDate, Amount: p.Amount}
	}

	return installments
}

func printInstallments(installments []schedule.Installment) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "SEQ\tDATE\tWEEKDAY\tAMOUNT\t")
	for _, in := range installments {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n",
			in.Seq, in.Date.Format(time.DateOnly), in.Date.Weekday(), in.Amount.StringFixed(domain.MoneyPlaces))
	}
	fmt.Fprintf(w, "\tTOTAL\t\t%s\t\n", schedule.Total(installments).StringFixed(domain.MoneyPlaces))

	return w.Flush() //nolint: wrapcheck
}

// withPayback runs fn against a payback service backed by postgres.
func withPayback(ctx context.Context, cfg *config.Config, fn func(payback.Service) error) error {
	strg, closeStrg := getPostgres(ctx, cfg)
	defer closeStrg()

	return fn(payback.New(strg, getNotifier(cfg), payback.NewOptions(cfg, loadCalendar(ctx, cfg))))
}

func scheduleCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Previews and manages payback schedules",
	}

	cmd.AddCommand(
		previewCommand(cfg),
		createCommand(cfg),
		projectionCommand(cfg),
		rescheduleCommand(cfg),
		setStatusCommand(cfg),
		recordCommand(cfg),
	)

	return cmd
}

func previewCommand(cfg *config.Config) *cobra.Command {
	var flags planFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Prints the installments a payback plan would generate",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			plan, err := flags.plan()
			if err != nil {
				return err
			}

			// preview never touches storage
			svc := payback.New(nil, getNotifier(cfg), payback.NewOptions(cfg, loadCalendar(ctx, cfg)))
			installments, err := svc.Preview(ctx, plan)
			if err != nil {
				return fmt.Errorf("could not preview plan: %w", err)
			}

			return printInstallments(installments)
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

func createCommand(cfg *config.Config) *cobra.Command {
	var (
		flags   planFlags
		funding string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Creates a payback plan for a funding and schedules its paybacks",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := flags.plan()
			if err != nil {
				return err
			}
			if plan.FundingID, err = parseUUID[domain.FundingID](funding); err != nil {
				return err
			}

			return withPayback(cmd.Context(), cfg, func(svc payback.Service) error {
				stored, paybacks, err := svc.CreatePlan(cmd.Context(), plan)
				if err != nil {
					return fmt.Errorf("could not create plan: %w", err)
				}

				logger.Info(cmd.Context(), "plan created", zap.Stringer("plan_id", stored.ID))

				return printInstallments(toInstallments(paybacks))
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&funding, "funding", "", "Funding to collect")
	_ = cmd.MarkFlagRequired("funding")

	return cmd
}

func projectionCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "projection PLAN_ID",
		Short: "Prints what is left to collect on a payback plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := parseUUID[domain.PaybackPlanID](args[0])
			if err != nil {
				return err
			}

			return withPayback(cmd.Context(), cfg, func(svc payback.Service) error {
				projection, err := svc.Projection(cmd.Context(), planID)
				if err != nil {
					return fmt.Errorf("could not get projection: %w", err)
				}

				return printJSON(projection)
			})
		},
	}
}

func rescheduleCommand(cfg *config.Config) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "reschedule PLAN_ID",
		Short: "Regenerates the outstanding balance of a payback plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := parseUUID[domain.PaybackPlanID](args[0])
			if err != nil {
				return err
			}

			var fromDate time.Time
			if from != "" {
				if fromDate, err = time.Parse(time.DateOnly, from); err != nil {
					return fmt.Errorf("invalid from date %q: %w", from, err)
				}
			}

			return withPayback(cmd.Context(), cfg, func(svc payback.Service) error {
				paybacks, err := svc.Reschedule(cmd.Context(), planID, fromDate)
				if err != nil {
					return fmt.Errorf("could not reschedule plan: %w", err)
				}

				return printInstallments(toInstallments(paybacks))
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First date to regenerate, defaults to today")

	return cmd
}

func setStatusCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status PLAN_ID active|paused|stopped",
		Short: "Pauses, stops or resumes a payback plan",
		Args:  cobra.ExactArgs(2), //nolint: mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := parseUUID[domain.PaybackPlanID](args[0])
			if err != nil {
				return err
			}

			return withPayback(cmd.Context(), cfg, func(svc payback.Service) error {
				plan, err := svc.SetStatus(cmd.Context(), planID, domain.PaybackPlanStatus(args[1]))
				if err != nil {
					return fmt.Errorf("could not set plan status: %w", err)
				}

				logger.Info(cmd.Context(), "plan status changed",
					zap.Stringer("plan_id", plan.ID), zap.String("status", string(plan.Status)))

				return nil
			})
		},
	}
}

func recordCommand(cfg *config.Config) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "record PAYBACK_ID paid|failed|pending",
		Short: "Records the collection result of a payback",
		Args:  cobra.ExactArgs(2), //nolint: mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			paybackID, err := parseUUID[domain.PaybackID](args[0])
			if err != nil {
				return err
			}

			return withPayback(cmd.Context(), cfg, func(svc payback.Service) error {
				p, err := svc.RecordResult(cmd.Context(), paybackID, domain.PaybackStatus(args[1]), reason)
				if err != nil {
					return fmt.Errorf("could not record result: %w", err)
				}

				return printJSON(p)
			})
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Failure reason, e.g. an ACH return code")

	return cmd
}
