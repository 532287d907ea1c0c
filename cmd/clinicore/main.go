package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinicore/clinicore/internal/app"
	"github.com/clinicore/clinicore/internal/config"
	"github.com/clinicore/clinicore/internal/domain/appointment"
	"github.com/clinicore/clinicore/internal/domain/clinician"
	"github.com/clinicore/clinicore/internal/domain/facility"
	"github.com/clinicore/clinicore/internal/domain/patient"
	"github.com/clinicore/clinicore/internal/domain/prescription"
	"github.com/clinicore/clinicore/internal/domain/record"
	"github.com/clinicore/clinicore/internal/domain/referral"
	"github.com/clinicore/clinicore/internal/domain/staff"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinicore",
		Short: "Clinic record management over flat CSV files",
	}

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(nextIDCmd())
	rootCmd.AddCommand(referralCmd())
	rootCmd.AddCommand(auditCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup builds the application context and loads every entity file that
// exists.
func setup() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		logger = logger.Level(level)
	}

	a := app.New(cfg, logger)
	if err := a.LoadAll(); err != nil {
		return nil, err
	}
	return a, nil
}

// normalizeEntity maps CLI entity arguments to canonical singular names,
// accepting plural forms.
func normalizeEntity(name string) string {
	n := strings.ToLower(name)
	switch n {
	case "staff":
		return "staff"
	case "facilities":
		return "facility"
	}
	return strings.TrimSuffix(n, "s")
}

// printRecord renders one record as column/value lines via its schema.
func printRecord[T any](sch record.Schema[T], rec T) {
	fields := sch.Encode(rec)
	for i, col := range sch.Columns {
		value := ""
		if i < len(fields) {
			value = fields[i]
		}
		fmt.Printf("%-26s %s\n", col, value)
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <entity>",
		Short: "List records of one entity type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			switch normalizeEntity(args[0]) {
			case "patient":
				for _, p := range a.Patients.All() {
					fmt.Printf("%-8s %-30s %s\n", p.ID, p.FullName(), p.NHSNumber)
				}
			case "clinician":
				for _, c := range a.Clinicians.All() {
					fmt.Printf("%-8s %-30s %s\n", c.ID, c.FullName(), c.Speciality)
				}
			case "facility":
				for _, f := range a.Facilities.All() {
					fmt.Printf("%-8s %-30s %s\n", f.ID, f.Name, f.Type)
				}
			case "appointment":
				for _, ap := range a.Appointments.All() {
					fmt.Printf("%-8s %-10s %-6s %-10s %s\n", ap.ID,
						record.FormatDate(ap.Date), record.FormatClock(ap.Time),
						ap.PatientID, ap.Status)
				}
			case "prescription":
				for _, rx := range a.Prescriptions.All() {
					fmt.Printf("%-8s %-10s %-25s %s\n", rx.ID, rx.PatientID,
						rx.MedicationName, rx.Status)
				}
			case "staff":
				for _, st := range a.Staff.All() {
					fmt.Printf("%-8s %-30s %s\n", st.ID, st.FullName(), st.Role)
				}
			case "referral":
				for _, r := range a.Referrals.All() {
					fmt.Printf("%-8s %-10s %-12s %-13s %s\n", r.ID, r.PatientID,
						r.UrgencyLevel, r.Status, r.Reason)
				}
			default:
				return fmt.Errorf("unknown entity %q", args[0])
			}
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <entity> <id>",
		Short: "Show one record in full",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			entity, id := normalizeEntity(args[0]), args[1]
			switch entity {
			case "patient":
				if p, ok := a.Patients.Get(id); ok {
					printRecord(patient.Schema(), p)
					return nil
				}
			case "clinician":
				if c, ok := a.Clinicians.Get(id); ok {
					printRecord(clinician.Schema(), c)
					return nil
				}
			case "facility":
				if f, ok := a.Facilities.Get(id); ok {
					printRecord(facility.Schema(), f)
					return nil
				}
			case "appointment":
				if ap, ok := a.Appointments.Get(id); ok {
					printRecord(appointment.Schema(), ap)
					return nil
				}
			case "prescription":
				if rx, ok := a.Prescriptions.Get(id); ok {
					printRecord(prescription.Schema(), rx)
					return nil
				}
			case "staff":
				if st, ok := a.Staff.Get(id); ok {
					printRecord(staff.Schema(), st)
					return nil
				}
			case "referral":
				if r, ok := a.Referrals.Get(id); ok {
					printRecord(referral.Schema(), r)
					return nil
				}
			default:
				return fmt.Errorf("unknown entity %q", args[0])
			}
			return fmt.Errorf("%s %s not found", entity, id)
		},
	}
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <entity> <term>",
		Short: "Search records by name (or medication for prescriptions)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			term := args[1]
			switch normalizeEntity(args[0]) {
			case "patient":
				for _, p := range a.Patients.SearchByName(term) {
					fmt.Printf("%-8s %s\n", p.ID, p.FullName())
				}
			case "clinician":
				for _, c := range a.Clinicians.SearchByName(term) {
					fmt.Printf("%-8s %s\n", c.ID, c.FullName())
				}
			case "facility":
				for _, f := range a.Facilities.SearchByName(term) {
					fmt.Printf("%-8s %s\n", f.ID, f.Name)
				}
			case "staff":
				for _, st := range a.Staff.SearchByName(term) {
					fmt.Printf("%-8s %s\n", st.ID, st.FullName())
				}
			case "prescription":
				for _, rx := range a.Prescriptions.SearchByMedication(term) {
					fmt.Printf("%-8s %s\n", rx.ID, rx.MedicationName)
				}
			default:
				return fmt.Errorf("entity %q is not searchable", args[0])
			}
			return nil
		},
	}
}

func nextIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next-id <entity>",
		Short: "Print the next sequential ID for an entity type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			switch normalizeEntity(args[0]) {
			case "patient":
				fmt.Println(a.Patients.NextID())
			case "clinician":
				fmt.Println(a.Clinicians.NextID())
			case "appointment":
				fmt.Println(a.Appointments.NextID())
			case "prescription":
				fmt.Println(a.Prescriptions.NextID())
			case "staff":
				fmt.Println(a.Staff.NextID())
			case "referral":
				fmt.Println(a.Referrals.NextID())
			case "facility":
				return fmt.Errorf("facility IDs are externally assigned")
			default:
				return fmt.Errorf("unknown entity %q", args[0])
			}
			return nil
		},
	}
}

func referralCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "referral",
		Short: "Referral workflow operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move a referral to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			ok, err := a.Referrals.UpdateStatus(args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("referral %s not found", args[0])
			}
			if err := a.Paths.EnsureDataDir(); err != nil {
				return err
			}
			if err := a.Referrals.SaveFile(a.Paths.Referrals()); err != nil {
				return err
			}
			fmt.Printf("referral %s moved to %s\n", args[0], args[1])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "letter <id>",
		Short: "Generate the referral letter and print its path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			path, err := a.ReferralLetter(args[0])
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	})

	return cmd
}

func auditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Print the referral audit trail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			for _, e := range a.Referrals.AuditLog() {
				fmt.Println(e.String())
			}
			return nil
		},
	}
}
