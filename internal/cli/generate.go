package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/app"
	appconfig "github.com/acg-data/bizgenius-sub001/internal/config"
	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const cliUserID = "cli"

type generateOutput struct {
	Session entities.GenerationSession  `json:"session"`
	Costs   entities.SessionCostSummary `json:"costs"`
}

func newGenerateCmd() *cobra.Command {
	var (
		idea     string
		answers  string
		branding string
		outPath  string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one report in-process and print it as JSON",
		Long: `Runs the full section pipeline against in-memory stores, without
DynamoDB or Postgres. Provider API keys are read from the environment.
--answers and --branding take a JSON object or @path to a JSON file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(idea) == "" {
				return errors.New("--idea is required")
			}
			answersMap, err := readJSONObject(answers)
			if err != nil {
				return fmt.Errorf("--answers: %w", err)
			}
			brandingMap, err := readJSONObject(branding)
			if err != nil {
				return fmt.Errorf("--branding: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out, err := runGenerate(ctx, idea, answersMap, brandingMap)
			if err != nil && out.Session.ID == "" {
				return err
			}

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, ferr := os.Create(outPath)
				if ferr != nil {
					return ferr
				}
				defer f.Close()
				w = f
			}
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if encErr := enc.Encode(out); encErr != nil {
				return encErr
			}
			return err
		},
	}
	cmd.Flags().StringVar(&idea, "idea", "", "Business idea")
	cmd.Flags().StringVar(&answers, "answers", "", "Questionnaire answers (JSON object or @file)")
	cmd.Flags().StringVar(&branding, "branding", "", "Branding preferences (JSON object or @file)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the report to a file instead of stdout")
	return cmd
}

// runGenerate stores the session and runs the generator synchronously. The
// returned output carries the final session even when the run failed.
func runGenerate(ctx context.Context, idea string, answers, branding map[string]any) (generateOutput, error) {
	cfg := appconfig.FromEnv()
	cfg.StoreBackend = appconfig.StoreBackendMemory
	cfg.LedgerBackend = appconfig.LedgerBackendMemory

	a, err := app.New(ctx, cfg)
	if err != nil {
		return generateOutput{}, err
	}
	defer a.Close()

	now := time.Now().UTC()
	s, err := a.SessionRepo.Create(ctx, entities.GenerationSession{
		ID:        uuid.NewString(),
		UserID:    cliUserID,
		Idea:      strings.TrimSpace(idea),
		Answers:   answers,
		Branding:  branding,
		Status:    entities.SessionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return generateOutput{}, err
	}

	genErr := a.Generator.Generate(ctx, s.ID)

	final, err := a.SessionRepo.GetByID(context.Background(), s.ID)
	if err != nil {
		return generateOutput{}, err
	}
	costs, err := a.Costs.GetCostsBySession(context.Background(), s.ID)
	if err != nil {
		return generateOutput{}, err
	}
	return generateOutput{Session: final, Costs: costs}, genErr
}

func readJSONObject(v string) (map[string]any, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	data := []byte(v)
	if strings.HasPrefix(v, "@") {
		b, err := os.ReadFile(strings.TrimPrefix(v, "@"))
		if err != nil {
			return nil, err
		}
		data = b
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("expected a JSON object: %w", err)
	}
	return m, nil
}
