package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/viper"

	"github.com/gastoclaro/gastoclaro/internal/cli"
	"github.com/gastoclaro/gastoclaro/internal/config"
	"github.com/gastoclaro/gastoclaro/internal/model"
	"github.com/gastoclaro/gastoclaro/internal/service"
	"github.com/gastoclaro/gastoclaro/internal/storage"
	"github.com/gastoclaro/gastoclaro/internal/transcribe"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/gastoclaro/gastoclaro.db"
	}

	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initTranscriber builds the Whisper client from configuration.
func initTranscriber() (service.Transcriber, error) {
	return transcribe.NewWhisperClient(transcribe.Config{
		APIKey:  viper.GetString("openai.api_key"),
		Model:   viper.GetString("transcribe.model"),
		Timeout: viper.GetDuration("transcribe.timeout"),
	})
}

// parseDateFlag parses a --date value, defaulting to today.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return date, nil
}

func confidenceLabel(c model.Confidence) string {
	switch c {
	case model.ConfidenceHigh:
		return cli.SuccessStyle.Render("alta")
	case model.ConfidencePartial:
		return cli.WarningStyle.Render("parcial")
	case model.ConfidenceFallback:
		return cli.ErrorStyle.Render("não reconhecida")
	default:
		return string(c)
	}
}

// printDraft renders a single draft as an aligned field table.
func printDraft(draft *model.ExpenseDraft) {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Valor:\tR$ %s\n", draft.Amount.StringFixed(2))
	fmt.Fprintf(w, "Descrição:\t%s\n", draft.Description)
	fmt.Fprintf(w, "Pagamento:\t%s\n", draft.PaymentMethod.Display())
	fmt.Fprintf(w, "Centro de custo:\t%s\n", draft.CostCenter)
	fmt.Fprintf(w, "Categoria:\t%s\n", draft.Category)
	fmt.Fprintf(w, "Confiança:\t%s\n", confidenceLabel(draft.Confidence))
	if draft.InstallmentCount > 1 {
		fmt.Fprintf(w, "Parcelas:\t%d\n", draft.InstallmentCount)
		for _, in := range draft.Installments {
			fmt.Fprintf(w, "  %d/%d:\tR$ %s em %s\n",
				in.Sequence, draft.InstallmentCount,
				in.Amount.StringFixed(2), in.DueDate.Format("02/01/2006"))
		}
	}
	_ = w.Flush()

	fmt.Println(cli.RenderBox(cli.MoneyIcon+" Despesa", strings.TrimRight(b.String(), "\n")))
}

// printDraftRows renders a compact one-line-per-draft listing.
func printDraftRows(drafts []model.ExpenseDraft) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, cli.TableHeaderStyle.Render("DATA")+"\t"+
		cli.TableHeaderStyle.Render("VALOR")+"\t"+
		cli.TableHeaderStyle.Render("DESCRIÇÃO")+"\t"+
		cli.TableHeaderStyle.Render("CATEGORIA")+"\t"+
		cli.TableHeaderStyle.Render("CONFIANÇA")+"\t"+
		cli.TableHeaderStyle.Render("STATUS"))
	for i := range drafts {
		d := &drafts[i]
		fmt.Fprintf(w, "%s\tR$ %s\t%s\t%s\t%s\t%s\n",
			d.Date.Format("02/01/2006"),
			d.Amount.StringFixed(2),
			d.Description,
			d.Category,
			confidenceLabel(d.Confidence),
			string(d.Status))
	}
	_ = w.Flush()
}
