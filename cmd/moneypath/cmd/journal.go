package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"moneypath/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query journaled sessions",
	Long: `Query and display journaled campaign records from a SQLite database.

Examples:
  moneypath journal sessions
  moneypath journal session <session-id>
  moneypath journal curve <session-id>`,
}

var journalSessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runJournalSessions,
}

var journalSessionCmd = &cobra.Command{
	Use:   "session <session-id>",
	Short: "Show one session's rounds",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalSession,
}

var journalCurveCmd = &cobra.Command{
	Use:   "curve <session-id>",
	Short: "Show one session's net worth after each round",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalCurve,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalSessionsCmd)
	journalCmd.AddCommand(journalSessionCmd)
	journalCmd.AddCommand(journalCurveCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./moneypath.sqlite", "path to SQLite journal DB")
}

func runJournalSessions(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	sessions, err := j.ListSessions()
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded.")
		return nil
	}

	for _, s := range sessions {
		fmt.Printf("%s  %-20s  %3d rounds  net worth %-12s  %s\n",
			s.SessionID, s.Scenario, s.Rounds, dollars(s.FinalNetWorth), s.EndedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runJournalSession(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	rec, err := j.GetSession(args[0])
	if err != nil {
		return err
	}

	accent.Printf("Session %s (%s, seed %d)\n", rec.SessionID, rec.Scenario, rec.Seed)
	fmt.Printf("Final net worth %s, %d warnings, badges: %s\n\n", dollars(rec.FinalNetWorth), rec.Warnings, rec.Badges)

	rounds, err := j.ListRoundsBySession(rec.SessionID)
	if err != nil {
		return err
	}
	for _, r := range rounds {
		line := fmt.Sprintf("%2d  %-8s age %2d  cash %-10s stocks %-10s debt %-10s net %-10s",
			r.TotalAnswered, r.QuestionID, r.Age, dollars(r.Cash), dollars(r.Stocks), dollars(r.Debt), dollars(r.NetWorth))
		if r.EventID != "" {
			line += "  event:" + r.EventID
		}
		if r.WarningTitle != "" {
			line += "  ! " + r.WarningTitle
		}
		fmt.Println(line)
	}
	return nil
}

func runJournalCurve(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	series, err := j.NetWorthSeries(args[0])
	if err != nil {
		return err
	}
	for i, v := range series {
		fmt.Printf("%2d  %s\n", i+1, dollars(v))
	}
	return nil
}
