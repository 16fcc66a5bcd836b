package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"moneypath/catalog"
	"moneypath/engine"
	"moneypath/journal"
	"moneypath/progress"
	"moneypath/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive campaign in the terminal",
	Long: `Play a full campaign: 35 questions across five life stages, from age 16
to 51. Answers are picked by number. Progress can be journaled to SQLite
with --db.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var (
	playSeed     int64
	playScenario string
	playDB       string
	playerName   string
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "RNG seed (0 seeds from the clock)")
	playCmd.Flags().StringVar(&playScenario, "scenario", "", "starting scenario ID (default random)")
	playCmd.Flags().StringVar(&playDB, "db", "", "path to SQLite journal DB (optional)")
	playCmd.Flags().StringVar(&playerName, "name", "Alex", "player name used in question stories")
}

func runPlay(cmd *cobra.Command, args []string) error {
	opts := []session.Option{}
	if playSeed != 0 {
		opts = append(opts, session.WithSeed(playSeed))
	}
	if playScenario != "" {
		opts = append(opts, session.WithScenario(playScenario))
	}
	if playDB != "" {
		j, err := journal.NewSQLite(playDB)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()
		opts = append(opts, session.WithJournal(j))
	}

	s, err := session.New(opts...)
	if err != nil {
		return err
	}

	printIntro(s)

	for s.Phase() != progress.PhaseEnded {
		switch s.Phase() {
		case progress.PhaseQuestion:
			if err := playQuestion(s); err != nil {
				return err
			}
		case progress.PhaseFeedback:
			if err := s.AcknowledgeFeedback(); err != nil {
				return err
			}
		case progress.PhaseLevelSummary:
			printLevelSummary(s)
			if err := promptEnter("Press enter for the next stage."); err != nil {
				return err
			}
			if err := s.AcknowledgeSummary(); err != nil {
				return err
			}
		}
	}

	printEndScreen(s)
	return nil
}

func printIntro(s *session.Session) {
	start := s.Start()
	accent.Printf("\n=== %s ===\n", start.Scenario.Title)
	neutral.Println(start.Scenario.Description)
	fmt.Printf("Age %d | Cash %s | Income %s/yr | Expenses %s/yr\n\n",
		start.Age, dollars(start.Cash), dollars(start.YearlyIncome), dollars(start.YearlyExpenses))
}

func playQuestion(s *session.Session) error {
	q, err := s.CurrentQuestion()
	if err != nil {
		return err
	}

	if lvl, ok := catalog.LevelByNumber(s.Level()); ok {
		accent.Printf("--- %s (ages %d-%d) ---\n", lvl.Name, lvl.AgeRange[0], lvl.AgeRange[1])
	}
	neutral.Printf("\n%s\n", q.Title)
	fmt.Println(q.Narrative(playerName))

	choices := engine.ChoiceSet{}
	for _, ch := range q.Choices {
		fmt.Printf("\n%s\n", ch.Prompt)
		for i, opt := range ch.Options {
			fmt.Printf("  %d. %s\n", i+1, opt)
		}
		pick, err := promptOption("Your choice", len(ch.Options))
		if err != nil {
			return err
		}
		choices[ch.ID] = ch.Options[pick-1]
	}

	res, err := s.Submit(choices)
	if err != nil {
		return err
	}
	printLedger(res)

	if res.Status == engine.RoundAwaitingEvent {
		ev := res.Event
		warn.Printf("\n*** %s ***\n", ev.Title)
		fmt.Printf("%s, %s\n", playerName, ev.Story)
		if err := promptEnter("Press enter to continue."); err != nil {
			return err
		}
		if err := s.AcknowledgeEvent(); err != nil {
			return err
		}
	}

	if res.Warning != nil {
		danger.Printf("\n! %s\n", res.Warning.Title)
		fmt.Println(res.Warning.Message)
	}
	return nil
}

func printLedger(res engine.RoundResult) {
	for _, note := range res.Ledger.Notes {
		fmt.Printf("  - %s\n", note.Text)
	}
	p := res.State.Portfolio
	fmt.Printf("Age %d | Cash %s | Stocks %s | Debt %s | Net worth %s\n",
		res.State.Age, dollars(p.Cash), dollars(p.Stocks), dollars(p.Debt), dollars(p.NetWorth()))
}

func printLevelSummary(s *session.Session) {
	st := s.State()
	success.Printf("\n=== Stage complete ===\n")
	fmt.Printf("Net worth: %s\n", dollars(st.NetWorth()))
	if len(st.Badges) > 0 {
		fmt.Print("Badges: ")
		for i, b := range st.Badges {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Printf("%s %s", b.Icon, b.Name)
		}
		fmt.Println()
	}
}

func printEndScreen(s *session.Session) {
	st := s.State()
	netWorth := st.NetWorth()

	accent.Printf("\n=== Journey complete ===\n")
	fmt.Printf("Final age: %d\n", st.Age)
	fmt.Printf("Final net worth: %s\n", dollars(netWorth))
	if netWorth >= 1000000 {
		success.Println("Millionaire!")
	}
	for _, b := range st.Badges {
		success.Printf("%s %s - %s\n", b.Icon, b.Name, b.Description)
	}

	for _, item := range s.Feedback() {
		switch item.Kind {
		case session.FeedbackSuccess:
			success.Printf("\n%s\n", item.Title)
		default:
			warn.Printf("\n%s\n", item.Title)
		}
		fmt.Println(item.Message)
	}
}
