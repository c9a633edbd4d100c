package cmd

import (
	"fmt"

	"github.com/mjard/sciquiz/internal/progress"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the learning history",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := progress.NewService(st.ProgressRepo(), buildClient(cmd, st))
		records := svc.History(cmd.Context())
		if len(records) == 0 {
			fmt.Println("No quizzes completed yet.")
			return nil
		}

		fmt.Printf("%-12s  %-44s  %6s  %-8s  %s\n", "DATE", "TOPIC", "SCORE", "TIME", "DIFFICULTY")
		for _, rec := range records {
			topic := rec.Topic
			if len(topic) > 44 {
				topic = topic[:41] + "..."
			}
			notesMark := ""
			if rec.UsedNotes {
				notesMark = "  (notes)"
			}
			fmt.Printf("%-12s  %-44s  %5.0f%%  %-8s  %s%s\n",
				rec.Date, topic, rec.Score, rec.TimeSpent, rec.Difficulty, notesMark)
		}
		return nil
	},
}
