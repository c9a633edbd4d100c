package cmd

import (
	"fmt"
	"sort"

	"github.com/mjard/sciquiz/internal/progress"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := progress.NewService(st.ProgressRepo(), buildClient(cmd, st))
		sum := svc.Stats(cmd.Context())
		if sum.TotalQuizzes == 0 {
			fmt.Println("No statistics yet.")
			return nil
		}

		fmt.Printf("Completed topics: %d\n", sum.CompletedTopics)
		fmt.Printf("Total quizzes:    %d\n", sum.TotalQuizzes)
		fmt.Printf("Average score:    %.1f%%\n", sum.AverageScore)

		if len(sum.TopicsBySubject) > 0 {
			fmt.Println("\nTopics by subject:")
			subjects := make([]string, 0, len(sum.TopicsBySubject))
			for subj := range sum.TopicsBySubject {
				subjects = append(subjects, subj)
			}
			sort.Strings(subjects)
			for _, subj := range subjects {
				fmt.Printf("  %-10s %d\n", subj, sum.TopicsBySubject[subj])
			}
		}
		return nil
	},
}
