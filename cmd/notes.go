package cmd

import (
	"fmt"
	"strings"

	"github.com/mjard/sciquiz/internal/notes"
	"github.com/spf13/cobra"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List saved study notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := notes.NewService(st.NoteRepo())
		ns, err := svc.All(cmd.Context())
		if err != nil {
			return err
		}
		if len(ns) == 0 {
			fmt.Println("No notes saved.")
			return nil
		}
		for _, n := range ns {
			fmt.Printf("%s  [%s]\n  %s\n", n.ID, n.Topic, n.Body)
		}
		return nil
	},
}

var notesAddCmd = &cobra.Command{
	Use:   "add <topic> <text>...",
	Short: "Add a study note",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := notes.NewService(st.NoteRepo())
		n, err := svc.Add(cmd.Context(), args[0], strings.Join(args[1:], " "), "")
		if err != nil {
			return err
		}
		fmt.Println("Saved note", n.ID)
		return nil
	},
}

var notesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a study note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := notes.NewService(st.NoteRepo())
		if err := svc.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted note", args[0])
		return nil
	},
}

func init() {
	notesCmd.AddCommand(notesAddCmd)
	notesCmd.AddCommand(notesRmCmd)
}
