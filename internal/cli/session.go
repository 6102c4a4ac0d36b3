package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Session management",
	}

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Start a session and print its id",
		Run:   runSessionNew,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions, most recent first",
		Run:   runSessionList,
	}
	listCmd.Flags().IntP("limit", "l", 20, "Max results")

	statsCmd := &cobra.Command{
		Use:   "stats [id]",
		Short: "Show usage statistics for a session",
		Args:  cobra.ExactArgs(1),
		Run:   runSessionStats,
	}

	resetCmd := &cobra.Command{
		Use:   "reset [id]",
		Short: "Clear a session's history",
		Args:  cobra.ExactArgs(1),
		Run:   runSessionReset,
	}

	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		Run:   runSessionRm,
	}

	sessionCmd.AddCommand(newCmd, listCmd, statsCmd, resetCmd, rmCmd)
	RootCmd.AddCommand(sessionCmd)
}

func runSessionNew(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sess, err := s.CreateSession(cmd.Context(), time.Now())
	if err != nil {
		exitErr("new session", err)
	}

	if formatFlag == "text" {
		fmt.Println(sess.ID)
		return
	}
	printJSON(sess)
}

func runSessionList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sessions, err := s.ListSessions(cmd.Context(), limit)
	if err != nil {
		exitErr("list sessions", err)
	}

	if formatFlag == "text" {
		for _, sess := range sessions {
			fmt.Printf("%s  started %s  %d shown\n",
				sess.ID, sess.History.SessionStart.Local().Format(time.DateTime), len(sess.History.UsedItems))
		}
		return
	}
	printJSON(sessions)
}

func runSessionStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	sess, err := s.GetSession(ctx, args[0])
	if err != nil {
		exitErr("session", err)
	}
	cat, err := loadCatalog(ctx, s)
	if err != nil {
		exitErr("catalog", err)
	}

	stats := newGenerator(cat, newLogger(), &sess.History).UsageStats()
	if formatFlag == "text" {
		fmt.Printf("generated: %d\ninputs: %d\npreferred: %v\nduration: %s\n",
			stats.GeneratedCount, stats.InputCount, stats.PreferredCategories, stats.SessionDuration.Round(time.Second))
		return
	}
	printJSON(stats)
}

func runSessionReset(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	sess, err := s.GetSession(ctx, args[0])
	if err != nil {
		exitErr("session", err)
	}
	cat, err := loadCatalog(ctx, s)
	if err != nil {
		exitErr("catalog", err)
	}

	gen := newGenerator(cat, newLogger(), &sess.History)
	gen.ResetHistory()
	if err := s.SaveSession(ctx, sess.ID, gen.Snapshot()); err != nil {
		exitErr("reset session", err)
	}

	fmt.Printf(`{"ok":true,"reset":%q}`+"\n", sess.ID)
}

func runSessionRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.DeleteSession(cmd.Context(), args[0]); err != nil {
		exitErr("rm session", err)
	}

	fmt.Printf(`{"ok":true,"deleted":%q}`+"\n", args[0])
}
