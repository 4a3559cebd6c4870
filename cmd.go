package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func SetupCommands(a *App) *cobra.Command {
	// root command
	rootCmd := &cobra.Command{
		Use:           "goalnote",
		Short:         "A daily journal and task list for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var year int
	rootCmd.PersistentFlags().IntVarP(&year, "year", "y", a.year, "year to work in")

	// command for the twelve month overview
	yearCmd := &cobra.Command{
		Use:   "year [year]",
		Short: "Show which months have entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			y := year
			if len(args) > 0 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				y = parsed
			}
			return a.ShowYear(y)
		},
	}

	// command for a month calendar, defaults to the current month
	monthCmd := &cobra.Command{
		Use:               "month [name]",
		Short:             "Show a month calendar with moods",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeMonth,
		RunE: func(cmd *cobra.Command, args []string) error {
			month := MonthFromTime(a.store.Now().Month())
			if len(args) > 0 {
				parsed, err := ParseMonth(args[0])
				if err != nil {
					return err
				}
				month = parsed
			}
			return a.ShowMonth(month, year)
		},
	}

	dayCmd := &cobra.Command{
		Use:   "day",
		Short: "Read, write or delete a day's entry",
	}

	dayShowCmd := &cobra.Command{
		Use:               "show <month> <date>",
		Short:             "Show a day's mood and notes",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeMonth,
		RunE: func(cmd *cobra.Command, args []string) error {
			month, day, err := parseDayArgs(args, year)
			if err != nil {
				return err
			}
			return a.ShowDay(month, day, year)
		},
	}

	var writeOpts WriteOptions
	dayWriteCmd := &cobra.Command{
		Use:               "write <month> <date> [text]",
		Short:             "Set a day's mood and notes",
		Args:              cobra.RangeArgs(2, 3),
		ValidArgsFunction: completeMonth,
		RunE: func(cmd *cobra.Command, args []string) error {
			month, day, err := parseDayArgs(args, year)
			if err != nil {
				return err
			}
			opts := writeOpts
			if len(args) > 2 {
				opts.Text = args[2]
			}
			return a.WriteDay(month, day, year, opts)
		},
	}
	dayWriteCmd.Flags().StringVarP(&writeOpts.Mood, "mood", "m", "", "happy, neutral, sad, very-sad, angry or none")
	dayWriteCmd.Flags().BoolVar(&writeOpts.HTML, "html", false, "store the text as html content")
	dayWriteCmd.RegisterFlagCompletionFunc("mood", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		moods := make([]string, 0, len(Moods)+1)
		for _, mood := range Moods {
			moods = append(moods, string(mood))
		}
		return append(moods, "none"), cobra.ShellCompDirectiveNoFileComp
	})

	var force bool
	dayDeleteCmd := &cobra.Command{
		Use:               "delete <month> <date>",
		Short:             "Delete a day's entry",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeMonth,
		RunE: func(cmd *cobra.Command, args []string) error {
			month, day, err := parseDayArgs(args, year)
			if err != nil {
				return err
			}
			return a.DeleteDay(month, day, year, force)
		},
	}
	dayDeleteCmd.Flags().BoolVar(&force, "yes", false, "skip confirmation")

	dayCmd.AddCommand(dayShowCmd, dayWriteCmd, dayDeleteCmd)

	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage today's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ListTasks()
		},
	}

	taskListCmd := &cobra.Command{
		Use:   "list",
		Short: "List today's tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ListTasks()
		},
	}

	var at string
	taskAddCmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task for today",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.AddTask(strings.Join(args, " "), at)
		},
	}
	taskAddCmd.Flags().StringVarP(&at, "time", "t", "", "optional time, e.g. 09:30")

	taskDoneCmd := &cobra.Command{
		Use:   "done <number|id>",
		Short: "Toggle a task between done and not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ToggleTask(args[0])
		},
	}

	taskEditCmd := &cobra.Command{
		Use:   "edit <number|id>",
		Short: "Change a task's text or time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch TaskPatch
			if cmd.Flags().Changed("text") {
				text, _ := cmd.Flags().GetString("text")
				patch.Text = &text
			}
			if cmd.Flags().Changed("time") {
				t, _ := cmd.Flags().GetString("time")
				patch.Time = &t
			}
			return a.EditTask(args[0], patch)
		},
	}
	taskEditCmd.Flags().String("text", "", "new task text")
	taskEditCmd.Flags().String("time", "", "new time, empty to clear")

	taskRmCmd := &cobra.Command{
		Use:     "rm <number|id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.RemoveTask(args[0])
		},
	}

	taskCmd.AddCommand(taskListCmd, taskAddCmd, taskDoneCmd, taskEditCmd, taskRmCmd)

	var dir string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write all entries and tasks to " + BackupFileName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Export(dir)
		},
	}
	exportCmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to write the backup to")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all entries and tasks with a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Import(args[0])
		},
	}

	// add commands
	rootCmd.AddCommand(yearCmd)
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	return rootCmd
}

func parseDayArgs(args []string, year int) (MonthName, int, error) {
	month, err := ParseMonth(args[0])
	if err != nil {
		return "", 0, err
	}
	day, err := ParseDay(month, year, args[1])
	if err != nil {
		return "", 0, err
	}
	return month, day, nil
}

func completeMonth(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names := make([]string, 0, len(Months))
	for _, month := range Months {
		names = append(names, string(month))
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
