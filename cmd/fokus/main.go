package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dori/fokus/internal/app"
	"github.com/dori/fokus/internal/config"
	"github.com/dori/fokus/internal/model"
	"github.com/dori/fokus/internal/quickadd"
	"github.com/dori/fokus/internal/store"
	"github.com/dori/fokus/internal/ui"
	"github.com/dori/fokus/internal/ui/theme"
)

var (
	version = "0.1.0"
)

func main() {
	// Subcommand handling
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "add":
			handleAdd(os.Args[2:])
			return
		case "version":
			fmt.Printf("fokus v%s\n", version)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		}
	}

	themeFlag := flag.String("theme", "", "Theme name (nord, gruvbox)")
	flag.Parse()

	if err := runTUI(*themeFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `fokus - a project board with a focus timer

Usage:
  fokus                     Start the TUI
  fokus add <task>          Quick add a task to the active project
  fokus version             Show version
  fokus help                Show this help

Quick Add Syntax:
  fokus add "Buy groceries"
  fokus add "Review PR @work !high due:tomorrow est:2h"

  Tags:      @tag           (e.g., @home, @work, @errands)
  Priority:  !low !medium !high
  Due date:  due:tomorrow due:friday due:2026-01-15
  Estimate:  est:2h

TUI Options:
  --theme <name>    Theme (nord, gruvbox)

Keybindings:
  Views:        1-5           Projects, Board, Planner, Focus, Progress
  Board:        h/l j/k       Navigate columns and tasks
                H/L           Move task between columns
                tab           Toggle done
                a             Quick-add task
                f             Start focus session
  General:      ?             Help
                q             Quit`

	fmt.Println(help)
}

func handleAdd(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: fokus add <task>")
		fmt.Fprintln(os.Stderr, "Example: fokus add \"Buy groceries @errands !high due:tomorrow\"")
		os.Exit(1)
	}

	task := quickadd.Parse(strings.Join(args, " "))
	if task.Title == "" {
		fmt.Fprintln(os.Stderr, "Error: task needs a title")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	st := application.Store.State()
	if st.ActiveProjectID == "" {
		// first use: create a default project to hold the task
		application.Store.Dispatch(store.CreateProject{Project: model.Project{
			ID:      "inbox",
			Name:    "Inbox",
			Columns: model.DefaultColumns(),
		}})
	}

	application.Store.Dispatch(store.AddTask{Task: task})

	fmt.Printf("Created: %s\n", task.Title)
	if task.DueDate != "" {
		fmt.Printf("Due: %s\n", task.DueDate)
	}
	if task.Priority != "" && task.Priority != model.PriorityMedium {
		fmt.Printf("Priority: %s\n", task.Priority)
	}
	if len(task.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(task.Tags, ", "))
	}
}

func runTUI(themeName string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	if themeName != "" {
		if t, ok := theme.ByName(themeName); ok {
			theme.SetTheme(t)
		} else {
			return fmt.Errorf("unknown theme %q", themeName)
		}
	}

	m := ui.NewRootModel(application)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
