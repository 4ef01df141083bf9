package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/harrisonrobin/sheetdash/pkg/auth"
	"github.com/harrisonrobin/sheetdash/pkg/colors"
	"github.com/harrisonrobin/sheetdash/pkg/config"
	"github.com/harrisonrobin/sheetdash/pkg/dashboard"
	"github.com/harrisonrobin/sheetdash/pkg/filter"
	"github.com/harrisonrobin/sheetdash/pkg/google"
	"github.com/harrisonrobin/sheetdash/pkg/report"
	"github.com/harrisonrobin/sheetdash/pkg/session"
	"github.com/harrisonrobin/sheetdash/pkg/workbook"
)

func main() {
	// 1. Parse Flags
	department := flag.String("department", "All", "Department for the project panel")
	projectStatus := flag.String("project-status", "all", "Filter full project list by Complete, In Progress or Outstanding")
	projectKey := flag.String("project", "", "Show the activities of one project key")
	todoDepartment := flag.String("todo-department", "all", "Filter to-do list by department")
	todoStatus := flag.String("todo-status", "all", "Filter to-do list by status")
	todoCategory := flag.String("todo-category", "all", "Filter to-do list by category")
	due := flag.String("due", "all", "Filter to-do list by end date: overdue, today, this-week, this-month, upcoming")
	categoryName := flag.String("category", "", "Show every task of one category")
	full := flag.Bool("all", false, "Show full project and to-do listings")
	jsonPath := flag.String("json", "", "Optional path to write JSON output")
	xlsxPath := flag.String("xlsx", "", "Optional path to write the listings as an .xlsx workbook")
	projectsXLSX := flag.String("projects-xlsx", "", "Read project sheets from a local .xlsx instead of Google Sheets")
	todoXLSX := flag.String("todo-xlsx", "", "Read the to-do sheet from a local .xlsx instead of Google Sheets")
	debug := flag.Bool("debug", false, "Print a diagnostic summary of the loaded data")
	doAuth := flag.Bool("auth", false, "Authenticate with Google Sheets")
	setSpreadsheet := flag.String("set-spreadsheet", "", "Set the projects spreadsheet id")
	setTodoSpreadsheet := flag.String("set-todo-spreadsheet", "", "Set the to-do spreadsheet id")
	setAPIKey := flag.String("set-api-key", "", "Set the Google API key")
	login := flag.String("login", "", "Log in with an allowed email")
	name := flag.String("name", "", "Display name used with -login")
	logout := flag.Bool("logout", false, "Clear the stored login")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// 2. Handle config setters
	if *setSpreadsheet != "" || *setTodoSpreadsheet != "" || *setAPIKey != "" {
		if *setSpreadsheet != "" {
			cfg.ProjectsSpreadsheetID = *setSpreadsheet
		}
		if *setTodoSpreadsheet != "" {
			cfg.TodoSpreadsheetID = *setTodoSpreadsheet
		}
		if *setAPIKey != "" {
			cfg.APIKey = *setAPIKey
		}
		if err := config.Save(cfg); err != nil {
			log.Fatalf("Error saving config: %v", err)
		}
		fmt.Println("Configuration saved.")
		return
	}

	// 3. Handle session
	sessionPath, err := session.DefaultPath()
	if err != nil {
		log.Fatalf("could not find path to session file: %v", err)
	}
	sess, err := session.Open(sessionPath)
	if err != nil {
		log.Fatalf("Error reading session: %v", err)
	}
	if *logout {
		if err := sess.Logout(); err != nil {
			log.Fatalf("Error logging out: %v", err)
		}
		fmt.Println("Logged out.")
		return
	}
	if *login != "" {
		if err := sess.Login(*login, *name, cfg.AllowedEmails); err != nil {
			log.Fatalf("Login failed: %v", err)
		}
		fmt.Println(sess.Greeting())
		return
	}
	if len(cfg.AllowedEmails) > 0 && !sess.Authenticated() {
		log.Fatalf("Not logged in. Run with -login <email> first.")
	}

	// 4. Handle Authentication
	ctx := context.Background()
	if *doAuth {
		tokenFile, err := auth.Authenticate(ctx)
		if err != nil {
			log.Fatalf("Authentication failed: %v", err)
		}
		log.Printf("Authentication successful! Token saved to %s", tokenFile)
		return
	}

	// 5. Build sources
	projects, err := source(ctx, *projectsXLSX, cfg.ProjectsSpreadsheetID, cfg.APIKey)
	if err != nil {
		log.Fatalf("Error creating projects source: %v", err)
	}
	todos, err := source(ctx, *todoXLSX, cfg.TodoSpreadsheetID, cfg.APIKey)
	if err != nil {
		log.Fatalf("Error creating to-do source: %v", err)
	}

	dueBucket, err := filter.ParseDueBucket(*due)
	if err != nil {
		log.Fatalf("%v", err)
	}

	// 6. Load and render
	dash := dashboard.New(projects, todos, cfg)
	dash.OnError = func(err error) {
		fmt.Fprintln(os.Stderr, "Failed to load data from Google Sheets")
	}
	if err := dash.Load(ctx); err != nil {
		os.Exit(1)
	}

	if *debug {
		info, err := dash.Debug()
		if err != nil {
			log.Fatalf("Error building debug info: %v", err)
		}
		report.PrintDebug(os.Stdout, info)
		if lister, ok := projects.(sheetLister); ok {
			if tabs, err := lister.Sheets(ctx); err != nil {
				log.Printf("Warning: could not list sheets: %v", err)
			} else {
				fmt.Printf("Project sheets available: %v\n", tabs)
			}
		}
		fmt.Println()
	}

	st := dashboard.State{
		Department:    *department,
		ProjectStatus: *projectStatus,
		Project:       *projectKey,
		TodoPreview:   filter.Todo{Department: *todoDepartment, Due: dueBucket},
		TodoModal: filter.Todo{
			Department: *todoDepartment,
			Status:     *todoStatus,
			Category:   *todoCategory,
			Due:        dueBucket,
		},
		Category: *categoryName,
		Full:     *full,
	}
	view, err := dash.Build(st)
	if err != nil {
		log.Fatalf("Error building dashboard: %v", err)
	}

	palette := colors.NewPalette()
	report.Print(os.Stdout, sess.Greeting(), view, palette)

	if *jsonPath != "" {
		doc := report.Document{
			Greeting: sess.Greeting(),
			Chart:    report.NewChart(view.Home.Breakdown, palette),
			View:     view,
		}
		if err := report.WriteJSON(*jsonPath, doc); err != nil {
			log.Fatalf("Error writing JSON: %v", err)
		}
		fmt.Printf("\nJSON written to %s\n", *jsonPath)
	}
	if *xlsxPath != "" {
		if err := report.WriteXLSX(*xlsxPath, view); err != nil {
			log.Fatalf("Error writing workbook: %v", err)
		}
		fmt.Printf("\nWorkbook written to %s\n", *xlsxPath)
	}
}

type sheetLister interface {
	Sheets(ctx context.Context) ([]string, error)
}

// source picks the local workbook when a path is given, else the Sheets API.
func source(ctx context.Context, xlsxPath, spreadsheetID, apiKey string) (dashboard.Source, error) {
	if xlsxPath != "" {
		return workbook.New(xlsxPath), nil
	}
	client, err := google.NewClient(ctx, spreadsheetID, apiKey)
	if err != nil {
		return nil, err
	}
	return client, nil
}
