// Command revcal generates, regenerates, and exports the monthly Facebook
// content calendar for Therma Village Spa & Sport.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/browser"

	"github.com/thermavillage/revcal/internal/app"
	"github.com/thermavillage/revcal/internal/calendar"
	"github.com/thermavillage/revcal/internal/config"
	"github.com/thermavillage/revcal/internal/export"
	"github.com/thermavillage/revcal/internal/notifier"
	"github.com/thermavillage/revcal/internal/planner"
	"github.com/thermavillage/revcal/internal/scheduler"
	"github.com/thermavillage/revcal/internal/store"
)

// generateTimeout bounds one agent call end to end.
const generateTimeout = 5 * time.Minute

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "generate":
		runGenerate()
	case "regen":
		if len(args) < 1 {
			fmt.Println("Usage: revcal regen <week>")
			os.Exit(1)
		}
		runRegen(args[0])
	case "sample":
		runSample()
	case "show":
		runShow(args)
	case "export":
		runExport(args)
	case "view":
		runView()
	case "history":
		runHistory(args)
	case "serve":
		runServe()
	case "config":
		runConfig(args)
	case "promo":
		runPromo(args)
	case "open":
		if len(args) < 1 {
			fmt.Println("Usage: revcal open <config|cache|exports>")
			os.Exit(1)
		}
		runOpen(args[0])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: revcal <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  generate              Generate a full monthly calendar")
	fmt.Println("  regen <week>          Regenerate a single week of the current calendar")
	fmt.Println("  sample                Print the built-in sample calendar")
	fmt.Println("  show [week]           Print the current calendar, or one week of it")
	fmt.Println("  export                Write the current calendar as an HTML page")
	fmt.Println("  export [week [post]] --copy")
	fmt.Println("                        Copy the calendar, a week, or a post to the clipboard")
	fmt.Println("  view                  Open the exported calendar page in the browser")
	fmt.Println("  history [n]           List recent generation attempts")
	fmt.Println("  serve                 Run the monthly generation schedule in the foreground")
	fmt.Println("  config get            Print the active configuration")
	fmt.Println("  config set <k> <v>    Set a configuration value")
	fmt.Println("  promo list            List configured promotions")
	fmt.Println("  promo add <name> [--date D] [--start D] [--end D] [--notes N]")
	fmt.Println("  promo remove <name>   Remove a promotion by name")
	fmt.Println("  open <target>         Open config, cache, or exports in the system handler")
}

func historyPath() (string, error) {
	cacheDir, err := config.CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "history.db"), nil
}

// newApp builds the application layer from the persisted configuration. An
// unusable history database degrades to in-memory operation.
func newApp() (*app.App, *config.Config, func()) {
	cfg := config.Load()

	p, err := planner.New(cfg.Agent)
	if err != nil {
		log.Fatalf("Failed to configure generation provider: %v", err)
	}

	var history *store.Store
	if path, err := historyPath(); err == nil {
		history, err = store.New(path)
		if err != nil {
			log.Printf("[revcal] Generation history unavailable: %v", err)
			history = nil
		}
	}

	cleanup := func() {
		if history != nil {
			history.Close()
		}
	}
	return app.New(cfg, p, history), cfg, cleanup
}

// restoreOrExit loads the last generated calendar and exits with a hint when
// there is none.
func restoreOrExit(a *app.App) calendar.Document {
	restored, err := a.RestoreFromHistory()
	if err != nil {
		log.Fatalf("Failed to restore calendar: %v", err)
	}
	if !restored {
		fmt.Println("No calendar generated yet. Run 'revcal generate' first.")
		os.Exit(1)
	}
	doc, _ := a.Document()
	return doc
}

func writePage(cfg *config.Config, doc calendar.Document) {
	if cfg.Export.OutputDir == "" {
		return
	}
	path, err := export.WriteHTML(cfg.Export.OutputDir, doc)
	if err != nil {
		log.Printf("[revcal] Failed to write calendar page: %v", err)
		return
	}
	log.Printf("[revcal] Wrote calendar page: %s", path)
}

func runGenerate() {
	a, cfg, cleanup := newApp()
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	log.Printf("[revcal] Generating %s %d calendar...", cfg.Plan.Month, cfg.Plan.Year)
	doc, err := a.Generate(ctx)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	fmt.Println(export.DocumentText(doc))
	writePage(cfg, doc)
}

func runRegen(weekArg string) {
	weekNumber, err := strconv.Atoi(weekArg)
	if err != nil {
		fmt.Printf("Invalid week number: %s\n", weekArg)
		os.Exit(1)
	}

	a, cfg, cleanup := newApp()
	defer cleanup()
	restoreOrExit(a)

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	log.Printf("[revcal] Regenerating week %d...", weekNumber)
	doc, err := a.RegenerateWeek(ctx, weekNumber)
	if err != nil {
		log.Fatalf("Regeneration failed: %v", err)
	}

	if week, err := findWeek(doc, weekNumber); err == nil {
		fmt.Println(export.WeekText(week))
	}
	writePage(cfg, doc)
}

func runSample() {
	fmt.Println(export.DocumentText(calendar.SampleDocument()))
}

func runShow(args []string) {
	a, _, cleanup := newApp()
	defer cleanup()
	doc := restoreOrExit(a)

	if len(args) == 0 {
		fmt.Println(export.DocumentText(doc))
		return
	}

	weekNumber, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid week number: %s\n", args[0])
		os.Exit(1)
	}
	week, err := findWeek(doc, weekNumber)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println(export.WeekText(week))
}

func runExport(args []string) {
	copyToClipboard := false
	var nums []int
	for _, arg := range args {
		if arg == "--copy" || arg == "-c" {
			copyToClipboard = true
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Printf("Invalid argument: %s\n", arg)
			os.Exit(1)
		}
		nums = append(nums, n)
	}

	a, cfg, cleanup := newApp()
	defer cleanup()
	doc := restoreOrExit(a)

	var text string
	switch len(nums) {
	case 0:
		text = export.DocumentText(doc)
	case 1:
		week, err := findWeek(doc, nums[0])
		if err != nil {
			log.Fatalf("%v", err)
		}
		text = export.WeekText(week)
	case 2:
		week, err := findWeek(doc, nums[0])
		if err != nil {
			log.Fatalf("%v", err)
		}
		if nums[1] < 1 || nums[1] > len(week.Posts) {
			log.Fatalf("Week %d has %d posts, no post %d", nums[0], len(week.Posts), nums[1])
		}
		text = export.PostText(week.Posts[nums[1]-1])
	default:
		fmt.Println("Usage: revcal export [week [post]] [--copy]")
		os.Exit(1)
	}

	if copyToClipboard {
		if err := export.CopyText(text); err != nil {
			log.Fatalf("Failed to copy to clipboard: %v", err)
		}
		log.Println("[revcal] Copied to clipboard")
		return
	}

	if len(nums) == 0 {
		writePage(cfg, doc)
		return
	}
	fmt.Println(text)
}

func runView() {
	a, cfg, cleanup := newApp()
	defer cleanup()

	restored, err := a.RestoreFromHistory()
	if err != nil {
		log.Fatalf("Failed to restore calendar: %v", err)
	}

	var path string
	if restored {
		doc, _ := a.Document()
		path, err = export.WriteHTML(cfg.Export.OutputDir, doc)
		if err != nil {
			log.Fatalf("Failed to write calendar page: %v", err)
		}
	} else {
		path, err = export.LatestHTML(cfg.Export.OutputDir)
		if err != nil {
			log.Fatalf("No calendar page to open: %v", err)
		}
	}

	if err := browser.OpenFile(path); err != nil {
		log.Fatalf("Failed to open %s: %v", path, err)
	}
}

func runHistory(args []string) {
	limit := 20
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Printf("Invalid limit: %s\n", args[0])
			os.Exit(1)
		}
		limit = n
	}

	path, err := historyPath()
	if err != nil {
		log.Fatalf("Failed to locate history: %v", err)
	}
	history, err := store.New(path)
	if err != nil {
		log.Fatalf("Failed to open history: %v", err)
	}
	defer history.Close()

	rows, err := history.Recent(limit)
	if err != nil {
		log.Fatalf("Failed to read history: %v", err)
	}
	if len(rows) == 0 {
		fmt.Println("No generations recorded yet.")
		return
	}

	for _, g := range rows {
		status := "ok"
		if !g.Success {
			status = "failed"
		}
		line := fmt.Sprintf("%4d  %s  %-8s  %-6s  %s %d",
			g.ID, g.CreatedAt.Format("2006-01-02 15:04"), g.Scope, status, g.Month, g.Year)
		if g.Error != "" {
			line += "  " + g.Error
		}
		fmt.Println(line)
	}
}

func runServe() {
	a, cfg, cleanup := newApp()
	defer cleanup()

	if !cfg.Schedule.Enabled {
		log.Fatal("Scheduling is disabled. Run 'revcal config set schedule.enabled true' first.")
	}

	var mail *notifier.Notifier
	if len(cfg.Email.ToAddrs) > 0 {
		var err error
		mail, err = notifier.NewFromConfig(cfg.Email)
		if err != nil {
			log.Fatalf("Email delivery misconfigured: %v", err)
		}
	} else {
		log.Println("[revcal] No email recipients configured, generated calendars stay local")
	}

	sched, err := scheduler.New(cfg.Schedule.Timezone)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	job := func(ctx context.Context) error {
		doc, err := a.Generate(ctx)
		if err != nil {
			return err
		}
		writePage(cfg, doc)
		if mail != nil {
			return mail.SendCalendar(ctx, doc)
		}
		return nil
	}

	if err := sched.AddJob("monthly-calendar", cfg.Schedule.Cron, job); err != nil {
		log.Fatalf("Failed to schedule generation: %v", err)
	}
	sched.Start()

	for _, info := range sched.ListJobs() {
		log.Printf("[revcal] Next run of %s: %s", info.Name, info.NextRun.Format(time.RFC1123))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Println("[revcal] Shutting down...")
	<-sched.Stop().Done()
}

func runConfig(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: revcal config <get|set>")
		os.Exit(1)
	}

	switch args[0] {
	case "get":
		cfg := config.Load()
		if path, err := config.ConfigPath(); err == nil {
			fmt.Printf("# %s\n", path)
		}
		if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
			log.Fatalf("Failed to render config: %v", err)
		}
	case "set":
		if len(args) < 3 {
			fmt.Println("Usage: revcal config set <key> <value>")
			os.Exit(1)
		}
		cfg := config.Load()
		if err := setConfigValue(cfg, args[1], strings.Join(args[2:], " ")); err != nil {
			log.Fatalf("%v", err)
		}
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}
		log.Printf("[revcal] Set %s", args[1])
	default:
		fmt.Printf("Unknown config command: %s\n", args[0])
		os.Exit(1)
	}
}

func setConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "plan.month":
		if !slices.Contains(config.Months, value) {
			return fmt.Errorf("unknown month: %s", value)
		}
		cfg.Plan.Month = value
	case "plan.year":
		year, err := strconv.Atoi(value)
		if err != nil || !slices.Contains(config.Years, year) {
			return fmt.Errorf("year must be one of %v", config.Years)
		}
		cfg.Plan.Year = year
	case "plan.target_market":
		if !slices.Contains(config.Markets, value) {
			return fmt.Errorf("target market must be one of %v", config.Markets)
		}
		cfg.Plan.TargetMarket = value
	case "plan.primary_goal":
		if !slices.Contains(config.Goals, value) {
			return fmt.Errorf("primary goal must be one of %v", config.Goals)
		}
		cfg.Plan.PrimaryGoal = value
	case "plan.hero_offer":
		cfg.Plan.HeroOffer = value
	case "plan.posting_frequency":
		freq, err := strconv.Atoi(value)
		if err != nil || !slices.Contains(config.Frequencies, freq) {
			return fmt.Errorf("posting frequency must be one of %v", config.Frequencies)
		}
		cfg.Plan.PostingFrequency = freq
	case "agent.provider":
		if value != config.ProviderAgent && value != config.ProviderAnthropic {
			return fmt.Errorf("provider must be %q or %q", config.ProviderAgent, config.ProviderAnthropic)
		}
		cfg.Agent.Provider = value
	case "agent.endpoint":
		cfg.Agent.Endpoint = value
	case "agent.agent_id":
		cfg.Agent.AgentID = value
	case "agent.api_key":
		cfg.Agent.APIKey = value
	case "agent.model":
		cfg.Agent.Model = value
	case "schedule.enabled":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("schedule.enabled must be true or false")
		}
		cfg.Schedule.Enabled = enabled
	case "schedule.cron":
		cfg.Schedule.Cron = value
	case "schedule.timezone":
		cfg.Schedule.Timezone = value
	case "email.smtp_host":
		cfg.Email.SMTPHost = value
	case "email.smtp_port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("email.smtp_port must be a number")
		}
		cfg.Email.SMTPPort = port
	case "email.smtp_user":
		cfg.Email.SMTPUser = value
	case "email.smtp_pass":
		cfg.Email.SMTPPass = value
	case "email.from_address":
		cfg.Email.FromAddr = value
	case "email.to_addresses":
		var addrs []string
		for _, addr := range strings.Split(value, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				addrs = append(addrs, addr)
			}
		}
		cfg.Email.ToAddrs = addrs
	case "export.output_dir":
		cfg.Export.OutputDir = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func runPromo(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: revcal promo <list|add|remove>")
		os.Exit(1)
	}

	cfg := config.Load()
	switch args[0] {
	case "list":
		if len(cfg.Promotions) == 0 {
			fmt.Println("No promotions configured.")
			return
		}
		for i, p := range cfg.Promotions {
			line := fmt.Sprintf("%d. %s", i+1, p.Name)
			if p.Date != "" {
				line += fmt.Sprintf(" (Date: %s)", p.Date)
			}
			if p.ValidityStart != "" || p.ValidityEnd != "" {
				line += fmt.Sprintf(" (Valid: %s - %s)", p.ValidityStart, p.ValidityEnd)
			}
			if p.Notes != "" {
				line += fmt.Sprintf(" - %s", p.Notes)
			}
			fmt.Println(line)
		}
	case "add":
		if len(args) < 2 {
			fmt.Println("Usage: revcal promo add <name> [--date D] [--start D] [--end D] [--notes N]")
			os.Exit(1)
		}
		promo, err := parsePromo(args[1:])
		if err != nil {
			log.Fatalf("%v", err)
		}
		cfg.Promotions = append(cfg.Promotions, promo)
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}
		log.Printf("[revcal] Added promotion: %s", promo.Name)
	case "remove":
		if len(args) < 2 {
			fmt.Println("Usage: revcal promo remove <name>")
			os.Exit(1)
		}
		name := strings.Join(args[1:], " ")
		kept := cfg.Promotions[:0]
		for _, p := range cfg.Promotions {
			if p.Name != name {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(cfg.Promotions) {
			log.Fatalf("No promotion named %q", name)
		}
		cfg.Promotions = kept
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}
		log.Printf("[revcal] Removed promotion: %s", name)
	default:
		fmt.Printf("Unknown promo command: %s\n", args[0])
		os.Exit(1)
	}
}

// parsePromo reads a promotion name followed by optional flag pairs.
func parsePromo(args []string) (config.Promotion, error) {
	promo := config.Promotion{Name: args[0]}
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		if i+1 >= len(rest) {
			return config.Promotion{}, fmt.Errorf("missing value for %s", rest[i])
		}
		value := rest[i+1]
		switch rest[i] {
		case "--date":
			promo.Date = value
		case "--start":
			promo.ValidityStart = value
		case "--end":
			promo.ValidityEnd = value
		case "--notes":
			promo.Notes = value
		default:
			return config.Promotion{}, fmt.Errorf("unknown flag: %s", rest[i])
		}
		i++
	}
	return promo, nil
}

func runOpen(target string) {
	var path string
	var err error

	switch target {
	case "config":
		path, err = config.ConfigPath()
	case "cache":
		path, err = config.CacheDir()
	case "exports":
		path = config.Load().Export.OutputDir
		if path == "" {
			err = fmt.Errorf("no export directory configured")
		}
	default:
		fmt.Printf("Unknown target: %s\n", target)
		os.Exit(1)
	}

	if err != nil {
		log.Fatalf("Failed to get path: %v", err)
	}
	if err := browser.OpenFile(path); err != nil {
		log.Fatalf("Failed to open: %v", err)
	}
}

func findWeek(doc calendar.Document, weekNumber int) (calendar.Week, error) {
	for _, w := range doc.Weeks {
		if w.WeekNumber == weekNumber {
			return w, nil
		}
	}
	return calendar.Week{}, fmt.Errorf("no week %d in the current calendar", weekNumber)
}
