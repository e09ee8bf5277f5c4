package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/solvetrack/solvetrack/internal/adapter"
	"github.com/solvetrack/solvetrack/internal/config"
	"github.com/solvetrack/solvetrack/internal/logger"
	"github.com/solvetrack/solvetrack/internal/store"
	"github.com/solvetrack/solvetrack/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: solvetrack-client <command> [flags]

commands:
  register     create an account (-email, -password)
  login        log in and cache the session (-email, -password)
  profile      print the checklist of the logged-in account
  check        mark a question completed (-ques)
  uncheck      remove a question from the checklist (-ques)
  upload       submit a solution (-confirm-email, -ques, -solution or -file)
  unsubscribe  delete the account (-email, -password)
  logout       drop the cached session
`

func main() {
	printBuildInfo()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	log := logger.NewLogger("solvetrack-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open local session db")
	}
	defer db.Close()

	cache, err := store.NewSessionCache(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("init session cache")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if session, err := cache.Load(ctx); err == nil {
		serverAdapter.SetToken(session.Token)
	} else if !errors.Is(err, store.ErrNoLocalSession) {
		log.Fatal().Err(err).Msg("load cached session")
	}

	app := &clientApp{adapter: serverAdapter, cache: cache}
	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type clientApp struct {
	adapter adapter.ServerAdapter
	cache   *store.SessionCache
}

func (a *clientApp) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return a.registerCmd(ctx, args)
	case "login":
		return a.loginCmd(ctx, args)
	case "profile":
		return a.profileCmd(ctx)
	case "check":
		return a.checklistCmd(ctx, "check", args)
	case "uncheck":
		return a.checklistCmd(ctx, "uncheck", args)
	case "upload":
		return a.uploadCmd(ctx, args)
	case "unsubscribe":
		return a.unsubscribeCmd(ctx, args)
	case "logout":
		return a.cache.Clear(ctx)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *clientApp) registerCmd(ctx context.Context, args []string) error {
	creds, err := parseCredentials("register", args)
	if err != nil {
		return err
	}

	token, err := a.adapter.Register(ctx, creds)
	if err != nil {
		return err
	}
	if err = a.saveSession(ctx, creds.Email, token); err != nil {
		return err
	}

	fmt.Println("Registered and logged in.")
	return nil
}

func (a *clientApp) loginCmd(ctx context.Context, args []string) error {
	creds, err := parseCredentials("login", args)
	if err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return err
	}
	if err = a.saveSession(ctx, creds.Email, token); err != nil {
		return err
	}

	fmt.Println("Logged in.")
	return nil
}

func (a *clientApp) profileCmd(ctx context.Context) error {
	checked, err := a.adapter.Profile(ctx)
	if err != nil {
		return err
	}

	printChecklist(checked)
	return nil
}

func (a *clientApp) checklistCmd(ctx context.Context, action string, args []string) error {
	fs := flag.NewFlagSet(action, flag.ContinueOnError)
	ques := fs.String("ques", "", "question identifier")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *ques == "" {
		return errors.New("-ques is required")
	}

	var (
		checked []string
		err     error
	)
	if action == "check" {
		checked, err = a.adapter.Check(ctx, *ques)
	} else {
		checked, err = a.adapter.Uncheck(ctx, *ques)
	}
	if err != nil {
		return err
	}

	printChecklist(checked)
	return nil
}

func (a *clientApp) uploadCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	confirmEmail := fs.String("confirm-email", "", "account email, repeated for confirmation")
	ques := fs.String("ques", "", "question identifier")
	solution := fs.String("solution", "", "solution text")
	file := fs.String("file", "", "read the solution text from a file instead of -solution")
	if err := fs.Parse(args); err != nil {
		return err
	}

	text := *solution
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			return fmt.Errorf("read solution file: %w", err)
		}
		text = string(data)
	}
	if *confirmEmail == "" || *ques == "" || strings.TrimSpace(text) == "" {
		return errors.New("-confirm-email, -ques and a solution (-solution or -file) are required")
	}

	err := a.adapter.Upload(ctx, models.UploadRequest{
		ConfirmEmail: *confirmEmail,
		Solution:     text,
		QuesID:       *ques,
	})
	if err != nil {
		return err
	}

	fmt.Println("Solution submitted.")
	return nil
}

func (a *clientApp) unsubscribeCmd(ctx context.Context, args []string) error {
	creds, err := parseCredentials("unsubscribe", args)
	if err != nil {
		return err
	}

	if err = a.adapter.Unsubscribe(ctx, creds); err != nil {
		return err
	}
	if err = a.cache.Clear(ctx); err != nil {
		return err
	}

	fmt.Println("Unsubscribed, account deleted.")
	return nil
}

func (a *clientApp) saveSession(ctx context.Context, email, token string) error {
	return a.cache.Save(ctx, store.LocalSession{
		Email:   email,
		Token:   token,
		SavedAt: time.Now(),
	})
}

func parseCredentials(name string, args []string) (models.Credentials, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return models.Credentials{}, err
	}
	if *email == "" || *password == "" {
		return models.Credentials{}, errors.New("-email and -password are required")
	}

	return models.Credentials{Email: *email, Password: *password}, nil
}

func printChecklist(checked []string) {
	if len(checked) == 0 {
		fmt.Println("Checklist is empty.")
		return
	}
	for _, ques := range checked {
		fmt.Println(ques)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
