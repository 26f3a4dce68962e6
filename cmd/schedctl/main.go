package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"shoot-scheduler/config"
	"shoot-scheduler/helper"
	"shoot-scheduler/logger"
	"shoot-scheduler/models"
	"shoot-scheduler/repositories"
	"shoot-scheduler/services"

	"gopkg.in/go-playground/validator.v9"
	"gorm.io/gorm"
)

const usage = `usage: schedctl <command> [flags]

commands:
  send-reminders  notify confirmed actors about tomorrow's shoots
  create-task     create a social media task for a schedule
  migrate         create or update the database tables
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "schedctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return fmt.Errorf("missing command")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	appLog, err := logger.New(cfg.Server.Env)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer appLog.Sync()

	db, err := config.InitDB(cfg, appLog)
	if err != nil {
		return err
	}

	app := &cli{cfg: cfg, db: db, log: appLog, out: out, now: services.SystemClock}
	return app.dispatch(ctx, args)
}

type cli struct {
	cfg *config.Config
	db  *gorm.DB
	log *logger.Logger
	out io.Writer
	now services.Clock
}

func (a *cli) dispatch(ctx context.Context, args []string) error {
	switch args[0] {
	case "send-reminders":
		return a.sendReminders(ctx, args[1:])
	case "create-task":
		return a.createTask(ctx, args[1:])
	case "migrate":
		if err := config.Migrate(a.db, a.log); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Migration complete")
		return nil
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	}
	fmt.Fprint(a.out, usage)
	return fmt.Errorf("unknown command %q", args[0])
}

func (a *cli) sendReminders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("send-reminders", flag.ContinueOnError)
	fs.SetOutput(a.out)
	date := fs.String("date", "", "treat this day (YYYY-MM-DD) as today; defaults to the current date in APP_TIMEZONE")
	if err := fs.Parse(args); err != nil {
		return err
	}

	today := a.now().In(a.cfg.Location())
	if *date != "" {
		day, err := models.ParseDate(*date)
		if err != nil {
			return err
		}
		today = time.Time(day)
	}

	guard, err := a.reminderGuard(ctx)
	if err != nil {
		return err
	}

	notifier := services.NewNotificationService(repositories.NewNotificationRepository(a.db), a.log)
	reminders := services.NewReminderService(repositories.NewApplicationRepository(a.db), notifier, guard, a.log)

	count, err := reminders.SendReminders(ctx, today)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Reminders created: %d\n", count)
	return nil
}

func (a *cli) reminderGuard(ctx context.Context) (services.ReminderGuard, error) {
	if !a.cfg.Reminders.Dedupe {
		return services.NoGuard{}, nil
	}
	rdb, err := config.NewRedisClient(ctx, a.cfg.Redis.Addr)
	if err != nil {
		return nil, err
	}
	return services.NewRedisGuard(rdb), nil
}

func (a *cli) createTask(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-task", flag.ContinueOnError)
	fs.SetOutput(a.out)
	scheduleID := fs.Uint("schedule", 0, "schedule id")
	editorID := fs.Uint("editor", 0, "assigned editor id (optional)")
	platform := fs.String("platform", "", "instagram, tiktok or youtube")
	caption := fs.String("caption", "", "post caption")
	filmTitle := fs.String("film-title", "", "film title")
	due := fs.String("due", "", "due date-time, RFC3339")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.CreateTaskRequest{
		ScheduleID:  *scheduleID,
		SocialMedia: models.SocialPlatform(strings.ToLower(*platform)),
		Caption:     *caption,
		FilmTitle:   *filmTitle,
	}
	if *editorID != 0 {
		id := *editorID
		req.EditorID = &id
	}
	if *due != "" {
		dueAt, err := time.Parse(time.RFC3339, *due)
		if err != nil {
			return fmt.Errorf("invalid -due: %w", err)
		}
		req.DueDate = dueAt
	}

	httpHelper := helper.NewHTTPHelper()
	if err := httpHelper.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, msg := range validationErrors.Translate(httpHelper.Translator) {
				fmt.Fprintln(a.out, msg)
			}
		}
		return fmt.Errorf("invalid task")
	}

	tasks := services.NewTaskService(
		repositories.NewTaskRepository(a.db),
		repositories.NewScheduleRepository(a.db),
		repositories.NewUserRepository(a.db),
		a.now,
		a.log,
	)
	task, err := tasks.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Task created: %d (%s)\n", task.ID, task)
	return nil
}
