package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"simbu-console/internal/adapter/rest"
	"simbu-console/internal/adapter/sqlite"
	"simbu-console/internal/adapter/usecase"
	"simbu-console/internal/config"
	"simbu-console/internal/core/domain"
	"simbu-console/internal/core/port"
	"simbu-console/internal/db"
)

const usage = `simbu-console <command> [flags]

Commands:
  login        -u <user> -p <password>
  logout
  me
  dashboard
  campaigns    [list | get -id N | update -id N -text S | delete -id N | preview -id N -group N]
  new-campaign -name S -text S [-template N] -group N -mode draft|now|schedule [-date YYYY-MM-DD -time HH:MM] [-reuse N]
  resend       -id N -group N -mode now|schedule [-date YYYY-MM-DD -time HH:MM]
  contacts     [list | get -id N]
  groups       [list | contacts -id N]
  templates    [list | categories]
  schedules    [list | delete -id N]
  messages     [list] [-status S] [-campaign N] [-contact N] [-skip N] [-limit N] [-from S] [-to S]
  users        [list | permissions]
  settings     [sms | notifications | appearance]
`

// console bundles everything a command handler needs.
type console struct {
	logger  *slog.Logger
	session *usecase.Session

	auth       *rest.Auth
	admin      *rest.Admin
	campaigns  *rest.Campaigns
	contacts   *rest.Contacts
	groups     *rest.Groups
	templates  *rest.Templates
	categories *rest.TemplateCategories
	messages   *rest.Messages
	schedules  *rest.Schedules
	settings   *rest.Settings
	dashboard  *rest.DashboardClient
}

// main is the entry point of the console. It loads configuration,
// initialises the structured logger and the local credential store,
// rehydrates the session and dispatches the requested command.
func main() {
	// A missing .env is fine; the OS environment still applies.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	local, err := db.OpenLocal(cfg.Store)
	if err != nil {
		logger.Error("local store error", slog.Any("error", err))
		os.Exit(1)
	}
	defer local.Close()

	store := sqlite.NewCredentialStore(local)
	session := usecase.NewSession(store, logger)
	session.Initialize()

	navigator := port.NavigatorFunc(func() {
		fmt.Fprintln(os.Stderr, "Sessão expirada. Faça login novamente.")
	})

	client := rest.NewClient(cfg.API, logger, session.Token, func() {
		session.Logout()
		navigator.NavigateLogin()
	})

	c := &console{
		logger:     logger,
		session:    session,
		auth:       rest.NewAuth(client),
		admin:      rest.NewAdmin(client),
		campaigns:  rest.NewCampaigns(client),
		contacts:   rest.NewContacts(client),
		groups:     rest.NewGroups(client),
		templates:  rest.NewTemplates(client),
		categories: rest.NewTemplateCategories(client),
		messages:   rest.NewMessages(client),
		schedules:  rest.NewSchedules(client),
		settings:   rest.NewSettings(client),
		dashboard:  rest.NewDashboard(client),
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	if err := c.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, port.ErrorMessage(err))
		logger.Debug("command failed", slog.String("command", os.Args[1]), slog.Any("error", err))
		os.Exit(1)
	}
}

func (c *console) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.cmdLogin(ctx, args)
	case "logout":
		return c.cmdLogout(ctx)
	case "me":
		return c.cmdMe(ctx)
	case "dashboard":
		d, err := c.dashboard.Metrics(ctx)
		if err != nil {
			return err
		}
		return printJSON(d)
	case "campaigns":
		return c.cmdCampaigns(ctx, args)
	case "new-campaign":
		return c.cmdNewCampaign(ctx, args)
	case "resend":
		return c.cmdResend(ctx, args)
	case "contacts":
		return c.cmdContacts(ctx, args)
	case "groups":
		return c.cmdGroups(ctx, args)
	case "templates":
		return c.cmdTemplates(ctx, args)
	case "schedules":
		return c.cmdSchedules(ctx, args)
	case "messages":
		return c.cmdMessages(ctx, args)
	case "users":
		return c.cmdUsers(ctx, args)
	case "settings":
		return c.cmdSettings(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (c *console) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	user := fs.String("u", "", "username")
	pass := fs.String("p", "", "password")
	fs.Parse(args)
	if *user == "" || *pass == "" {
		return fmt.Errorf("login requires -u and -p")
	}

	tok, err := c.auth.Login(ctx, domain.Credentials{Username: *user, Password: *pass})
	if err != nil {
		return err
	}
	// The token must be in place before /auth/me, so persist it with a
	// minimal snapshot and overwrite once the profile arrives.
	if err := c.session.SetAuth(domain.User{Username: *user}, tok.AccessToken); err != nil {
		return err
	}
	profile, err := c.auth.Me(ctx)
	if err != nil {
		return err
	}
	if err := c.session.SetUser(*profile); err != nil {
		return err
	}
	fmt.Printf("Sessão iniciada como %s\n", profile.Username)
	return nil
}

func (c *console) cmdLogout(ctx context.Context) error {
	// Best effort server side; the local session is cleared regardless.
	if err := c.auth.Logout(ctx); err != nil {
		c.logger.Debug("server logout failed", slog.Any("error", err))
	}
	c.session.Logout()
	fmt.Println("Sessão terminada.")
	return nil
}

func (c *console) cmdMe(ctx context.Context) error {
	u, err := c.auth.Me(ctx)
	if err != nil {
		return err
	}
	return printJSON(u)
}

func (c *console) cmdCampaigns(ctx context.Context, args []string) error {
	sub, rem := subcommand(args, "list")
	fs := flag.NewFlagSet("campaigns", flag.ExitOnError)
	id := fs.Int("id", 0, "campaign id")
	group := fs.Int("group", 0, "group id")
	text := fs.String("text", "", "replacement SMS text")
	fs.Parse(rem)

	switch sub {
	case "list":
		list, err := c.campaigns.List(ctx)
		if err != nil {
			return err
		}
		for _, camp := range list {
			fmt.Printf("%d\t%s\t%d SMS\t%s\n", camp.ID, camp.Name, domain.SMSSegments(camp.SMSText), orDash(camp.CreatedAt))
		}
		return nil
	case "get":
		camp, err := c.campaigns.Get(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(camp)
	case "update":
		// The edit form only rewrites the SMS text.
		camp, err := c.campaigns.Update(ctx, *id, domain.CampaignUpdate{SMSText: *text})
		if err != nil {
			return err
		}
		return printJSON(camp)
	case "delete":
		return c.campaigns.Delete(ctx, *id)
	case "preview":
		p, err := c.campaigns.Preview(ctx, *id, *group)
		if err != nil {
			return err
		}
		return printJSON(p)
	default:
		return fmt.Errorf("unknown campaigns subcommand %q", sub)
	}
}

// cmdNewCampaign drives the wizard non-interactively: flags fill each step
// and the gates are enforced in order, exactly as the guided flow does.
func (c *console) cmdNewCampaign(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("new-campaign", flag.ExitOnError)
	name := fs.String("name", "", "campaign name")
	text := fs.String("text", "", "SMS body")
	template := fs.Int("template", 0, "template id to apply")
	group := fs.Int("group", 0, "target group id")
	mode := fs.String("mode", "now", "draft | now | schedule")
	date := fs.String("date", "", "schedule date YYYY-MM-DD")
	clock := fs.String("time", "", "schedule time HH:MM")
	reuse := fs.Int("reuse", 0, "existing campaign id to copy from")
	fs.Parse(args)

	w := usecase.NewWizard(c.campaigns, c.schedules, c.logger)
	w.Open(func() { fmt.Println("Campanha guardada.") })

	if *reuse != 0 {
		src, err := c.campaigns.Get(ctx, *reuse)
		if err != nil {
			return err
		}
		w.SelectExistingCampaign(*src)
	}
	if err := w.Next(); err != nil {
		return err
	}

	if *template != 0 {
		t, err := c.templates.Get(ctx, *template)
		if err != nil {
			return err
		}
		w.SelectTemplate(*t)
	}
	if *name != "" {
		w.SetName(*name)
	}
	if *text != "" {
		w.SetText(*text)
	}
	if err := w.Next(); err != nil {
		return err
	}

	w.SelectGroup(*group)
	if err := w.Next(); err != nil {
		return err
	}

	w.SetSendMode(usecase.SendMode(*mode))
	w.SetScheduleDate(*date)
	w.SetScheduleTime(*clock)
	return w.Submit(ctx)
}

func (c *console) cmdResend(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("resend", flag.ExitOnError)
	id := fs.Int("id", 0, "campaign id")
	group := fs.Int("group", 0, "target group id")
	mode := fs.String("mode", "now", "now | schedule")
	date := fs.String("date", "", "schedule date YYYY-MM-DD")
	clock := fs.String("time", "", "schedule time HH:MM")
	fs.Parse(args)

	r := usecase.NewResend(c.campaigns, c.schedules, c.logger)
	r.Open(*id, func() { fmt.Println("Campanha reenviada.") })
	r.SelectGroup(*group)
	r.SetSendMode(usecase.SendMode(*mode))
	r.SetScheduleDate(*date)
	r.SetScheduleTime(*clock)
	return r.Submit(ctx)
}

func (c *console) cmdContacts(ctx context.Context, args []string) error {
	sub, rem := subcommand(args, "list")
	fs := flag.NewFlagSet("contacts", flag.ExitOnError)
	id := fs.Int("id", 0, "contact id")
	fs.Parse(rem)

	switch sub {
	case "list":
		list, err := c.contacts.List(ctx)
		if err != nil {
			return err
		}
		for _, ct := range list {
			fmt.Printf("%d\t%s\t%s\n", ct.ID, ct.FirstName, ct.Phone)
		}
		return nil
	case "get":
		ct, err := c.contacts.Get(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(ct)
	default:
		return fmt.Errorf("unknown contacts subcommand %q", sub)
	}
}

func (c *console) cmdGroups(ctx context.Context, args []string) error {
	sub, rem := subcommand(args, "list")
	fs := flag.NewFlagSet("groups", flag.ExitOnError)
	id := fs.Int("id", 0, "group id")
	fs.Parse(rem)

	switch sub {
	case "list":
		list, err := c.groups.List(ctx)
		if err != nil {
			return err
		}
		for _, g := range list {
			fmt.Printf("%d\t%s\n", g.ID, g.Name)
		}
		return nil
	case "contacts":
		list, err := c.groups.Contacts(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(list)
	default:
		return fmt.Errorf("unknown groups subcommand %q", sub)
	}
}

func (c *console) cmdTemplates(ctx context.Context, args []string) error {
	sub, _ := subcommand(args, "list")
	switch sub {
	case "list":
		list, err := c.templates.List(ctx)
		if err != nil {
			return err
		}
		for _, t := range list {
			body := ""
			if t.Body != nil {
				body = *t.Body
			}
			fmt.Printf("%d\t%s\t%d SMS\n", t.ID, t.Name, domain.SMSSegments(body))
		}
		return nil
	case "categories":
		list, err := c.categories.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(list)
	default:
		return fmt.Errorf("unknown templates subcommand %q", sub)
	}
}

func (c *console) cmdSchedules(ctx context.Context, args []string) error {
	sub, rem := subcommand(args, "list")
	fs := flag.NewFlagSet("schedules", flag.ExitOnError)
	id := fs.Int("id", 0, "schedule id")
	fs.Parse(rem)

	switch sub {
	case "list":
		list, err := c.schedules.List(ctx)
		if err != nil {
			return err
		}
		for _, s := range list {
			fmt.Printf("%d\t%s\tcampanha %d\tgrupo %d\tenviado=%v\n", s.ID, s.DateTime, s.CampaignID, s.GroupID, s.Sent)
		}
		return nil
	case "delete":
		return c.schedules.Delete(ctx, *id)
	default:
		return fmt.Errorf("unknown schedules subcommand %q", sub)
	}
}

func (c *console) cmdMessages(ctx context.Context, args []string) error {
	_, rem := subcommand(args, "list")
	fs := flag.NewFlagSet("messages", flag.ExitOnError)
	status := fs.String("status", "", "pending | sent | delivered | failed")
	campaign := fs.Int("campaign", 0, "filter by campaign id")
	contact := fs.Int("contact", 0, "filter by contact id")
	skip := fs.Int("skip", 0, "pagination offset")
	limit := fs.Int("limit", 0, "page size")
	from := fs.String("from", "", "date from")
	to := fs.String("to", "", "date to")
	fs.Parse(rem)

	f := domain.MessageFilters{Status: *status, DateFrom: *from, DateTo: *to}
	if *skip != 0 {
		f.Skip = skip
	}
	if *limit != 0 {
		f.Limit = limit
	}
	if *campaign != 0 {
		f.CampaignID = campaign
	}
	if *contact != 0 {
		f.ContactID = contact
	}

	page, err := c.messages.List(ctx, f)
	if err != nil {
		return err
	}
	for _, m := range page.Items {
		fmt.Printf("%d\t%s\t%s\t%s\n", m.ID, m.Destination, m.Status, orDash(m.SentAt))
	}
	fmt.Printf("total=%d page=%d per_page=%d\n", page.Total, page.Page, page.PerPage)
	return nil
}

func (c *console) cmdUsers(ctx context.Context, args []string) error {
	sub, _ := subcommand(args, "list")
	switch sub {
	case "list":
		list, err := c.admin.ListUsers(ctx)
		if err != nil {
			return err
		}
		for _, u := range list {
			fmt.Printf("%d\t%s\t%s\tactivo=%d\n", u.ID, u.Username, u.Email, u.Active)
		}
		return nil
	case "permissions":
		list, err := c.admin.ListPermissions(ctx)
		if err != nil {
			return err
		}
		return printJSON(list)
	default:
		return fmt.Errorf("unknown users subcommand %q", sub)
	}
}

func (c *console) cmdSettings(ctx context.Context, args []string) error {
	sub, _ := subcommand(args, "sms")
	switch sub {
	case "sms":
		v, err := c.settings.SMSConfig(ctx)
		if err != nil {
			return err
		}
		return printJSON(v)
	case "notifications":
		v, err := c.settings.Notifications(ctx)
		if err != nil {
			return err
		}
		return printJSON(v)
	case "appearance":
		v, err := c.settings.Appearance(ctx)
		if err != nil {
			return err
		}
		return printJSON(v)
	default:
		return fmt.Errorf("unknown settings subcommand %q", sub)
	}
}

// subcommand splits [sub, flags...] from args, falling back to def when
// the first element is itself a flag.
func subcommand(args []string, def string) (string, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return def, args
	}
	return args[0], args[1:]
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
