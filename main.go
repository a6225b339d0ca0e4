package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/infra/auth"
	"github.com/AWKRID/track/infra/config"
	"github.com/AWKRID/track/infra/supabase"
	"github.com/AWKRID/track/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// backend bundles everything built from the config.
type backend struct {
	auth      *auth.Service
	diaries   app.DiaryService
	feeds     app.FeedService
	calendars app.CalendarService
	comments  app.CommentService
	reactions app.ReactionService
}

func buildBackend() (*backend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	store := auth.NewStore(cfg.SessionPath)
	authSvc := auth.NewService(cfg.SupabaseURL, cfg.SupabaseAnonKey, store)
	tokens := auth.NewSessionTokenProvider(store, cfg.SupabaseAnonKey)
	client := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, tokens)

	diaries := supabase.NewDiaryService(client)
	users := supabase.NewUserService(client)
	comments := supabase.NewCommentService(client, users)
	reactions := supabase.NewReactionService(client)

	return &backend{
		auth:      authSvc,
		diaries:   diaries,
		feeds:     supabase.NewFeedService(diaries, users, comments, reactions),
		calendars: supabase.NewCalendarService(diaries, users),
		comments:  comments,
		reactions: reactions,
	}, nil
}

var rootCmd = &cobra.Command{
	Use:   "track",
	Short: "A music diary in your terminal",
	Long:  "track is a social music diary: one song and one note per day,\nshared with everyone on today's feed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := buildBackend()
		if err != nil {
			return err
		}

		if os.Getenv("TRACK_DEBUG") != "" {
			f, err := tea.LogToFile("track-debug.log", "track")
			if err != nil {
				return fmt.Errorf("debug log: %w", err)
			}
			defer f.Close()
		}

		session, _ := b.auth.CurrentSession(context.Background())

		rootModel := tui.NewApp(tui.Deps{
			Auth:      b.auth,
			Diary:     b.diaries,
			Feed:      b.feeds,
			Calendar:  b.calendars,
			Comments:  b.comments,
			Reactions: b.reactions,
		}, session)

		p := tea.NewProgram(rootModel, tea.WithAltScreen())
		b.auth.Subscribe(func(s app.Session, signedIn bool) {
			p.Send(tui.SessionChangedMsg{Session: s, SignedIn: signedIn})
		})

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("track: %w", err)
		}
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := buildBackend()
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)
		fmt.Print("Email: ")
		email, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading email: %w", err)
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}

		session, err := b.auth.SignIn(context.Background(), strings.TrimSpace(email), string(password))
		if err != nil {
			return err
		}
		fmt.Printf("Signed in as @%s\n", session.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := buildBackend()
		if err != nil {
			return err
		}
		if err := b.auth.SignOut(context.Background()); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("track %s\ncommit: %s\nbuilt: %s\n", v, c, d)
	},
}

// resolveVersionInfo fills in values not set at link time from the build
// info embedded by the toolchain.
func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	rootCmd.AddCommand(loginCmd, logoutCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
