package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rpupo63/chameleon-site/client"
	"github.com/rpupo63/chameleon-site/vibe"
	"github.com/rpupo63/chameleon-site/vibestate"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	apiURL    string
	cacheFile string
	timeout   time.Duration
	vibeTTL   time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "vibectl",
		Short:        "Query the portfolio API and render vibe themes",
		SilenceUsage: true,
	}

	defaultURL := os.Getenv("CHAMELEON_API_URL")
	if defaultURL == "" {
		defaultURL = client.DefaultBaseURL
	}
	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", defaultURL, "API base URL (or set CHAMELEON_API_URL)")
	rootCmd.PersistentFlags().StringVar(&opts.cacheFile, "cache-file", "", "Vibe cache file (default: user cache dir)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "Request timeout")
	rootCmd.PersistentFlags().DurationVar(&opts.vibeTTL, "vibe-ttl", client.DefaultVibeTTL, "How long cached vibe presets stay fresh")

	rootCmd.AddCommand(
		newThemeCmd(opts),
		newVibesCmd(opts),
		newProjectsCmd(opts),
		newProjectCmd(opts),
		newAboutCmd(opts),
		newClearCacheCmd(opts),
	)
	return rootCmd
}

func (o *rootOptions) client() (*client.Client, error) {
	path := o.cacheFile
	if path == "" {
		var err error
		if path, err = client.DefaultFileStorePath(); err != nil {
			return nil, err
		}
	}
	return client.New(o.apiURL,
		client.WithHTTPClient(&http.Client{Timeout: o.timeout}),
		client.WithStore(client.NewFileStore(path)),
		client.WithVibeTTL(o.vibeTTL),
		client.WithLogger(log.With().Str("component", "client").Logger()),
	), nil
}

func (o *rootOptions) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), o.timeout)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newThemeCmd(opts *rootOptions) *cobra.Command {
	var (
		position int
		blend    bool
	)

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the CSS custom properties for a slider position",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			state := vibestate.New(c, vibestate.WithInitialPosition(position))
			sheet := vibe.NewStyleSheet()
			unsubscribe := state.OnChange(vibestate.Theme(sheet))
			defer unsubscribe()

			if err := state.Load(ctx); err != nil {
				return fmt.Errorf("failed to load vibes: %w", err)
			}

			if blend {
				cfg, ok := vibe.Blend(state.Presets(), state.Position())
				if !ok {
					return errors.New("no vibe presets available")
				}
				_, err := fmt.Fprint(cmd.OutOrStdout(), vibe.RenderCSS(cfg))
				return err
			}

			current, ok := state.Current()
			if !ok {
				return errors.New("no vibe presets available")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "/* %s (%d) */\n", current.Name, current.SliderPosition)
			_, err = fmt.Fprint(cmd.OutOrStdout(), sheet.CSS())
			return err
		},
	}
	cmd.Flags().IntVarP(&position, "position", "p", vibe.DefaultPosition, "Slider position, 0-100")
	cmd.Flags().BoolVar(&blend, "blend", false, "Interpolate between the surrounding presets")
	return cmd
}

func newVibesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "vibes",
		Short: "List the vibe presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			vibes, err := c.Vibes(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "POSITION\tNAME\tPRIMARY")
			for _, v := range vibes {
				primary := ""
				if colors := v.Style().Colors; colors != nil {
					primary = colors.Primary
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\n", v.SliderPosition, v.Name, primary)
			}
			return tw.Flush()
		},
	}
}

func newProjectsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			projects, err := c.Projects(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tFEATURED")
			for _, p := range projects {
				featured := ""
				if p.Featured {
					featured = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Title, featured)
			}
			return tw.Flush()
		},
	}
}

func newProjectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "project <id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			project, err := c.ProjectByID(ctx, args[0])
			if err != nil {
				return err
			}
			if project == nil {
				return fmt.Errorf("project %s not found", args[0])
			}
			return printJSON(cmd.OutOrStdout(), project)
		},
	}
}

func newAboutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Show the about content",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			about, err := c.About(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), about)
		},
	}
}

func newClearCacheCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-cache",
		Short: "Remove the locally cached vibe presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			c.ClearCaches()
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Vibe cache cleared")
			return err
		},
	}
}
