// Package cli implements the itinera command-line client for the planner API.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"itinera/internal/apiclient"
	"itinera/internal/logging"
)

const envPrefix = "ITINERA"

func Execute() {
	cmd := NewRootCmd(afero.NewOsFs())
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app carries the resolved settings shared by every subcommand.
type app struct {
	v   *viper.Viper
	fs  afero.Fs
	log *zap.Logger
}

// NewRootCmd builds the command tree. Plans are written to fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{v: viper.New(), fs: fs, log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:           "itinera",
		Short:         "Itinera: AI travel planner client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch f := a.format(); f {
			case formatPretty, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown format %q (want pretty|json|yaml)", f)
			}
			level := "warn"
			if a.v.GetBool("debug") {
				level = "debug"
			}
			log, err := logging.New(level, "console")
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("api-url", "http://localhost:8000", "Planner API base URL")
	pf.Duration("timeout", 30*time.Second, "Per-request timeout")
	pf.String("format", formatPretty, "Output format: pretty|json|yaml")
	pf.Bool("debug", false, "Enable debug logging to stderr")
	for _, name := range []string{"api-url", "timeout", "format", "debug"} {
		_ = a.v.BindPFlag(name, pf.Lookup(name))
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd.AddCommand(
		a.healthCmd(),
		a.itineraryCmd(),
		a.optionsCmd(),
		a.foodCmd(),
		a.planCmd(),
		a.chatCmd(),
	)
	return cmd
}

func (a *app) format() string {
	return strings.ToLower(a.v.GetString("format"))
}

func (a *app) client(opts ...apiclient.Option) *apiclient.Client {
	return a.newClient(a.v.GetDuration("timeout"), opts...)
}

// newClient builds a client whose requests are bounded by timeout; zero means
// only the command context bounds them.
func (a *app) newClient(timeout time.Duration, opts ...apiclient.Option) *apiclient.Client {
	cfg := apiclient.DefaultConfig()
	cfg.Timeout = max(timeout, 0)
	base := []apiclient.Option{
		apiclient.WithHTTPClient(apiclient.NewHTTPClient(cfg)),
		apiclient.WithLogger(a.log),
	}
	return apiclient.New(a.v.GetString("api-url"), append(base, opts...)...)
}

func (a *app) print(w io.Writer, v any, pretty func(io.Writer) error) error {
	return render(w, a.format(), v, pretty)
}
