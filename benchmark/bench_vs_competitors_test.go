package benchmark_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/urfave/cli/v2"

	"github.com/dzonerzy/go-argspec/argspec"
)

// Benchmark simple CLI with basic flags
// All competitors parse an equivalent flag set for fair comparison

func BenchmarkSimpleCLI_Argspec(b *testing.B) {
	p := argspec.MustCompile(&argspec.Spec{
		Name: "bench",
		Options: []*argspec.OptionSpec{
			{ID: "port", Short: 'p', Long: "port", Kind: argspec.KindValue,
				Type: argspec.TypeInteger, Default: 8080, Help: "Server port"},
			{ID: "verbose", Short: 'v', Long: "verbose", Help: "Verbose output"},
		},
	})

	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(args, nil)
	}
}

func BenchmarkSimpleCLI_Cobra(b *testing.B) {
	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		cmd.Flags().IntP("port", "p", 8080, "Server port")
		cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

func BenchmarkSimpleCLI_Urfave(b *testing.B) {
	args := []string{"bench", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

func BenchmarkSimpleCLI_Pflag(b *testing.B) {
	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		fs.IntP("port", "p", 8080, "Server port")
		fs.BoolP("verbose", "v", false, "Verbose output")
		_ = fs.Parse(args)
	}
}

// Benchmark with subcommands
// Tests command routing plus flag parsing in the matched subcommand

func BenchmarkSubcommands_Argspec(b *testing.B) {
	p := argspec.MustCompile(&argspec.Spec{
		Name:    "bench",
		Options: []*argspec.OptionSpec{{ID: "global", Long: "global", Help: "Global flag"}},
		Commands: []*argspec.Spec{
			{
				Name: "serve",
				Options: []*argspec.OptionSpec{
					{ID: "port", Long: "port", Kind: argspec.KindValue,
						Type: argspec.TypeInteger, Default: 8080},
					{ID: "host", Long: "host", Kind: argspec.KindValue, Default: "localhost"},
				},
			},
		},
	})

	args := []string{"--global", "serve", "--port", "9000", "--host", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(args, nil)
	}
}

func BenchmarkSubcommands_Cobra(b *testing.B) {
	args := []string{"--global", "serve", "--port", "9000", "--host", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		rootCmd.PersistentFlags().Bool("global", false, "Global flag")
		serveCmd := &cobra.Command{
			Use: "serve",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		serveCmd.Flags().Int("port", 8080, "Server port")
		serveCmd.Flags().String("host", "localhost", "Server host")
		rootCmd.AddCommand(serveCmd)
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkSubcommands_Urfave(b *testing.B) {
	args := []string{"bench", "--global", "serve", "--port", "9000", "--host", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name:  "bench",
			Flags: []cli.Flag{&cli.BoolFlag{Name: "global"}},
			Commands: []*cli.Command{
				{
					Name: "serve",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "port", Value: 8080},
						&cli.StringFlag{Name: "host", Value: "localhost"},
					},
					Action: func(_ *cli.Context) error { return nil },
				},
			},
		}
		_ = app.Run(args)
	}
}

// Benchmark many flags
// Stresses lookup maps and per-flag application cost

func BenchmarkManyFlags_Argspec(b *testing.B) {
	opts := make([]*argspec.OptionSpec, 0, 20)
	names := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec", "romeo", "sierra", "tango",
	}
	for _, name := range names {
		opts = append(opts, &argspec.OptionSpec{ID: name, Long: name})
	}
	p := argspec.MustCompile(&argspec.Spec{Name: "bench", Options: opts})

	args := []string{"--alpha", "--golf", "--mike", "--tango"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(args, nil)
	}
}

func BenchmarkManyFlags_Pflag(b *testing.B) {
	names := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec", "romeo", "sierra", "tango",
	}
	args := []string{"--alpha", "--golf", "--mike", "--tango"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		for _, name := range names {
			fs.Bool(name, false, "")
		}
		_ = fs.Parse(args)
	}
}
