package benchmark_test

import (
	"testing"

	"github.com/dzonerzy/go-argspec/argspec"
)

func benchSpec() *argspec.Spec {
	return &argspec.Spec{
		Name:    "bench",
		Version: "1.0.0",
		Summary: "benchmark fixture",
		Options: []*argspec.OptionSpec{
			{ID: "verbose", Short: 'v', Long: "verbose"},
			{ID: "level", Short: 'l', Long: "level", Kind: argspec.KindCount},
			{ID: "output", Short: 'o', Long: "output", Kind: argspec.KindValue},
			{ID: "include", Short: 'I', Long: "include", Kind: argspec.KindValues},
			{ID: "dry_run", Long: "dry-run", Negatable: true},
		},
		Positionals: []*argspec.PositionalSpec{
			{ID: "input", Required: true},
			{ID: "extra", Kind: argspec.PositionalValues, Variadic: true},
		},
	}
}

func BenchmarkCompile(b *testing.B) {
	spec := benchSpec()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = argspec.MustCompile(spec)
	}
}

func BenchmarkParseFlagsOnly(b *testing.B) {
	p := argspec.MustCompile(benchSpec())
	args := []string{"-v", "--dry-run", "in.txt"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(args, nil)
	}
}

func BenchmarkParseShortBundle(b *testing.B) {
	p := argspec.MustCompile(benchSpec())
	args := []string{"-vllloDIST", "in.txt"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(args, nil)
	}
}

func BenchmarkParseRepeatedValues(b *testing.B) {
	p := argspec.MustCompile(benchSpec())
	args := []string{"-Ia", "-Ib", "-Ic", "--include=d", "in.txt", "x", "y"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(args, nil)
	}
}

func BenchmarkParseUnknownWithSuggestion(b *testing.B) {
	p := argspec.MustCompile(benchSpec())
	args := []string{"--verboes"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(args, nil)
	}
}

func BenchmarkRenderHelp(b *testing.B) {
	p := argspec.MustCompile(benchSpec())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Help()
	}
}
