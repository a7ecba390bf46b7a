// Package main provides a diagnostic tool that prints the CPU features seen
// by simdint and the kernel it selects for each input length. Given a file of
// separated integer records it also parses the file and prints per-column
// statistics.
//
// Usage:
//
//	simdinfo
//	simdinfo -records data.csv [-config simdint.toml]
//	cat data.csv | simdinfo -records -
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"golang.org/x/sys/cpu"

	"github.com/coregx/simdint"
	"github.com/coregx/simdint/simd"
)

func main() {
	recordsPath := flag.String("records", "", "parse a records file (- for stdin) and print column statistics")
	configPath := flag.String("config", "", "TOML file with max_level, separator and eol")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("app", "simdinfo").Logger()

	if *recordsPath == "" {
		printInfo(os.Stdout)
		return
	}

	if err := runRecords(os.Stdout, *recordsPath, *configPath, log); err != nil {
		log.Error().Err(err).Msg("records")
		os.Exit(1)
	}
}

func printInfo(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "simdint hardware level: %s\n", simd.HardwareLevel())
	fmt.Fprintf(w, "simdint current level:  %s\n", simdint.CurrentLevel())
	fmt.Fprintln(w)

	if runtime.GOARCH == "amd64" {
		printAMD64Features(w)
		fmt.Fprintln(w)
	}

	printDispatch(w)
}

func printAMD64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Feature", "Present", "Used by"})
	table.Append([]string{"SSSE3", strconv.FormatBool(cpu.X86.HasSSSE3), "sse4.1 (PMADDUBSW)"})
	table.Append([]string{"SSE4.1", strconv.FormatBool(cpu.X86.HasSSE41), "sse4.1 (PACKUSDW)"})
	table.Append([]string{"SSE4.2", strconv.FormatBool(cpu.X86.HasSSE42), "sse4.2 (PCMPESTRI)"})
	table.Append([]string{"AVX", strconv.FormatBool(cpu.X86.HasAVX), "avx2"})
	table.Append([]string{"AVX2", strconv.FormatBool(cpu.X86.HasAVX2), "avx2 (VPCMPGTB)"})
	table.Render()
}

// printDispatch shows which kernel handles inputs of a few lengths at
// every level the CPU supports.
func printDispatch(w io.Writer) {
	lengths := []int{1, 15, 16, 31, 32, 64}

	header := []string{"Level"}
	for _, n := range lengths {
		header = append(header, fmt.Sprintf("len %d", n))
	}

	fmt.Fprintln(w, "=== dispatch ===")
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for l := simd.LevelScalar; l <= simd.HardwareLevel(); l++ {
		row := []string{l.String()}
		for _, n := range lengths {
			name := "scalar"
			if k := simd.Select(l, n); k != nil {
				name = k.Name()
			}
			row = append(row, name)
		}
		table.Append(row)
	}
	table.Render()
}

func runRecords(w io.Writer, path, configPath string, log zerolog.Logger) error {
	cfg := defaultRecordConfig()
	if configPath != "" {
		var err error
		if cfg, err = loadRecordConfig(configPath); err != nil {
			return err
		}
	}

	p, err := simdint.NewParser(cfg.Parser)
	if err != nil {
		return err
	}

	data, err := readInput(path)
	if err != nil {
		return err
	}

	start := time.Now()
	sum := summarize(p, cfg, data, log)
	log.Info().
		Str("level", p.Level().String()).
		Int("records", sum.Records).
		Int("skipped", sum.Skipped).
		Dur("elapsed", time.Since(start)).
		Msg("parsed")

	printSummary(w, sum)
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return data, nil
}

func printSummary(w io.Writer, sum recordSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Count", "Min", "Max", "Mean"})
	for i := range sum.Fields {
		s := &sum.Fields[i]
		table.Append([]string{
			strconv.Itoa(i),
			strconv.FormatUint(s.Count, 10),
			strconv.FormatUint(uint64(s.Min), 10),
			strconv.FormatUint(uint64(s.Max), 10),
			strconv.FormatFloat(s.mean(), 'f', 2, 64),
		})
	}
	table.Render()
}
