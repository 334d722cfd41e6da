package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
)

var (
	scanMinLength int
	scanMaxLength int
	scanLimit     int
	scanFile      string
	scanJSON      bool
	scanWatch     bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [text]",
	Short: "Scan text for Hebrew palindromes",
	Long: `Scans text for palindromic runs of Hebrew letters.

Text is taken from the argument, from --file, or from stdin when neither
is given. Matching ignores niqqud and cantillation marks, folds
final letter forms, and strips chapter-and-verse citation tokens.
Results are deduplicated and sorted longest first.

With --file and --watch, the file is rescanned every time it changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanMinLength, "min", 0, "minimum normalised length (default from settings)")
	scanCmd.Flags().IntVar(&scanMaxLength, "max", 0, "maximum normalised length (default from settings)")
	scanCmd.Flags().IntVar(&scanLimit, "limit", 0, "print at most this many results (0 = all)")
	scanCmd.Flags().StringVarP(&scanFile, "file", "f", "", "read text from file instead of argument")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output results as JSON")
	scanCmd.Flags().BoolVarP(&scanWatch, "watch", "w", false, "rescan whenever --file changes")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanService == nil {
		return errors.New("scan service not configured")
	}
	if scanWatch && scanFile == "" {
		return errors.New("--watch requires --file")
	}

	opts := scanOptions()

	if scanWatch {
		return watchAndScan(cmd, scanFile, opts)
	}

	text, err := readScanInput(args)
	if err != nil {
		return err
	}

	return scanAndOutput(cmd, text, opts)
}

// scanOptions resolves bounds from flags, falling back to the configured
// defaults when a flag is left at zero.
func scanOptions() domain.ScanOptions {
	opts := domain.ScanOptions{
		MinLength: scanMinLength,
		MaxLength: scanMaxLength,
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			if opts.MinLength == 0 {
				opts.MinLength = settings.Scan.MinLength
			}
			if opts.MaxLength == 0 {
				opts.MaxLength = settings.Scan.MaxLength
			}
		}
	}
	return opts
}

func readScanInput(args []string) (string, error) {
	if scanFile != "" {
		data, err := os.ReadFile(scanFile)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}

	// Neither argument nor file: read stdin
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func scanAndOutput(cmd *cobra.Command, text string, opts domain.ScanOptions) error {
	results, err := scanService.FindPalindromes(cmd.Context(), text, opts)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	// Results are sorted longest first, so a limit keeps the best ones.
	if scanLimit > 0 && len(results) > scanLimit {
		results = results[:scanLimit]
	}

	if scanJSON {
		return outputScanJSON(cmd, results)
	}
	return outputScanTable(cmd, results)
}

// watchAndScan scans the file once, then rescans on every write event
// until interrupted.
func watchAndScan(cmd *cobra.Command, path string, opts domain.ScanOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck // Best-effort cleanup

	// Watch the directory, not the file: editors commonly replace the
	// file on save, which drops a watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rescan := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "read error: %v\n", err)
			return
		}
		if err := scanAndOutput(cmd, string(data), opts); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "scan error: %v\n", err)
		}
	}

	rescan()
	cmd.Printf("Watching %s (Ctrl-C to stop)\n", path)

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				cmd.Println()
				rescan()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
		}
	}
}

func outputScanJSON(cmd *cobra.Command, results []domain.Palindrome) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputScanTable(cmd *cobra.Command, results []domain.Palindrome) error {
	if len(results) == 0 {
		cmd.Println("No palindromes found.")
		return nil
	}

	cmd.Printf("Found %d palindrome(s):\n", len(results))
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s (length %d)\n", i+1, results[i].Normalized, results[i].Length)
		if results[i].Original != results[i].Normalized {
			cmd.Printf("      Found in: %s\n", results[i].Original)
		}
	}
	cmd.Println()

	return nil
}

// runScanOnce is used by other commands that need palindromes for a text
// without the scan command's flag state.
func runScanOnce(ctx context.Context, text string) ([]domain.Palindrome, error) {
	return scanService.FindPalindromes(ctx, text, domain.ScanOptions{})
}
