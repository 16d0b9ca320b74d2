// Command localdb is a small interactive shell over a localdb document
// file. It reads one statement per line from stdin: SELECTs run
// immediately and print their rows, everything else is registered and
// executed as a single-statement batch.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"localdb"
)

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "localdb: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	dbPath := flag.String("db", "local.db", "Path to the database document file")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("invalid -log-level %q: %w", *logLevel, err)
	}
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:   level,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)

	db, err := localdb.Create(*dbPath)
	if err != nil {
		return err
	}
	logger.Info("database open", "path", db.Path())

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "SELECT") {
			res, err := db.Query(line)
			if err != nil {
				logger.Error("query failed", "err", err)
				continue
			}
			printResult(res)
			continue
		}

		code, err := db.AddLines([]string{line})
		if err != nil {
			logger.Error("parse failed", "err", err)
			continue
		}
		if err := db.Exec(code); err != nil {
			logger.Error("exec failed", "err", err, "code", code)
			continue
		}
		logger.Debug("statement applied", "code", code)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

// printResult writes a SELECT's rows as a simple pipe-separated table.
func printResult(res *localdb.Result) {
	names := make([]string, len(res.Columns))
	for i, c := range res.Columns {
		names[i] = c.Name
	}
	fmt.Println(strings.Join(names, " | "))

	for _, row := range res.Rows {
		parts := make([]string, len(row))
		for i, v := range row {
			parts[i] = v.String()
		}
		fmt.Println(strings.Join(parts, " | "))
	}
	fmt.Printf("(%d rows)\n", len(res.Rows))
}
