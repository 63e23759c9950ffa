// Command consolidate runs the consolidation engine offline over
// pre-extracted line-item JSON files, without any LLM or network calls.
//
// Usage:
//
//	consolidate [-taxonomy config/taxonomy.yaml] [-format xlsx|markdown] [-out report.xlsx] items1.json items2.json ...
package main

import (
	"flag"
	"fmt"
	"os"

	"statement_consolidator/pkg/core/consolidate"
	"statement_consolidator/pkg/core/extract"
	"statement_consolidator/pkg/core/report"
	"statement_consolidator/pkg/core/taxonomy"
	"statement_consolidator/pkg/models"
)

func main() {
	taxPath := flag.String("taxonomy", "", "optional taxonomy override YAML")
	format := flag.String("format", "xlsx", "output format: xlsx or markdown")
	out := flag.String("out", "consolidated_financials.xlsx", "output path for xlsx format")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: consolidate [flags] <line-items.json> ...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	tax := taxonomy.Default()
	if *taxPath != "" {
		loaded, err := taxonomy.Load(*taxPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		tax = loaded
	}

	var items []models.RawLineItem
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		decoded, err := extract.DecodeLineItemFile(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("[CONSOLIDATE] %s: %d line items\n", path, len(decoded))
		items = append(items, decoded...)
	}
	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, "error: no line items found in input files")
		os.Exit(1)
	}

	engine := consolidate.NewEngine(tax.Resolver, tax.Registry)
	ledger := engine.Consolidate(items)
	consolidate.ResolveExclusivity(ledger, tax.Pairs)
	rep := report.Project(ledger, tax.Registry)
	fmt.Printf("[CONSOLIDATE] %d rows across years %v\n", len(rep.Rows), rep.Years)

	switch *format {
	case "markdown":
		fmt.Print(report.WriteMarkdown(rep))

	case "xlsx":
		data, err := report.ExcelBytes(rep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[CONSOLIDATE] Wrote %s\n", *out)

	default:
		fmt.Fprintf(os.Stderr, "error: unknown format %q\n", *format)
		os.Exit(2)
	}
}
