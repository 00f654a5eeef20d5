package main

import (
	"fmt"
	"os"

	"github.com/SnacktimePro/skello/internal/config"
	"github.com/SnacktimePro/skello/internal/envcheck"
	"github.com/SnacktimePro/skello/internal/license"
	"github.com/SnacktimePro/skello/internal/model"
	"github.com/SnacktimePro/skello/internal/plan"
	"github.com/SnacktimePro/skello/internal/report"
	"github.com/SnacktimePro/skello/internal/scaffold"
	"github.com/SnacktimePro/skello/internal/snapshot"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "create":
		runCreate(os.Args[2:])
	case "licenses":
		runLicenses(os.Args[2:])
	case "config":
		runConfig(os.Args[2:])
	case "version":
		fmt.Printf("skello %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runCreate(args []string) {
	path := "."
	var name string
	var tokens []string
	var dryRun, jsonOutput bool

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-p", "--path":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--path requires a value")
				os.Exit(1)
			}
			i++
			path = args[i]
		case "-n", "--name":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--name requires a value")
				os.Exit(1)
			}
			i++
			name = args[i]
		case "-c", "--create":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--create requires a value")
				os.Exit(1)
			}
			i++
			tokens = append(tokens, args[i])
		case "--dry-run":
			dryRun = true
		case "--json":
			jsonOutput = true
		default:
			fmt.Fprintf(os.Stderr, "unknown flag: %s\n", args[i])
			fmt.Fprintln(os.Stderr, "usage: skello create [-p <dir>] [-n <name>] [-c <token>]... [--dry-run] [--json]")
			os.Exit(1)
		}
	}

	check := envcheck.Validate(path)
	if !check.OK() {
		fmt.Fprintln(os.Stderr, check.Summary())
		os.Exit(1)
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	snap, err := snapshot.Take(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create: %v\n", err)
		os.Exit(1)
	}

	requests, warnings := model.ParseTokens(tokens)
	p := plan.Build(snap, requests, cfg.Defaults, plan.Options{Name: name})

	if dryRun {
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		var creates []string
		for _, art := range p.Artifacts() {
			creates = append(creates, art.Name)
		}
		report.PrintDryRun(os.Stdout, creates, p.Skips, p.Notes)
		return
	}

	rep := &report.Report{Project: p.ProjectName, Target: p.Dir}
	for _, w := range warnings {
		rep.AddWarning(w)
	}

	scaffold.Run(p, rep)

	if jsonOutput {
		if err := rep.PrintJSON(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "create: %v\n", err)
			os.Exit(1)
		}
	} else {
		rep.Print(os.Stdout)
	}

	if rep.HasFailures() {
		os.Exit(1)
	}
}

func runLicenses(_ []string) {
	fmt.Println("Supported licenses:")
	for _, info := range license.Supported() {
		fmt.Printf("  %-10s %s\n", info.Key, info.Classifier)
	}
}

func runConfig(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: skello config <init> [options]")
		os.Exit(1)
	}
	switch args[0] {
	case "init":
		runConfigInit(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown config subcommand: %s\n", args[0])
		fmt.Fprintln(os.Stderr, "usage: skello config init [--author <name>] [--license <key>]")
		os.Exit(1)
	}
}

func runConfigInit(args []string) {
	var author, licenseKey string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--author":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--author requires a value")
				os.Exit(1)
			}
			i++
			author = args[i]
		case "--license":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--license requires a value")
				os.Exit(1)
			}
			i++
			licenseKey = args[i]
		default:
			fmt.Fprintf(os.Stderr, "unknown flag: %s\n", args[i])
			fmt.Fprintln(os.Stderr, "usage: skello config init [--author <name>] [--license <key>]")
			os.Exit(1)
		}
	}

	if licenseKey != "" {
		if _, ok := license.Lookup(licenseKey); !ok {
			fmt.Fprintf(os.Stderr, "unknown license %q, run 'skello licenses' for the supported list\n", licenseKey)
			os.Exit(1)
		}
	}

	path, err := config.Init(config.Config{
		Defaults: config.Defaults{Author: author, License: licenseKey},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "config init: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `skello %s - Python project scaffolding

Usage: skello <command> [options]

Commands:
  create [options]   Scaffold project files into a directory
  licenses           List supported license types
  config init        Write a starter user config file
  version            Show version
  help               Show this help

Create options:
  -p, --path <dir>     Target directory (default: current directory)
  -n, --name <name>    Project name (default: target directory name)
  -c, --create <token> File or structure to create, repeatable
  --dry-run            List operations without writing anything
  --json               Print the run summary as JSON

Tokens take the form kind[:option[:option...]]:
  l, lic, license      LICENSE (options: type, author, filename)
  r, req, requirements requirements.txt (options: filename)
  p, toml, pyproject   pyproject.toml
  g, git, gitignore    .gitignore
  md, read, readme     README.md
  ch, log, changelog   CHANGELOG.md
  m, main              src/<package>/main.py structure
  f, full              src + tests structure
  *, all               full structure plus every file

Examples:
  skello create -c all
  skello create -p ./app -c l:apache:Jane -c p -c md
  skello create -c full -c 'r:dev-requirements.txt' --dry-run

`, version)
}
