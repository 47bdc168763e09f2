package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/zarni99/ubuntu-audit/share/benchmark"
	"github.com/zarni99/ubuntu-audit/share/host"
	"github.com/zarni99/ubuntu-audit/share/probe"
	"github.com/zarni99/ubuntu-audit/share/report"
	"github.com/zarni99/ubuntu-audit/share/utils"
)

func main() {
	app := cli.NewApp()
	app.Name = "auditor"
	app.Usage = "Audit an Ubuntu 22.04 LTS host against the CIS benchmark"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Value: false,
			Usage: "Enable debug log",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Value: false,
			Usage: "Disable colored output",
		},
		&cli.DurationFlag{
			Name:  "probe-timeout",
			Value: 5 * time.Second,
			Usage: "Deadline for each probed system command",
		},
		&cli.StringFlag{
			Name:    "remediation-dir",
			Value:   "",
			Usage:   "Directory of YAML files overriding remediation text per check ID",
			EnvVars: []string{"REMEDIATION_DIR"},
		},
	}

	targetFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "check",
			Value: "",
			Usage: "Run a single check by ID, e.g. 1.1.2.1.4",
		},
		&cli.StringFlag{
			Name:  "section",
			Value: "",
			Usage: "Run one section by ID or name, e.g. 1.1.1 or kernel_modules",
		},
		&cli.StringSliceFlag{
			Name:  "modules",
			Usage: "Restrict the kernel-module checks to the named modules",
		},
	}

	app.Before = func(c *cli.Context) error {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&utils.LogFormatter{Module: "AUD"})
		if c.Bool("debug") {
			log.SetLevel(log.DebugLevel)
		}
		if c.Bool("no-color") {
			color.NoColor = true
		}
		return nil
	}

	app.Commands = cli.Commands{
		&cli.Command{
			Name:      "audit",
			Usage:     "Run the selected checks and report pass/fail per item",
			ArgsUsage: "[target]",
			Flags: append([]cli.Flag{
				&cli.BoolFlag{
					Name:  "json",
					Value: false,
					Usage: "Emit the report as JSON",
				},
				&cli.BoolFlag{
					Name:  "technical",
					Value: false,
					Usage: "Show raw probe output instead of the plain-language explanations",
				},
			}, targetFlags...),
			Action: runAudit,
		},
		&cli.Command{
			Name:      "remediate",
			Usage:     "Apply automatic fixes for the selected checks; manual items print their procedure",
			ArgsUsage: "[target]",
			Flags: append([]cli.Flag{
				&cli.BoolFlag{
					Name:  "json",
					Value: false,
					Usage: "Emit the report as JSON",
				},
			}, targetFlags...),
			Action: runRemediate,
		},
		&cli.Command{
			Name:   "list",
			Usage:  "List sections and check IDs with their descriptions",
			Action: runList,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("Failed to run the command")
	}
}

// buildRegistry loads the registry plus any site remediation overrides.
func buildRegistry(c *cli.Context) *benchmark.Registry {
	reg := benchmark.Default()
	if dir := c.String("remediation-dir"); dir != "" {
		reg.ApplyRemediationOverrides(benchmark.LoadRemediationOverrides(dir))
	}
	return reg
}

// selectEntries resolves the positional target and the --check/--section
// aliases, then applies the --modules restriction.
func selectEntries(c *cli.Context, reg *benchmark.Registry) ([]benchmark.Entry, error) {
	target := c.Args().First()
	if t := c.String("section"); t != "" {
		target = t
	}
	if t := c.String("check"); t != "" {
		target = t
	}
	if target == "" {
		target = benchmark.TargetAll
	}

	entries, err := reg.Filter(target)
	if err != nil {
		if errors.Is(err, benchmark.ErrTargetNotFound) {
			fmt.Fprintf(os.Stderr, "Unknown target %q. Valid sections:\n", target)
			for _, t := range reg.Targets() {
				fmt.Fprintf(os.Stderr, "  %s\n", t)
			}
			fmt.Fprintln(os.Stderr, "A check ID, a numbering prefix such as 1.1, or \"all\" also work.")
		}
		return nil, err
	}

	if mods := c.StringSlice("modules"); len(mods) > 0 {
		entries = benchmark.RestrictModules(entries, mods)
		if len(entries) == 0 {
			return nil, fmt.Errorf("no kernel-module check covers: %s", strings.Join(mods, ", "))
		}
	}
	return entries, nil
}

func warnUnsupportedPlatform() {
	info := host.Detect()
	if !info.Supported() {
		name := info.PrettyName
		if name == "" {
			name = "unknown platform"
		}
		log.WithFields(log.Fields{"platform": name}).Warn("Checks are written for Ubuntu 22.04 LTS; results may not apply here")
	}
}

func runAudit(c *cli.Context) error {
	reg := buildRegistry(c)
	entries, err := selectEntries(c, reg)
	if err != nil {
		return cli.Exit("", 1)
	}

	warnUnsupportedPlatform()

	runner := benchmark.NewRunner(reg, probe.NewLocal(c.Duration("probe-timeout")))
	rep := runner.Audit(entries)

	if c.Bool("json") {
		if err := report.WriteAuditJSON(os.Stdout, rep); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	} else {
		w := report.NewWriter(os.Stdout, reg)
		w.Technical = c.Bool("technical")
		w.WriteAudit(rep)
	}

	if !rep.OverallPassed {
		return cli.Exit("", 1)
	}
	return nil
}

func runRemediate(c *cli.Context) error {
	reg := buildRegistry(c)
	entries, err := selectEntries(c, reg)
	if err != nil {
		return cli.Exit("", 1)
	}

	warnUnsupportedPlatform()

	rem := benchmark.NewRemediator(reg, probe.NewLocal(c.Duration("probe-timeout")))
	rep := rem.Remediate(entries)

	if c.Bool("json") {
		if err := report.WriteRemediationJSON(os.Stdout, rep); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	} else {
		report.NewWriter(os.Stdout, reg).WriteRemediation(rep)
	}

	if !rep.AllFixed() {
		return cli.Exit("", 1)
	}
	return nil
}

func runList(c *cli.Context) error {
	reg := buildRegistry(c)
	for _, s := range reg.Sections {
		fmt.Printf("%s %s (%s)\n", s.ID, s.Title, s.Name)
		for _, e := range s.Entries {
			auto := " "
			if e.Fix != nil {
				auto = "*"
			}
			fmt.Printf("  %s %-9s %s\n", auto, e.ID, e.Description)
		}
	}
	fmt.Println("\n* = automatic remediation available")
	return nil
}
