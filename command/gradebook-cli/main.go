// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/gradechain/gradebookd/configuration"
	"github.com/gradechain/gradebookd/contract"
	"github.com/gradechain/gradebookd/record"
	"github.com/gradechain/gradebookd/storage"
	"github.com/gradechain/gradebookd/vault"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	ctx     contract.Context
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "gradebook-cli"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: "*configuration file `PATH`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: "*caller identity `NAME`",
		},
		cli.StringFlag{
			Name:  "role, r",
			Value: "",
			Usage: "*caller role [admin|teacher|student]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "list",
			Usage:  "list subjects led by the calling teacher",
			Action: runListSubjects,
		},
		{
			Name:      "show",
			Usage:     "show one subject",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "subject, s",
					Value: "",
					Usage: "*subject `KEY`",
				},
			},
			Action: runShowSubject,
		},
		{
			Name:      "create",
			Usage:     "create a new subject",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*subject name `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*subject description `STRING`",
				},
				cli.StringSliceFlag{
					Name:  "student, t",
					Usage: " enrolled student `NAME`, repeatable",
				},
			},
			Action: runCreateSubject,
		},
		{
			Name:      "update",
			Usage:     "replace a subject's mutable fields",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "subject, s",
					Value: "",
					Usage: "*subject `KEY`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*subject name `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*subject description `STRING`",
				},
				cli.StringSliceFlag{
					Name:  "student, t",
					Usage: " enrolled student `NAME`, repeatable",
				},
			},
			Action: runUpdateSubject,
		},
		{
			Name:      "delete",
			Usage:     "delete a subject",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "subject, s",
					Value: "",
					Usage: "*subject `KEY`",
				},
			},
			Action: runDeleteSubject,
		},
		{
			Name:      "history",
			Usage:     "list every revision of a subject",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "subject, s",
					Value: "",
					Usage: "*subject `KEY`",
				},
			},
			Action: runSubjectHistory,
		},
		{
			Name:      "grades",
			Usage:     "list every grade issued in a subject",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "subject, s",
					Value: "",
					Usage: "*subject `KEY`",
				},
			},
			Action: runListGrades,
		},
		{
			Name:      "grade",
			Usage:     "show one grade",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "grade, g",
					Value: "",
					Usage: "*grade `KEY`",
				},
			},
			Action: runShowGrade,
		},
		{
			Name:      "issue",
			Usage:     "issue a grade to a student",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "subject, s",
					Value: "",
					Usage: "*subject `KEY`",
				},
				cli.StringFlag{
					Name:  "student, t",
					Value: "",
					Usage: "*student `NAME`",
				},
				cli.StringFlag{
					Name:  "grade, g",
					Value: "",
					Usage: "*grade value `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*grade description `STRING`",
				},
			},
			Action: runIssueGrade,
		},
		{
			Name:      "regrade",
			Usage:     "replace a grade's mutable fields",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "grade, g",
					Value: "",
					Usage: "*grade `KEY`",
				},
				cli.StringFlag{
					Name:  "value, V",
					Value: "",
					Usage: "*new grade value `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*grade description `STRING`",
				},
			},
			Action: runRegrade,
		},
		{
			Name:      "revoke",
			Usage:     "delete a grade",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "grade, g",
					Value: "",
					Usage: "*grade `KEY`",
				},
			},
			Action: runRevokeGrade,
		},
		{
			Name:      "gradehistory",
			Usage:     "list every revision of a grade",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "grade, g",
					Value: "",
					Usage: "*grade `KEY`",
				},
			},
			Action: runGradeHistory,
		},
		{
			Name:   "owned",
			Usage:  "list subjects the calling student is enrolled in",
			Action: runOwnedSubjects,
		},
		{
			Name:      "mygrades",
			Usage:     "list the calling student's grades in a subject",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "subject, s",
					Value: "",
					Usage: "*subject `KEY`",
				},
			},
			Action: runOwnedGrades,
		},
		{
			Name:      "mygrade",
			Usage:     "show one of the calling student's grades",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "grade, g",
					Value: "",
					Usage: "*grade `KEY`",
				},
			},
			Action: runOwnedGrade,
		},
		{
			Name:      "mygradehistory",
			Usage:     "list every revision of one of the calling student's grades",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "grade, g",
					Value: "",
					Usage: "*grade `KEY`",
				},
			},
			Action: runOwnedGradeHistory,
		},
		{
			Name:      "setprofile",
			Usage:     "store or replace an identity profile (admin only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "login, l",
					Value: "",
					Usage: "*profile login `NAME`",
				},
				cli.StringFlag{
					Name:  "profile-role, R",
					Value: "",
					Usage: "*stored role [admin|teacher|student]",
				},
				cli.StringSliceFlag{
					Name:  "field, f",
					Usage: " profile field `KEY=VALUE`, repeatable",
				},
			},
			Action: runSetProfile,
		},
		{
			Name:      "profile",
			Usage:     "show one identity profile",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "login, l",
					Value: "",
					Usage: "*profile login `NAME`",
				},
			},
			Action: runShowProfile,
		},
		{
			Name:   "students",
			Usage:  "list all student profiles (teacher only)",
			Action: runListStudents,
		},
		{
			Name:  "version",
			Usage: "display gradebook-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// open the ledger before any command runs
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// these commands run without the ledger
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "h" == command || "" == command {
			return nil
		}

		file := c.GlobalString("config-file")
		if "" == file {
			return fmt.Errorf("missing config-file argument")
		}

		identity := c.GlobalString("identity")
		if "" == identity {
			return fmt.Errorf("missing identity argument")
		}
		role := c.GlobalString("role")
		if err := record.ValidRole(role); nil != err {
			return fmt.Errorf("role: %q can only be admin/teacher/student", role)
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err := storage.Initialise(config.DatabasePrefix()); nil != err {
			return err
		}
		if err := contract.Initialise(); nil != err {
			return err
		}
		if err := vault.Initialise(); nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:   file,
			config: config,
			ctx: contract.Context{
				Caller: record.Caller{
					ID:   identity,
					Role: role,
				},
				// the logical clock for this invocation
				Timestamp: time.Now().UnixNano() / int64(time.Millisecond),
			},
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	// shut the ledger down in reverse order
	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); !ok {
			return nil
		}
		_ = vault.Finalise()
		_ = contract.Finalise()
		storage.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
