// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/gradechain/gradebookd/vault"
)

func runSetProfile(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	login := c.String("login")
	if "" == login {
		return fmt.Errorf("missing login argument")
	}
	role := c.String("profile-role")
	if "" == role {
		return fmt.Errorf("missing profile-role argument")
	}

	profile := map[string]string{}
	for _, field := range c.StringSlice("field") {
		kv := strings.SplitN(field, "=", 2)
		if 2 != len(kv) || "" == kv[0] {
			return fmt.Errorf("field: %q is not KEY=VALUE", field)
		}
		profile[kv[0]] = kv[1]
	}

	if m.verbose {
		fmt.Fprintf(m.e, "login: %s\n", login)
		fmt.Fprintf(m.e, "role: %s\n", role)
	}

	identity, err := vault.SetProfile(m.ctx.Caller, login, role, profile)
	if nil != err {
		return err
	}
	return printJson(m.w, identity)
}

func runShowProfile(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	login := c.String("login")
	if "" == login {
		return fmt.Errorf("missing login argument")
	}

	identity, err := vault.GetProfile(m.ctx.Caller, login)
	if nil != err {
		return err
	}
	return printJson(m.w, identity)
}

func runListStudents(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	students, err := vault.ListStudents(m.ctx.Caller)
	if nil != err {
		return err
	}
	return printJson(m.w, students)
}
