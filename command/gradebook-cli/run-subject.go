// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/gradechain/gradebookd/contract"
)

func runListSubjects(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	subjects, err := contract.ListSubjects(m.ctx)
	if nil != err {
		return err
	}
	return printJson(m.w, subjects)
}

func runShowSubject(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	subjectID, err := checkSubjectKey(c)
	if nil != err {
		return err
	}

	subject, err := contract.GetSubject(m.ctx, subjectID)
	if nil != err {
		return err
	}
	return printJson(m.w, subject)
}

func runCreateSubject(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		return fmt.Errorf("missing name argument")
	}
	description := c.String("description")
	if "" == description {
		return fmt.Errorf("missing description argument")
	}
	students := c.StringSlice("student")

	if m.verbose {
		fmt.Fprintf(m.e, "name: %s\n", name)
		fmt.Fprintf(m.e, "students: %v\n", students)
	}

	subject, err := contract.CreateSubject(m.ctx, name, description, students)
	if nil != err {
		return err
	}
	return printJson(m.w, subject)
}

func runUpdateSubject(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	subjectID, err := checkSubjectKey(c)
	if nil != err {
		return err
	}
	name := c.String("name")
	if "" == name {
		return fmt.Errorf("missing name argument")
	}
	description := c.String("description")
	if "" == description {
		return fmt.Errorf("missing description argument")
	}
	students := c.StringSlice("student")

	subject, err := contract.UpdateSubject(m.ctx, subjectID, name, description, students)
	if nil != err {
		return err
	}
	return printJson(m.w, subject)
}

func runDeleteSubject(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	subjectID, err := checkSubjectKey(c)
	if nil != err {
		return err
	}

	err = contract.DeleteSubject(m.ctx, subjectID)
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "deleted: %s\n", subjectID)
	return nil
}

func runSubjectHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	subjectID, err := checkSubjectKey(c)
	if nil != err {
		return err
	}

	history, err := contract.GetSubjectHistory(m.ctx, subjectID)
	if nil != err {
		return err
	}
	return printJson(m.w, history)
}

func checkSubjectKey(c *cli.Context) (string, error) {
	subjectID := c.String("subject")
	if "" == subjectID {
		return "", fmt.Errorf("missing subject argument")
	}
	return subjectID, nil
}
