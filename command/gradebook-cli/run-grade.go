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

func runListGrades(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	subjectID, err := checkSubjectKey(c)
	if nil != err {
		return err
	}

	grades, err := contract.ListSubjectGrades(m.ctx, subjectID)
	if nil != err {
		return err
	}
	return printJson(m.w, grades)
}

func runShowGrade(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	gradeID, err := checkGradeKey(c)
	if nil != err {
		return err
	}

	grade, err := contract.GetGrade(m.ctx, gradeID)
	if nil != err {
		return err
	}
	return printJson(m.w, grade)
}

func runIssueGrade(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	subjectID, err := checkSubjectKey(c)
	if nil != err {
		return err
	}
	student := c.String("student")
	if "" == student {
		return fmt.Errorf("missing student argument")
	}
	gradeValue := c.String("grade")
	if "" == gradeValue {
		return fmt.Errorf("missing grade argument")
	}
	description := c.String("description")
	if "" == description {
		return fmt.Errorf("missing description argument")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "subject: %s\n", subjectID)
		fmt.Fprintf(m.e, "student: %s\n", student)
		fmt.Fprintf(m.e, "grade: %s\n", gradeValue)
	}

	grade, err := contract.CreateGrade(m.ctx, subjectID, student, gradeValue, description)
	if nil != err {
		return err
	}
	return printJson(m.w, grade)
}

func runRegrade(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	gradeID, err := checkGradeKey(c)
	if nil != err {
		return err
	}
	gradeValue := c.String("value")
	if "" == gradeValue {
		return fmt.Errorf("missing value argument")
	}
	description := c.String("description")
	if "" == description {
		return fmt.Errorf("missing description argument")
	}

	grade, err := contract.UpdateGrade(m.ctx, gradeID, gradeValue, description)
	if nil != err {
		return err
	}
	return printJson(m.w, grade)
}

func runRevokeGrade(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	gradeID, err := checkGradeKey(c)
	if nil != err {
		return err
	}

	err = contract.DeleteGrade(m.ctx, gradeID)
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "deleted: %s\n", gradeID)
	return nil
}

func runGradeHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	gradeID, err := checkGradeKey(c)
	if nil != err {
		return err
	}

	history, err := contract.GetGradeHistory(m.ctx, gradeID)
	if nil != err {
		return err
	}
	return printJson(m.w, history)
}

func checkGradeKey(c *cli.Context) (string, error) {
	gradeID := c.String("grade")
	if "" == gradeID {
		return "", fmt.Errorf("missing grade argument")
	}
	return gradeID, nil
}
