// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/gradechain/gradebookd/contract"
)

func runOwnedSubjects(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	subjects, err := contract.StudentSubjects(m.ctx)
	if nil != err {
		return err
	}
	return printJson(m.w, subjects)
}

func runOwnedGrades(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	subjectID, err := checkSubjectKey(c)
	if nil != err {
		return err
	}

	grades, err := contract.StudentGrades(m.ctx, subjectID)
	if nil != err {
		return err
	}
	return printJson(m.w, grades)
}

func runOwnedGrade(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	gradeID, err := checkGradeKey(c)
	if nil != err {
		return err
	}

	grade, err := contract.StudentGrade(m.ctx, gradeID)
	if nil != err {
		return err
	}
	return printJson(m.w, grade)
}

func runOwnedGradeHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	gradeID, err := checkGradeKey(c)
	if nil != err {
		return err
	}

	history, err := contract.StudentGradeHistory(m.ctx, gradeID)
	if nil != err {
		return err
	}
	return printJson(m.w, history)
}
