package scaffold

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alexanderramin/taskforge/internal/config"
	"gopkg.in/yaml.v3"
)

// renderConfig serializes the configuration with two-space indentation and
// block-style sequences, matching how users are expected to edit the file.
func renderConfig(cfg config.Config) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const indexTemplate = `# Task Index - %[1]s

**Last Updated:** %[2]s
**Project:** %[1]s
**Complexity Unit:** %[3]s

## Overview

This file tracks all tasks for the %[1]s project. Tasks are organized into backlog, active, and completed categories.

## Active Tasks

| ID | Title | Status | Priority | Complexity | Module | Assignee |
|----|-------|--------|----------|------------|--------|----------|
| - | No active tasks | - | - | - | - | - |

**Total Active:** 0 tasks, 0 %[3]s

## Backlog

| ID | Title | Priority | Complexity | Module | Notes |
|----|-------|----------|------------|--------|-------|
| - | No backlog tasks | - | - | - | - |

**Total Backlog:** 0 tasks, 0 %[3]s

## Completed

| ID | Title | Completed | Complexity | Module |
|----|-------|-----------|------------|--------|
| - | No completed tasks | - | - | - |

**Total Completed:** 0 tasks, 0 %[3]s

---

## Statistics

- **Total tasks:** 0
- **Completion rate:** 0%%
- **Average complexity:** N/A

## Recent Activity

- %[2]s: Project initialized
`

func renderIndex(cfg config.Config, date string) string {
	return fmt.Sprintf(indexTemplate, cfg.ProjectName, date, cfg.ComplexityUnit)
}

const exampleTaskTemplate = `## Task: [Setup Project Task Management]

**ID:** TASK-000
**Priority:** P1-High
**Complexity:** 1 %[1]s
**Module:** project-setup
**Status:** DONE
**Created:** %[2]s

### Context
Initialize task management system for %[3]s project.

### Acceptance Criteria
- [x] Task directory structure created
- [x] Configuration file created (.task-config.yaml)
- [x] Task index initialized (INDEX.md)
- [x] Example task created
- [x] Templates customized for project

### Dependencies
None (foundation task)

### Test Coverage
- Manual verification of directory structure
- Configuration file validation

### Definition of Done
- [x] Directory structure exists
- [x] All template files generated
- [x] Team can create new tasks using templates
- [x] Configuration matches project needs

### Notes
This is the foundation task for the project's task management system.
Created automatically during workspace initialization.
`

func renderExampleTask(cfg config.Config, date string) string {
	return fmt.Sprintf(exampleTaskTemplate, cfg.ComplexityUnit, date, cfg.ProjectName)
}

const readmeTemplate = `# Task Management - %[1]s

This directory contains all task specifications for the %[1]s project.

## Directory Structure

` + "```" + `
tasks/
├── INDEX.md           # Task summary and roadmap
├── backlog/           # Future work, not yet started
├── active/            # Currently in progress
├── completed/         # Finished tasks (archive)
└── README.md          # This file
` + "```" + `

## Task Naming Convention

Tasks are named: ` + "`TASK-XXX-brief-description.md`" + `

Where:
- ` + "`XXX`" + ` is a sequential number (001, 002, 003, ...)
- ` + "`brief-description`" + ` is a short slug describing the task

## Creating New Tasks

1. Copy an appropriate task template (feature, bug, refactoring, etc.)
2. Fill in all required fields
3. Save to ` + "`tasks/backlog/`" + ` or ` + "`tasks/active/`" + `
4. Update ` + "`INDEX.md`" + ` with new task entry

## Task Status Flow

` + "```" + `
TODO → IN_PROGRESS → REVIEW → DONE
          ↓
       BLOCKED (if issues arise)
` + "```" + `

## Configuration

Task management configured in ` + "`../.task-config.yaml`" + `:
- Complexity unit: %[2]s
- Priority levels: %[3]s
- Statuses: %[4]s
`

func renderReadme(cfg config.Config) string {
	return fmt.Sprintf(readmeTemplate,
		cfg.ProjectName,
		cfg.ComplexityUnit,
		strings.Join(cfg.PriorityLevels, ", "),
		strings.Join(cfg.Statuses, ", "),
	)
}
