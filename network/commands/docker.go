/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package commands

import "fmt"

type ComposeUp struct {
	File    string
	Project string
}

func (c ComposeUp) SessionName() string {
	return "compose-up"
}

func (c ComposeUp) Args() []string {
	return []string{
		"compose",
		"-f", c.File,
		"-p", c.Project,
		"up", "-d",
	}
}

type ComposeDown struct {
	File    string
	Project string
	Volumes bool
}

func (c ComposeDown) SessionName() string {
	return "compose-down"
}

func (c ComposeDown) Args() []string {
	args := []string{
		"compose",
		"-f", c.File,
		"-p", c.Project,
		"down",
	}
	if c.Volumes {
		args = append(args, "--volumes")
	}
	return args
}

type ComposeLogs struct {
	File    string
	Project string
	Follow  bool
	Service string
}

func (c ComposeLogs) SessionName() string {
	return "compose-logs"
}

func (c ComposeLogs) Args() []string {
	args := []string{
		"compose",
		"-f", c.File,
		"-p", c.Project,
		"logs", "--no-color",
	}
	if c.Follow {
		args = append(args, "--follow")
	}
	if c.Service != "" {
		args = append(args, c.Service)
	}
	return args
}

// Ps lists the identifiers of live containers belonging to a compose
// project.
type Ps struct {
	Project string
}

func (p Ps) SessionName() string {
	return "docker-ps"
}

func (p Ps) Args() []string {
	return []string{
		"ps", "-q",
		"--filter", "label=com.docker.compose.project=" + p.Project,
	}
}

// PsNames lists name and status of live containers belonging to a compose
// project, one per line, pipe separated.
type PsNames struct {
	Project string
}

func (p PsNames) SessionName() string {
	return "docker-ps-names"
}

func (p PsNames) Args() []string {
	return []string{
		"ps",
		"--filter", "label=com.docker.compose.project=" + p.Project,
		"--format", "{{.Names}}|{{.Status}}",
	}
}

type Exec struct {
	Container string
	Env       []string
	Command   []string
}

func (e Exec) SessionName() string {
	return "docker-exec"
}

func (e Exec) Args() []string {
	args := []string{"exec"}
	for _, kv := range e.Env {
		args = append(args, "-e", kv)
	}
	args = append(args, e.Container)
	return append(args, e.Command...)
}

type CopyTo struct {
	Source    string
	Container string
	Dest      string
}

func (c CopyTo) SessionName() string {
	return "docker-cp-to"
}

func (c CopyTo) Args() []string {
	return []string{"cp", c.Source, fmt.Sprintf("%s:%s", c.Container, c.Dest)}
}

type CopyFrom struct {
	Container string
	Source    string
	Dest      string
}

func (c CopyFrom) SessionName() string {
	return "docker-cp-from"
}

func (c CopyFrom) Args() []string {
	return []string{"cp", fmt.Sprintf("%s:%s", c.Container, c.Source), c.Dest}
}

// ToolRun is a single-shot toolchain container invocation; the wrapped
// command's arguments follow the image name.
type ToolRun struct {
	Image   string
	Mounts  []string
	WorkDir string
	Tool    Command
}

func (t ToolRun) SessionName() string {
	return t.Tool.SessionName()
}

func (t ToolRun) Args() []string {
	args := []string{"run", "--rm"}
	for _, m := range t.Mounts {
		args = append(args, "-v", m)
	}
	if t.WorkDir != "" {
		args = append(args, "-w", t.WorkDir)
	}
	args = append(args, t.Image)
	return append(args, t.Tool.Args()...)
}
