// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view displays rendered plot files with an external document
// viewer.
package view

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/biogo/external"
)

var ErrMissingFile = errors.New("view: missing file argument")

// Viewer defines parameters for an external document viewer command.
type Viewer struct {
	// Usage: <viewer> file
	//
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}xdg-open{{end}}"` // xdg-open

	// File is the document to display.
	File string `buildarg:"{{.}}"` // "plot.pdf"
}

// BuildCommand returns an exec.Cmd built from the parameters in v.
func (v Viewer) BuildCommand() (*exec.Cmd, error) {
	if v.File == "" {
		return nil, ErrMissingFile
	}
	cl := external.Must(external.Build(v))
	return exec.Command(cl[0], cl[1:]...), nil
}

// Open displays the file with the platform document viewer. If the
// viewer program is not installed a message is printed and the
// lookup failure is returned annotated with the file being displayed.
func Open(path string) error {
	return Display(Viewer{Cmd: defaultViewer(), File: path})
}

// Display displays the file described by v, checking that the viewer
// program is available first.
func Display(v Viewer) error {
	cmd, err := v.BuildCommand()
	if err != nil {
		return err
	}
	name := cmd.Args[0]
	if _, err := exec.LookPath(name); err != nil {
		fmt.Fprintf(os.Stderr, "the %s program is required to display plots interactively, please install it first\n", name)
		return fmt.Errorf("view: cannot display %q: %w", v.File, err)
	}
	return cmd.Run()
}

func defaultViewer() string {
	if runtime.GOOS == "darwin" {
		return "open"
	}
	return ""
}
