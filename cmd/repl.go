// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

const replBanner = "vecval repl - :help for commands, :quit to exit"

func runRepl(s *session, historyPath string, out, errOut io.Writer) error {
	fmt.Fprintln(out, replBanner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			} else {
				s.log.Warningf("cannot save history to %s: %s", historyPath, err)
			}
		}()
	}

	for {
		line, err := ln.Prompt(s.kind.String() + "> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		res, quit, err := s.exec(line)
		if quit {
			return nil
		}
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
			continue
		}
		if res != "" {
			fmt.Fprintln(out, res)
		}
	}
}
