// Command formvoice-interpret runs form commands through the interpreter offline.
// Commands come from the arguments, or one per line on stdin when there are none
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"formvoice/internal/core/fields"
	"formvoice/internal/core/interpret"
	"formvoice/internal/platform/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logger.Get().Fatal().Err(err).Msg("formvoice-interpret")
	}
}

type line struct {
	Command string           `json:"command"`
	Field   string           `json:"field,omitempty"`
	Value   string           `json:"value,omitempty"`
	Trace   *interpret.Trace `json:"trace,omitempty"`
	OK      bool             `json:"recognized"`
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fl := flag.NewFlagSet("formvoice-interpret", flag.ContinueOnError)
	var (
		form     = fl.String("form", "policy", "embedded form type: "+strings.Join(fields.FormTypes(), ", "))
		dictPath = fl.String("dict", "", "load a field dictionary from a JSON or YAML file instead of -form")
		asJSON   = fl.Bool("json", false, "print one JSON object per command")
		trace    = fl.Bool("trace", false, "include the extraction trace")
	)
	if err := fl.Parse(args); err != nil {
		return err
	}

	dict, err := loadDict(*form, *dictPath)
	if err != nil {
		return err
	}
	in := interpret.New(dict)
	log := logger.Named("interpret")
	log.Debug().Str("form_type", dict.FormType()).Int("fields", dict.Len()).Msg("dictionary loaded")

	out := bufio.NewWriter(stdout)
	defer out.Flush()
	enc := json.NewEncoder(out)

	emit := func(cmd string) error {
		tr := in.Explain(cmd)
		if *asJSON {
			l := line{Command: cmd, Field: tr.Field, Value: tr.Value, OK: tr.Recognized}
			if !tr.Recognized {
				l.Field, l.Value = "", ""
			}
			if *trace {
				l.Trace = &tr
			}
			return enc.Encode(l)
		}
		if tr.Recognized {
			fmt.Fprintf(out, "%s=%s", tr.Field, tr.Value)
		} else {
			fmt.Fprint(out, "not understood")
		}
		if *trace {
			fmt.Fprintf(out, "\t[strategy=%s preposition=%q raw=%q]", tr.Strategy, tr.Preposition, tr.Raw)
		}
		_, err := fmt.Fprintln(out)
		return err
	}

	if fl.NArg() > 0 {
		return emit(strings.Join(fl.Args(), " "))
	}

	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		cmd := sc.Text()
		if strings.TrimSpace(cmd) == "" {
			continue
		}
		if err := emit(cmd); err != nil {
			return err
		}
	}
	return sc.Err()
}

func loadDict(form, path string) (*fields.Dictionary, error) {
	if path == "" {
		return fields.Load(form)
	}
	return fields.LoadFile(path)
}
