package main

import (
	"fmt"

	"github.com/tanawatp/newslingo"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	result, err := deps.Pipeline.Run(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newslingo.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "== Article ==")
	if result.CleanFallback {
		fmt.Fprintln(deps.Stdout, "(cleaning failed; showing unfiltered text)")
	}
	fmt.Fprintln(deps.Stdout, result.CleanText)
	fmt.Fprintln(deps.Stdout)

	fmt.Fprintln(deps.Stdout, "== Thai Summary ==")
	if result.SummaryErr != nil {
		fmt.Fprintf(deps.Stderr, "summary failed: %s\n", newslingo.ErrorMessage(result.SummaryErr))
	} else {
		fmt.Fprintln(deps.Stdout, result.Summary)
	}
	fmt.Fprintln(deps.Stdout)

	fmt.Fprintln(deps.Stdout, "== Vocabulary ==")
	if result.VocabErr != nil {
		fmt.Fprintf(deps.Stderr, "vocabulary failed: %s\n", newslingo.ErrorMessage(result.VocabErr))
		if result.VocabRaw != "" {
			fmt.Fprintf(deps.Stderr, "raw response:\n%s\n", result.VocabRaw)
		}
	} else {
		RenderVocabTable(deps.Stdout, result.Vocabulary)
	}

	return nil
}
