package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"traductor/internal/domain"
	"traductor/internal/mixup"
	"traductor/internal/session"

	"github.com/fatih/color"
	"github.com/itchyny/json2yaml"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	cmdHint    = ":hint"
	cmdForgive = ":forgive"
	cmdQuit    = ":quit"
)

var (
	okColor     = color.New(color.FgGreen)
	failColor   = color.New(color.FgHiRed)
	hintColor   = color.New(color.FgYellow)
	noteColor   = color.New(color.FgCyan)
	activeColor = color.New(color.FgHiCyan, color.Bold)
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "run <lesson-id>",
		Short: "Translate a lesson section by section",
		Long: "Translate a lesson section by section. Type " + cmdHint + " for answer choices, " +
			cmdForgive + " to count your last wrong answer as correct and " + cmdQuit + " to stop early.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.catalog()
			if err != nil {
				return err
			}
			logger, err := opts.logger()
			if err != nil {
				return err
			}
			defer logger.Sync()
			store, err := opts.store()
			if err != nil {
				return err
			}

			sess := session.New(cat, mixup.NewTracker(store, logger), logger)
			if err := sess.Start(args[0]); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			drill(sess, cmd.InOrStdin(), out)
			return writeSummary(out, sess.Summary(), sess.Describe, asYAML)
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the lesson summary as YAML")
	return cmd
}

// drill reads answers from in until the lesson completes, the learner quits
// or input runs out
func drill(sess *session.Session, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	lastWrong := ""

	if p, ok := sess.Prompt(); ok {
		printPrompt(out, p)
	}

	for !sess.IsLessonComplete() && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case cmdQuit:
			sess.MarkComplete()
			continue
		case cmdHint:
			hintColor.Fprintf(out, "One of these: %s\n", strings.Join(sess.Hint(), " · "))
			continue
		case cmdForgive:
			if lastWrong == "" {
				hintColor.Fprintln(out, "Nothing to forgive.")
				continue
			}
			if _, err := sess.Forgive(lastWrong); err != nil {
				failColor.Fprintf(out, "Could not forgive: %v\n", err)
			} else {
				okColor.Fprintln(out, "Counted as correct. Type the answer to move on.")
			}
			lastWrong = ""
			continue
		}

		res := sess.Submit(line)
		if !res.Judged() {
			break
		}
		printResult(out, res)

		if !res.Correct {
			lastWrong = res.Submission.ID
			continue
		}
		lastWrong = ""
		if res.LessonComplete {
			break
		}
		if p, ok := sess.Prompt(); ok {
			printPrompt(out, p)
		}
	}

	// input ended mid-lesson
	if !sess.IsLessonComplete() {
		sess.MarkComplete()
	}
}

func printPrompt(out io.Writer, p session.Prompt) {
	fmt.Fprintf(out, "\n%s · sentence %d/%d\n", p.Title, p.Sentence+1, p.TotalSentences)
	fmt.Fprintf(out, "%s\n", p.English)
	for _, s := range p.Sections {
		switch {
		case s.Translated:
			okColor.Fprintf(out, "  %s → %s\n", s.English, s.Answer)
		case s.Index == p.Active:
			activeColor.Fprintf(out, "> %s\n", s.English)
		default:
			fmt.Fprintf(out, "  %s\n", s.English)
		}
	}
}

func printResult(out io.Writer, res session.Result) {
	if res.Correct {
		okColor.Fprintln(out, "✓ correct")
		return
	}
	failColor.Fprintf(out, "✗ expected %s\n", strings.Join(res.Expected, " / "))
	for _, fb := range res.Feedback {
		hintColor.Fprintf(out, "  %s\n", fb.Message())
	}
	for _, n := range res.Notes {
		noteColor.Fprintf(out, "  note: %s\n", n.Text)
	}
}

// writeSummary prints the summary as indented JSON stamped with its accuracy
// and the text behind each error category, or as YAML
func writeSummary(out io.Writer, sum domain.LessonSummary, describe func(string) string, asYAML bool) error {
	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	data, err = sjson.SetBytes(data, "accuracy", sum.Accuracy())
	if err != nil {
		return fmt.Errorf("failed to stamp summary: %w", err)
	}
	keys := maps.Keys(sum.ErrorCategories)
	slices.Sort(keys)
	for _, key := range keys {
		text := describe(key)
		if text == "" {
			continue
		}
		// keys contain dots, which sjson would read as a nested path
		data, err = sjson.SetBytes(data, "category_notes."+escapePath(key), text)
		if err != nil {
			return fmt.Errorf("failed to stamp summary: %w", err)
		}
	}

	fmt.Fprintln(out)
	if asYAML {
		return json2yaml.Convert(out, bytes.NewReader(data))
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

var pathEscaper = strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)

// escapePath makes a key usable as one sjson path segment
func escapePath(key string) string {
	return pathEscaper.Replace(key)
}
