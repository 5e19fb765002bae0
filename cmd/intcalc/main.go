package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/intcalc/intcalc"
)

const banner = `intcalc: arbitrary-precision integer calculator
Enter an expression, an assignment, or /help for commands.`

const help = `Commands:
/vars	print all variables
/del	delete variables (space separated)
/clear	delete all variables
/con	print the postfix form of an expression
/help	print this help
/exit	exit

Operations: (   )   +   -   *   /
Division truncates. Variable names are letters only.`

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		inname   string
		given    []string
		noBanner bool
	)
	cmd := &cobra.Command{
		Use:           "intcalc",
		Short:         "interactive arbitrary-precision integer calculator",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := intcalc.NewEnv()
			for _, d := range given {
				if err := intcalc.ProcessAssignment(env, d); err != nil {
					return fmt.Errorf("setting %q: %w", d, err)
				}
			}
			if inname != "" {
				if err := runScript(env, inname); err != nil {
					return err
				}
			}
			if !noBanner {
				fmt.Println(banner)
			}
			repl(env)
			return nil
		},
	}
	cmd.Flags().StringVar(&inname, "in", "", "script evaluated line by line before the interactive session")
	cmd.Flags().StringArrayVar(&given, "given", nil, `"name=value" variable definition (any number of times)`)
	cmd.Flags().BoolVar(&noBanner, "no-banner", false, "don't print the welcome banner")
	return cmd
}

var errText = color.New(color.FgRed)

func repl(env *intcalc.Env) {
	prompt := liner.NewLiner()
	defer prompt.Close()
	prompt.SetCtrlCAborts(true)
	for {
		in, err := prompt.Prompt("> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Println("Bye!")
				return
			}
			fmt.Fprintln(os.Stderr, err)
			return
		}
		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		prompt.AppendHistory(in)
		if strings.HasPrefix(in, "/") {
			if quit := command(env, in); quit {
				return
			}
			continue
		}
		evaluate(env, in)
	}
}

// command handles one /-prefixed line. Unrecognized commands are delegated
// to the evaluator, which reports them. The result is whether to exit.
func command(env *intcalc.Env, in string) bool {
	name, rest, _ := strings.Cut(in[1:], " ")
	switch name {
	case "exit":
		fmt.Println("Bye!")
		return true
	case "help":
		fmt.Println(help)
	case "vars":
		for _, n := range env.Names() {
			v, err := env.Lookup(n)
			if err != nil {
				continue
			}
			fmt.Printf("%s = %s\n", n, v)
		}
	case "clear":
		env.Clear()
	case "del":
		for _, n := range strings.Fields(rest) {
			env.Delete(n)
		}
	case "con":
		x, err := intcalc.ToPostfix(env, rest)
		if err != nil {
			errText.Println(intcalc.Message(err))
			break
		}
		fmt.Println(x)
	default:
		_, err := intcalc.EvaluateLine(env, in)
		errText.Println(intcalc.Message(err))
	}
	return false
}

// evaluate runs one non-command line and prints its result or a one-line
// diagnostic. No error ends the session.
func evaluate(env *intcalc.Env, in string) {
	if intcalc.IsAssignment(in) {
		if err := intcalc.ProcessAssignment(env, in); err != nil {
			errText.Println(intcalc.Message(err))
		}
		return
	}
	r, err := intcalc.EvaluateLine(env, in)
	if err != nil {
		errText.Println(intcalc.Message(err))
		return
	}
	fmt.Println(r)
}

// runScript evaluates a file line by line with the same rules as the
// interactive session, except that command lines are not accepted.
func runScript(env *intcalc.Env, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		in := strings.TrimSpace(scan.Text())
		if in == "" || strings.HasPrefix(in, "#") {
			continue
		}
		evaluate(env, in)
	}
	return scan.Err()
}
