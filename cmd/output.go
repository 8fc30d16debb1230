package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/jcrack/crack"
	"github.com/tutils/jcrack/lcg"
	"golang.org/x/term"
)

type palette struct {
	cyan, green, orange, red, end string
}

var ansi = palette{
	cyan:   "\033[96m",
	green:  "\033[92m",
	orange: "\033[93m",
	red:    "\033[91m",
	end:    "\033[0m",
}

// colorEnabled reports whether w is a terminal and colors were not turned off.
func colorEnabled(w io.Writer) bool {
	if viper.GetBool("no-color") {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printer renders search progress and results for humans.
type printer struct {
	w io.Writer
	c palette
}

func newPrinter(w io.Writer) *printer {
	p := &printer{w: w}
	if colorEnabled(w) {
		p.c = ansi
	}
	return p
}

func (p *printer) stage(pr crack.Progress) {
	if pr.Stage > 0 {
		p.notFound()
	}
	fmt.Fprintf(p.w, "%s[>]%s Brute forcing %s%d%s bits...\n", p.c.orange, p.c.end, p.c.orange, pr.Width, p.c.end)
}

func (p *printer) notFound() {
	fmt.Fprintf(p.w, "\t%sCouldn't find the seed.%s\n", p.c.red, p.c.end)
}

func (p *printer) found(res *crack.Result) {
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "%s[>] Found the used seed: %d%s\n", p.c.green, res.Upper, p.c.end)
	fmt.Fprintf(p.w, "%s[>]%s The reversed seed is: %s%d%s\n", p.c.green, p.c.end, p.c.green, res.Seed(), p.c.end)
	fmt.Fprintln(p.w)
}

func (p *printer) prediction(n int, v int64) {
	if n == 1 {
		fmt.Fprintf(p.w, "%s[>]%s The nextLong() will be: %s%d%s\n", p.c.green, p.c.end, p.c.green, v, p.c.end)
		return
	}
	fmt.Fprintf(p.w, "%s[>]%s nextLong() #%d will be: %s%d%s\n", p.c.green, p.c.end, n, p.c.green, v, p.c.end)
}

func (p *printer) followingSeed(s lcg.State) {
	fmt.Fprintf(p.w, "%s[>]%s The seed for the next value will be: %s%d%s\n", p.c.cyan, p.c.end, p.c.cyan, lcg.Unscramble(s), p.c.end)
}

func printUsage(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintf(w, "%v\n\n", err)
	fmt.Fprintf(w, "Usage: %s <token>\n", cmd.Root().Name())
}
