package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	stdinReader = bufio.NewReader(os.Stdin)
	accent      = color.New(color.FgCyan, color.Bold)
	success     = color.New(color.FgGreen, color.Bold)
	warn        = color.New(color.FgYellow, color.Bold)
	danger      = color.New(color.FgRed, color.Bold)
	neutral     = color.New(color.FgHiWhite)
)

func printWarn(msg string) {
	warn.Println(msg)
}

// promptOption reads a 1-based option number in [1, n].
func promptOption(label string, n int) (int, error) {
	for {
		fmt.Printf("%s [1-%d]: ", label, n)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return 0, err
		}
		v, convErr := strconv.Atoi(strings.TrimSpace(text))
		if convErr != nil || v < 1 || v > n {
			printWarn(fmt.Sprintf("Pick a number between 1 and %d.", n))
			continue
		}
		return v, nil
	}
}

// promptEnter waits for the player to press enter.
func promptEnter(label string) error {
	fmt.Printf("%s ", label)
	_, err := stdinReader.ReadString('\n')
	return err
}

func dollars(v float64) string {
	neg := v < 0
	s := strconv.FormatFloat(v, 'f', 0, 64)
	s = strings.TrimPrefix(s, "-")
	n := len(s)
	if n > 3 {
		var b strings.Builder
		for i := 0; i < n; i++ {
			if i > 0 && (n-i)%3 == 0 {
				b.WriteByte(',')
			}
			b.WriteByte(s[i])
		}
		s = b.String()
	}
	if neg {
		return "-$" + s
	}
	return "$" + s
}
