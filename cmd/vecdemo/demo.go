package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/veckit/vec"
)

var wait bool

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	liveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	spareStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the container walkthrough",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().BoolVar(&wait, "wait", false, "Wait for a line on stdin before exiting")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	p := message.NewPrinter(language.Make(locale))

	ints, err := vec.Of(1, 2, 3, 4, 5, 20, 19, 18, 17, 16)
	if err != nil {
		return err
	}
	defer ints.Destroy()
	printVector(p, "constructed from list", ints)

	if err := ints.Erase(0); err != nil {
		return err
	}
	printVector(p, "erase(0)", ints)

	if err := ints.EraseRange(2, 5); err != nil {
		return err
	}
	printVector(p, "erase [2, 5)", ints)

	if err := ints.ResizeWith(15, 30); err != nil {
		return err
	}
	printVector(p, "resize to 15 filling 30", ints)

	if err := ints.ResizeWith(5, 20); err != nil {
		return err
	}
	printVector(p, "resize to 5", ints)

	two, err := vec.NewFill(2, 20)
	if err != nil {
		return err
	}
	defer two.Destroy()
	if err := ints.CopyFrom(two); err != nil {
		return err
	}
	if err := ints.Resize(7); err != nil {
		return err
	}
	printVector(p, "reassigned to (2 x 20), resized to 7", ints)

	if wait {
		fmt.Println("Press enter.")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}
	return nil
}

// printVector renders one snapshot: the counters line, then the live
// elements followed by dimmed markers for the spare slots.
func printVector(p *message.Printer, step string, v *vec.Vector[int]) {
	p.Printf("%s: size %d, capacity %d\n", styled(headerStyle, step), v.Len(), v.Cap())

	parts := make([]string, 0, v.Cap())
	for val := range v.Values() {
		parts = append(parts, styled(liveStyle, p.Sprintf("%d", val)))
	}
	for i := v.Len(); i < v.Cap(); i++ {
		parts = append(parts, styled(spareStyle, "·"))
	}
	fmt.Println("  " + strings.Join(parts, " "))
}

func styled(s lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return s.Render(text)
}
