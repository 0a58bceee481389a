package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// selectNames prompts for a comma-separated list of indexes, "all", or an
// empty line to skip. Indexes out of range are ignored rather than failing
// the whole selection.
func selectNames(in io.Reader, out io.Writer, names []string) []string {
	fmt.Fprintln(out, "Select files to add to the whitelist:")
	for i, name := range names {
		fmt.Fprintf(out, "  %d. %s\n", i+1, name)
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, "Enter numbers (comma-separated), 'all', or leave empty to skip: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return nil
	}

	choice := strings.TrimSpace(line)
	if choice == "" {
		return nil
	}
	if strings.EqualFold(choice, "all") {
		return names
	}

	var selected []string
	for _, part := range strings.Split(choice, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || idx < 1 || idx > len(names) {
			continue
		}
		selected = append(selected, names[idx-1])
	}
	return selected
}
