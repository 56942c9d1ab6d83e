package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Useful test tool to confirm what sections and lines a file actually
// carries before the decoder interprets them.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: section-dump <file.osu>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	section := "(header)"
	var count, blank, comments int
	var first string
	lineNo := 0

	flush := func() {
		fmt.Printf("%-16s %5d lines", section, count)
		if blank > 0 {
			fmt.Printf(", %d blank", blank)
		}
		if comments > 0 {
			fmt.Printf(", %d comments", comments)
		}
		fmt.Println()
		if first != "" {
			fmt.Printf("  first %s\n", first)
		}
		count, blank, comments = 0, 0, 0
		first = ""
	}

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			blank++
		case strings.HasPrefix(line, "//"):
			comments++
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			flush()
			section = line
		default:
			if count == 0 {
				first = fmt.Sprintf("line %d: %s", lineNo, truncate(line, 60))
			}
			count++
		}
	}
	flush()

	if err := sc.Err(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
