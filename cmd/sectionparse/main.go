// Command sectionparse parses language-model output into validated section
// content.
//
//	sectionparse parse response.txt --expected counts.yaml
//	cat response.txt | sectionparse parse
//	sectionparse serve
//
// parse prints the result as JSON on stdout; logs go to stderr. serve runs
// the parse_section_content MCP tool over stdio.
//
// Exit codes: 0 = parsed (possibly partial), 1 = error or, with --strict, an
// unsuccessful parse.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
