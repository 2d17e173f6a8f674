package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/leofalp/sectionparse/core/parse"
	"github.com/leofalp/sectionparse/core/shape"
	"github.com/leofalp/sectionparse/internal/tool"
	"github.com/leofalp/sectionparse/internal/utils"
	"github.com/leofalp/sectionparse/providers/observability/slogobs"
)

// errUnsuccessful is returned by parse --strict when the result has errors.
var errUnsuccessful = errors.New("parse was not successful")

type rootFlags struct {
	configPath string
}

type parseFlags struct {
	expected         string
	repair           bool
	recoverTruncated bool
	html             bool
	compact          bool
	strict           bool
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "sectionparse",
		Short:         "Parse language-model output into validated section content",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file (default: environment)")

	root.AddCommand(newParseCommand(&flags), newServeCommand(&flags))
	return root
}

func newParseCommand(root *rootFlags) *cobra.Command {
	var flags parseFlags

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a model response from a file or stdin and print the result as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(root.configPath)
			if err != nil {
				return err
			}
			applyParseFlags(cmd, cfg, flags)

			input, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			counts, err := loadExpectedCounts(cfg.ExpectedCounts)
			if err != nil {
				return err
			}

			res := newParser(cfg).Parse(cmd.Context(), parse.Input{Raw: input, ExpectedCounts: counts})
			fmt.Fprintln(cmd.OutOrStdout(), utils.JSONToString(res, !flags.compact))

			if flags.strict && !res.Success {
				return errUnsuccessful
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.expected, "expected", "e", "", "YAML or JSON file of expected item counts")
	f.BoolVar(&flags.repair, "repair", true, "repair malformed JSON before failing")
	f.BoolVar(&flags.recoverTruncated, "recover-truncated", true, "accept unterminated objects that can be repaired")
	f.BoolVar(&flags.html, "html", true, "convert HTML responses to markdown before extraction")
	f.BoolVar(&flags.compact, "compact", false, "print the result on one line")
	f.BoolVar(&flags.strict, "strict", false, "exit with status 1 when the result has errors")
	return cmd
}

func newServeCommand(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the parse_section_content MCP tool over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(root.configPath)
			if err != nil {
				return err
			}

			server := mcp.NewServer(&mcp.Implementation{Name: "sectionparse", Version: version}, nil)
			tool.Register(server, newParser(cfg))
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

// applyParseFlags copies explicitly set flags over cfg.
func applyParseFlags(cmd *cobra.Command, cfg *Config, flags parseFlags) {
	f := cmd.Flags()
	if f.Changed("expected") {
		cfg.ExpectedCounts = flags.expected
	}
	if f.Changed("repair") {
		cfg.JSONRepair = flags.repair
	}
	if f.Changed("recover-truncated") {
		cfg.RecoverTruncated = flags.recoverTruncated
	}
	if f.Changed("html") {
		cfg.HTMLNormalization = flags.html
	}
}

func newParser(cfg *Config) *parse.Parser {
	observer := slogobs.New(
		slogobs.WithFormat(slogobs.ParseFormat(cfg.LogFormat)),
		slogobs.WithLevel(slogobs.ParseLogLevel(cfg.LogLevel)),
		slogobs.WithOutput(os.Stderr),
	)
	return parse.New(
		parse.WithLogger(observer),
		parse.WithRegistry(shape.Default(shape.WithCacheSize(cfg.CacheSize))),
		parse.WithJSONRepair(cfg.JSONRepair),
		parse.WithTruncationRecovery(cfg.RecoverTruncated),
		parse.WithHTMLNormalization(cfg.HTMLNormalization),
	)
}

// readInput reads the named file, or stdin when no file or "-" is given.
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
