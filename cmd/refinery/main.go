package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plancraft/refinery/pkg/adapter"
	"github.com/plancraft/refinery/pkg/classify"
	"github.com/plancraft/refinery/pkg/components"
	"github.com/plancraft/refinery/pkg/config"
	"github.com/plancraft/refinery/pkg/orchestrator"
	"github.com/plancraft/refinery/pkg/textproc"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "refinery",
		Short: "LLM-backed project roadmap generator with multi-agent pipelines",
		Long: `Refinery turns a free-text project description into a structured
	project roadmap. The description is classified into a project category
	and routed to either a generator/critic refinement loop or a
	multi-agent synthesis pipeline of specialist roles.`,
	}

	rootCmd.AddCommand(refineCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(prepareCmd())
	rootCmd.AddCommand(healthCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func refineCmd() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "refine [description]",
		Short: "Generate a refined project roadmap",
		Long: `Classifies the project description and runs the matching pipeline:
	a generator/critic refinement loop for general projects, or a
	multi-agent synthesis pipeline for complex AI and IoT/hardware
	projects.

	Use --detailed to print the full result envelope with run metadata
	(processing type, agent confidences, workflow history) as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := args[0]

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			adapters, err := createAdapters(cfg)
			if err != nil {
				return fmt.Errorf("failed to create adapters: %w", err)
			}

			orch := orchestrator.New(cfg, adapters,
				orchestrator.WithCatalog(components.NewCatalog()))

			if detailed {
				result, err := orch.RefineDetailed(context.Background(), description)
				if err != nil {
					return err
				}
				out, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Println(orch.Refine(context.Background(), description))
			return nil
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "print the full result envelope as JSON")
	return cmd
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [description]",
		Short: "Show how a project description would be routed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			classifier := classify.New(cfg.Signals)
			result := classifier.Classify(args[0])
			projectType := classifier.DetectProjectType(args[0])

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "category:\t%s\n", result.Category)
			fmt.Fprintf(w, "project type:\t%s\n", projectType)
			fmt.Fprintf(w, "ai keyword matches:\t%d\n", result.AIMatches)
			fmt.Fprintf(w, "iot keyword matches:\t%d\n", result.IoTMatches)
			return w.Flush()
		},
	}
}

func prepareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prepare [file|-]",
		Short: "Preview input preprocessing (token count, chunking, summary)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if args[0] == "-" {
				data, err := readStdin()
				if err != nil {
					return err
				}
				text = data
			} else {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				text = string(data)
			}

			prepared := textproc.NewProcessor().Prepare(text)
			fmt.Printf("mode: %s\n", prepared.Mode)
			fmt.Printf("tokens: %d\n", prepared.TokenCount)
			if prepared.Mode == textproc.ModeChunked {
				fmt.Printf("chunks: %d\n", prepared.ChunkCount)
				fmt.Println()
				fmt.Println(prepared.Summary)
			}
			return nil
		},
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check which provider credentials are configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			status := cfg.Status()

			names := make([]string, 0, len(status.Adapters))
			for name := range status.Adapters {
				names = append(names, name)
			}
			sort.Strings(names)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, name := range names {
				state := "missing"
				if status.Adapters[name] {
					state = "configured"
				}
				fmt.Fprintf(w, "%s:\t%s\n", name, state)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if !status.Ready {
				return fmt.Errorf("missing required API keys: %s", strings.Join(status.Missing, ", "))
			}
			fmt.Println("ready")
			return nil
		},
	}
}

func createAdapters(cfg *config.Config) (map[string]adapter.Adapter, error) {
	adapters := make(map[string]adapter.Adapter)

	if cfg.OpenAIAPIKey != "" {
		a, err := adapter.NewOpenAIAdapter(cfg.OpenAIAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai adapter: %w", err)
		}
		adapters["openai"] = a
	}

	if cfg.GoogleAPIKey != "" {
		a, err := adapter.NewGoogleAdapter(cfg.GoogleAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create google adapter: %w", err)
		}
		adapters["google"] = a
	}

	if cfg.AnthropicAPIKey != "" {
		a, err := adapter.NewAnthropicAdapter(cfg.AnthropicAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic adapter: %w", err)
		}
		adapters["anthropic"] = a
	}

	return adapters, nil
}

func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
