package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amulya/writer-engine/internal/llm"
	"github.com/amulya/writer-engine/internal/pdfgen"
	"github.com/amulya/writer-engine/internal/pipeline"
	"github.com/amulya/writer-engine/pkg/types"
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Generate a single piece of writing",
	Long: `Write runs the full pipeline once for a topic and prints the composed
prose to stdout (or --out). With --pdf the rendered document is written to
the given path as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		writingType, _ := cmd.Flags().GetString("type")
		tone, _ := cmd.Flags().GetString("tone")
		length, _ := cmd.Flags().GetString("length")
		words, _ := cmd.Flags().GetInt("words")
		outPath, _ := cmd.Flags().GetString("out")
		pdfPath, _ := cmd.Flags().GetString("pdf")
		reqPath, _ := cmd.Flags().GetString("request")
		savePath, _ := cmd.Flags().GetString("save")

		var req types.WriteRequest
		if reqPath != "" {
			rf, err := pipeline.ReadRunFile(reqPath)
			if err != nil {
				return err
			}
			req = rf.Request
		} else {
			req = types.WriteRequest{
				Topic:       topic,
				WritingType: types.WritingType(writingType),
				Tone:        tone,
				Length:      types.LengthBand(length),
				WordLength:  words,
			}
		}
		if pdfPath != "" {
			req.PDF = true
		}
		if req.WritingType != "" && !req.WritingType.Valid() {
			return fmt.Errorf("unsupported writing type %q (supported: %v)", writingType, types.WritingTypes())
		}

		cfg := engineConfig()
		client := llm.NewClaude(cfg.Generation.AIConfig)
		pipe := pipeline.New(client, nil, cfg.Generation, pdfgen.GeometryFromSetup(cfg.Page))

		res, err := pipe.Run(cmd.Context(), req)
		if err != nil {
			return err
		}

		if outPath != "" {
			if err := os.WriteFile(outPath, []byte(res.Essay), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(os.Stderr, "wrote %s (%d words)\n", outPath, res.WordCount)
		} else {
			fmt.Println(res.Essay)
		}

		if pdfPath != "" {
			if err := os.WriteFile(pdfPath, res.PDF, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", pdfPath, err)
			}
			fmt.Fprintf(os.Stderr, "wrote %s\n", pdfPath)
		}

		if savePath != "" {
			if err := pipeline.WriteRunFile(savePath, req, res); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "saved %s\n", savePath)
		}
		return nil
	},
}

func init() {
	writeCmd.Flags().String("topic", "", "subject to write about (required)")
	writeCmd.Flags().String("type", "essay", "writing type: essay, report, summary, explanation, audit, article, or social_post")
	writeCmd.Flags().String("tone", "", "style hint (e.g. academic, casual, persuasive)")
	writeCmd.Flags().String("length", "", "coarse length band: short, medium, or long")
	writeCmd.Flags().Int("words", 0, "approximate word-count target (overrides --length)")
	writeCmd.Flags().String("out", "", "write the prose to a file instead of stdout")
	writeCmd.Flags().String("pdf", "", "also render a PDF to this path")
	writeCmd.Flags().String("request", "", "load the request from a saved run file instead of flags")
	writeCmd.Flags().String("save", "", "save the request and result to a YAML run file")

	rootCmd.AddCommand(writeCmd)
}
