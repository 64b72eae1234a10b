package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bimmerbailey/copygen/internal/llm"
	"github.com/bimmerbailey/copygen/internal/output"
	"github.com/bimmerbailey/copygen/internal/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate --type <type> --business <name> --product <info>",
	Short: "Generate marketing copy variations",
	Long: `Generate marketing copy with the configured chat-completion provider.

Content types: slogan, social, hashtags, product, email.
Audience and tone apply to social, product and email; platform applies to
social and hashtags. The variation count is clamped to 1-5.

A custom prompt (--prompt) replaces template construction entirely and makes
every other content flag optional.

Examples:
  copygen generate -t slogan -b "Acme Coffee" -p "single-origin cold brew"
  copygen generate -t email -b Acme -p "spring sale" --audience "returning buyers" --tone playful -n 2
  copygen generate --prompt "Write three haiku about espresso" --format json
  copygen generate -t hashtags -b Acme -p tea --platform TikTok --out-dir ./copy`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", string(prompt.TypeSlogan), "content type (slogan, social, hashtags, product, email)")
	cmd.Flags().StringP("business", "b", "", "business name")
	cmd.Flags().StringP("product", "p", "", "product or service information")
	cmd.Flags().String("audience", "", "target audience")
	cmd.Flags().String("tone", "", "tone of voice, e.g. professional, playful")
	cmd.Flags().String("platform", "", "social platform, e.g. Instagram")
	cmd.Flags().IntP("variations", "n", 3, "number of variations (1-5)")
	cmd.Flags().String("prompt", "", "custom prompt, sent verbatim")
	cmd.Flags().StringP("out-dir", "o", "", "write each variation to <out-dir>/<type>-<n>.txt")
	cmd.Flags().Bool("show-prompt", false, "print the prompt that was sent")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req, err := generateRequestFromFlags(cmd)
	if err != nil {
		return err
	}
	outDir, _ := cmd.Flags().GetString("out-dir")
	showPrompt, _ := cmd.Flags().GetBool("show-prompt")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := svc.Generate(ctx, req)
	if err != nil {
		return describeError(err)
	}

	format := output.ParseFormat(viper.GetString("format"))
	mode := output.ParseColorMode(viper.GetString("color"))
	if err := output.New(cmd.OutOrStdout(), format, mode).WriteResult(res, showPrompt); err != nil {
		return err
	}

	if outDir != "" {
		paths, err := output.Export(outDir, res.Type, res.Variants)
		if err != nil {
			return err
		}
		logger.Info("exported variations", "dir", outDir, "files", len(paths))
		if format == output.FormatText {
			for _, p := range paths {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", p)
			}
		}
	}

	return nil
}

// generateRequestFromFlags reads the content flags into a prompt.Request,
// clamping the variation count.
func generateRequestFromFlags(cmd *cobra.Command) (prompt.Request, error) {
	typeStr, _ := cmd.Flags().GetString("type")
	business, _ := cmd.Flags().GetString("business")
	product, _ := cmd.Flags().GetString("product")
	audience, _ := cmd.Flags().GetString("audience")
	tone, _ := cmd.Flags().GetString("tone")
	platform, _ := cmd.Flags().GetString("platform")
	variations, _ := cmd.Flags().GetInt("variations")
	custom, _ := cmd.Flags().GetString("prompt")

	ct := prompt.ContentType(strings.ToLower(strings.TrimSpace(typeStr)))
	if strings.TrimSpace(custom) == "" {
		parsed, err := prompt.ParseContentType(typeStr)
		if err != nil {
			return prompt.Request{}, fmt.Errorf("%w (must be one of: %s)", err, typeList())
		}
		ct = parsed
	}

	clamped := prompt.ClampVariations(variations)
	if clamped != variations {
		logger.Warn("variation count clamped", "requested", variations, "used", clamped)
	}

	return prompt.Request{
		Type:           ct,
		BusinessName:   business,
		ProductInfo:    product,
		TargetAudience: audience,
		Tone:           tone,
		Platform:       platform,
		Variations:     clamped,
		CustomPrompt:   custom,
	}, nil
}

// describeError turns provider failures into the end-user wording.
func describeError(err error) error {
	var upErr *llm.UpstreamError
	if errors.As(err, &upErr) {
		if viper.GetBool("verbose") {
			return fmt.Errorf("%s (%s %d: %s)", upErr.Message(), upErr.Provider, upErr.StatusCode, upErr.Body)
		}
		return errors.New(upErr.Message())
	}

	var httpErr *llm.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Errorf("cannot reach %s: %w", httpErr.Provider, httpErr.Err)
	}

	if errors.Is(err, prompt.ErrMissingField) {
		return fmt.Errorf("%w (use --business and --product, or --prompt)", err)
	}
	return err
}

func typeList() string {
	types := prompt.ContentTypes()
	names := make([]string, len(types))
	for i, ct := range types {
		names[i] = string(ct)
	}
	return strings.Join(names, ", ")
}
