package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabbir/outreach-composer/internal/db"
	"github.com/sabbir/outreach-composer/internal/llm"
	"github.com/sabbir/outreach-composer/internal/promptgen"
)

var (
	genConfigPath     string
	genWritingType    string
	genRoleLevel      string
	genCompanyName    string
	genRoleName       string
	genJobDescription string
	genCompanyInfo    string
	genDetails        string
	genPersonInfo     string
	genTone           string
	genWordLimit      int
	genPromptOnly     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one outreach document from the command line",
	Long:  `Assemble the prompt for a writing type from the stored template, profile and tones, then send it to the LLM. With --prompt-only the assembled prompt is printed without calling the LLM.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to JSON config file")
	generateCmd.Flags().StringVar(&genWritingType, "writing-type", "", "Writing type slug (cold_email, cover_letter, linkedin_message, follow_up)")
	generateCmd.Flags().StringVar(&genRoleLevel, "role-level", "", "Role level slug for self-presentation")
	generateCmd.Flags().StringVar(&genCompanyName, "company", "", "Target company name")
	generateCmd.Flags().StringVar(&genRoleName, "role", "", "Target role name")
	generateCmd.Flags().StringVar(&genJobDescription, "job-description", "", "Job description text")
	generateCmd.Flags().StringVar(&genCompanyInfo, "company-info", "", "Company background text")
	generateCmd.Flags().StringVar(&genDetails, "details", "", "Specific details to mention")
	generateCmd.Flags().StringVar(&genPersonInfo, "person-info", "", "Info about the LinkedIn recipient")
	generateCmd.Flags().StringVar(&genTone, "tone", "", "Tone slug")
	generateCmd.Flags().IntVar(&genWordLimit, "word-limit", 0, "Word limit for the generated document")
	generateCmd.Flags().BoolVar(&genPromptOnly, "prompt-only", false, "Print the assembled prompt without calling the LLM")

	_ = generateCmd.MarkFlagRequired("writing-type")
	_ = generateCmd.MarkFlagRequired("tone")
	_ = generateCmd.MarkFlagRequired("word-limit")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(genConfigPath)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	req := &promptgen.GenerationRequest{
		WritingType:        genWritingType,
		RoleLevel:          genRoleLevel,
		CompanyName:        genCompanyName,
		RoleName:           genRoleName,
		JobDescription:     genJobDescription,
		CompanyInfo:        genCompanyInfo,
		SpecificDetails:    genDetails,
		LinkedInPersonInfo: genPersonInfo,
		Tone:               genTone,
		WordLimit:          genWordLimit,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	assembler := promptgen.NewAssembler(database)
	prompt, err := assembler.BuildPrompt(ctx, req)
	if err != nil {
		return err
	}

	if genPromptOnly {
		fmt.Fprintln(cmd.OutOrStdout(), prompt)
		return nil
	}

	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required (or use --prompt-only)")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig().WithModel(cfg.Model), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	output, err := client.GenerateContent(ctx, prompt)
	if err != nil {
		return err
	}

	if _, err := database.SaveGeneration(ctx, &db.Generation{
		WritingType: req.WritingType,
		RoleLevel:   req.RoleLevel,
		CompanyName: req.CompanyName,
		RoleName:    req.RoleName,
		Tone:        req.Tone,
		WordLimit:   req.WordLimit,
		Prompt:      prompt,
		Output:      output,
	}); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
