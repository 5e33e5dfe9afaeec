package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/clipboard"
	"github.com/dvolk/mscat/internal/pdf"
	"github.com/dvolk/mscat/internal/prompt"
)

var (
	promptPDF  string
	promptCopy bool
)

func init() {
	promptCmd.Flags().StringVar(&promptPDF, "pdf", "", "Append the text of this PDF after the prompt template")
	promptCmd.Flags().BoolVar(&promptCopy, "copy", false, "Also copy the output to the system clipboard")
	rootCmd.AddCommand(promptCmd)
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the LLM extraction prompt",
	Long: `Print the JSON prompt used to ask a language model for structured
manuscript information. Paste the prompt plus the manuscript text into a
chat; the reply fits 'mscat add --details-file -' directly.

With --pdf the manuscript text is extracted locally from the given file
and appended after the template, ready to paste as one block.

Examples:
  mscat prompt --copy
  mscat prompt --pdf paper.pdf`,
	RunE: runPrompt,
}

func runPrompt(cmd *cobra.Command, args []string) error {
	// The prompt is raw paste material either way; --human changes nothing.
	out := prompt.Template()

	if promptPDF != "" {
		text, err := pdf.ExtractText(promptPDF, 0)
		if err != nil {
			exitWithError(ExitError, "extracting PDF text: %v", err)
		}
		out += "\n\n" + text
	}

	fmt.Println(out)

	if promptCopy {
		if err := clipboard.Copy(out); err != nil {
			exitWithError(ExitError, "copying to clipboard: %v", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
	}

	return nil
}
