package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// Flag values offered by shell completion. The parsers accept more spellings.
var (
	fieldNames  = []string{"subject", "description", "create-date", "modify-date", "custom"}
	kindNames   = []string{"subject", "description", "custom"}
	modeNames   = []string{"add", "replace", "delete"}
	formatNames = []string{"preserve", "smart", "png", "jpg"}
	imageExts   = []string{"png", "jpg", "jpeg", "webp"}
)

func completeFrom(values []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, toComplete) {
			matches = append(matches, v)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeFields provides shell completion for the read --field flag.
func completeFields(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFrom(fieldNames, toComplete)
}

// completeKinds provides shell completion for the write --type flag.
func completeKinds(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFrom(kindNames, toComplete)
}

// completeModes provides shell completion for the write --mode flag.
func completeModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFrom(modeNames, toComplete)
}

// completeFormats provides shell completion for the encode --format flag.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFrom(formatNames, toComplete)
}

// completeImages limits file completion to image files.
func completeImages(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return imageExts, cobra.ShellCompDirectiveFilterFileExt
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}
