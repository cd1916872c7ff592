package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/darksv/go-chromaprint/internal/report"
	"github.com/darksv/go-chromaprint/pkg/chromaprint"
)

// compareCmd locates matching sections of two audio files
var compareCmd = &cobra.Command{
	Use:   "compare [flags] FILE_A FILE_B",
	Short: "Compare two audio files",
	Long: `Fingerprint two audio files and print the sections where they match,
with positions in both files, the matched duration and a similarity
score between 0 and 1.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().IntP("algorithm", "a", 1, "fingerprint algorithm (0-4)")
	compareCmd.Flags().Float64P("length", "l", 0, "restrict the duration of the processed input audio (seconds, 0 = unlimited)")
	compareCmd.Flags().Float64P("min-score", "m", 0, "drop segments scoring below this value")

	viper.BindPFlag("fingerprint.algorithm", compareCmd.Flags().Lookup("algorithm"))
	viper.BindPFlag("fingerprint.max_duration", compareCmd.Flags().Lookup("length"))
	viper.BindPFlag("match.min_score", compareCmd.Flags().Lookup("min-score"))

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	appCfg, err := loadValidatedConfig()
	if err != nil {
		return err
	}

	cfg, err := chromaprint.PresetByID(appCfg.Fingerprint.Algorithm)
	if err != nil {
		return err
	}

	formatter, err := report.NewFormatter(appCfg.OutputFormat)
	if err != nil {
		return err
	}

	fpA, _, err := fingerprintFile(cfg, args[0], appCfg.Fingerprint.MaxDuration)
	if err != nil {
		return fmt.Errorf("fingerprinting %s: %w", args[0], err)
	}
	fpB, _, err := fingerprintFile(cfg, args[1], appCfg.Fingerprint.MaxDuration)
	if err != nil {
		return fmt.Errorf("fingerprinting %s: %w", args[1], err)
	}

	result := &report.CompareResult{
		FileA:    args[0],
		FileB:    args[1],
		Segments: []report.MatchedSegment{},
	}
	for _, seg := range chromaprint.MatchFingerprints(fpA, fpB, cfg) {
		if seg.Score < appCfg.Match.MinScore {
			continue
		}
		result.Segments = append(result.Segments, report.MatchedSegment{
			StartA:   seg.TimeA(cfg),
			EndA:     seg.TimeA(cfg) + seg.Duration(cfg),
			StartB:   seg.TimeB(cfg),
			EndB:     seg.TimeB(cfg) + seg.Duration(cfg),
			Duration: seg.Duration(cfg),
			Score:    seg.Score,
		})
	}

	out, err := formatter.Format(result)
	if err != nil {
		return err
	}
	os.Stdout.Write(out)
	return nil
}
