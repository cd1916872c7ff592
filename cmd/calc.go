package cmd

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/darksv/go-chromaprint/configs"
	"github.com/darksv/go-chromaprint/internal/logging"
	"github.com/darksv/go-chromaprint/internal/report"
	"github.com/darksv/go-chromaprint/internal/wavio"
	"github.com/darksv/go-chromaprint/pkg/chromaprint"
)

// calcCmd fingerprints audio files
var calcCmd = &cobra.Command{
	Use:   "calc [flags] FILE...",
	Short: "Calculate audio fingerprints",
	Long: `Calculate an acoustic fingerprint for each audio file and print the
file duration together with the fingerprint in its compressed base64
form (or as raw words with --raw).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().IntP("algorithm", "a", 1, "fingerprint algorithm (0-4)")
	calcCmd.Flags().Float64P("length", "l", 120, "restrict the duration of the processed input audio (seconds, 0 = unlimited)")
	calcCmd.Flags().BoolP("raw", "R", false, "output fingerprints in the uncompressed format")

	viper.BindPFlag("fingerprint.algorithm", calcCmd.Flags().Lookup("algorithm"))
	viper.BindPFlag("fingerprint.max_duration", calcCmd.Flags().Lookup("length"))
	viper.BindPFlag("fingerprint.raw", calcCmd.Flags().Lookup("raw"))

	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
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

	for i, path := range args {
		words, duration, err := fingerprintFile(cfg, path, appCfg.Fingerprint.MaxDuration)
		if err != nil {
			return fmt.Errorf("fingerprinting %s: %w", path, err)
		}

		result := &report.CalcResult{
			File:     path,
			Duration: duration,
		}
		if appCfg.Fingerprint.Raw {
			result.Raw = words
		} else {
			compressed := chromaprint.CompressFingerprint(words, cfg.ID())
			result.Fingerprint = base64.RawURLEncoding.EncodeToString(compressed)
		}

		out, err := formatter.Format(result)
		if err != nil {
			return err
		}
		if i > 0 && appCfg.OutputFormat == "text" {
			fmt.Println()
		}
		os.Stdout.Write(out)
	}

	return nil
}

// fingerprintFile decodes a WAV file, converts it to the processing rate
// and runs the fingerprinter over it. It returns the fingerprint words and
// the processed duration in seconds.
func fingerprintFile(cfg *chromaprint.Configuration, path string, maxDuration float64) ([]uint32, float64, error) {
	audio, err := wavio.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	audio.Truncate(maxDuration)
	duration := audio.Duration()

	logging.WithFields(logging.Fields{
		"file":        path,
		"sample_rate": audio.SampleRate,
		"channels":    audio.Channels,
		"duration":    duration,
	}).Debug("decoded audio file")

	if err := audio.ResampleTo(cfg.SampleRate()); err != nil {
		return nil, 0, err
	}

	fp := chromaprint.New(cfg)
	if err := fp.Start(audio.SampleRate, audio.Channels); err != nil {
		return nil, 0, err
	}
	if err := fp.Consume(audio.Samples); err != nil {
		return nil, 0, err
	}
	if err := fp.Finish(); err != nil {
		return nil, 0, err
	}

	words, err := fp.Fingerprint()
	if err != nil {
		return nil, 0, err
	}
	return words, duration, nil
}

func loadValidatedConfig() (*configs.Config, error) {
	cfg, err := configs.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := configs.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
