package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/resumatch/resumatch/internal/ai/gemini"
	"github.com/resumatch/resumatch/internal/cache"
	"github.com/resumatch/resumatch/internal/jobs"
	"github.com/resumatch/resumatch/internal/logger"
	"github.com/resumatch/resumatch/internal/profile"
	"github.com/resumatch/resumatch/internal/ranker"
	"github.com/resumatch/resumatch/internal/secrets"
	"github.com/resumatch/resumatch/internal/skills"
	"github.com/resumatch/resumatch/internal/textextract"
)

const (
	PromptReportByCompany = "Report by company"
	PromptResultsToFile   = "Dump ranked jobs to file"
	PromptShowProfile     = "Show extracted profile"
	PromptExit            = "Exit"

	defaultTopN = 10
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptReportByCompany, PromptResultsToFile, PromptShowProfile, PromptExit},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Extract a profile from a resume file and rank job postings against it",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("resume", "r", "", "path to the resume file (pdf, docx or txt)")
	matchCmd.Flags().StringP("jobs-file", "F", "", "path to a JSON file with job postings")
	matchCmd.Flags().IntP("top-n", "n", defaultTopN, "maximum number of ranked results")
	matchCmd.Flags().StringP("cache-key", "k", "", "cache key for the ranked results. Default is derived from the resume file name.")

	if err := matchCmd.MarkFlagRequired("resume"); err != nil {
		log.Fatalf("marking resume flag required: %v", err)
	}

	viper.BindPFlag("jobs-file", matchCmd.Flags().Lookup("jobs-file"))
	viper.BindPFlag("top-n", matchCmd.Flags().Lookup("top-n"))
}

// match is the main command for the cli.
func match(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting resumatch", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	resumePath := cmd.Flag("resume").Value.String()

	doc, err := textextract.FromFile(resumePath)
	if err != nil {
		logger.Fatal("extracting resume text", zap.Error(err))
	}
	logger.Info("extracted resume text",
		zap.String("file", resumePath),
		zap.String("format", string(doc.Format)),
		zap.Int("characters", len(doc.Text)),
	)

	kb, err := buildKnowledgeBase(config)
	if err != nil {
		logger.Fatal("loading skill knowledge base",
			zap.Error(err),
			zap.String("hint", "check the skills.file and skills.mode configuration keys"),
		)
	}
	logger.Info("loaded skill knowledge base",
		zap.String("mode", string(kb.Mode())),
		zap.Int("skills", kb.Size()),
	)

	extractor := profile.New(kb,
		profile.WithLogger(logger),
		profile.WithClassifier(buildClassifier(ctx, config, logger)),
	)

	candidate := extractor.Extract(ctx, doc.Text)
	if candidate.InsufficientText {
		logger.Fatal("resume contains too little text to analyze", zap.String("file", resumePath))
	}
	logger.Info("extracted candidate profile",
		zap.String("name", candidate.Name),
		zap.String("category", candidate.Category),
		zap.String("experience", candidate.Experience),
		zap.Strings("skills", candidate.Skills),
	)

	jobsFile := viper.GetString("jobs-file")
	if jobsFile == "" {
		logger.Fatal("job postings file is required",
			zap.String("hint", "pass --jobs-file or set the jobs-file configuration key"),
		)
	}

	postings, err := jobs.LoadFromFile(jobsFile)
	if err != nil {
		logger.Fatal("loading job postings", zap.Error(err))
	}
	if postings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no job postings to rank"))
		return
	}
	logger.Info("loaded job postings", zap.Int("count", postings.Len()))

	store, err := buildCache(config)
	if err != nil {
		logger.Fatal("setting up results cache", zap.Error(err))
	}

	results, err := rankPostings(ctx, cmd, config, candidate, doc.Text, postings, store, logger)
	if err != nil {
		logger.Fatal("ranking job postings", zap.Error(err))
	}

	if len(results) == 0 {
		logger.Info("exiting", zap.String("reason", "no postings matched"))
		return
	}

	for i, result := range results {
		logger.Info("ranked posting",
			zap.Int("rank", i+1),
			zap.Float64("score", result.Score),
			zap.String("title", result.Posting.Title),
			zap.String("company", result.Posting.Company),
			zap.String("url", result.Posting.URL),
		)
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, candidate, results); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, candidate *profile.Profile, results []ranker.MatchResult) error {
	switch action {
	case PromptReportByCompany:
		matched := jobs.Postings{}
		for _, result := range results {
			matched.Items = append(matched.Items, result.Posting)
		}
		pretty, _ := json.MarshalIndent(matched.ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("postings count", matched.Len()))
		return nil
	case PromptShowProfile:
		pretty, _ := json.MarshalIndent(candidate, "", "  ")
		logger.Info(string(pretty))
		return nil
	case PromptResultsToFile:
		filename, err := dumpResults(results)
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping results to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func buildKnowledgeBase(config *Config) (*skills.KnowledgeBase, error) {
	if config.Skills == nil || config.Skills.File == "" {
		return skills.Default(), nil
	}

	switch strings.ToLower(strings.TrimSpace(config.Skills.Mode)) {
	case "", string(skills.ModeAlias):
		return skills.LoadAliasCSV(config.Skills.File)
	case string(skills.ModeFlat):
		return skills.LoadFlatCSV(config.Skills.File)
	default:
		return nil, fmt.Errorf("unsupported skills mode: %s", config.Skills.Mode)
	}
}

// buildClassifier returns the configured category classifier, falling back
// to the rule-based one when Gemini is not fully configured.
func buildClassifier(ctx context.Context, config *Config, log *zap.Logger) profile.Classifier {
	if config.Category == nil || !strings.EqualFold(config.Category.Strategy, "gemini") {
		return profile.RuleClassifier{}
	}

	geminiCfg := config.Category.Gemini
	if geminiCfg == nil {
		geminiCfg = &GeminiConfig{}
	}

	apiKeyFile := geminiCfg.APIKeyFile
	if apiKeyFile == "" {
		apiKeyFile = viper.GetString("category.gemini.api-key-file")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: apiKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		log.Warn("falling back to the rule-based classifier",
			zap.Error(err),
			zap.String("hint", "set category.gemini.api-key-file or GEMINI_API_KEY_FILE"),
		)
		return profile.RuleClassifier{}
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, geminiCfg.Model)
	if err != nil {
		log.Warn("falling back to the rule-based classifier", zap.Error(err))
		return profile.RuleClassifier{}
	}

	classifierLogger := logger.WithFields(log, logger.ClassifierFields("gemini", generator.Model())...)

	return gemini.NewClassifier(generator, classifierLogger, geminiCfg.MaxLogLength)
}

func buildCache(config *Config) (cache.Cache, error) {
	cacheCfg := config.Cache
	if cacheCfg == nil {
		cacheCfg = &CacheConfig{}
	}

	switch strings.ToLower(strings.TrimSpace(cacheCfg.Backend)) {
	case "", "memory":
		return cache.NewMemory(cacheCfg.MaxSize, cacheCfg.TTL), nil
	case "redis":
		if cacheCfg.Redis == nil || cacheCfg.Redis.Addr == "" {
			return nil, errors.New("cache.redis.addr is required for the redis backend")
		}
		password := ""
		if cacheCfg.Redis.PasswordFile != "" {
			var err error
			password, err = secrets.Load(secrets.Source{
				Name: "redis password",
				File: cacheCfg.Redis.PasswordFile,
			})
			if err != nil {
				return nil, err
			}
		}
		return cache.NewRedis(cacheCfg.Redis.Addr, password, cacheCfg.Redis.DB, cacheCfg.Redis.Prefix, cacheCfg.TTL)
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", cacheCfg.Backend)
	}
}

func rankPostings(ctx context.Context, cmd *cobra.Command, config *Config, candidate *profile.Profile, resumeText string, postings *jobs.Postings, store cache.Cache, log *zap.Logger) ([]ranker.MatchResult, error) {
	topN := viper.GetInt("top-n")
	if topN <= 0 {
		topN = defaultTopN
	}

	cacheKey := cmd.Flag("cache-key").Value.String()
	if cacheKey == "" {
		cacheKey = "results:" + cmd.Flag("resume").Value.String()
	}

	strategy := "auto"
	if config.Ranking != nil && config.Ranking.Strategy != "" {
		strategy = strings.ToLower(strings.TrimSpace(config.Ranking.Strategy))
	}

	switch strategy {
	case "auto":
		return ranker.New(log).Rank(ctx, postings.Items, candidate.Skills, resumeText, topN, cacheKey, store)
	case "keyword":
		return ranker.New(log).Rank(ctx, postings.Items, candidate.Skills, "", topN, cacheKey, store)
	case "percentage":
		matcher := ranker.NewPercentageMatcher(candidate.Skills, candidate.Category, "")
		results := matcher.Rank(postings.Items, topN)
		if store != nil && cacheKey != "" {
			if err := store.Set(ctx, cacheKey, results); err != nil {
				return results, fmt.Errorf("caching ranked results: %w", err)
			}
		}
		return results, nil
	default:
		return nil, fmt.Errorf("unsupported ranking strategy: %s", strategy)
	}
}

func dumpResults(results []ranker.MatchResult) (string, error) {
	file, err := os.CreateTemp("", "resumatch_results_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return "", err
	}
	return file.Name(), nil
}
